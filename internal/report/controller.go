// Package report implements the furnace report query controller: it
// turns filter snapshots into request payloads and reconciles paged
// responses from the reporting service.
package report

import (
	"strings"

	"github.com/modepsa/hornotui/internal/model"
)

// PageSize is the fixed server page size.
const PageSize = 10

// OOTOptions are the values offered by the OOT dropdown; "all" means
// no filter.
var OOTOptions = []string{"all", "OOT-BB21", "OOT-BB22", "OOT-BB24"}

// Controller owns the filter inputs and the last query result. A
// response replaces the result wholesale; rows are never merged.
type Controller struct {
	Filters model.Filters

	Rows  []model.ReportRow
	Total int
	Page  int
	Pages int

	loading bool
	seq     uint64
	errMsg  string
}

// NewController returns a controller with empty filters and an empty
// result.
func NewController() *Controller {
	return &Controller{
		Filters: model.Filters{OOT: "all"},
		Page:    1,
		Pages:   1,
	}
}

// BuildPayload derives the request body from a filter snapshot. The
// free-text OT field wins over the dropdown; dates are truncated to
// calendar days.
func BuildPayload(f model.Filters, page, size int) model.ReportPayload {
	p := model.ReportPayload{Page: page, Size: size}
	if ot := strings.TrimSpace(f.NumeroOT); ot != "" {
		p.NumeroOT = &ot
	} else if f.OOT != "" && f.OOT != "all" {
		oot := f.OOT
		p.NumeroOT = &oot
	}
	if f.Desde != nil {
		s := f.Desde.Format("2006-01-02")
		p.FechaDesde = &s
	}
	if f.Hasta != nil {
		s := f.Hasta.Format("2006-01-02")
		p.FechaHasta = &s
	}
	return p
}

// StartSearch snapshots the filters into a payload for the given page
// and marks a request in flight. The returned sequence tags the
// eventual response; only the latest sequence may apply.
func (c *Controller) StartSearch(page int) (model.ReportPayload, uint64) {
	c.seq++
	c.loading = true
	return BuildPayload(c.Filters, page, PageSize), c.seq
}

// ExportPayload builds the filter body for the excel endpoint, without
// paging.
func (c *Controller) ExportPayload() model.ReportPayload {
	return BuildPayload(c.Filters, 0, 0)
}

// CanGoTo reports whether a jump to page p should issue a request: not
// while loading, not to the current page, and only inside [1, Pages].
func (c *Controller) CanGoTo(p int) bool {
	return !c.loading && p != c.Page && p >= 1 && p <= c.Pages
}

// Apply reconciles a response. Responses carrying a stale sequence are
// dropped so an old in-flight request cannot overwrite newer state.
// On error the previous result stays untouched and a single display
// string is recorded. Returns whether the response was applied.
func (c *Controller) Apply(seq uint64, resp *model.ReportResponse, err error) bool {
	if seq != c.seq {
		return false
	}
	c.loading = false
	if err != nil {
		c.errMsg = err.Error()
		return true
	}
	c.errMsg = ""
	c.Rows = resp.Data
	c.Total = resp.Total
	c.Page = resp.Page
	c.Pages = resp.Pages
	if c.Page < 1 {
		c.Page = 1
	}
	if c.Pages < 1 {
		c.Pages = 1
	}
	return true
}

// Clear resets the filters to defaults and discards the result without
// issuing a request.
func (c *Controller) Clear() {
	c.Filters = model.Filters{OOT: "all"}
	c.Rows = nil
	c.Total = 0
	c.Page = 1
	c.Pages = 1
	c.errMsg = ""
	c.loading = false
}

// Loading reports whether a request is in flight.
func (c *Controller) Loading() bool {
	return c.loading
}

// ErrMsg returns the last error display string, empty when the last
// request succeeded.
func (c *Controller) ErrMsg() string {
	return c.errMsg
}
