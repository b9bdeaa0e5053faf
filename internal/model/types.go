// Package model defines shared data structures.
package model

import "time"

// Config holds the runtime settings resolved from flags and the config file.
type Config struct {
	APIBaseURL     string
	TimeoutSeconds int
	Theme          string
	LogLevel       string
}

// Filters capture the report search inputs as entered by the user.
type Filters struct {
	NumeroOT string
	OOT      string // dropdown value, "all" when unset
	Desde    *time.Time
	Hasta    *time.Time
}

// ReportPayload is the JSON body sent to the reporting endpoints. The
// excel endpoint takes the same body without paging, which omitempty
// covers.
type ReportPayload struct {
	FechaDesde *string `json:"fecha_desde"`
	FechaHasta *string `json:"fecha_hasta"`
	NumeroOT   *string `json:"numero_ot"`
	Page       int     `json:"page,omitempty"`
	Size       int     `json:"size,omitempty"`
}

// ReportRow mirrors one furnace record as returned by the server.
// Numeric fields are pointers so an absent reading is distinguishable
// from a legitimate zero.
type ReportRow struct {
	NumeroOT  string     `json:"numero_ot"`
	Horno     string     `json:"horno"`
	Fecha     *time.Time `json:"fecha"`
	FechaFin  *time.Time `json:"fecha_fin"`
	TempZona1 *float64   `json:"temp_zona_1"`
	TempZona2 *float64   `json:"temp_zona_2"`
	TempZona3 *float64   `json:"temp_zona_3"`
	Dureza    *float64   `json:"dureza"`
	PesoKg    *float64   `json:"peso_kg"`
	Usuario   *string    `json:"usuario"`
}

// ReportResponse is the envelope returned by POST /reportes/hornos.
type ReportResponse struct {
	Success bool        `json:"success"`
	Data    []ReportRow `json:"data"`
	Total   int         `json:"total"`
	Page    int         `json:"page"`
	Pages   int         `json:"pages"`
	Error   string      `json:"error,omitempty"`
}

// User is the operator profile blob persisted with a session.
type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Usuario string `json:"usuario"`
	DNI     string `json:"dni"`
	Role    string `json:"role"`
	Avatar  string `json:"avatar"`
}

// Session is a logged-in session restored on start.
type Session struct {
	Token     string
	User      User
	CreatedAt time.Time
}

// Settings are the persisted UI preferences.
type Settings struct {
	Theme            string // "light" or "dark"
	SidebarCollapsed bool
}

// ExportRecord is one saved spreadsheet download.
type ExportRecord struct {
	Filename  string
	CreatedAt time.Time
}
