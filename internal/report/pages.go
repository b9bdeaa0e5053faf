package report

import "strconv"

// Ellipsis marks a collapsed gap in a compact page list.
const Ellipsis = "…"

// BuildPageList returns the compact page sequence for the pagination
// bar: all pages up to five, otherwise the edges around the current
// page with at most one ellipsis per gap.
func BuildPageList(page, pages int) []string {
	if pages < 1 {
		pages = 1
	}
	switch {
	case pages <= 5:
		out := make([]string, 0, pages)
		for p := 1; p <= pages; p++ {
			out = append(out, strconv.Itoa(p))
		}
		return out
	case page <= 3:
		return []string{"1", "2", "3", Ellipsis, strconv.Itoa(pages)}
	case page >= pages-2:
		return []string{
			"1", Ellipsis,
			strconv.Itoa(pages - 2), strconv.Itoa(pages - 1), strconv.Itoa(pages),
		}
	default:
		return []string{
			"1", Ellipsis,
			strconv.Itoa(page - 1), strconv.Itoa(page), strconv.Itoa(page + 1),
			Ellipsis, strconv.Itoa(pages),
		}
	}
}
