package calendar

import (
	"fmt"
	"time"
)

// Cursor addresses the month shown by one calendar panel. The two
// panels hold independent cursors over a single shared Range.
type Cursor struct {
	Year  int
	Month time.Month
}

// CursorAt returns the cursor for the month containing t.
func CursorAt(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: t.Month()}
}

// Next steps the cursor one month forward.
func (c Cursor) Next() Cursor {
	return c.add(1)
}

// Prev steps the cursor one month back.
func (c Cursor) Prev() Cursor {
	return c.add(-1)
}

// NextYear steps the cursor one year forward.
func (c Cursor) NextYear() Cursor {
	return c.add(12)
}

// PrevYear steps the cursor one year back.
func (c Cursor) PrevYear() Cursor {
	return c.add(-12)
}

// WithMonth jumps directly to a month, normalizing out-of-range values
// through date rollover.
func (c Cursor) WithMonth(m time.Month) Cursor {
	return Cursor{Year: c.Year, Month: time.January}.add(int(m) - 1)
}

// WithYear jumps directly to a year keeping the month.
func (c Cursor) WithYear(y int) Cursor {
	return Cursor{Year: y, Month: c.Month}.add(0)
}

func (c Cursor) add(months int) Cursor {
	t := time.Date(c.Year, c.Month+time.Month(months), 1, 0, 0, 0, 0, time.Local)
	return Cursor{Year: t.Year(), Month: t.Month()}
}

// Contains reports whether t falls in the cursor's month.
func (c Cursor) Contains(t time.Time) bool {
	return t.Year() == c.Year && t.Month() == c.Month
}

// Title renders the panel header, e.g. "Marzo 2024".
func (c Cursor) Title() string {
	return fmt.Sprintf("%s %d", MonthNames[int(c.Month)-1], c.Year)
}
