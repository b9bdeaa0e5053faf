package calendar

import "time"

// Range is the committed inclusive date selection. To is only ever set
// when From is, and From never exceeds To.
type Range struct {
	From *time.Time
	To   *time.Time
}

// Click applies a date-cell click. Starting over an existing complete
// range always resets it, and a click below the current anchor
// restarts with the earlier date (never swaps endpoints). Returns true
// when this click completed the range.
func (r *Range) Click(d time.Time) bool {
	day := Truncate(d)
	switch {
	case r.From == nil || r.To != nil:
		r.From, r.To = &day, nil
	case !day.Before(*r.From):
		r.To = &day
		return true
	default:
		r.From, r.To = &day, nil
	}
	return false
}

// Clear discards the selection.
func (r *Range) Clear() {
	r.From, r.To = nil, nil
}

// Complete reports whether both endpoints are committed.
func (r Range) Complete() bool {
	return r.From != nil && r.To != nil
}

// Empty reports whether nothing is selected.
func (r Range) Empty() bool {
	return r.From == nil
}

// Selected reports whether d is a committed endpoint.
func (r Range) Selected(d time.Time) bool {
	day := Truncate(d)
	if r.From != nil && day.Equal(Truncate(*r.From)) {
		return true
	}
	return r.To != nil && day.Equal(Truncate(*r.To))
}

// Span returns the inclusive highlight bounds. While the end is
// uncommitted the hover date previews the extent, in either direction;
// hover never mutates the committed range.
func (r Range) Span(hover *time.Time) (from, to time.Time, ok bool) {
	if r.From == nil {
		return time.Time{}, time.Time{}, false
	}
	end := r.To
	if end == nil {
		end = hover
	}
	if end == nil {
		return time.Time{}, time.Time{}, false
	}
	from, to = Truncate(*r.From), Truncate(*end)
	if to.Before(from) {
		from, to = to, from
	}
	return from, to, true
}

// InSpan reports whether d falls inside the highlight span for the
// given hover date.
func (r Range) InSpan(d time.Time, hover *time.Time) bool {
	from, to, ok := r.Span(hover)
	if !ok {
		return false
	}
	day := Truncate(d)
	return !day.Before(from) && !day.After(to)
}
