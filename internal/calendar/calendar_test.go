package calendar

import (
	"testing"
	"time"
)

func TestGridAlignment(t *testing.T) {
	cases := []struct {
		year   int
		month  time.Month
		blanks int
		days   int
	}{
		{2024, time.February, 4, 29}, // leap year, 1st is a Thursday
		{2025, time.September, 1, 30},
		{2023, time.October, 0, 31}, // 1st is a Sunday
		{2025, time.February, 6, 28},
	}
	for _, tc := range cases {
		cells := Grid(tc.year, tc.month)
		if len(cells) != tc.blanks+tc.days {
			t.Fatalf("%s %d: expected %d cells, got %d", tc.month, tc.year, tc.blanks+tc.days, len(cells))
		}
		for i := 0; i < tc.blanks; i++ {
			if !cells[i].Blank() {
				t.Fatalf("%s %d: cell %d should be blank", tc.month, tc.year, i)
			}
		}
		for i := 0; i < tc.days; i++ {
			cell := cells[tc.blanks+i]
			if cell.Day != i+1 {
				t.Fatalf("%s %d: expected day %d, got %d", tc.month, tc.year, i+1, cell.Day)
			}
			if cell.Date.Day() != i+1 || cell.Date.Month() != tc.month {
				t.Fatalf("%s %d: cell date mismatch: %v", tc.month, tc.year, cell.Date)
			}
		}
	}
}

func TestGridBlanksMatchFirstWeekday(t *testing.T) {
	for year := 2020; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			cells := Grid(year, month)
			first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
			blanks := 0
			for _, c := range cells {
				if !c.Blank() {
					break
				}
				blanks++
			}
			if blanks != int(first.Weekday()) {
				t.Fatalf("%s %d: expected %d leading blanks, got %d", month, year, first.Weekday(), blanks)
			}
			if len(cells)-blanks != DaysIn(year, month) {
				t.Fatalf("%s %d: expected %d days, got %d", month, year, DaysIn(year, month), len(cells)-blanks)
			}
		}
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(2024, time.February); got != 29 {
		t.Fatalf("expected 29 days in Feb 2024, got %d", got)
	}
	if got := DaysIn(2100, time.February); got != 28 {
		t.Fatalf("expected 28 days in Feb 2100, got %d", got)
	}
	if got := DaysIn(2025, time.December); got != 31 {
		t.Fatalf("expected 31 days in Dec 2025, got %d", got)
	}
}

func TestCursorRollover(t *testing.T) {
	c := Cursor{Year: 2024, Month: time.December}
	next := c.Next()
	if next.Year != 2025 || next.Month != time.January {
		t.Fatalf("expected Jan 2025, got %s %d", next.Month, next.Year)
	}
	prev := Cursor{Year: 2024, Month: time.January}.Prev()
	if prev.Year != 2023 || prev.Month != time.December {
		t.Fatalf("expected Dec 2023, got %s %d", prev.Month, prev.Year)
	}
	jumped := c.WithMonth(time.Month(13))
	if jumped.Year != 2025 || jumped.Month != time.January {
		t.Fatalf("expected month 13 to roll into Jan 2025, got %s %d", jumped.Month, jumped.Year)
	}
	if y := c.NextYear(); y.Year != 2025 || y.Month != time.December {
		t.Fatalf("expected Dec 2025, got %s %d", y.Month, y.Year)
	}
	if c.Title() != "Diciembre 2024" {
		t.Fatalf("unexpected title: %q", c.Title())
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestRangeClickForwardCompletes(t *testing.T) {
	var r Range
	if done := r.Click(date(2024, time.March, 5)); done {
		t.Fatalf("first click must not complete the range")
	}
	if r.From == nil || r.To != nil {
		t.Fatalf("expected start-selected state, got %+v", r)
	}
	if done := r.Click(date(2024, time.March, 12)); !done {
		t.Fatalf("second forward click should complete the range")
	}
	if !r.From.Equal(date(2024, time.March, 5)) || !r.To.Equal(date(2024, time.March, 12)) {
		t.Fatalf("unexpected range: %v - %v", r.From, r.To)
	}
}

func TestRangeClickBackwardRestarts(t *testing.T) {
	var r Range
	r.Click(date(2024, time.March, 10))
	if done := r.Click(date(2024, time.March, 3)); done {
		t.Fatalf("earlier click must restart, not complete")
	}
	if !r.From.Equal(date(2024, time.March, 3)) || r.To != nil {
		t.Fatalf("expected restart with new anchor, got %v - %v", r.From, r.To)
	}
}

func TestRangeClickAfterCompleteResets(t *testing.T) {
	var r Range
	r.Click(date(2024, time.March, 5))
	r.Click(date(2024, time.March, 8))
	if !r.Complete() {
		t.Fatalf("expected complete range")
	}
	r.Click(date(2024, time.April, 1))
	if r.To != nil || !r.From.Equal(date(2024, time.April, 1)) {
		t.Fatalf("expected reset to new anchor, got %v - %v", r.From, r.To)
	}
}

func TestRangeSameDayClickCompletes(t *testing.T) {
	var r Range
	r.Click(date(2024, time.March, 5))
	if done := r.Click(date(2024, time.March, 5)); !done {
		t.Fatalf("clicking the anchor again should complete a one-day range")
	}
	if !r.From.Equal(*r.To) {
		t.Fatalf("expected one-day range, got %v - %v", r.From, r.To)
	}
}

func TestRangeClickTruncatesTime(t *testing.T) {
	var r Range
	r.Click(time.Date(2024, time.March, 5, 17, 42, 9, 0, time.Local))
	if !r.From.Equal(date(2024, time.March, 5)) {
		t.Fatalf("expected day precision, got %v", r.From)
	}
}

func TestHoverPreviewSpan(t *testing.T) {
	var r Range
	r.Click(date(2024, time.March, 10))

	hover := date(2024, time.March, 14)
	from, to, ok := r.Span(&hover)
	if !ok || !from.Equal(date(2024, time.March, 10)) || !to.Equal(hover) {
		t.Fatalf("forward hover span wrong: %v - %v ok=%v", from, to, ok)
	}

	back := date(2024, time.March, 6)
	from, to, ok = r.Span(&back)
	if !ok || !from.Equal(back) || !to.Equal(date(2024, time.March, 10)) {
		t.Fatalf("backward hover span wrong: %v - %v ok=%v", from, to, ok)
	}

	// Hover must not change the committed state.
	if r.To != nil || !r.From.Equal(date(2024, time.March, 10)) {
		t.Fatalf("hover mutated the range: %v - %v", r.From, r.To)
	}

	if _, _, ok := r.Span(nil); ok {
		t.Fatalf("no hover and no end should produce no span")
	}
}

func TestHoverIgnoredOnCompleteRange(t *testing.T) {
	var r Range
	r.Click(date(2024, time.March, 5))
	r.Click(date(2024, time.March, 8))
	hover := date(2024, time.March, 20)
	_, to, ok := r.Span(&hover)
	if !ok || !to.Equal(date(2024, time.March, 8)) {
		t.Fatalf("committed end should win over hover, got %v ok=%v", to, ok)
	}
	if !r.InSpan(date(2024, time.March, 6), &hover) {
		t.Fatalf("day inside committed range should be in span")
	}
	if r.InSpan(date(2024, time.March, 9), &hover) {
		t.Fatalf("day outside committed range should not be in span")
	}
}

func TestRangeClear(t *testing.T) {
	var r Range
	r.Click(date(2024, time.March, 5))
	r.Click(date(2024, time.March, 8))
	r.Clear()
	if !r.Empty() {
		t.Fatalf("expected empty range after clear")
	}
}
