// Package calendar implements the date-range picker state: month grid
// generation, per-panel month cursors and the range selection protocol.
package calendar

import "time"

// MonthNames are the Spanish month labels shown by the picker.
var MonthNames = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// DayNames are the Sunday-first weekday headers.
var DayNames = []string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// Cell is one slot in a 7-column month grid. Day is zero for the
// leading blanks before the 1st.
type Cell struct {
	Day  int
	Date time.Time
}

// Blank reports whether the cell is a non-interactive placeholder.
func (c Cell) Blank() bool {
	return c.Day == 0
}

// Grid returns the cells for a month: firstWeekday blanks followed by
// days 1..daysInMonth, aligned Sunday-first.
func Grid(year int, month time.Month) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	days := DaysIn(year, month)
	cells := make([]Cell, 0, int(first.Weekday())+days)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: d, Date: time.Date(year, month, d, 0, 0, 0, 0, time.Local)})
	}
	return cells
}

// DaysIn returns the number of days in a month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// Truncate drops the time-of-day component.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
