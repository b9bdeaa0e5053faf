package report

import (
	"fmt"
	"time"
)

// Missing is the placeholder shown for absent values. Only nil is
// absent; a zero reading renders normally.
const Missing = "—"

// epochYear is the placeholder year the backend writes for timestamps
// it does not have.
const epochYear = 1970

// FormatTemp renders a zone temperature.
func FormatTemp(v *float64) string {
	if v == nil {
		return Missing
	}
	return fmt.Sprintf("%.1f°C", *v)
}

// FormatHardness renders a hardness reading.
func FormatHardness(v *float64) string {
	if v == nil {
		return Missing
	}
	return fmt.Sprintf("%.1f HRC", *v)
}

// FormatWeight renders a weight in kilograms.
func FormatWeight(v *float64) string {
	if v == nil {
		return Missing
	}
	return fmt.Sprintf("%.1f kg", *v)
}

// FormatText renders an optional string field.
func FormatText(s *string) string {
	if s == nil || *s == "" {
		return Missing
	}
	return *s
}

// FormatTimestamp renders a timestamp. Epoch-year dates are upstream
// placeholders and render as absent even though they are valid dates.
func FormatTimestamp(t *time.Time) string {
	if t == nil || t.Year() == epochYear {
		return Missing
	}
	return t.Format("02/01/2006 15:04")
}

// FormatRangeDate renders one endpoint of the selected date range for
// the filter bar, e.g. "5 de Marzo, 2024".
func FormatRangeDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	months := []string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%d de %s, %d", t.Day(), months[int(t.Month())-1], t.Year())
}
