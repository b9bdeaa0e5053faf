package report

import (
	"testing"
	"time"
)

func floatPtr(v float64) *float64 { return &v }

func TestZeroReadingRendersNormally(t *testing.T) {
	if got := FormatTemp(floatPtr(0)); got != "0.0°C" {
		t.Fatalf("zero temperature must render, got %q", got)
	}
	if got := FormatWeight(floatPtr(0)); got != "0.0 kg" {
		t.Fatalf("zero weight must render, got %q", got)
	}
	if got := FormatHardness(floatPtr(52.3)); got != "52.3 HRC" {
		t.Fatalf("unexpected hardness rendering: %q", got)
	}
}

func TestNilFieldRendersMissing(t *testing.T) {
	if got := FormatTemp(nil); got != Missing {
		t.Fatalf("nil temperature should be missing, got %q", got)
	}
	if got := FormatText(nil); got != Missing {
		t.Fatalf("nil text should be missing, got %q", got)
	}
	if got := FormatTimestamp(nil); got != Missing {
		t.Fatalf("nil timestamp should be missing, got %q", got)
	}
}

func TestEpochSentinelRendersAbsent(t *testing.T) {
	epoch := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatTimestamp(&epoch); got != Missing {
		t.Fatalf("epoch placeholder must render absent, got %q", got)
	}
	later := time.Date(1970, time.June, 3, 12, 0, 0, 0, time.UTC)
	if got := FormatTimestamp(&later); got != Missing {
		t.Fatalf("any year-1970 date is a placeholder, got %q", got)
	}
	real := time.Date(2024, time.October, 24, 10, 45, 0, 0, time.UTC)
	if got := FormatTimestamp(&real); got != "24/10/2024 10:45" {
		t.Fatalf("unexpected timestamp rendering: %q", got)
	}
}

func TestFormatRangeDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	if got := FormatRangeDate(&d); got != "5 de Marzo, 2024" {
		t.Fatalf("unexpected range date: %q", got)
	}
	if got := FormatRangeDate(nil); got != "" {
		t.Fatalf("nil endpoint should render empty, got %q", got)
	}
}
