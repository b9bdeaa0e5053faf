package dashui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/modepsa/hornotui/internal/calendar"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPickerHoverDragsPanelAcrossMonths(t *testing.T) {
	var rng calendar.Range
	p := newRangePicker(&rng, time.Date(2024, time.January, 31, 10, 0, 0, 0, time.Local))

	p.moveHover(1)

	if p.hover.Month() != time.February || p.hover.Day() != 1 {
		t.Fatalf("hover did not cross month boundary: %v", p.hover)
	}
	if got := p.focused(); got.Month != time.February || got.Year != 2024 {
		t.Fatalf("focused panel did not follow hover: %+v", got)
	}
}

func TestPickerClickProtocol(t *testing.T) {
	var rng calendar.Range
	p := newRangePicker(&rng, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local))

	if action, _ := p.handleKey(tea.KeyMsg{Type: tea.KeyEnter}); action != pickerNone {
		t.Fatalf("first click must not complete the range, got %v", action)
	}
	p.moveHover(7)
	action, _ := p.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if action != pickerCompleted {
		t.Fatalf("second click on a later day should complete, got %v", action)
	}
	if !rng.Complete() {
		t.Fatalf("range not committed: %+v", rng)
	}
	if rng.From.Day() != 5 || rng.To.Day() != 12 {
		t.Fatalf("unexpected endpoints: %v - %v", *rng.From, *rng.To)
	}
}

func TestPickerClearKey(t *testing.T) {
	var rng calendar.Range
	p := newRangePicker(&rng, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local))
	p.handleKey(tea.KeyMsg{Type: tea.KeyEnter})

	if action, _ := p.handleKey(keyRune('x')); action != pickerCleared {
		t.Fatalf("expected clear action")
	}
	if !rng.Empty() {
		t.Fatalf("range survived clear: %+v", rng)
	}
}

func TestPickerMonthStepClampsHover(t *testing.T) {
	var rng calendar.Range
	p := newRangePicker(&rng, time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local))

	p.handleKey(keyRune(']'))

	if got := p.focused(); got.Month != time.February {
		t.Fatalf("panel did not advance: %+v", got)
	}
	if p.hover.Month() != time.February || p.hover.Day() != 29 {
		t.Fatalf("hover not clamped into February: %v", p.hover)
	}
}

func TestPickerJump(t *testing.T) {
	var rng calendar.Range
	p := newRangePicker(&rng, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local))

	p.applyJump("03/2025")
	if got := p.focused(); got.Year != 2025 || got.Month != time.March {
		t.Fatalf("month/year jump failed: %+v", got)
	}

	p.applyJump("7")
	if got := p.focused(); got.Month != time.July || got.Year != 2025 {
		t.Fatalf("bare month jump failed: %+v", got)
	}

	p.applyJump("no es una fecha")
	if got := p.focused(); got.Month != time.July || got.Year != 2025 {
		t.Fatalf("garbage input moved the panel: %+v", got)
	}
}
