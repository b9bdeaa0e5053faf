package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFilenameTimestamp(t *testing.T) {
	now := time.Date(2024, time.October, 24, 18, 30, 0, 0, time.UTC)
	if got := Filename(now); got != "Reporte_Hornos_2024-10-24.xlsx" {
		t.Fatalf("unexpected filename: %q", got)
	}
}

func TestSaveWritesBytes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	blob := []byte{0x50, 0x4b, 0x03, 0x04}
	now := time.Date(2024, time.October, 24, 0, 0, 0, 0, time.UTC)

	path, err := Save(dir, blob, now)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != string(blob) {
		t.Fatalf("spreadsheet bytes mangled")
	}
}

func TestSaveRejectsEmpty(t *testing.T) {
	if _, err := Save(t.TempDir(), nil, time.Now()); err == nil {
		t.Fatalf("expected error for empty spreadsheet")
	}
}
