// Package export saves server-rendered spreadsheets to disk.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Filename returns the timestamped download name, matching the name
// the web client historically produced.
func Filename(now time.Time) string {
	return fmt.Sprintf("Reporte_Hornos_%s.xlsx", now.Format("2006-01-02"))
}

// Save writes the spreadsheet bytes into dir, creating it if needed,
// and returns the full path.
func Save(dir string, data []byte, now time.Time) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("spreadsheet is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}
	path := filepath.Join(dir, Filename(now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return path, nil
}
