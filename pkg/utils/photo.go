package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SavePhoto writes uploaded image bytes under dir, named after the room
// number and capture time, e.g. "9.2_2026-08-31_14-05-09.jpg". It returns
// the stored path (dir joined with the filename) for use as a photo
// reference.
func SavePhoto(dir, roomNumber string, data []byte, ts time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.jpg", sanitizeFilename(roomNumber), ts.Format("2006-01-02_15-04-05"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write photo: %w", err)
	}
	return filepath.ToSlash(path), nil
}

func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", " ", "_", "..", "")
	out := replacer.Replace(s)
	if out == "" {
		out = "sala"
	}
	return out
}
