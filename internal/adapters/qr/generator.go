package qr

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// imageSize is the rendered PNG edge length in pixels.
const imageSize = 256

// StudentFilename returns the deterministic QR filename for one schedule
// entry of one student.
func StudentFilename(scheduleID int, studentID string) string {
	return fmt.Sprintf("qr_%d_%s.png", scheduleID, studentID)
}

// UpdatedFilename returns the fixed QR filename written when an admin
// updates a schedule entry's meet link.
func UpdatedFilename(scheduleID int) string {
	return fmt.Sprintf("qr_schedule_%d_updated.png", scheduleID)
}

// Generator writes QR PNG images into a single output directory.
type Generator struct {
	dir string
}

// NewGenerator creates a generator writing into dir, creating it if needed.
func NewGenerator(dir string) (*Generator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create qr dir: %w", err)
	}
	return &Generator{dir: dir}, nil
}

// Path returns the full path of a QR image inside the generator's directory.
func (g *Generator) Path(filename string) string {
	return filepath.Join(g.dir, filename)
}

// Generate encodes data and writes the image, overwriting any existing file.
// POST: A black-on-white PNG exists at the target path
func (g *Generator) Generate(data, filename string) error {
	if err := qrcode.WriteFile(data, qrcode.Low, imageSize, g.Path(filename)); err != nil {
		return fmt.Errorf("encode qr %s: %w", filename, err)
	}
	return nil
}

// GenerateIfMissing encodes data only when no file exists at the target path.
// POST: A PNG exists at the target path; an existing file is left untouched
func (g *Generator) GenerateIfMissing(data, filename string) error {
	if _, err := os.Stat(g.Path(filename)); err == nil {
		return nil
	}
	return g.Generate(data, filename)
}
