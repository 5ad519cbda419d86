package qr_test

import (
	"os"
	"testing"

	"zawiya/internal/adapters/qr"
)

// TestFilenames tests the deterministic filename patterns.
func TestFilenames(t *testing.T) {
	if got := qr.StudentFilename(3, "STDDEADBEEF"); got != "qr_3_STDDEADBEEF.png" {
		t.Errorf("StudentFilename = %q", got)
	}
	if got := qr.UpdatedFilename(5); got != "qr_schedule_5_updated.png" {
		t.Errorf("UpdatedFilename = %q", got)
	}
}

// TestGenerateWritesPNG tests that Generate produces a file.
func TestGenerateWritesPNG(t *testing.T) {
	gen, err := qr.NewGenerator(t.TempDir())
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	if err := gen.Generate("https://meet.google.com/abc-defg-hij", "qr_1_STD00000000.png"); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	info, err := os.Stat(gen.Path("qr_1_STD00000000.png"))
	if err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty PNG")
	}
}

// TestGenerateIfMissingSkipsExisting tests the registration-path idempotency.
func TestGenerateIfMissingSkipsExisting(t *testing.T) {
	gen, err := qr.NewGenerator(t.TempDir())
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	// Pre-create a sentinel file; GenerateIfMissing must not overwrite it.
	path := gen.Path("qr_2_STD00000000.png")
	if err := os.WriteFile(path, []byte("sentinel"), 0o644); err != nil {
		t.Fatalf("write sentinel: %v", err)
	}

	if err := gen.GenerateIfMissing("https://meet.google.com/klm-nopq-rst", "qr_2_STD00000000.png"); err != nil {
		t.Fatalf("GenerateIfMissing failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sentinel: %v", err)
	}
	if string(data) != "sentinel" {
		t.Error("existing file was overwritten")
	}

	// A missing file is generated.
	if err := gen.GenerateIfMissing("https://meet.google.com/klm-nopq-rst", "qr_4_STD00000000.png"); err != nil {
		t.Fatalf("GenerateIfMissing failed: %v", err)
	}
	if _, err := os.Stat(gen.Path("qr_4_STD00000000.png")); err != nil {
		t.Errorf("expected generated file: %v", err)
	}
}
