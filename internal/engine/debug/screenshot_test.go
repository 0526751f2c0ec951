package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveFlipsRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewScreenshots(dir, "sphere-waves")
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }

	// Two rows, bottom-up: bottom red, top blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := s.Save(pixels, 1, 2)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if want := filepath.Join(dir, "sphere-waves_2024-05-01_12-30-00_000.png"); path != want {
		t.Errorf("Save() path = %s, want %s", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r, _, b, _ := img.At(0, 0).RGBA(); r != 0 || b != 0xffff {
		t.Errorf("top pixel = r%d b%d, want blue", r, b)
	}
	if r, _, b, _ := img.At(0, 1).RGBA(); r != 0xffff || b != 0 {
		t.Errorf("bottom pixel = r%d b%d, want red", r, b)
	}

	second, err := s.Save(pixels, 1, 2)
	if err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	if second == path {
		t.Error("second capture in the same second reused the file name")
	}
}

func TestSaveRejectsBadSize(t *testing.T) {
	s := NewScreenshots(t.TempDir(), "x")
	if _, err := s.Save(make([]byte, 7), 1, 2); err == nil {
		t.Error("Save() with short buffer = nil error, want error")
	}
	if _, err := s.Save(nil, 0, 0); err == nil {
		t.Error("Save() with empty size = nil error, want error")
	}
}
