package main

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/reanimator/analog-clock/internal/clockface"
)

var today = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func decodeSnapshot(t *testing.T, path string) (width, height int, at func(x, y int) color.Color) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), img.At
}

func TestSnapshot_WritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "clock.png")

	path, err := snapshot(snapshotConfig{Width: 320, Height: 240, At: "03:00:15", Color: "#0000FF", Out: out}, today)
	if err != nil {
		t.Fatalf("snapshot() error = %v", err)
	}
	if path != out {
		t.Errorf("snapshot() path = %q, want %q", path, out)
	}

	width, height, at := decodeSnapshot(t, path)
	if width != 320 || height != 240 {
		t.Errorf("Snapshot size = %dx%d", width, height)
	}

	// the second hand at 15s runs right from the center in blue
	r, g, b, _ := at(200, 120).RGBA()
	if r != 0 || g != 0 || b != 0xffff {
		t.Errorf("Pixel on second hand = %v, want blue", at(200, 120))
	}
}

func TestSnapshot_GeneratedName(t *testing.T) {
	dir := t.TempDir()

	path, err := snapshot(snapshotConfig{Width: 200, Height: 200, Dir: dir}, today)
	if err != nil {
		t.Fatalf("snapshot() error = %v", err)
	}
	name := filepath.Base(path)
	if filepath.Dir(path) != dir || !strings.HasPrefix(name, "clock-") || !strings.HasSuffix(name, ".png") {
		t.Errorf("Generated path = %q", path)
	}
}

func TestSnapshot_Errors(t *testing.T) {
	dir := t.TempDir()

	attrsFile := filepath.Join(dir, "attrs.yaml")
	if err := os.WriteFile(attrsFile, []byte("secondHandColor: mauve-ish\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		cfg   snapshotConfig
		check func(error) bool
	}{
		{
			name:  "bad color",
			cfg:   snapshotConfig{Width: 100, Height: 100, Color: "nope", Dir: dir},
			check: func(err error) bool { var e *clockface.ConfigurationError; return errors.As(err, &e) },
		},
		{
			name:  "bad attrs color",
			cfg:   snapshotConfig{Width: 100, Height: 100, Attrs: attrsFile, Dir: dir},
			check: func(err error) bool { var e *clockface.ConfigurationError; return errors.As(err, &e) },
		},
		{
			name:  "bad thickness",
			cfg:   snapshotConfig{Width: 100, Height: 100, Thickness: "chunky", Dir: dir},
			check: func(err error) bool { var e *clockface.InvalidArgumentError; return errors.As(err, &e) },
		},
		{
			name:  "bad time",
			cfg:   snapshotConfig{Width: 100, Height: 100, At: "25:99", Dir: dir},
			check: func(err error) bool { return err != nil },
		},
		{
			name:  "bad size",
			cfg:   snapshotConfig{Width: 0, Height: 100, Dir: dir},
			check: func(err error) bool { return err != nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := snapshot(tt.cfg, today)
			if !tt.check(err) {
				t.Errorf("snapshot() error = %v", err)
			}
		})
	}
}

func TestFrameTime(t *testing.T) {
	got, err := frameTime("15:04:05", today)
	if err != nil {
		t.Fatalf("frameTime() error = %v", err)
	}
	want := time.Date(2024, 5, 1, 15, 4, 5, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("frameTime() = %v, want %v", got, want)
	}

	if got, _ := frameTime("", today); !got.Equal(today) {
		t.Errorf("Empty time should be now, got %v", got)
	}
}
