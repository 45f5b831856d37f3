// Command clock-snapshot renders one frame of the analog clock into a PNG.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reanimator/analog-clock/internal/clockface"
	"github.com/reanimator/analog-clock/internal/config"
	"github.com/reanimator/analog-clock/internal/platform"
	"github.com/reanimator/analog-clock/internal/raster"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	DefaultSize = 300
	TimeLayout  = "15:04:05"
)

type snapshotConfig struct {
	Width     int
	Height    int
	At        string // HH:MM:SS, empty for now
	Color     string // overrides the attributes when set
	Thickness string // thin, normal or thick
	Attrs     string // YAML attributes file
	Out       string // output file; generated in Dir when empty
	Dir       string
	Open      bool
}

func main() {
	var cfg snapshotConfig
	flag.IntVar(&cfg.Width, "width", DefaultSize, "image width in pixels")
	flag.IntVar(&cfg.Height, "height", DefaultSize, "image height in pixels")
	flag.StringVar(&cfg.At, "time", "", "time to show as HH:MM:SS (default: now)")
	flag.StringVar(&cfg.Color, "color", "", "second hand color, #RRGGBB, #AARRGGBB or a color name")
	flag.StringVar(&cfg.Thickness, "thickness", "", "hands thickness: thin, normal or thick")
	flag.StringVar(&cfg.Attrs, "attrs", "", "YAML file with clock attributes")
	flag.StringVar(&cfg.Out, "out", "", "output PNG path (default: clock-<id>.png in -dir)")
	flag.StringVar(&cfg.Dir, "dir", ".", "directory for generated file names")
	flag.BoolVar(&cfg.Open, "open", false, "open the image with the default viewer")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("clock-snapshot v%s\n", version)
		return
	}

	path, err := snapshot(cfg, time.Now())
	if err != nil {
		log.Fatalf("clock-snapshot: %v", err)
	}
	fmt.Println(path)

	if cfg.Open {
		if err := platform.OpenFileWithDefaultApp(path); err != nil {
			log.Printf("failed to open %s: %v", path, err)
		}
	}
}

// snapshot renders the clock as configured and returns the written path.
// now supplies the date, and the time when cfg.At is empty.
func snapshot(cfg snapshotConfig, now time.Time) (string, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return "", fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height)
	}

	at, err := frameTime(cfg.At, now)
	if err != nil {
		return "", err
	}

	attrs := config.DefaultAttributes()
	if cfg.Attrs != "" {
		if attrs, err = config.LoadAttributes(cfg.Attrs); err != nil {
			return "", err
		}
	}
	if cfg.Color != "" {
		attrs.SecondHandColor = cfg.Color
	}

	// no scheduler: a single still frame
	face, err := clockface.New(attrs.Options(), platform.NewFakeClock(at), nil)
	if err != nil {
		return "", err
	}
	if cfg.Thickness != "" {
		if err := face.SetHandsThicknessName(cfg.Thickness); err != nil {
			return "", err
		}
	}

	surface := raster.New(cfg.Width, cfg.Height, color.White)
	face.Render(surface, surface.Size())

	path := cfg.Out
	if path == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generate file name: %w", err)
		}
		path = filepath.Join(cfg.Dir, fmt.Sprintf("clock-%s.png", id))
	}
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create output: %w", err)
	}
	if err := surface.EncodePNG(f); err != nil {
		f.Close()
		return "", fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close output: %w", err)
	}
	return path, nil
}

func frameTime(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return now, nil
	}
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid -time %q, want HH:MM:SS", value)
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, now.Location()), nil
}
