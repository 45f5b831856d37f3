package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"

	"github.com/reanimator/analog-clock/internal/clockface"
	"github.com/reanimator/analog-clock/internal/model"
	"github.com/reanimator/analog-clock/internal/platform"
	"github.com/reanimator/analog-clock/internal/raster"
)

const (
	AppIcon     = "analog-clock.png"
	AppIconSize = 256
)

// iconTime is the classic watch-advert pose
var iconTime = time.Date(2000, 1, 1, 10, 8, 37, 0, time.UTC)

// LoadAppIcon renders the clock face into a PNG resource for the window and
// launcher icon.
func LoadAppIcon() (fyne.Resource, error) {
	face, err := clockface.New(clockface.Options{
		HandStyleFactor:     model.NormalFactor,
		SecondHandColorName: "red",
	}, platform.NewFakeClock(iconTime), nil)
	if err != nil {
		return nil, err
	}

	surface := raster.New(AppIconSize, AppIconSize, color.White)
	face.Render(surface, surface.Size())

	var buf bytes.Buffer
	if err := surface.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode icon: %w", err)
	}
	return fyne.NewStaticResource(AppIcon, buf.Bytes()), nil
}
