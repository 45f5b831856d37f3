package clockface

import (
	"log"
	"strconv"
	"time"

	"github.com/reanimator/analog-clock/internal/colors"
	"github.com/reanimator/analog-clock/internal/model"
)

// RedrawInterval is the longest a running clock waits between frames
const RedrawInterval = 500 * time.Millisecond

// Options are the declared attributes a clock is created with.
type Options struct {
	// HandStyleFactor selects the initial thickness multiplier. Zero or
	// negative means DefaultHandStyleFactor.
	HandStyleFactor int
	// SecondHandColorName must be accepted by colors.Parse.
	SecondHandColorName string
}

// TimeSource supplies the wall-clock time for each frame.
type TimeSource interface {
	Now() time.Time
}

// Scheduler receives the renderer's redraw and relayout requests.
type Scheduler interface {
	// ScheduleRedraw asks for another frame no sooner than after.
	ScheduleRedraw(after time.Duration)
	// RequestImmediateRedraw asks for a frame as soon as possible.
	RequestImmediateRedraw()
	// RequestLayout reports that the clock's appearance changed.
	RequestLayout()
}

// Renderer draws the clock face and owns its style and geometry.
type Renderer struct {
	style     Style
	geometry  Geometry
	frozen    bool
	now       TimeSource
	scheduler Scheduler
}

// New creates a Renderer. An unparseable SecondHandColorName is a
// configuration bug and is returned as a *ConfigurationError. A nil scheduler
// produces a renderer that draws still frames and never asks for more.
func New(opts Options, now TimeSource, scheduler Scheduler) (*Renderer, error) {
	c, err := colors.Parse(opts.SecondHandColorName)
	if err != nil {
		return nil, &ConfigurationError{Op: "clockface.New", Value: opts.SecondHandColorName, Err: err}
	}

	factor := opts.HandStyleFactor
	if factor <= 0 {
		factor = DefaultHandStyleFactor
	}

	return &Renderer{
		style: Style{
			SecondHandColor: c,
			ThicknessFactor: factor,
		},
		now:       now,
		scheduler: scheduler,
	}, nil
}

// Style returns a copy of the current style
func (r *Renderer) Style() Style {
	return r.style
}

// Geometry returns the frozen geometry, and false if no frame has been drawn
// since creation or the last InvalidateGeometry.
func (r *Renderer) Geometry() (Geometry, bool) {
	return r.geometry, r.frozen
}

// InvalidateGeometry discards the frozen geometry; the next Render recomputes
// it from its bounds. Hosts call this when the drawing area is resized.
func (r *Renderer) InvalidateGeometry() {
	if r.frozen {
		log.Printf("clockface: geometry invalidated (was %dx%d)", r.geometry.Width, r.geometry.Height)
	}
	r.frozen = false
}

// Render draws one frame onto surface and schedules the next one.
func (r *Renderer) Render(surface Surface, bounds Size) {
	if !r.frozen {
		r.geometry = ComputeGeometry(bounds)
		r.frozen = true
		log.Printf("clockface: geometry frozen at %dx%d radius=%d", bounds.Width, bounds.Height, r.geometry.Radius)
	}

	r.drawBorder(surface)
	r.drawCenter(surface)
	r.drawNumerals(surface)
	r.drawHands(surface, model.SampleTime(r.now.Now()))

	if r.scheduler != nil {
		r.scheduler.ScheduleRedraw(RedrawInterval)
		r.scheduler.RequestImmediateRedraw()
	}
}

func (r *Renderer) drawBorder(surface Surface) {
	surface.DrawCircle(r.geometry.Center(), r.geometry.BorderRadius(), Paint{
		Color:       black,
		Style:       PaintStroke,
		StrokeWidth: BorderWidth,
	})
}

func (r *Renderer) drawCenter(surface Surface) {
	surface.DrawCircle(r.geometry.Center(), CenterDotSize, Paint{
		Color: black,
		Style: PaintFill,
	})
}

func (r *Renderer) drawNumerals(surface Surface) {
	paint := Paint{Color: black, Style: PaintFill, TextSize: NumeralTextSize}
	center := r.geometry.Center()

	for h := 1; h <= 12; h++ {
		text := strconv.Itoa(h)
		w, ht := surface.MeasureText(text, paint)
		p := PolarPoint(center, float64(r.geometry.Radius), NumeralAngle(h))
		surface.DrawText(text, Point{X: p.X - w/2, Y: p.Y + ht/2}, paint)
	}
}

func (r *Renderer) drawHands(surface Surface, sample model.TimeSample) {
	paint := Paint{
		Color:       black,
		Style:       PaintStroke,
		StrokeWidth: r.style.HandStrokeWidth(),
	}
	center := r.geometry.Center()

	surface.DrawLine(center, PolarPoint(center, r.geometry.HourHandLength(), HandAngle(sample.HourValue())), paint)
	surface.DrawLine(center, PolarPoint(center, r.geometry.HandLength(), HandAngle(sample.MinuteValue())), paint)

	paint.Color = r.style.SecondHandColor
	surface.DrawLine(center, PolarPoint(center, r.geometry.HandLength(), HandAngle(sample.SecondValue())), paint)
}
