package clockface

import (
	"errors"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/reanimator/analog-clock/internal/colors"
	"github.com/reanimator/analog-clock/internal/model"
	"github.com/reanimator/analog-clock/internal/platform"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
)

func newTestRenderer(t *testing.T, at time.Time, sched Scheduler) *Renderer {
	t.Helper()
	r, err := New(Options{HandStyleFactor: 1, SecondHandColorName: "red"}, platform.NewFakeClock(at), sched)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	return r
}

func TestNew_Defaults(t *testing.T) {
	r, err := New(Options{SecondHandColorName: "#00FF00"}, platform.NewFakeClock(time.Time{}), nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	style := r.Style()
	if style.ThicknessFactor != DefaultHandStyleFactor {
		t.Errorf("Expected default factor %d, got %d", DefaultHandStyleFactor, style.ThicknessFactor)
	}
	if style.SecondHandColor != green {
		t.Errorf("Expected green second hand, got %v", style.SecondHandColor)
	}
	if _, ok := r.Geometry(); ok {
		t.Error("Geometry should not be computed before the first frame")
	}
}

func TestNew_InvalidColor(t *testing.T) {
	_, err := New(Options{SecondHandColorName: "not-a-color"}, platform.NewFakeClock(time.Time{}), nil)

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected *ConfigurationError, got %v", err)
	}
	if cfgErr.Value != "not-a-color" {
		t.Errorf("Expected rejected value in error, got %q", cfgErr.Value)
	}
	if !errors.Is(err, colors.ErrInvalidColor) {
		t.Error("ConfigurationError should unwrap to colors.ErrInvalidColor")
	}
}

func TestRender_FrameLayout(t *testing.T) {
	at := time.Date(2024, 1, 1, 15, 0, 15, 0, time.UTC)
	r := newTestRenderer(t, at, nil)
	surface := &recordingSurface{}

	r.Render(surface, Size{Width: 300, Height: 300})

	circles := surface.only("circle")
	wantCircles := []drawOp{
		{Kind: "circle", From: Point{X: 150, Y: 150}, Radius: 140, Paint: Paint{Color: black, Style: PaintStroke, StrokeWidth: 4}},
		{Kind: "circle", From: Point{X: 150, Y: 150}, Radius: 8, Paint: Paint{Color: black, Style: PaintFill}},
	}
	if diff := cmp.Diff(wantCircles, circles); diff != "" {
		t.Errorf("circles mismatch (-want +got):\n%s", diff)
	}

	if n := len(surface.only("text")); n != 12 {
		t.Errorf("Expected 12 numerals, got %d", n)
	}

	// radius 100, truncation 15, hour truncation 30
	handPaint := Paint{Color: black, Style: PaintStroke, StrokeWidth: 4}
	secondPaint := handPaint
	secondPaint.Color = red
	wantLines := []drawOp{
		{Kind: "line", From: Point{X: 150, Y: 150}, To: Point{X: 205, Y: 150}, Paint: handPaint},
		{Kind: "line", From: Point{X: 150, Y: 150}, To: Point{X: 150, Y: 65}, Paint: handPaint},
		{Kind: "line", From: Point{X: 150, Y: 150}, To: Point{X: 235, Y: 150}, Paint: secondPaint},
	}
	if diff := cmp.Diff(wantLines, surface.only("line"), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("hands mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_NumeralPlacement(t *testing.T) {
	r := newTestRenderer(t, time.Time{}, nil)
	surface := &recordingSurface{}
	r.Render(surface, Size{Width: 300, Height: 300})

	approx := cmpopts.EquateApprox(0, 1e-9)
	tests := []struct {
		label  string
		origin Point
	}{
		// top-center: "12" is 14px wide, 10px tall
		{"12", Point{X: 150 - 7, Y: 50 + 5}},
		// right-center
		{"3", Point{X: 250 - 3.5, Y: 150 + 5}},
		{"6", Point{X: 150 - 3.5, Y: 250 + 5}},
		{"9", Point{X: 50 - 3.5, Y: 150 + 5}},
	}

	for _, test := range tests {
		op, err := surface.text(test.label)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(test.origin, op.From, approx); diff != "" {
			t.Errorf("numeral %s origin mismatch (-want +got):\n%s", test.label, diff)
		}
		if op.Paint.TextSize != NumeralTextSize {
			t.Errorf("numeral %s text size = %v, expected %d", test.label, op.Paint.TextSize, NumeralTextSize)
		}
	}
}

func TestRender_ReusesFrozenGeometry(t *testing.T) {
	r := newTestRenderer(t, time.Time{}, nil)

	first := &recordingSurface{}
	r.Render(first, Size{Width: 300, Height: 200})
	frozen, ok := r.Geometry()
	if !ok {
		t.Fatal("Geometry should be frozen after the first frame")
	}

	second := &recordingSurface{}
	r.Render(second, Size{Width: 800, Height: 800})

	if diff := cmp.Diff(first.only("circle"), second.only("circle")); diff != "" {
		t.Errorf("consecutive frames drew different borders (-first +second):\n%s", diff)
	}
	if g, _ := r.Geometry(); g != frozen {
		t.Errorf("geometry changed without invalidation: %+v -> %+v", frozen, g)
	}
}

func TestRender_InvalidateGeometry(t *testing.T) {
	r := newTestRenderer(t, time.Time{}, nil)
	r.Render(&recordingSurface{}, Size{Width: 300, Height: 200})

	r.InvalidateGeometry()
	if _, ok := r.Geometry(); ok {
		t.Fatal("Geometry should be cleared by InvalidateGeometry")
	}

	surface := &recordingSurface{}
	r.Render(surface, Size{Width: 400, Height: 400})

	g, _ := r.Geometry()
	if g.Radius != 150 {
		t.Errorf("Expected recomputed radius 150, got %d", g.Radius)
	}
	if border := surface.only("circle")[0]; border.From != (Point{X: 200, Y: 200}) || border.Radius != 190 {
		t.Errorf("border not redrawn at new size: %+v", border)
	}
}

func TestRender_SchedulesNextFrame(t *testing.T) {
	sched := &countingScheduler{}
	r := newTestRenderer(t, time.Time{}, sched)

	r.Render(&recordingSurface{}, Size{Width: 300, Height: 300})
	r.Render(&recordingSurface{}, Size{Width: 300, Height: 300})

	if diff := cmp.Diff([]time.Duration{RedrawInterval, RedrawInterval}, sched.scheduled); diff != "" {
		t.Errorf("scheduled redraws mismatch (-want +got):\n%s", diff)
	}
	if sched.immediate != 2 {
		t.Errorf("Expected 2 immediate redraw requests, got %d", sched.immediate)
	}
	if sched.layout != 0 {
		t.Errorf("Render should not request layout, got %d", sched.layout)
	}
}

func TestHourHand_SmoothWithinHour(t *testing.T) {
	const hour = 4
	start := HandAngle(model.TimeSample{Hour12: hour}.HourValue())
	prev := start

	for minute := 1; minute <= 59; minute++ {
		angle := HandAngle(model.TimeSample{Hour12: hour, Minute: minute}.HourValue())
		if angle <= prev {
			t.Fatalf("hour hand did not advance at minute %d: %v <= %v", minute, angle, prev)
		}
		prev = angle
	}

	arc := prev - start
	if arc <= 0 || arc >= math.Pi/6 {
		t.Errorf("hour hand swept %v rad over an hour, expected within (0, π/6)", arc)
	}
}

func TestSetHandsThickness(t *testing.T) {
	sched := &countingScheduler{}
	r := newTestRenderer(t, time.Time{}, sched)

	for _, th := range model.Thicknesses() {
		if err := r.SetHandsThicknessName(th.String()); err != nil {
			t.Fatalf("SetHandsThicknessName(%q) returned error: %v", th, err)
		}
		if got := r.HandsThickness(); got != th {
			t.Errorf("HandsThickness() = %s, expected %s", got, th)
		}
	}
	if sched.layout != 3 || sched.immediate != 3 {
		t.Errorf("Expected 3 redraw+layout requests, got immediate=%d layout=%d", sched.immediate, sched.layout)
	}

	if err := r.SetHandsThicknessName("normal"); err != nil {
		t.Fatal(err)
	}
	err := r.SetHandsThicknessName("invalid")
	var argErr *InvalidArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("Expected *InvalidArgumentError, got %v", err)
	}
	if !errors.Is(err, model.ErrUnknownThickness) {
		t.Error("InvalidArgumentError should unwrap to model.ErrUnknownThickness")
	}
	if got := r.HandsThickness(); got != model.ThicknessNormal {
		t.Errorf("failed set changed thickness to %s", got)
	}

	if err := r.SetHandsThickness(model.Thickness(9)); !errors.As(err, &argErr) {
		t.Errorf("Expected *InvalidArgumentError for out-of-range value, got %v", err)
	}
	if r.Style().ThicknessFactor != model.NormalFactor {
		t.Errorf("failed set changed factor to %d", r.Style().ThicknessFactor)
	}
}

func TestHandsThickness_UnknownFactorReportsThick(t *testing.T) {
	r, err := New(Options{HandStyleFactor: 2, SecondHandColorName: "red"}, platform.NewFakeClock(time.Time{}), nil)
	if err != nil {
		t.Fatal(err)
	}

	if got := r.HandsThickness(); got != model.ThicknessThick {
		t.Errorf("HandsThickness() for factor 2 = %s, expected thick", got)
	}
	if got := r.Style().HandStrokeWidth(); got != 8 {
		t.Errorf("HandStrokeWidth() = %v, expected 8", got)
	}
}

func TestSetHandsThickness_StrokeWidth(t *testing.T) {
	r := newTestRenderer(t, time.Time{}, nil)
	if err := r.SetHandsThickness(model.ThicknessThick); err != nil {
		t.Fatal(err)
	}

	surface := &recordingSurface{}
	r.Render(surface, Size{Width: 300, Height: 300})

	for _, line := range surface.only("line") {
		if line.Paint.StrokeWidth != 20 {
			t.Errorf("hand stroke width = %v, expected 20", line.Paint.StrokeWidth)
		}
	}
	// the border keeps its own width
	if border := surface.only("circle")[0]; border.Paint.StrokeWidth != BorderWidth {
		t.Errorf("border stroke width = %v, expected %d", border.Paint.StrokeWidth, BorderWidth)
	}
}

func TestSetSecondHandColor(t *testing.T) {
	sched := &countingScheduler{}
	r := newTestRenderer(t, time.Time{}, sched)

	if err := r.SetSecondHandColor("#00FF00"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := r.SecondHandColor(); got != green {
		t.Errorf("SecondHandColor() = %v, expected %v", got, green)
	}
	if sched.layout != 1 {
		t.Errorf("Expected a layout request, got %d", sched.layout)
	}

	err := r.SetSecondHandColor("not-a-color")
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected *ConfigurationError, got %v", err)
	}
	if got := r.SecondHandColor(); got != green {
		t.Errorf("failed set changed color to %v", got)
	}
	if sched.layout != 1 {
		t.Errorf("failed set should not request layout, got %d", sched.layout)
	}

	surface := &recordingSurface{}
	r.Render(surface, Size{Width: 300, Height: 300})
	lines := surface.only("line")
	if lines[2].Paint.Color != green {
		t.Errorf("second hand drawn in %v, expected %v", lines[2].Paint.Color, green)
	}
}
