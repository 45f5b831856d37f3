package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/reanimator/analog-clock/internal/clockface"
	"github.com/reanimator/analog-clock/internal/model"
	"github.com/reanimator/analog-clock/internal/platform"
)

// ClockWidget is a live analog clock. It redraws itself at least every
// clockface.RedrawInterval until Stop is called or its renderer is destroyed.
type ClockWidget struct {
	widget.BaseWidget

	face     *clockface.Renderer
	loop     *clockface.Loop
	gestures *GestureHandler

	// OnSwipeThickness is called with the neighbouring thickness when the
	// user swipes horizontally across the face. When nil the widget applies
	// the new thickness itself.
	OnSwipeThickness func(model.Thickness)
}

var _ mobile.Touchable = (*ClockWidget)(nil)

// NewClockWidget creates a clock from declared options. An invalid second-hand
// color in opts is returned as a *clockface.ConfigurationError.
func NewClockWidget(opts clockface.Options, clock platform.Clock) (*ClockWidget, error) {
	w := &ClockWidget{}
	w.ExtendBaseWidget(w)

	w.loop = clockface.NewLoop(clock, w.invalidate)
	face, err := clockface.New(opts, clock, w.loop)
	if err != nil {
		return nil, err
	}
	w.face = face
	w.gestures = NewGestureHandler(w.onGesture)

	return w, nil
}

// CreateRenderer implements fyne.Widget
func (w *ClockWidget) CreateRenderer() fyne.WidgetRenderer {
	return &clockRenderer{clock: w}
}

// SecondHandColor returns the color of the second hand
func (w *ClockWidget) SecondHandColor() color.NRGBA {
	return w.face.SecondHandColor()
}

// SetSecondHandColor changes the second-hand color. Unparseable values return
// a *clockface.ConfigurationError and leave the clock unchanged.
func (w *ClockWidget) SetSecondHandColor(value string) error {
	return w.face.SetSecondHandColor(value)
}

// HandsThickness returns the current hand thickness
func (w *ClockWidget) HandsThickness() model.Thickness {
	return w.face.HandsThickness()
}

// SetHandsThickness changes the hand thickness
func (w *ClockWidget) SetHandsThickness(t model.Thickness) error {
	return w.face.SetHandsThickness(t)
}

// Stop ends the redraw loop. The clock keeps showing its last frame.
func (w *ClockWidget) Stop() {
	w.loop.Stop()
}

// TouchDown implements mobile.Touchable
func (w *ClockWidget) TouchDown(event *mobile.TouchEvent) {
	w.gestures.TouchDown(event)
}

// TouchUp implements mobile.Touchable
func (w *ClockWidget) TouchUp(event *mobile.TouchEvent) {
	w.gestures.TouchUp(event)
}

// TouchCancel implements mobile.Touchable
func (w *ClockWidget) TouchCancel(event *mobile.TouchEvent) {
	w.gestures.TouchCancel(event)
}

func (w *ClockWidget) onGesture(gesture GestureType) {
	var next model.Thickness
	switch gesture {
	case GestureSwipeRight:
		next = w.HandsThickness().Next()
	case GestureSwipeLeft:
		next = w.HandsThickness().Prev()
	default:
		return
	}

	if w.OnSwipeThickness != nil {
		w.OnSwipeThickness(next)
		return
	}
	_ = w.SetHandsThickness(next)
}

// invalidate may be called from the loop's timer goroutine
func (w *ClockWidget) invalidate() {
	fyne.Do(w.Refresh)
}

// clockRenderer draws the face with canvas primitives. Objects are reused
// across frames in draw-call order, so a steady frame allocates nothing.
type clockRenderer struct {
	clock   *ClockWidget
	size    fyne.Size
	objects []fyne.CanvasObject
	cursor  int
	drawing bool
}

var _ clockface.Surface = (*clockRenderer)(nil)

func (r *clockRenderer) Layout(size fyne.Size) {
	if size != r.size {
		r.size = size
		r.clock.face.InvalidateGeometry()
	}
	r.draw()
}

func (r *clockRenderer) MinSize() fyne.Size {
	return fyne.NewSize(ClockMinSize, ClockMinSize)
}

func (r *clockRenderer) Refresh() {
	r.draw()
}

func (r *clockRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *clockRenderer) Destroy() {
	r.clock.Stop()
}

func (r *clockRenderer) draw() {
	// the face requests an immediate redraw at the end of each frame, which
	// some drivers deliver synchronously
	if r.drawing || r.size.Width <= 0 || r.size.Height <= 0 {
		return
	}
	r.drawing = true
	defer func() { r.drawing = false }()

	r.cursor = 0
	r.clock.face.Render(r, clockface.Size{Width: int(r.size.Width), Height: int(r.size.Height)})
	r.objects = r.objects[:r.cursor]

	for _, o := range r.objects {
		canvas.Refresh(o)
	}
}

// claim returns the object at the cursor if it has type T, otherwise it
// replaces the rest of the pool with a fresh object from create.
func claim[T fyne.CanvasObject](r *clockRenderer, create func() T) T {
	if r.cursor < len(r.objects) {
		if obj, ok := r.objects[r.cursor].(T); ok {
			r.cursor++
			return obj
		}
		r.objects = r.objects[:r.cursor]
	}

	obj := create()
	r.objects = append(r.objects, obj)
	r.cursor++
	return obj
}

func (r *clockRenderer) DrawCircle(center clockface.Point, radius float64, paint clockface.Paint) {
	c := claim(r, func() *canvas.Circle { return &canvas.Circle{} })

	c.Position1 = fyne.NewPos(float32(center.X-radius), float32(center.Y-radius))
	c.Position2 = fyne.NewPos(float32(center.X+radius), float32(center.Y+radius))
	if paint.Style == clockface.PaintStroke {
		c.FillColor = color.Transparent
		c.StrokeColor = paint.Color
		c.StrokeWidth = float32(paint.StrokeWidth)
	} else {
		c.FillColor = paint.Color
		c.StrokeColor = color.Transparent
		c.StrokeWidth = 0
	}
}

func (r *clockRenderer) DrawLine(from, to clockface.Point, paint clockface.Paint) {
	l := claim(r, func() *canvas.Line { return &canvas.Line{} })

	l.Position1 = fyne.NewPos(float32(from.X), float32(from.Y))
	l.Position2 = fyne.NewPos(float32(to.X), float32(to.Y))
	l.StrokeColor = paint.Color
	l.StrokeWidth = float32(paint.StrokeWidth)
}

// DrawText places the text box so its bottom edge sits on origin.Y, matching
// the height reported by MeasureText.
func (r *clockRenderer) DrawText(text string, origin clockface.Point, paint clockface.Paint) {
	t := claim(r, func() *canvas.Text { return &canvas.Text{} })

	t.Text = text
	t.Color = paint.Color
	t.TextSize = float32(paint.TextSize)

	size := fyne.MeasureText(text, t.TextSize, t.TextStyle)
	t.Move(fyne.NewPos(float32(origin.X), float32(origin.Y)-size.Height))
	t.Resize(size)
}

func (r *clockRenderer) MeasureText(text string, paint clockface.Paint) (float64, float64) {
	size := fyne.MeasureText(text, float32(paint.TextSize), fyne.TextStyle{})
	return float64(size.Width), float64(size.Height)
}
