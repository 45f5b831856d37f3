package clockface

import (
	"fmt"
	"time"
)

// drawOp is one recorded Surface call
type drawOp struct {
	Kind   string
	From   Point
	To     Point
	Radius float64
	Text   string
	Paint  Paint
}

// recordingSurface records draw calls. Text measures 7px per rune by 10px.
type recordingSurface struct {
	ops []drawOp
}

func (s *recordingSurface) DrawCircle(center Point, radius float64, paint Paint) {
	s.ops = append(s.ops, drawOp{Kind: "circle", From: center, Radius: radius, Paint: paint})
}

func (s *recordingSurface) DrawLine(from, to Point, paint Paint) {
	s.ops = append(s.ops, drawOp{Kind: "line", From: from, To: to, Paint: paint})
}

func (s *recordingSurface) DrawText(text string, origin Point, paint Paint) {
	s.ops = append(s.ops, drawOp{Kind: "text", From: origin, Text: text, Paint: paint})
}

func (s *recordingSurface) MeasureText(text string, paint Paint) (float64, float64) {
	return float64(7 * len([]rune(text))), 10
}

func (s *recordingSurface) only(kind string) []drawOp {
	var out []drawOp
	for _, op := range s.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (s *recordingSurface) text(label string) (drawOp, error) {
	for _, op := range s.only("text") {
		if op.Text == label {
			return op, nil
		}
	}
	return drawOp{}, fmt.Errorf("no text %q drawn", label)
}

// countingScheduler records scheduler calls without driving any frames
type countingScheduler struct {
	scheduled []time.Duration
	immediate int
	layout    int
}

func (s *countingScheduler) ScheduleRedraw(after time.Duration) {
	s.scheduled = append(s.scheduled, after)
}

func (s *countingScheduler) RequestImmediateRedraw() {
	s.immediate++
}

func (s *countingScheduler) RequestLayout() {
	s.layout++
}
