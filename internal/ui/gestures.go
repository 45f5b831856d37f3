package ui

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// GestureHandler turns touch down/up pairs into gestures
type GestureHandler struct {
	onGesture func(GestureType)
	now       func() time.Time

	// Touch tracking
	touching       bool
	touchStartTime time.Time
	touchStartPos  fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		now:               time.Now,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touching = true
	gh.touchStartTime = gh.now()
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if !gh.touching {
		return
	}
	gh.touching = false

	duration := gh.now().Sub(gh.touchStartTime)
	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	distance := float32(math.Hypot(float64(dx), float64(dy)))

	switch {
	case distance >= gh.swipeThreshold:
		gh.detectSwipeDirection(dx, dy)
	case duration >= gh.longPressDuration:
		gh.triggerGesture(GestureLongPress)
	default:
		gh.triggerGesture(GestureTap)
	}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.touching = false
	gh.touchStartTime = time.Time{}
}

// detectSwipeDirection determines the direction of a swipe gesture
func (gh *GestureHandler) detectSwipeDirection(dx, dy float32) {
	if math.Abs(float64(dx)) > math.Abs(float64(dy)) {
		if dx > 0 {
			gh.triggerGesture(GestureSwipeRight)
		} else {
			gh.triggerGesture(GestureSwipeLeft)
		}
		return
	}

	if dy > 0 {
		gh.triggerGesture(GestureSwipeDown)
	} else {
		gh.triggerGesture(GestureSwipeUp)
	}
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}
