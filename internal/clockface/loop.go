package clockface

import (
	"log"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/reanimator/analog-clock/internal/platform"
)

// MinImmediateRedrawInterval caps how often RequestImmediateRedraw reaches the
// host. Requests in between are dropped; the armed redraw timer covers them.
const MinImmediateRedrawInterval = 100 * time.Millisecond

// Loop is the Scheduler for a live clock. It keeps at most one redraw timer
// armed and forwards every granted request to the host's invalidate function,
// which must cause the renderer to be drawn again (typically on the UI
// goroutine). Loop methods may be called from any goroutine.
type Loop struct {
	clock      platform.Clock
	invalidate func()
	limiter    *rate.Limiter

	mu      sync.Mutex
	timer   platform.Timer
	stopped bool
}

// NewLoop returns a Loop that asks for frames through invalidate
func NewLoop(clock platform.Clock, invalidate func()) *Loop {
	return &Loop{
		clock:      clock,
		invalidate: invalidate,
		limiter:    rate.NewLimiter(rate.Every(MinImmediateRedrawInterval), 1),
	}
}

// ScheduleRedraw arms the redraw timer unless one is already armed
func (l *Loop) ScheduleRedraw(after time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped || l.timer != nil {
		return
	}
	l.timer = l.clock.AfterFunc(after, l.fire)
}

// RequestImmediateRedraw invalidates now if the rate limit allows it
func (l *Loop) RequestImmediateRedraw() {
	l.mu.Lock()
	allowed := !l.stopped && l.limiter.AllowN(l.clock.Now(), 1)
	l.mu.Unlock()

	if allowed {
		l.invalidate()
	}
}

// RequestLayout invalidates now; style changes are never dropped
func (l *Loop) RequestLayout() {
	l.mu.Lock()
	stopped := l.stopped
	l.mu.Unlock()

	if !stopped {
		l.invalidate()
	}
}

// Armed reports whether a redraw timer is pending
func (l *Loop) Armed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.timer != nil
}

// Stop cancels the pending redraw and ignores all later requests.
// It is safe to call more than once.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return
	}
	l.stopped = true
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	log.Printf("clockface: redraw loop stopped")
}

func (l *Loop) fire() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.timer = nil
	l.mu.Unlock()

	l.invalidate()
}
