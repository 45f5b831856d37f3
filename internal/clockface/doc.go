// Package clockface draws an analog clock face onto a host-provided Surface.
//
// A Renderer owns the clock's style (second-hand color and hand thickness) and
// the geometry derived from the drawing bounds. Geometry is computed on the
// first frame and then reused until the host calls InvalidateGeometry, which it
// should do whenever the drawing area is resized.
//
// Each Render call draws one complete frame and then asks its Scheduler for the
// next one, so a running clock redraws at least every RedrawInterval without
// outside prompting. Loop is the Scheduler used by real hosts.
//
// All Renderer methods are expected to be called from the goroutine that
// drives drawing.
package clockface
