package chip8

import "time"

// WallClock is a TimeSource backed by the real monotonic clock, grounded on
// the teacher's time.Now()/time.Ticker-driven refresh loop in
// internal/chip8/chip8.go's Run. ElapsedSeconds is relative to the instant
// the WallClock was constructed.
type WallClock struct {
	start time.Time
}

// NewWallClock starts a new wall clock ticking from now.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// ElapsedSeconds implements TimeSource.
func (w *WallClock) ElapsedSeconds() float64 {
	return time.Since(w.start).Seconds()
}

// VirtualClock is a host-controlled TimeSource, grounded on spec.md §5's
// "virtual time source advances by 1/frequency per executed instruction"
// design note: it decouples emulation speed from real time and makes the
// Interpreter's timer derivation deterministic under test.
type VirtualClock struct {
	elapsed float64
}

// NewVirtualClock starts a virtual clock at t=0.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

// Advance moves the clock forward by seconds (must be >= 0).
func (v *VirtualClock) Advance(seconds float64) {
	v.elapsed += seconds
}

// Set pins the clock to an absolute elapsed-seconds value.
func (v *VirtualClock) Set(seconds float64) {
	v.elapsed = seconds
}

// ElapsedSeconds implements TimeSource.
func (v *VirtualClock) ElapsedSeconds() float64 {
	return v.elapsed
}
