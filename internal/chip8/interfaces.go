package chip8

// ScreenSink is a 64x32 monochrome framebuffer with XOR set/get/clear
// semantics. Implementations do not need to handle coordinate wrapping;
// the Interpreter reduces a sprite's origin modulo (Width, Height) and
// skips pixels that fall beyond the edge, so it only passes in-range (x, y).
type ScreenSink interface {
	// SetPixel writes is_set at (x, y) and returns the pixel's previous value.
	SetPixel(x, y byte, isSet bool) bool

	// GetPixel returns the current value at (x, y).
	GetPixel(x, y byte) bool

	// Width and Height must return 64 and 32 for base CHIP-8.
	Width() int
	Height() int

	// Clear unsets every pixel.
	Clear()
}

// InputSource exposes the 16-key hex keypad: non-blocking polling, plus a
// one-shot callback fired on the next key-down edge. Only one outstanding
// AwaitKeypress callback is permitted; a later call replaces an earlier one.
type InputSource interface {
	// AwaitKeypress stashes a one-shot callback invoked with the first key
	// that transitions from up to down after this call.
	AwaitKeypress(callback func(key byte))

	// IsKeyPressed reports the current, non-blocking state of key (0x0-0xF).
	IsKeyPressed(key byte) bool
}

// TimeSource is a monotonic, non-decreasing clock used to derive the 60 Hz
// timer decay without a ticking goroutine.
type TimeSource interface {
	// ElapsedSeconds returns seconds elapsed since the source's own epoch.
	ElapsedSeconds() float64
}
