package chip8

// MemScreen is the default ScreenSink: a flat in-memory framebuffer. It
// carries no windowing or OpenGL dependency of its own — texture upload is
// the host's job, exercised only through the read-only Bytes view below,
// mirroring the teacher's gfx [64*32]byte field in internal/chip8/chip8.go.
type MemScreen struct {
	width, height int
	pixels        []bool
}

// NewMemScreen builds a cleared width x height framebuffer. Base CHIP-8
// callers should pass (64, 32).
func NewMemScreen(width, height int) *MemScreen {
	return &MemScreen{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
	}
}

func (s *MemScreen) index(x, y byte) int {
	return int(y)*s.width + int(x)
}

// SetPixel implements ScreenSink.
func (s *MemScreen) SetPixel(x, y byte, isSet bool) bool {
	i := s.index(x, y)
	prev := s.pixels[i]
	s.pixels[i] = isSet
	return prev
}

// GetPixel implements ScreenSink.
func (s *MemScreen) GetPixel(x, y byte) bool {
	return s.pixels[s.index(x, y)]
}

// Width implements ScreenSink.
func (s *MemScreen) Width() int { return s.width }

// Height implements ScreenSink.
func (s *MemScreen) Height() int { return s.height }

// Clear implements ScreenSink.
func (s *MemScreen) Clear() {
	for i := range s.pixels {
		s.pixels[i] = false
	}
}

// Bytes returns one byte per pixel (0x00 unset, 0x01 set), row-major, for a
// host to upload as a texture. The slice is a copy; mutating it does not
// affect the screen.
func (s *MemScreen) Bytes() []byte {
	out := make([]byte, len(s.pixels))
	for i, set := range s.pixels {
		if set {
			out[i] = 1
		}
	}
	return out
}
