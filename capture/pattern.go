package capture

import "sync"

// PatternSource is a synthetic frame backend. It renders a gradient with a
// moving vertical bar so consecutive frames differ, and stores rows bottom-up
// like a GL read-back. Safe for concurrent use.
type PatternSource struct {
	mu     sync.Mutex
	width  int
	height int
	frame  uint64
}

func NewPatternSource(width, height int) *PatternSource {
	return &PatternSource{width: width, height: height}
}

// Advance moves the pattern to the next frame and returns its number.
func (p *PatternSource) Advance() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frame++
	return p.frame
}

// Resize changes the reported frame dimensions.
func (p *PatternSource) Resize(width, height int) {
	p.mu.Lock()
	p.width, p.height = width, height
	p.mu.Unlock()
}

func (p *PatternSource) ReadScreen(dst []byte) (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	w, h := p.width, p.height
	if dst == nil || w <= 0 || h <= 0 {
		return w, h
	}
	pitch := w * 3
	bar := int(p.frame % uint64(w))
	for y := 0; y < h; y++ {
		r := h - 1 - y
		if (r+1)*pitch > len(dst) {
			continue
		}
		row := dst[r*pitch : (r+1)*pitch]
		g := byte(y * 255 / max(h-1, 1))
		for x := 0; x < w; x++ {
			i := x * 3
			if x == bar {
				row[i], row[i+1], row[i+2] = 0xFF, 0xFF, 0xFF
				continue
			}
			row[i+0] = byte(x * 255 / max(w-1, 1))
			row[i+1] = g
			row[i+2] = byte(p.frame * 4)
		}
	}
	return w, h
}
