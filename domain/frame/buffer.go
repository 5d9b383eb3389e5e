package frame

import (
	"errors"
	"fmt"
)

// BytesPerPixel is the packed RGB pixel size used by every frame buffer.
const BytesPerPixel = 3

// MaxFrameBytes bounds a single frame allocation. Larger reports from a
// backend are treated as garbage rather than honoured.
const MaxFrameBytes = 256 << 20

var (
	ErrInvalidDimensions = errors.New("frame: invalid dimensions")
	ErrFrameTooLarge     = errors.New("frame: frame too large")
)

// Buffer is a reusable packed RGB pixel buffer. Rows are stored exactly as the
// backend wrote them (bottom-up for GL style readback); Row(i) addresses them
// in storage order.
//
// The backing slice survives across captures and is only replaced when the
// requested dimensions differ from the cached ones. A Buffer is not safe for
// concurrent use: callers hand it over to exactly one reader at a time.
type Buffer struct {
	pix      []byte
	width    int
	height   int
	reallocs uint64
}

// Ensure sizes the buffer for a width x height frame. It reports whether a new
// backing slice had to be allocated. On error the buffer is left untouched.
func (b *Buffer) Ensure(width, height int) (bool, error) {
	if width <= 0 || height <= 0 {
		return false, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width == b.width && height == b.height && b.pix != nil {
		return false, nil
	}
	if width > MaxFrameBytes/BytesPerPixel/height {
		return false, fmt.Errorf("%w: %dx%d", ErrFrameTooLarge, width, height)
	}
	needed := width * height * BytesPerPixel
	// drop the stale slice before allocating the replacement
	b.pix = nil
	b.pix = make([]byte, needed)
	b.width, b.height = width, height
	b.reallocs++
	return true, nil
}

// Pix returns the raw pixel slice (len == Width*Height*3).
func (b *Buffer) Pix() []byte { return b.pix }

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Pitch is the byte length of a single row.
func (b *Buffer) Pitch() int { return b.width * BytesPerPixel }

// Row returns storage row i. It panics when i is out of range.
func (b *Buffer) Row(i int) []byte {
	p := b.Pitch()
	return b.pix[i*p : (i+1)*p]
}

// Reallocs counts how many times a backing slice was allocated.
func (b *Buffer) Reallocs() uint64 { return b.reallocs }

// Release drops the backing slice; the next Ensure allocates afresh.
func (b *Buffer) Release() {
	b.pix = nil
	b.width, b.height = 0, 0
}
