package screenshot

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"sync"

	"github.com/soocke/emushot/domain/frame"
)

// Stage identifies where a PNG write failed.
type Stage int

const (
	StageOpen   Stage = iota // output file could not be created
	StageEncode              // the frame could not be encoded
	StageWrite               // the file rejected or truncated a write
	StageClose               // flushing or closing the file failed
)

func (s Stage) String() string {
	switch s {
	case StageOpen:
		return "open"
	case StageEncode:
		return "encode"
	case StageWrite:
		return "write"
	case StageClose:
		return "close"
	default:
		return "unknown"
	}
}

// EncodeError is returned by PNGWriter; Stage tells the failure modes apart.
type EncodeError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("screenshot %s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// FrameWriter persists one packed RGB frame stored bottom-up (row 0 is the
// bottom of the image) and returns the number of bytes written.
type FrameWriter interface {
	WritePNG(path string, pix []byte, width, height int) (int64, error)
}

// PNGWriter encodes frames as 8-bit RGB, non-interlaced PNG files at default
// compression. The top-down scratch image and the encoder buffers are kept
// between calls, so repeated captures of the same size do not allocate them.
type PNGWriter struct {
	mu      sync.Mutex
	scratch *image.RGBA
	enc     png.Encoder
}

func NewPNGWriter() *PNGWriter {
	w := &PNGWriter{}
	w.enc.CompressionLevel = png.DefaultCompression
	w.enc.BufferPool = &singleBufferPool{}
	return w
}

func (w *PNGWriter) WritePNG(path string, pix []byte, width, height int) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if width <= 0 || height <= 0 || len(pix) < width*height*frame.BytesPerPixel {
		return 0, &EncodeError{Stage: StageEncode, Path: path,
			Err: fmt.Errorf("invalid frame %dx%d (%d bytes)", width, height, len(pix))}
	}
	img := w.topDown(pix, width, height)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, &EncodeError{Stage: StageOpen, Path: path, Err: err}
	}
	cw := &checkedWriter{w: f}
	bw := bufio.NewWriter(cw)
	if err := w.enc.Encode(bw, img); err != nil {
		return cw.n, w.abort(f, path, cw, StageEncode, err)
	}
	if err := bw.Flush(); err != nil {
		return cw.n, w.abort(f, path, cw, StageWrite, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return cw.n, &EncodeError{Stage: StageClose, Path: path, Err: err}
	}
	return cw.n, nil
}

// abort closes and removes a partially written file. Errors raised by the
// underlying file are reported as StageWrite whatever layer surfaced them.
func (w *PNGWriter) abort(f *os.File, path string, cw *checkedWriter, stage Stage, err error) error {
	_ = f.Close()
	_ = os.Remove(path)
	if cw.err != nil {
		stage = StageWrite
	}
	return &EncodeError{Stage: stage, Path: path, Err: err}
}

// topDown flips the bottom-up rows into the reusable RGBA scratch image:
// output row i is read from base + (height-1-i)*pitch.
func (w *PNGWriter) topDown(pix []byte, width, height int) *image.RGBA {
	r := image.Rect(0, 0, width, height)
	if w.scratch == nil || w.scratch.Rect != r {
		w.scratch = image.NewRGBA(r)
	}
	pitch := width * frame.BytesPerPixel
	for i := 0; i < height; i++ {
		src := pix[(height-1-i)*pitch : (height-i)*pitch]
		dst := w.scratch.Pix[i*w.scratch.Stride : i*w.scratch.Stride+width*4]
		for d, s := 0, 0; d < len(dst); d, s = d+4, s+3 {
			dst[d+0] = src[s+0]
			dst[d+1] = src[s+1]
			dst[d+2] = src[s+2]
			dst[d+3] = 0xFF
		}
	}
	return w.scratch
}

// checkedWriter counts bytes and turns silent short writes into errors.
type checkedWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *checkedWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	if err == nil && n != len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		c.err = err
	}
	return n, err
}

// singleBufferPool keeps the one png encoder buffer the single worker needs.
type singleBufferPool struct{ b *png.EncoderBuffer }

func (p *singleBufferPool) Get() *png.EncoderBuffer {
	b := p.b
	p.b = nil
	return b
}

func (p *singleBufferPool) Put(b *png.EncoderBuffer) { p.b = b }
