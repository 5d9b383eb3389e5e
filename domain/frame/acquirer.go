package frame

// Default dimensions assumed when the backend does not report a size.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Source is the video backend read-back hook. ReadScreen always reports the
// current frame dimensions and copies packed RGB rows into dst only when dst
// is non-nil. Implementations must not write past len(dst).
type Source interface {
	ReadScreen(dst []byte) (width, height int)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(dst []byte) (int, int)

func (f SourceFunc) ReadScreen(dst []byte) (int, int) { return f(dst) }

// Acquirer pulls frames from a Source into a Buffer. Acquisition is best
// effort: whatever the backend leaves in the buffer is accepted.
type Acquirer struct {
	src Source
}

func NewAcquirer(src Source) *Acquirer { return &Acquirer{src: src} }

// ProbeDimensions asks the backend for the current frame size without copying
// pixels. Non-positive reports fall back to DefaultWidth x DefaultHeight.
func (a *Acquirer) ProbeDimensions() (int, int) {
	if a == nil || a.src == nil {
		return DefaultWidth, DefaultHeight
	}
	w, h := a.src.ReadScreen(nil)
	if w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}

// Acquire copies the current frame into buf and returns the dimensions the
// backend reported for this read. The buffer must already be sized.
func (a *Acquirer) Acquire(buf *Buffer) (int, int) {
	if a == nil || a.src == nil || buf == nil || buf.Pix() == nil {
		return 0, 0
	}
	return a.src.ReadScreen(buf.Pix())
}
