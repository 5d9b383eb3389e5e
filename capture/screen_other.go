//go:build !windows

package capture

import (
	"log/slog"

	"github.com/vova616/screenshot"
)

// ScreenSource reads the desktop as the frame backend.
type ScreenSource struct {
	logger *slog.Logger
}

func NewScreenSource(logger *slog.Logger) *ScreenSource { return &ScreenSource{logger: logger} }

// ReadScreen reports the screen size and, when dst is non-nil, grabs the
// screen into it bottom-up. Failures leave dst untouched and report 0x0.
func (s *ScreenSource) ReadScreen(dst []byte) (int, int) {
	if dst == nil {
		r, err := screenshot.ScreenRect()
		if err != nil {
			s.logErr("screen rect", err)
			return 0, 0
		}
		return r.Dx(), r.Dy()
	}
	img, err := screenshot.CaptureScreen()
	if err != nil {
		s.logErr("capture screen", err)
		return 0, 0
	}
	return PackBottomUpRGB(dst, img)
}

func (s *ScreenSource) logErr(msg string, err error) {
	if s.logger != nil {
		s.logger.Error(msg, "error", err)
	}
}
