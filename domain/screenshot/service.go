package screenshot

import (
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/soocke/emushot/domain/frame"
	"github.com/soocke/emushot/domain/shotpath"
)

// Service turns live frames into PNG files, one capture at a time. Use
// NewService to construct an instance; construct one per emulator lifetime.
type Service interface {
	// OnContentOpened records the content name and restarts file numbering.
	OnContentOpened(name string)
	// RequestCapture grabs the current frame synchronously and hands it to a
	// background writer. It reports whether a writer was started.
	RequestCapture(frameNumber int) bool
	State() CaptureState
	Stats() CaptureStats
	// Wait blocks until the in-flight capture, if any, has finished.
	Wait()
}

// PathAllocator yields unique output paths for the loaded content.
type PathAllocator interface {
	SetContent(name string)
	Reset()
	NextPath() (string, error)
}

// Options wires the service collaborators. Source and Paths are required.
type Options struct {
	Source   frame.Source
	Paths    PathAllocator
	Notifier Notifier
	Writer   FrameWriter
	Logger   *slog.Logger
}

// captureRequest is owned by the worker for the duration of one write. pix
// aliases the service buffer; admission control keeps the main thread off it.
type captureRequest struct {
	id     string
	frame  int
	path   string
	pix    []byte
	width  int
	height int
}

type lastCapture struct {
	frame int
	path  string
	at    time.Time
}

type service struct {
	mu       sync.Mutex // serialises the synchronous half of RequestCapture
	acquirer *frame.Acquirer
	buf      frame.Buffer
	paths    PathAllocator
	notifier Notifier
	writer   FrameWriter
	logger   *slog.Logger

	state atomic.Int32
	wg    sync.WaitGroup
	last  atomic.Pointer[lastCapture]

	requests    atomic.Uint64
	captures    atomic.Uint64
	rejected    atomic.Uint64
	aborted     atomic.Uint64
	failed      atomic.Uint64
	reallocs    atomic.Uint64
	bytes       atomic.Uint64
	encodes     atomic.Uint64
	encodeNanos atomic.Uint64
}

func newService(opts Options) *service {
	s := &service{
		acquirer: frame.NewAcquirer(opts.Source),
		paths:    opts.Paths,
		notifier: opts.Notifier,
		writer:   opts.Writer,
		logger:   opts.Logger,
	}
	if s.writer == nil {
		s.writer = NewPNGWriter()
	}
	if s.notifier == nil {
		s.notifier = LogNotifier{Logger: opts.Logger}
	}
	return s
}

// NewService constructs an idle capture service.
func NewService(opts Options) Service { return newService(opts) }

func (s *service) OnContentOpened(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paths == nil {
		return
	}
	s.paths.SetContent(name)
	s.paths.Reset()
	if s.logger != nil {
		s.logger.Debug("screenshot.session", "content", name)
	}
}

func (s *service) State() CaptureState { return CaptureState(s.state.Load()) }

func (s *service) Wait() { s.wg.Wait() }

func (s *service) RequestCapture(frameNumber int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests.Add(1)

	if !s.State().Accepting() {
		s.rejected.Add(1)
		s.notify(LevelInfo, "Screenshot %d ignored -- not ready yet.", frameNumber)
		return false
	}
	if s.paths == nil {
		s.aborted.Add(1)
		return false
	}

	path, err := s.paths.NextPath()
	if err != nil {
		s.aborted.Add(1)
		switch {
		case errors.Is(err, shotpath.ErrCounterExhausted):
			s.notify(LevelError, "Screenshot %d not saved -- screenshot counter exhausted.", frameNumber)
		case errors.Is(err, shotpath.ErrDirectory):
			s.notify(LevelWarning, "Screenshot %d not saved -- screenshot directory unavailable.", frameNumber)
		}
		return false
	}

	w, h := s.acquirer.ProbeDimensions()
	realloc, err := s.buf.Ensure(w, h)
	if err != nil {
		s.aborted.Add(1)
		if s.logger != nil {
			s.logger.Error("screenshot buffer", "error", err, "frame", frameNumber)
		}
		return false
	}
	if realloc {
		s.reallocs.Add(1)
		if s.logger != nil {
			s.logger.Debug("screenshot.buffer", "width", w, "height", h,
				"size", humanize.Bytes(uint64(len(s.buf.Pix()))))
		}
	}

	if rw, rh := s.acquirer.Acquire(&s.buf); (rw != w || rh != h) && s.logger != nil {
		s.logger.Warn("frame size changed during read-back",
			"probed_w", w, "probed_h", h, "read_w", rw, "read_h", rh)
	}

	req := captureRequest{
		id:     uuid.NewString(),
		frame:  frameNumber,
		path:   path,
		pix:    s.buf.Pix(),
		width:  w,
		height: h,
	}
	s.state.Store(int32(StateInFlight))
	s.wg.Add(1)
	s.notify(LevelInfo, "Screenshot worker for frame %d dispatched.", frameNumber)
	go s.work(req)
	return true
}

func (s *service) work(req captureRequest) {
	defer s.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			s.failed.Add(1)
			if s.logger != nil {
				s.logger.Error("screenshot worker panic", "error", r,
					"capture_id", req.id, "stack", string(debug.Stack()))
			}
		}
		s.state.Store(int32(StateCompleted))
	}()

	start := time.Now()
	n, err := s.writer.WritePNG(req.path, req.pix, req.width, req.height)
	elapsed := time.Since(start)
	s.encodes.Add(1)
	s.encodeNanos.Add(uint64(elapsed.Nanoseconds()))

	if err != nil {
		s.failed.Add(1)
		if s.logger != nil {
			stage := "unknown"
			var ee *EncodeError
			if errors.As(err, &ee) {
				stage = ee.Stage.String()
			}
			s.logger.Error("screenshot write", "error", err, "stage", stage,
				"capture_id", req.id, "frame", req.frame, "path", req.path)
		}
	} else {
		s.captures.Add(1)
		s.bytes.Add(uint64(n))
		s.last.Store(&lastCapture{frame: req.frame, path: req.path, at: time.Now()})
		if s.logger != nil {
			s.logger.Info("screenshot.saved", "capture_id", req.id, "frame", req.frame,
				"path", req.path, "size", humanize.Bytes(uint64(n)), "elapsed", elapsed)
		}
	}
	s.notify(LevelInfo, "Captured screenshot for frame %d.", req.frame)
}

func (s *service) notify(level Level, format string, args ...any) {
	if s.notifier != nil {
		s.notifier.Notify(level, BottomLeft, format, args...)
	}
}

func (s *service) Stats() CaptureStats {
	var avg time.Duration
	if n := s.encodes.Load(); n > 0 {
		avg = time.Duration(s.encodeNanos.Load() / n)
	}
	st := CaptureStats{
		Requests:     s.requests.Load(),
		Captures:     s.captures.Load(),
		Rejected:     s.rejected.Load(),
		Aborted:      s.aborted.Load(),
		Failed:       s.failed.Load(),
		Reallocs:     s.reallocs.Load(),
		BytesWritten: s.bytes.Load(),
		AvgEncode:    avg,
		State:        s.State(),
	}
	if l := s.last.Load(); l != nil {
		st.LastFrame = l.frame
		st.LastPath = l.path
		st.LastCapture = l.at
	}
	return st
}
