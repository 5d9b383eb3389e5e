package presenter

// DefaultAutoEvery is the auto capture period in frames when none is configured.
const DefaultAutoEvery = 60

// AutoModel stores the auto capture flag.
type AutoModel interface {
	AutoCapture() bool
	SetAutoCapture(bool)
}

// CaptureRequester narrows the screenshot service to the admission call.
type CaptureRequester interface {
	RequestCapture(frameNumber int) bool
}

// FrameCounter reports the current frame number.
type FrameCounter interface{ Frames() int }

// ShotView reflects the auto capture toggle.
type ShotView interface {
	SetAutoActive(bool)
}

// ShotPresenter turns button presses and frame ticks into capture requests.
type ShotPresenter struct {
	model  AutoModel
	svc    CaptureRequester
	frames FrameCounter
	view   ShotView
	every  int
}

func NewShotPresenter(model AutoModel, svc CaptureRequester, frames FrameCounter, view ShotView, every int) *ShotPresenter {
	if every <= 0 {
		every = DefaultAutoEvery
	}
	return &ShotPresenter{model: model, svc: svc, frames: frames, view: view, every: every}
}

// Capture requests a screenshot of the current frame. It reports whether a
// writer was started; rejections are surfaced through the notifier.
func (p *ShotPresenter) Capture() bool {
	if p == nil || p.svc == nil {
		return false
	}
	n := 0
	if p.frames != nil {
		n = p.frames.Frames()
	}
	return p.svc.RequestCapture(n)
}

// EnableAuto turns periodic capture on. Idempotent.
func (p *ShotPresenter) EnableAuto() {
	if p == nil || p.model == nil || p.model.AutoCapture() {
		return
	}
	p.model.SetAutoCapture(true)
	if p.view != nil {
		p.view.SetAutoActive(true)
	}
}

// DisableAuto turns periodic capture off. Idempotent.
func (p *ShotPresenter) DisableAuto() {
	if p == nil || p.model == nil || !p.model.AutoCapture() {
		return
	}
	p.model.SetAutoCapture(false)
	if p.view != nil {
		p.view.SetAutoActive(false)
	}
}

// ToggleAuto flips the auto capture flag.
func (p *ShotPresenter) ToggleAuto() {
	if p == nil || p.model == nil {
		return
	}
	if p.model.AutoCapture() {
		p.DisableAuto()
		return
	}
	p.EnableAuto()
}

// OnFrame requests a capture on every Nth frame while auto capture is on.
func (p *ShotPresenter) OnFrame(frame int) {
	if p == nil || p.model == nil || p.svc == nil || !p.model.AutoCapture() {
		return
	}
	if frame > 0 && frame%p.every == 0 {
		p.svc.RequestCapture(frame)
	}
}
