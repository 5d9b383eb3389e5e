package presenter

import (
	"errors"
	"image"
	"strings"
	"testing"
	"time"

	"github.com/soocke/emushot/domain/screenshot"
	"github.com/soocke/emushot/ui/model"
)

type mockService struct {
	frames []int
	accept bool
	stats  screenshot.CaptureStats
	state  screenshot.CaptureState
}

func (s *mockService) RequestCapture(frame int) bool {
	s.frames = append(s.frames, frame)
	return s.accept
}
func (s *mockService) Stats() screenshot.CaptureStats { return s.stats }
func (s *mockService) State() screenshot.CaptureState { return s.state }

type fixedFrames int

func (f fixedFrames) Frames() int { return int(f) }

type mockView struct {
	autoCalls  int
	autoActive bool
	status     []string
	states     []string
	stats      []string
	previews   int
	session    string
	frames     int
}

func (v *mockView) SetAutoActive(b bool) { v.autoCalls++; v.autoActive = b }
func (v *mockView) SetStatus(_ screenshot.Level, text string) {
	v.status = append(v.status, text)
}
func (v *mockView) SetStateLabel(s string)        { v.states = append(v.states, s) }
func (v *mockView) SetStats(s string)             { v.stats = append(v.stats, s) }
func (v *mockView) UpdatePreview(img image.Image) { v.previews++ }
func (v *mockView) SetSession(content string, frames int, _ time.Duration) {
	v.session, v.frames = content, frames
}

func TestShotPresenter_CaptureUsesCurrentFrame(t *testing.T) {
	svc := &mockService{accept: true}
	p := NewShotPresenter(model.NewShotModel(), svc, fixedFrames(42), &mockView{}, 0)
	if !p.Capture() {
		t.Fatalf("capture should report admission")
	}
	if len(svc.frames) != 1 || svc.frames[0] != 42 {
		t.Fatalf("expected request for frame 42, got %v", svc.frames)
	}
}

func TestShotPresenter_AutoToggle_Idempotent(t *testing.T) {
	m := model.NewShotModel()
	view := &mockView{}
	p := NewShotPresenter(m, &mockService{}, fixedFrames(0), view, 10)

	p.EnableAuto()
	p.EnableAuto()
	if !m.AutoCapture() || view.autoCalls != 1 || !view.autoActive {
		t.Fatalf("enable failed: auto=%v calls=%d", m.AutoCapture(), view.autoCalls)
	}
	p.ToggleAuto()
	if m.AutoCapture() || view.autoCalls != 2 || view.autoActive {
		t.Fatalf("toggle should disable: auto=%v calls=%d", m.AutoCapture(), view.autoCalls)
	}
	p.DisableAuto()
	if view.autoCalls != 2 {
		t.Fatalf("disable not idempotent")
	}
}

func TestShotPresenter_OnFrameEveryN(t *testing.T) {
	svc := &mockService{accept: true}
	m := model.NewShotModel()
	p := NewShotPresenter(m, svc, nil, nil, 10)
	for f := 1; f <= 30; f++ {
		p.OnFrame(f)
	}
	if len(svc.frames) != 0 {
		t.Fatalf("auto off must not capture")
	}
	m.SetAutoCapture(true)
	for f := 1; f <= 30; f++ {
		p.OnFrame(f)
	}
	if len(svc.frames) != 3 || svc.frames[0] != 10 || svc.frames[2] != 30 {
		t.Fatalf("expected frames 10,20,30 got %v", svc.frames)
	}
}

type stubOSD struct{ msg model.OSDMessage }

func (s *stubOSD) Latest() model.OSDMessage { return s.msg }

func TestStatusPresenter_ShowsAndExpires(t *testing.T) {
	osd := &stubOSD{}
	svc := &mockService{state: screenshot.StateIdle}
	view := &mockView{}
	p := NewStatusPresenter(osd, svc, view)
	base := time.Unix(0, 0)

	p.Tick(base)
	if len(view.status) != 0 || len(view.states) != 1 || view.states[0] != "State: idle" {
		t.Fatalf("initial tick: status=%v states=%v", view.status, view.states)
	}

	osd.msg = model.OSDMessage{Seq: 1, Text: "Captured screenshot for frame 5."}
	svc.state = screenshot.StateInFlight
	p.Tick(base.Add(time.Second))
	p.Tick(base.Add(2 * time.Second))
	if len(view.status) != 1 || view.status[0] != "Captured screenshot for frame 5." {
		t.Fatalf("message should be pushed once, got %v", view.status)
	}
	if view.states[len(view.states)-1] != "State: in-flight" || len(view.states) != 2 {
		t.Fatalf("state label not refreshed: %v", view.states)
	}

	p.Tick(base.Add(5 * time.Second))
	if len(view.status) != 2 || view.status[1] != "" {
		t.Fatalf("expired message should be cleared, got %v", view.status)
	}
}

func TestPreviewPresenter_LoadsOnlyCompletedNewFiles(t *testing.T) {
	svc := &mockService{}
	view := &mockView{}
	var loads []string
	load := func(path string) (image.Image, error) {
		loads = append(loads, path)
		if strings.HasSuffix(path, "bad.png") {
			return nil, errors.New("corrupt")
		}
		return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
	}
	p := NewPreviewPresenter(svc, view, load, nil)

	p.Tick()
	if len(loads) != 0 || len(view.stats) != 1 {
		t.Fatalf("nothing saved yet: loads=%v stats=%v", loads, view.stats)
	}

	svc.stats = screenshot.CaptureStats{Captures: 1, LastPath: "/s/a.png", State: screenshot.StateInFlight}
	p.Tick()
	if len(loads) != 0 {
		t.Fatalf("must not load while a write is in flight")
	}
	svc.stats.State = screenshot.StateCompleted
	p.Tick()
	p.Tick()
	if len(loads) != 1 || view.previews != 1 {
		t.Fatalf("expected one load, got loads=%v previews=%d", loads, view.previews)
	}

	svc.stats.LastPath = "/s/bad.png"
	p.Tick()
	if view.previews != 1 || len(loads) != 2 {
		t.Fatalf("failed load must not update preview")
	}
}

func TestFormatStats(t *testing.T) {
	got := FormatStats(screenshot.CaptureStats{Captures: 2, Rejected: 1, Failed: 1, Aborted: 1, BytesWritten: 2048})
	if got != "Saved: 2  Ignored: 1  Failed: 2  Written: 2.0 kB" {
		t.Fatalf("unexpected stats line %q", got)
	}
}

func TestLoop_TickDrivesPresenters(t *testing.T) {
	sess := model.NewSessionModel()
	base := time.Unix(0, 0)
	sess.Open("Super Game!", base)
	svc := &mockService{accept: true}
	shots := model.NewShotModel()
	shots.SetAutoCapture(true)
	view := &mockView{}

	advanced, scheduled := 0, 0
	l := NewLoop(func() { advanced++ },
		NewSessionPresenter(sess, view),
		NewShotPresenter(shots, svc, sess, view, 2),
		NewStatusPresenter(shots, svc, view),
		NewPreviewPresenter(svc, view, nil, nil),
		func() { scheduled++ })
	l.now = func() time.Time { return base }
	for i := 0; i < 4; i++ {
		l.Tick()
	}
	if advanced != 4 || scheduled != 4 {
		t.Fatalf("advance=%d schedule=%d", advanced, scheduled)
	}
	if view.session != "Super Game!" || view.frames != 4 {
		t.Fatalf("session view not updated: %q %d", view.session, view.frames)
	}
	if len(svc.frames) != 2 || svc.frames[0] != 2 || svc.frames[1] != 4 {
		t.Fatalf("auto capture frames %v", svc.frames)
	}
	var zero *Loop
	zero.Tick()
	(&Loop{}).Tick()
}
