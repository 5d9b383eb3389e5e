// Package window runs the Tk front end: one emulated frame per Tk timer
// tick, with buttons for manual and periodic capture.
package window

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/soocke/emushot/app"
	"github.com/soocke/emushot/ui/images"
	"github.com/soocke/emushot/ui/presenter"
	"github.com/soocke/emushot/ui/theme"
	"github.com/soocke/emushot/ui/view"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	width  = 720
	height = 520
)

type window struct {
	c       *app.Container
	ctx     context.Context
	tick    time.Duration
	afterID string
	closed  bool
	root    *view.RootView
	shots   *presenter.ShotPresenter
	loop    *presenter.Loop
}

// Run builds the window and blocks in the Tk event loop until the window is
// closed or ctx is done. The in-flight capture is awaited before returning.
func Run(ctx context.Context, title string, c *app.Container) {
	w := &window{c: c, ctx: ctx, tick: time.Duration(c.Config.FrameIntervalMs) * time.Millisecond}
	if w.tick <= 0 {
		w.tick = 16 * time.Millisecond
	}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", w.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	theme.InitStyles()

	w.root = view.NewRootView()
	w.shots = presenter.NewShotPresenter(c.Shots, c.Service, c.Session, w.root, c.Config.AutoCaptureEvery)
	w.root.Build(func() { w.shots.Capture() }, w.shots.ToggleAuto, w.exitHandler)
	if c.Config.AutoCaptureEvery > 0 {
		w.shots.EnableAuto()
	}
	w.loop = presenter.NewLoop(c.Advance,
		presenter.NewSessionPresenter(c.Session, w.root),
		w.shots,
		presenter.NewStatusPresenter(c.Shots, c.Service, w.root),
		presenter.NewPreviewPresenter(c.Service, w.root, thumbnail, c.Logger),
		w.schedule,
	)
	w.schedule()
	App.Wait()
	c.Service.Wait()
}

func thumbnail(path string) (image.Image, error) {
	return images.LoadThumbnail(path, view.MaxPreviewW, view.MaxPreviewH)
}

func (w *window) update() {
	if w.closed {
		return
	}
	if w.ctx.Err() != nil {
		w.exitHandler()
		return
	}
	w.loop.Tick()
}

// schedule uses TclAfter to stay on Tk's event loop thread.
func (w *window) schedule() {
	if w.closed {
		return
	}
	w.afterID = TclAfter(w.tick, w.update)
}

func (w *window) exitHandler() {
	if w.closed {
		return
	}
	w.closed = true
	if w.afterID != "" {
		TclAfterCancel(w.afterID)
	}
	Destroy(App)
}
