package view

import (
	"image"
	"time"

	"github.com/soocke/emushot/domain/screenshot"
	"github.com/soocke/emushot/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level window layout and wires UI callbacks.
// It implements the view contracts the presenters depend on.
type RootView struct {
	Session SessionStats
	Preview ShotPreview

	StateLabel  *LabelWidget
	StatusLabel *LabelWidget
	StatsLabel  *LabelWidget
	AutoButton  *ButtonWidget
}

func NewRootView() *RootView { return &RootView{} }

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(onCapture, onToggleAuto, onExit func()) {
	if rv == nil {
		return
	}
	// Row 0: session labels, state label, buttons frame
	rv.Session = NewSessionStats(0, 0)
	rv.StateLabel = Label(Txt("State: idle"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StateLabel, Row(0), Column(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	captureBtn := Button(Txt("Capture"), Command(onCapture))
	Grid(captureBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.AutoButton = Button(Txt("Auto: off"), Command(onToggleAuto))
	Grid(rv.AutoButton, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(onExit))
	Grid(exitBtn, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: counters. Row 2: preview. Row 3: OSD line, bottom left.
	rv.StatsLabel = Label(Txt(""), Anchor("w"))
	Grid(rv.StatsLabel, Row(1), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"))
	rv.Preview = NewShotPreview(2, 5)
	rv.StatusLabel = Label(Txt(""), Anchor("w"), Foreground(theme.StatusColor(screenshot.LevelInfo)))
	Grid(rv.StatusLabel, Row(3), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
}

// SetStateLabel updates the capture state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetStatus shows an OSD message styled by severity.
func (rv *RootView) SetStatus(level screenshot.Level, text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text), Foreground(theme.StatusColor(level)))
	}
}

func (rv *RootView) SetStats(text string) {
	if rv != nil && rv.StatsLabel != nil {
		rv.StatsLabel.Configure(Txt(text))
	}
}

func (rv *RootView) SetSession(content string, frames int, elapsed time.Duration) {
	if rv != nil && rv.Session != nil {
		rv.Session.Set(content, frames, elapsed)
	}
}

func (rv *RootView) SetAutoActive(on bool) {
	if rv == nil || rv.AutoButton == nil {
		return
	}
	if on {
		rv.AutoButton.Configure(Txt("Auto: on"))
		return
	}
	rv.AutoButton.Configure(Txt("Auto: off"))
}

// UpdatePreview proxies to the preview subview.
func (rv *RootView) UpdatePreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Update(img)
	}
}
