package presenter

import (
	"time"

	"github.com/soocke/emushot/domain/screenshot"
	"github.com/soocke/emushot/ui/model"
)

// osdTimeout is how long a notification stays on screen.
const osdTimeout = 3 * time.Second

// OSDSource yields the latest notification.
type OSDSource interface{ Latest() model.OSDMessage }

// StateSource reports the capture state.
type StateSource interface{ State() screenshot.CaptureState }

// StatusView shows OSD messages and the capture state.
type StatusView interface {
	SetStatus(level screenshot.Level, text string)
	SetStateLabel(string)
}

// StatusPresenter mirrors notifications and capture state into the view,
// touching widgets only when something changed.
type StatusPresenter struct {
	osd     OSDSource
	state   StateSource
	view    StatusView
	seq     uint64
	shownAt time.Time
	showing bool
	latest  screenshot.CaptureState
	primed  bool
}

func NewStatusPresenter(osd OSDSource, state StateSource, view StatusView) *StatusPresenter {
	return &StatusPresenter{osd: osd, state: state, view: view}
}

// Tick pushes a new message, clears an expired one and refreshes the state label.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	if p.osd != nil {
		msg := p.osd.Latest()
		switch {
		case msg.Seq != p.seq:
			p.seq = msg.Seq
			p.shownAt = now
			p.showing = true
			p.view.SetStatus(msg.Level, msg.Text)
		case p.showing && now.Sub(p.shownAt) >= osdTimeout:
			p.showing = false
			p.view.SetStatus(screenshot.LevelInfo, "")
		}
	}
	if p.state != nil {
		st := p.state.State()
		if !p.primed || st != p.latest {
			p.primed = true
			p.latest = st
			p.view.SetStateLabel("State: " + st.String())
		}
	}
}
