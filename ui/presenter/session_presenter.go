package presenter

import (
	"time"

	"github.com/soocke/emushot/ui/model"
)

// SessionView displays the loaded content and how long it has been running.
type SessionView interface {
	SetSession(content string, frames int, elapsed time.Duration)
}

// SessionPresenter counts frames into the session model and formats it for the view.
type SessionPresenter struct {
	sess *model.SessionModel
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, view: view}
}

// OnFrame counts one presented frame and returns the frame number.
func (p *SessionPresenter) OnFrame(now time.Time) int {
	if p == nil || p.sess == nil {
		return 0
	}
	return p.sess.OnFrame(now)
}

// Tick pushes current session values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.view == nil {
		return
	}
	p.view.SetSession(p.sess.Values(now))
}
