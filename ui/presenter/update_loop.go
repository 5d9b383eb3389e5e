package presenter

import "time"

// Loop drives one emulated frame per tick: it advances the frame source,
// counts the frame, lets auto capture run and refreshes the presenters.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Advance  func()
	Session  *SessionPresenter
	Shots    *ShotPresenter
	Status   *StatusPresenter
	Preview  *PreviewPresenter
	Schedule func()
	now      func() time.Time
}

func NewLoop(advance func(), sess *SessionPresenter, shots *ShotPresenter, status *StatusPresenter, preview *PreviewPresenter, schedule func()) *Loop {
	return &Loop{Advance: advance, Session: sess, Shots: shots, Status: status, Preview: preview, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.now != nil {
		now = l.now()
	}
	if l.Advance != nil {
		l.Advance()
	}
	frame := l.Session.OnFrame(now)
	l.Shots.OnFrame(frame)
	l.Session.Tick(now)
	l.Status.Tick(now)
	l.Preview.Tick()
	if l.Schedule != nil {
		l.Schedule()
	}
}
