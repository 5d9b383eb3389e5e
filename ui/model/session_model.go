package model

import (
	"time"
)

// SessionModel tracks the content currently loaded in the emulator: its name,
// how many frames ran since it was opened and for how long. Accumulated time
// survives pauses. Only the UI tick touches it, so it is not synchronized.
// The zero value is ready to use.
type SessionModel struct {
	content     string
	frames      int
	running     bool
	resumedAt   time.Time
	accumulated time.Duration
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// Open starts a new content session, dropping previous counts.
func (m *SessionModel) Open(content string, now time.Time) {
	if m == nil {
		return
	}
	*m = SessionModel{content: content, running: true, resumedAt: now}
}

// OnFrame counts a presented frame. Frames while paused are ignored.
func (m *SessionModel) OnFrame(now time.Time) int {
	if m == nil {
		return 0
	}
	if !m.running {
		return m.frames
	}
	m.frames++
	return m.frames
}

// SetRunning pauses or resumes the session clock.
func (m *SessionModel) SetRunning(running bool, now time.Time) {
	if m == nil || m.running == running {
		return
	}
	if running { // paused -> running
		m.resumedAt = now
	} else {
		m.accumulated += now.Sub(m.resumedAt)
	}
	m.running = running
}

// Frames returns the number of frames counted in this session.
func (m *SessionModel) Frames() int {
	if m == nil {
		return 0
	}
	return m.frames
}

// Values returns the content name, frame count and elapsed running time.
func (m *SessionModel) Values(now time.Time) (content string, frames int, elapsed time.Duration) {
	if m == nil {
		return "", 0, 0
	}
	elapsed = m.accumulated
	if m.running {
		elapsed += now.Sub(m.resumedAt)
	}
	return m.content, m.frames, elapsed
}
