package model

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/soocke/emushot/domain/screenshot"
)

// OSDMessage is the most recent on-screen notification.
type OSDMessage struct {
	Seq      uint64
	Level    screenshot.Level
	Position screenshot.Position
	Text     string
	At       time.Time
}

// ShotModel collects capture notifications for the UI and tracks whether
// automatic capture is on. It implements screenshot.Notifier; Notify is
// called from both the UI thread and the capture worker. The zero value is
// usable.
type ShotModel struct {
	auto atomic.Bool

	mu   sync.Mutex
	seq  uint64
	last OSDMessage
	now  func() time.Time
}

func NewShotModel() *ShotModel { return &ShotModel{now: time.Now} }

// Notify records a formatted message as the latest OSD line.
func (m *ShotModel) Notify(level screenshot.Level, pos screenshot.Position, format string, args ...any) {
	if m == nil {
		return
	}
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	at := time.Time{}
	if m.now != nil {
		at = m.now()
	}
	m.last = OSDMessage{Seq: m.seq, Level: level, Position: pos, Text: text, At: at}
}

// Latest returns the last message; Seq is zero when nothing was posted yet.
func (m *ShotModel) Latest() OSDMessage {
	if m == nil {
		return OSDMessage{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// AutoCapture reports whether periodic capture is enabled.
func (m *ShotModel) AutoCapture() bool {
	if m == nil {
		return false
	}
	return m.auto.Load()
}

// SetAutoCapture stores the auto capture flag.
func (m *ShotModel) SetAutoCapture(b bool) {
	if m == nil {
		return
	}
	m.auto.Store(b)
}
