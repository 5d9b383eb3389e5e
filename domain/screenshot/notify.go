package screenshot

import (
	"fmt"
	"log/slog"
)

// Level classifies a user-visible message.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Position hints where an on-screen message should be drawn.
type Position int

const (
	BottomLeft Position = iota
	BottomRight
	TopLeft
	TopRight
	Center
)

// Notifier displays capture status to the user. Notify may be called from the
// capture worker goroutine, so implementations must be safe for concurrent use.
type Notifier interface {
	Notify(level Level, pos Position, format string, args ...any)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(level Level, pos Position, msg string)

func (f NotifierFunc) Notify(level Level, pos Position, format string, args ...any) {
	f(level, pos, fmt.Sprintf(format, args...))
}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct{ Logger *slog.Logger }

func (n LogNotifier) Notify(level Level, pos Position, format string, args ...any) {
	if n.Logger == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	switch level {
	case LevelError:
		n.Logger.Error(msg, "osd", true)
	case LevelWarning:
		n.Logger.Warn(msg, "osd", true)
	default:
		n.Logger.Info(msg, "osd", true)
	}
}

// Notifiers fans a notification out to every non-nil member.
type Notifiers []Notifier

func (ns Notifiers) Notify(level Level, pos Position, format string, args ...any) {
	for _, n := range ns {
		if n != nil {
			n.Notify(level, pos, format, args...)
		}
	}
}
