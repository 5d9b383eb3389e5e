package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows the loaded content, frame number and running time.
type SessionStats interface {
	Set(content string, frames int, elapsed time.Duration)
}

type sessionStats struct {
	contentLbl *LabelWidget
	frameLbl   *LabelWidget
	timeLbl    *LabelWidget
}

// NewSessionStats creates the three labels starting at (row, startCol).
func NewSessionStats(row, startCol int) SessionStats {
	s := &sessionStats{contentLbl: Label(Width(24), Anchor("w")), frameLbl: Label(Width(14)), timeLbl: Label(Width(14))}
	Grid(s.contentLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.frameLbl, Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	Grid(s.timeLbl, Row(row), Column(startCol+2), Sticky("w"), Padx("0.2m"))
	s.Set("<none>", 0, 0)
	return s
}

func (s *sessionStats) Set(content string, frames int, elapsed time.Duration) {
	if s == nil || s.contentLbl == nil {
		return
	}
	if content == "" {
		content = "<none>"
	}
	seconds := int(elapsed.Seconds())
	s.contentLbl.Configure(Txt("Content: " + content))
	s.frameLbl.Configure(Txt(fmt.Sprintf("Frame: %d", frames)))
	s.timeLbl.Configure(Txt(fmt.Sprintf("Time: %02d:%02d", seconds/60, seconds%60)))
}
