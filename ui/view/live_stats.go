package view

import (
	"fmt"
	"time"

	"github.com/soocke/media-access-go/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// LiveStats shows how long the current stream has been live and the total.
type LiveStats interface {
	SetLive(live, total time.Duration)
}

type liveStats struct {
	liveLbl  *TLabelWidget
	totalLbl *TLabelWidget
	last     [2]int
}

// NewLiveStats creates the live and total labels at (row, startCol) and (row, startCol+1).
func NewLiveStats(parent *FrameWidget, row, startCol int) LiveStats {
	s := &liveStats{
		liveLbl:  TLabel(Width(14), Style(theme.StyleStatsLabel), Txt("Live: 00:00")),
		totalLbl: TLabel(Width(14), Style(theme.StyleStatsLabel), Txt("Total: 00:00")),
		last:     [2]int{-1, -1},
	}
	if parent != nil {
		Grid(s.liveLbl, In(parent), Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
		Grid(s.totalLbl, In(parent), Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	} else {
		Grid(s.liveLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
		Grid(s.totalLbl, Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	}
	return s
}

// SetLive updates both labels. Unchanged seconds are not re-rendered.
func (s *liveStats) SetLive(live, total time.Duration) {
	if s == nil {
		return
	}
	ls, ts := int(live.Seconds()), int(total.Seconds())
	if ls != s.last[0] && s.liveLbl != nil {
		s.liveLbl.Configure(Txt("Live: " + clock(ls)))
	}
	if ts != s.last[1] && s.totalLbl != nil {
		s.totalLbl.Configure(Txt("Total: " + clock(ts)))
	}
	s.last = [2]int{ls, ts}
}

func clock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
