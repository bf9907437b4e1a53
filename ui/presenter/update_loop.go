package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It ticks the sub-presenters and invokes a scheduler callback.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Media    *MediaPresenter
	Live     *LivePresenter
	Schedule func()
}

func NewLoop(media *MediaPresenter, live *LivePresenter, schedule func()) *Loop {
	return &Loop{Media: media, Live: live, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// Media first so the live presenter sees the binding from this tick.
	if l.Media != nil {
		l.Media.Tick(now)
	}
	if l.Live != nil {
		l.Live.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
