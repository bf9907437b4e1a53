package model

import (
	"time"
)

// LiveModel tracks how long the current stream has been live and the accumulated
// live time across streams. Presenters feed it on every tick. The zero value is ready to use.
type LiveModel struct {
	active      bool
	streamID    string
	liveStart   time.Time
	lastLive    time.Duration
	accumulated time.Duration
}

// NewLiveModel returns a pointer to a ready-to-use LiveModel.
func NewLiveModel() *LiveModel { return &LiveModel{} }

// OnTick updates the model with the id of the bound stream ("" when none).
// A change of stream id closes the previous session and opens a new one.
func (m *LiveModel) OnTick(streamID string, now time.Time) {
	if m == nil {
		return
	}
	if m.active && streamID != m.streamID { // stream ended or replaced
		m.lastLive = now.Sub(m.liveStart)
		m.accumulated += m.lastLive
		m.active = false
	}
	if streamID == "" {
		return
	}
	if !m.active {
		m.active = true
		m.streamID = streamID
		m.liveStart = now
		m.lastLive = 0
	}
	m.lastLive = now.Sub(m.liveStart)
}

// Values returns the current live duration and the total accumulated live time.
// The total includes the ongoing session when active.
func (m *LiveModel) Values() (live, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	live = m.lastLive
	total = m.accumulated
	if m.active {
		total += live
	}
	return
}
