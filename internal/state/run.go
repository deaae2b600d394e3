package state

import (
	"go-boy-fsm/internal/config"
	"go-boy-fsm/internal/event"
)

type runState struct{}

// Enter takes the running direction from the key that caused the
// transition. Press and release of a direction key both set it.
func (runState) Enter(m *StateMachine, e event.Event) {
	if e.Kind != event.KindInput {
		return
	}
	switch e.Key {
	case event.KeyRight:
		m.pose.Face(1)
	case event.KeyLeft:
		m.pose.Face(-1)
	}
}

func (runState) Exit(m *StateMachine, e event.Event) {}

func (runState) Do(m *StateMachine) {
	m.pose.AdvanceFrame()
	m.pose.X += float64(m.pose.Dir) * config.RunSpeed
}

func (runState) Draw(m *StateMachine, r Renderer) {
	r.DrawCell(standingCell(m.pose))
}
