package state

import (
	"math"

	"go-boy-fsm/internal/component"
	"go-boy-fsm/internal/config"
	"go-boy-fsm/internal/event"
)

// sleepState has no dwell timer; only input wakes the character.
type sleepState struct{}

func (sleepState) Enter(m *StateMachine, e event.Event) {
	m.pose.Frame = 0
	m.log.Trace("sleep: lie down")
}

func (sleepState) Exit(m *StateMachine, e event.Event) {
	m.log.Trace("sleep: get up")
}

func (sleepState) Do(m *StateMachine) {
	m.pose.AdvanceFrame()
}

// Draw lays the standing cell on its side, rotated toward the facing.
func (sleepState) Draw(m *StateMachine, r Renderer) {
	c := standingCell(m.pose)
	if m.pose.Action == component.BandIdleLeft {
		c.Rotation = math.Pi * 1.5
		c.DstX = m.pose.X + config.SleepOffset
	} else {
		c.Rotation = math.Pi / 2
		c.DstX = m.pose.X - config.SleepOffset
	}
	c.DstY = m.pose.Y - config.SleepOffset
	r.DrawCell(c)
}
