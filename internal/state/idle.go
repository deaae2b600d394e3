package state

import (
	"go-boy-fsm/internal/component"
	"go-boy-fsm/internal/config"
	"go-boy-fsm/internal/event"
)

type idleState struct{}

// Enter turns the last running band into the matching standing band and
// starts the dwell clock.
func (idleState) Enter(m *StateMachine, e event.Event) {
	p := m.pose
	switch p.Action {
	case component.BandRunLeft:
		p.Action = component.BandIdleLeft
	case component.BandRunRight:
		p.Action = component.BandIdleRight
	}
	p.Frame = 0
	p.StartTime = m.clock.Now()
	m.log.Trace("idle: enter")
}

func (idleState) Exit(m *StateMachine, e event.Event) {
	m.log.Trace("idle: exit")
}

func (idleState) Do(m *StateMachine) {
	m.pose.AdvanceFrame()
	if m.timedOut() {
		m.HandleEvent(event.Timeout(0))
	}
}

func (idleState) Draw(m *StateMachine, r Renderer) {
	r.DrawCell(standingCell(m.pose))
}

// standingCell is the unscaled (frame, action) cell at the character's position.
func standingCell(p *component.Pose) Cell {
	return Cell{
		SrcX: p.Frame * config.CellSize,
		SrcY: p.Action * config.CellSize,
		W:    config.CellSize,
		H:    config.CellSize,
		DstX: p.X,
		DstY: p.Y,
		DstW: config.CellSize,
		DstH: config.CellSize,
	}
}
