package state

import (
	"go-boy-fsm/internal/config"
	"go-boy-fsm/internal/event"
)

// autoRunState runs at four times Run's speed until its dwell timer expires,
// turning around at the play field edges.
type autoRunState struct{}

func (autoRunState) Enter(m *StateMachine, e event.Event) {
	m.pose.Face(m.pose.Dir)
	m.pose.StartTime = m.clock.Now()
}

func (autoRunState) Exit(m *StateMachine, e event.Event) {}

func (autoRunState) Do(m *StateMachine) {
	if !m.bounceOnDraw {
		m.bounce()
	}
	m.pose.AdvanceFrame()
	m.pose.X += float64(m.pose.Dir) * config.AutoRunSpeed
	if m.timedOut() {
		m.HandleEvent(event.Timeout(0))
	}
}

func (autoRunState) Draw(m *StateMachine, r Renderer) {
	c := standingCell(m.pose)
	c.DstY = m.pose.Y + config.AutoRunOffsetY
	c.DstW, c.DstH = config.AutoRunSize, config.AutoRunSize
	r.DrawCell(c)
	if m.bounceOnDraw {
		m.bounce()
	}
}
