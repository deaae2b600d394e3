package state

import (
	"go-boy-fsm/internal/component"
	"go-boy-fsm/internal/config"
	"go-boy-fsm/internal/event"

	"github.com/sirupsen/logrus"
)

// Observer is called after every committed transition.
type Observer func(from, to ID, e event.Event)

// Option configures a StateMachine.
type Option func(*StateMachine)

// WithTable replaces the default transition table.
func WithTable(t Table) Option {
	return func(m *StateMachine) { m.table = t.Clone() }
}

// WithBehaviors replaces the behavior set. Mostly useful in tests.
func WithBehaviors(b map[ID]Behavior) Option {
	return func(m *StateMachine) { m.behaviors = b }
}

// WithLogger sets the logger transitions are reported to.
func WithLogger(l *logrus.Entry) Option {
	return func(m *StateMachine) { m.log = l }
}

// WithBounds sets the play field edges AutoRun bounces between.
func WithBounds(left, right float64) Option {
	return func(m *StateMachine) { m.boundLeft, m.boundRight = left, right }
}

// WithBounceOnDraw applies the AutoRun edge bounce after drawing instead of
// at the start of the next Do.
func WithBounceOnDraw(on bool) Option {
	return func(m *StateMachine) { m.bounceOnDraw = on }
}

// WithObserver registers a transition observer.
func WithObserver(o Observer) Option {
	return func(m *StateMachine) { m.observers = append(m.observers, o) }
}

// WithInitial sets the state Start enters. Defaults to Idle.
func WithInitial(id ID) Option {
	return func(m *StateMachine) { m.current = id }
}

// StateMachine — машина состояний одного персонажа
type StateMachine struct {
	pose      *component.Pose
	clock     Clock
	current   ID
	table     Table
	behaviors map[ID]Behavior
	observers []Observer
	log       *logrus.Entry

	boundLeft, boundRight float64
	bounceOnDraw          bool
}

// New builds a machine driving pose. An inconsistent table is a programming
// error and panics here rather than at the first event.
func New(pose *component.Pose, clock Clock, opts ...Option) *StateMachine {
	m := &StateMachine{
		pose:       pose,
		clock:      clock,
		current:    Idle,
		table:      DefaultTable(),
		behaviors:  DefaultBehaviors(),
		log:        logrus.NewEntry(logrus.StandardLogger()),
		boundLeft:  config.BoundLeft,
		boundRight: config.BoundRight,
	}
	for _, opt := range opts {
		opt(m)
	}

	if pose == nil || clock == nil {
		panic("state: pose and clock are required")
	}
	if err := m.table.Validate(m.behaviors); err != nil {
		panic("state: invalid transition table: " + err.Error())
	}
	if _, ok := m.behaviors[m.current]; !ok {
		panic("state: initial state " + m.current.String() + " has no behavior")
	}
	for _, s := range m.table.Shadowed() {
		m.log.Warn("unreachable transition: " + s)
	}
	return m
}

// Start enters the initial state. Call it once, before Update or HandleEvent.
func (m *StateMachine) Start() {
	m.log.WithField("state", m.current).Debug("start")
	m.behaviors[m.current].Enter(m, event.Start())
}

// HandleEvent commits the first matching transition of the current state and
// reports whether one matched. Unmatched events are dropped.
func (m *StateMachine) HandleEvent(e event.Event) bool {
	next, ok := m.table.Lookup(m.current, e)
	if !ok {
		return false
	}

	from := m.current
	m.behaviors[from].Exit(m, e)
	m.current = next
	m.behaviors[next].Enter(m, e)

	m.log.WithFields(logrus.Fields{
		"from":  from,
		"to":    next,
		"event": e,
	}).Debug("transition")
	for _, o := range m.observers {
		o(from, next, e)
	}
	return true
}

// Update runs the current state's per-tick behavior.
func (m *StateMachine) Update() {
	m.behaviors[m.current].Do(m)
}

// Draw renders the current state.
func (m *StateMachine) Draw(r Renderer) {
	m.behaviors[m.current].Draw(m, r)
}

// Current возвращает текущее состояние.
func (m *StateMachine) Current() ID {
	return m.current
}

// Table returns a copy of the transition table.
func (m *StateMachine) Table() Table {
	return m.table.Clone()
}

// Pose exposes the pose the machine drives.
func (m *StateMachine) Pose() *component.Pose {
	return m.pose
}

// Dwell returns seconds since the current timed state was entered.
func (m *StateMachine) Dwell() float64 {
	return m.clock.Now() - m.pose.StartTime
}

func (m *StateMachine) timedOut() bool {
	return m.Dwell() > config.DwellTimeout
}

// bounce turns the character around once it has left the play field.
func (m *StateMachine) bounce() {
	switch {
	case m.pose.X > m.boundRight:
		m.pose.Face(-1)
	case m.pose.X < m.boundLeft:
		m.pose.Face(1)
	}
}
