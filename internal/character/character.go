// internal/character/character.go
package character

import (
	"go-boy-fsm/internal/component"
	"go-boy-fsm/internal/event"
	"go-boy-fsm/internal/state"

	"github.com/sirupsen/logrus"
)

// Option configures a Character.
type Option func(*options)

type options struct {
	name     string
	logger   *logrus.Logger
	machine  []state.Option
	position *component.Position
}

// WithName sets the name used in log fields.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger for the character and its state machine.
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithStateOptions passes options through to the state machine.
func WithStateOptions(opts ...state.Option) Option {
	return func(o *options) { o.machine = append(o.machine, opts...) }
}

// WithPosition overrides the default start position.
func WithPosition(x, y float64) Option {
	return func(o *options) { o.position = &component.Position{X: x, Y: y} }
}

// Character — анимированный персонаж: поза плюс машина состояний, которая ею управляет
type Character struct {
	pose    component.Pose
	machine *state.StateMachine
	log     *logrus.Entry
}

var _ event.Listener = (*Character)(nil)

// New creates a character in its default pose and starts its state machine.
func New(clock state.Clock, opts ...Option) *Character {
	o := options{name: "boy", logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Character{
		pose: component.NewPose(),
		log:  o.logger.WithField("actor", o.name),
	}
	if o.position != nil {
		c.pose.Position = *o.position
	}
	machineOpts := append([]state.Option{state.WithLogger(c.log)}, o.machine...)
	c.machine = state.New(&c.pose, clock, machineOpts...)
	c.machine.Start()
	return c
}

// Update advances the character by one tick.
func (c *Character) Update() {
	c.machine.Update()
}

// HandleEvent feeds e to the state machine and reports whether it caused a
// transition.
func (c *Character) HandleEvent(e event.Event) bool {
	c.log.WithField("event", e).Trace("event")
	return c.machine.HandleEvent(e)
}

// OnEvent lets the character subscribe to an event.Dispatcher.
func (c *Character) OnEvent(e event.Event) {
	c.HandleEvent(e)
}

// Draw renders the character's current state.
func (c *Character) Draw(r state.Renderer) {
	c.machine.Draw(r)
}

// Pose returns a copy of the current pose.
func (c *Character) Pose() component.Pose {
	return c.pose
}

// State returns the active state.
func (c *Character) State() state.ID {
	return c.machine.Current()
}

// Dwell returns seconds spent in the current timed state.
func (c *Character) Dwell() float64 {
	return c.machine.Dwell()
}
