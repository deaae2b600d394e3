// internal/clock/clock.go
package clock

import (
	"time"

	"go-boy-fsm/internal/config"
)

// GameClock — игровое время: растёт только пока игра не на паузе
type GameClock struct {
	gameTime float64
	last     time.Time
	running  bool
}

// New returns a stopped clock at zero.
func New() *GameClock {
	return &GameClock{}
}

// Now returns accumulated game time in seconds.
func (c *GameClock) Now() float64 {
	return c.gameTime
}

// Advance adds dt seconds, clamped to config.MaxDeltaTime so a long stall
// (window drag, breakpoint) does not expire every dwell timer at once.
func (c *GameClock) Advance(dt float64) {
	if dt < 0 {
		return
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	c.gameTime += dt
}

// Tick advances by the wall time elapsed since the previous Tick or Resume.
// A stopped clock only records the timestamp.
func (c *GameClock) Tick(now time.Time) {
	if c.running {
		c.Advance(now.Sub(c.last).Seconds())
	}
	c.last = now
}

// Resume starts counting from now.
func (c *GameClock) Resume(now time.Time) {
	c.running = true
	c.last = now
}

// Pause stops the clock until Resume.
func (c *GameClock) Pause() {
	c.running = false
}

// Running reports whether the clock is counting.
func (c *GameClock) Running() bool {
	return c.running
}
