// Package screen drives the top-level screens around the character:
// a title menu, the running game and a pause screen.
package screen

import (
	"fmt"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"
)

// Screen names.
const (
	Menu    = "menu"
	Playing = "playing"
	Paused  = "paused"
)

// Event names.
const (
	EventStart  = "start"
	EventPause  = "pause"
	EventResume = "resume"
)

// Hooks are called when play starts or stops.
type Hooks struct {
	OnPlay func()
	OnStop func()
}

// Flow — смена экранов поверх looplab/fsm
type Flow struct {
	fsm *fsm.FSM
	log *logrus.Entry
}

// NewFlow builds the screen flow starting at initial (Menu or Playing).
// Starting directly in Playing runs OnPlay immediately.
func NewFlow(initial string, hooks Hooks, log *logrus.Entry) (*Flow, error) {
	if initial != Menu && initial != Playing {
		return nil, fmt.Errorf("invalid initial screen %q", initial)
	}
	f := &Flow{log: log}
	f.fsm = fsm.NewFSM(
		initial,
		fsm.Events{
			{Name: EventStart, Src: []string{Menu}, Dst: Playing},
			{Name: EventPause, Src: []string{Playing}, Dst: Paused},
			{Name: EventResume, Src: []string{Paused}, Dst: Playing},
		},
		fsm.Callbacks{
			"enter_" + Playing: func(e *fsm.Event) {
				if hooks.OnPlay != nil {
					hooks.OnPlay()
				}
			},
			"leave_" + Playing: func(e *fsm.Event) {
				if hooks.OnStop != nil {
					hooks.OnStop()
				}
			},
			"enter_state": func(e *fsm.Event) {
				f.log.WithFields(logrus.Fields{"from": e.Src, "to": e.Dst}).Info("screen changed")
			},
		},
	)
	if initial == Playing && hooks.OnPlay != nil {
		hooks.OnPlay()
	}
	return f, nil
}

// Current returns the active screen.
func (f *Flow) Current() string {
	return f.fsm.Current()
}

// Start leaves the menu.
func (f *Flow) Start() error {
	return f.fire(EventStart)
}

// TogglePause pauses a running game or resumes a paused one. It is a no-op
// on the menu.
func (f *Flow) TogglePause() error {
	switch {
	case f.fsm.Can(EventPause):
		return f.fire(EventPause)
	case f.fsm.Can(EventResume):
		return f.fire(EventResume)
	}
	return nil
}

func (f *Flow) fire(name string) error {
	if err := f.fsm.Event(name); err != nil {
		return fmt.Errorf("screen event %s: %w", name, err)
	}
	return nil
}
