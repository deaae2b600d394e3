// internal/state/state.go
package state

import (
	"fmt"

	"go-boy-fsm/internal/event"
)

// ID — закрытый набор состояний персонажа
type ID int

const (
	Idle ID = iota
	Sleep
	Run
	AutoRun
)

// IDs lists every state in declaration order.
var IDs = []ID{Idle, Sleep, Run, AutoRun}

var idNames = map[ID]string{
	Idle:    "Idle",
	Sleep:   "Sleep",
	Run:     "Run",
	AutoRun: "AutoRun",
}

func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return fmt.Sprintf("ID(%d)", int(id))
}

func (id ID) MarshalText() ([]byte, error) {
	if _, ok := idNames[id]; !ok {
		return nil, fmt.Errorf("unknown state %d", int(id))
	}
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	for known, name := range idNames {
		if name == string(text) {
			*id = known
			return nil
		}
	}
	return fmt.Errorf("unknown state %q", string(text))
}

// Behavior — интерфейс для всех состояний.
// Реализации не хранят данных: всё изменяемое лежит в позе машины.
type Behavior interface {
	Enter(m *StateMachine, e event.Event)
	Exit(m *StateMachine, e event.Event)
	Do(m *StateMachine)
	Draw(m *StateMachine, r Renderer)
}

// Clock — источник времени для таймеров задержки
type Clock interface {
	Now() float64
}

// Cell describes one blit from the sprite sheet. Source coordinates count
// from the sheet's bottom-left corner; the destination is the center of the
// drawn cell in world coordinates with y pointing up. Rotation is in radians.
type Cell struct {
	SrcX, SrcY int
	W, H       int
	DstX, DstY float64
	DstW, DstH float64
	Rotation   float64
}

// Renderer — приёмник запросов на отрисовку
type Renderer interface {
	DrawCell(c Cell)
}

// DefaultBehaviors returns the four character behaviors keyed by state.
func DefaultBehaviors() map[ID]Behavior {
	return map[ID]Behavior{
		Idle:    idleState{},
		Sleep:   sleepState{},
		Run:     runState{},
		AutoRun: autoRunState{},
	}
}
