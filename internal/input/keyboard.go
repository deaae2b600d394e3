// internal/input/keyboard.go
package input

import (
	"go-boy-fsm/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Binding maps a physical key to the character's logical key.
type Binding struct {
	Physical ebiten.Key
	Logical  event.Key
}

// DefaultBindings are the arrow keys, space and A.
var DefaultBindings = []Binding{
	{ebiten.KeyArrowLeft, event.KeyLeft},
	{ebiten.KeyArrowRight, event.KeyRight},
	{ebiten.KeySpace, event.KeySpace},
	{ebiten.KeyA, event.KeyA},
}

// Keyboard опрашивает клавиатуру каждый тик и рассылает события ввода.
type Keyboard struct {
	bindings   []Binding
	dispatcher *event.Dispatcher
}

func NewKeyboard(dispatcher *event.Dispatcher, bindings []Binding) *Keyboard {
	return &Keyboard{bindings: bindings, dispatcher: dispatcher}
}

// Poll dispatches a KeyDown for every bound key pressed this tick and a
// KeyUp for every one released, in binding order. It returns how many
// events were sent.
func (k *Keyboard) Poll() int {
	sent := 0
	for _, b := range k.bindings {
		if inpututil.IsKeyJustPressed(b.Physical) {
			k.dispatcher.Dispatch(event.Input(event.KeyDown, b.Logical))
			sent++
		}
		if inpututil.IsKeyJustReleased(b.Physical) {
			k.dispatcher.Dispatch(event.Input(event.KeyUp, b.Logical))
			sent++
		}
	}
	return sent
}

// JustPressed reports whether any of keys went down this tick.
func JustPressed(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
