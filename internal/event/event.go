// internal/event/event.go
package event

import "fmt"

// Kind — тег варианта события
type Kind int

const (
	KindStart Kind = iota
	KindInput
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "START"
	case KindInput:
		return "INPUT"
	case KindTimeout:
		return "TIME_OUT"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KeyAction — нажатие или отпускание клавиши
type KeyAction int

const (
	KeyDown KeyAction = iota
	KeyUp
)

func (a KeyAction) String() string {
	if a == KeyUp {
		return "up"
	}
	return "down"
}

// Key — клавиши, на которые реагирует персонаж
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeySpace
	KeyA
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeySpace:
		return "space"
	case KeyA:
		return "a"
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Event — неизменяемое событие: ввод с клавиатуры или истечение таймера.
// Action и Key имеют смысл только для KindInput, Elapsed — только для KindTimeout.
type Event struct {
	Kind    Kind
	Action  KeyAction
	Key     Key
	Elapsed float64
}

// Start is the synthetic event passed to the initial state's Enter.
func Start() Event {
	return Event{Kind: KindStart}
}

// Input builds a keyboard event.
func Input(action KeyAction, key Key) Event {
	return Event{Kind: KindInput, Action: action, Key: key}
}

// Timeout builds a dwell-timer event.
func Timeout(elapsed float64) Event {
	return Event{Kind: KindTimeout, Elapsed: elapsed}
}

func (e Event) String() string {
	switch e.Kind {
	case KindInput:
		return fmt.Sprintf("%s(%s %s)", e.Kind, e.Key, e.Action)
	case KindTimeout:
		return fmt.Sprintf("%s(%g)", e.Kind, e.Elapsed)
	}
	return e.Kind.String()
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener. Func values are not
// comparable, so a ListenerFunc cannot be passed to Unsubscribe.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher — диспетчер событий
type Dispatcher struct {
	listeners map[Kind][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Kind][]Listener),
	}
}

// Subscribe — подписка на события данного вида
func (d *Dispatcher) Subscribe(kind Kind, listener Listener) {
	d.listeners[kind] = append(d.listeners[kind], listener)
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(kind Kind, listener Listener) {
	if listeners, exists := d.listeners[kind]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[kind] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Kind]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
