package event

import "fmt"

// Matcher is a closed pattern over Event: a kind, and for input events the
// key action and key. Matchers are plain values so transition tables can be
// compared, printed and serialized.
type Matcher struct {
	Kind   Kind
	Action KeyAction
	Key    Key
}

// Predefined matchers used by the character's transition table.
var (
	RightDown = On(KeyDown, KeyRight)
	RightUp   = On(KeyUp, KeyRight)
	LeftDown  = On(KeyDown, KeyLeft)
	LeftUp    = On(KeyUp, KeyLeft)
	ADown     = On(KeyDown, KeyA)
	AUp       = On(KeyUp, KeyA)
	SpaceDown = On(KeyDown, KeySpace)
	SpaceUp   = On(KeyUp, KeySpace)
	TimedOut  = Matcher{Kind: KindTimeout}
)

// On matches a single key transition.
func On(action KeyAction, key Key) Matcher {
	return Matcher{Kind: KindInput, Action: action, Key: key}
}

// Match reports whether e fits the pattern. Timeout matchers accept any
// elapsed payload.
func (m Matcher) Match(e Event) bool {
	if m.Kind != e.Kind {
		return false
	}
	if m.Kind == KindInput {
		return m.Action == e.Action && m.Key == e.Key
	}
	return true
}

// Overlaps reports whether some concrete event satisfies both matchers.
func (m Matcher) Overlaps(other Matcher) bool {
	if m.Kind != other.Kind {
		return false
	}
	if m.Kind == KindInput {
		return m.Action == other.Action && m.Key == other.Key
	}
	return true
}

func (m Matcher) String() string {
	if m.Kind == KindInput {
		return m.Key.String() + "_" + m.Action.String()
	}
	return m.Kind.String()
}

// MarshalText encodes the matcher in the same form String prints,
// e.g. "right_down" or "TIME_OUT".
func (m Matcher) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Matcher) UnmarshalText(text []byte) error {
	parsed, err := ParseMatcher(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMatcher is the inverse of Matcher.String.
func ParseMatcher(s string) (Matcher, error) {
	switch s {
	case KindTimeout.String():
		return TimedOut, nil
	case KindStart.String():
		return Matcher{Kind: KindStart}, nil
	}
	for _, key := range []Key{KeyLeft, KeyRight, KeySpace, KeyA} {
		for _, action := range []KeyAction{KeyDown, KeyUp} {
			m := On(action, key)
			if m.String() == s {
				return m, nil
			}
		}
	}
	return Matcher{}, fmt.Errorf("unknown event matcher %q", s)
}
