package state

import (
	"fmt"

	"go-boy-fsm/internal/event"
)

// Rule is one row of a state's transition list.
type Rule struct {
	On   event.Matcher `json:"on"`
	Next ID            `json:"next"`
}

// Table maps a state to its ordered rules. The first rule whose matcher
// accepts an event wins.
type Table map[ID][]Rule

// DefaultTable is the character's transition table. Releasing a direction
// key confirms Run just like pressing it.
func DefaultTable() Table {
	return Table{
		Sleep: {
			{event.RightDown, Idle},
			{event.LeftDown, Idle},
			{event.LeftUp, Idle},
			{event.RightUp, Idle},
			{event.ADown, Idle},
			{event.SpaceDown, Idle},
		},
		Idle: {
			{event.RightDown, Run},
			{event.LeftDown, Run},
			{event.LeftUp, Run},
			{event.RightUp, Run},
			{event.ADown, AutoRun},
			{event.AUp, AutoRun},
			{event.TimedOut, Sleep},
		},
		Run: {
			{event.RightDown, Run},
			{event.LeftDown, Run},
			{event.RightUp, Run},
			{event.LeftUp, Run},
			{event.ADown, AutoRun},
			{event.AUp, AutoRun},
			{event.SpaceDown, Idle},
		},
		AutoRun: {
			{event.LeftDown, Run},
			{event.LeftUp, Run},
			{event.RightDown, Run},
			{event.RightUp, Run},
			{event.TimedOut, Idle},
		},
	}
}

// Lookup returns the target of the first rule of from that matches e.
func (t Table) Lookup(from ID, e event.Event) (ID, bool) {
	for _, r := range t[from] {
		if r.On.Match(e) {
			return r.Next, true
		}
	}
	return from, false
}

// Clone returns a deep copy.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for id, rules := range t {
		out[id] = append([]Rule(nil), rules...)
	}
	return out
}

// Validate checks that every known state has a rule list, even an empty one,
// and that every rule leads to a known state.
func (t Table) Validate(behaviors map[ID]Behavior) error {
	for id := range behaviors {
		if _, ok := t[id]; !ok {
			return fmt.Errorf("state %s has no transition list", id)
		}
	}
	for from, rules := range t {
		if _, ok := behaviors[from]; !ok {
			return fmt.Errorf("transition list for undefined state %s", from)
		}
		for _, r := range rules {
			if _, ok := behaviors[r.Next]; !ok {
				return fmt.Errorf("transition %s --%s--> undefined state %s", from, r.On, r.Next)
			}
		}
	}
	return nil
}

// Shadowed reports rules that can never fire because an earlier rule of the
// same state accepts every event they accept.
func (t Table) Shadowed() []string {
	var out []string
	for _, from := range IDs {
		rules := t[from]
		for i, r := range rules {
			for _, earlier := range rules[:i] {
				if earlier.On.Overlaps(r.On) {
					out = append(out, fmt.Sprintf("%s: %s (rule %d) shadowed by rule for %s", from, r.On, i, earlier.On))
					break
				}
			}
		}
	}
	return out
}
