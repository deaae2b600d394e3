package state

import (
	"fmt"
	"io"
	"math"
	"testing"

	"go-boy-fsm/internal/component"
	"go-boy-fsm/internal/event"

	"github.com/sirupsen/logrus"
)

type fakeClock struct{ now float64 }

func (c *fakeClock) Now() float64 { return c.now }

type recordingRenderer struct{ cells []Cell }

func (r *recordingRenderer) DrawCell(c Cell) { r.cells = append(r.cells, c) }

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func newMachine(t *testing.T, opts ...Option) (*StateMachine, *component.Pose, *fakeClock) {
	t.Helper()
	pose := component.NewPose()
	clock := &fakeClock{now: 100}
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	m := New(&pose, clock, opts...)
	m.Start()
	return m, &pose, clock
}

// allEvents is every concrete event the character can receive.
func allEvents() []event.Event {
	var out []event.Event
	for _, key := range []event.Key{event.KeyLeft, event.KeyRight, event.KeySpace, event.KeyA} {
		out = append(out, event.Input(event.KeyDown, key), event.Input(event.KeyUp, key))
	}
	return append(out, event.Timeout(0))
}

// enterState forces m into id through its Start hook.
func enterState(t *testing.T, id ID, opts ...Option) (*StateMachine, *component.Pose, *fakeClock) {
	t.Helper()
	return newMachine(t, append(opts, WithInitial(id))...)
}

func TestStartsInIdle(t *testing.T) {
	m, pose, clock := newMachine(t)
	if m.Current() != Idle {
		t.Fatalf("expected Idle, got %s", m.Current())
	}
	if pose.StartTime != clock.now {
		t.Fatalf("expected dwell clock started at %g, got %g", clock.now, pose.StartTime)
	}
	if pose.Action != component.BandIdleRight {
		t.Fatalf("expected default action %d, got %d", component.BandIdleRight, pose.Action)
	}
}

func TestUnmatchedEventsAreNoOps(t *testing.T) {
	table := DefaultTable()
	for _, id := range IDs {
		for _, e := range allEvents() {
			if _, ok := table.Lookup(id, e); ok {
				continue
			}
			t.Run(fmt.Sprintf("%s/%s", id, e), func(t *testing.T) {
				m, pose, _ := enterState(t, id)
				pose.X, pose.Frame = 123, 5
				before := *pose

				if m.HandleEvent(e) {
					t.Fatal("expected no transition")
				}
				if m.Current() != id {
					t.Fatalf("state changed to %s", m.Current())
				}
				if *pose != before {
					t.Fatalf("pose changed: %+v -> %+v", before, *pose)
				}
			})
		}
	}
}

type callRecorder struct {
	inner Behavior
	id    ID
	calls *[]string
}

func (r callRecorder) Enter(m *StateMachine, e event.Event) {
	*r.calls = append(*r.calls, "enter "+r.id.String())
	r.inner.Enter(m, e)
}

func (r callRecorder) Exit(m *StateMachine, e event.Event) {
	*r.calls = append(*r.calls, "exit "+r.id.String())
	r.inner.Exit(m, e)
}

func (r callRecorder) Do(m *StateMachine) { r.inner.Do(m) }

func (r callRecorder) Draw(m *StateMachine, rr Renderer) { r.inner.Draw(m, rr) }

func TestEnterExitSymmetry(t *testing.T) {
	var calls []string
	behaviors := map[ID]Behavior{}
	for id, b := range DefaultBehaviors() {
		behaviors[id] = callRecorder{inner: b, id: id, calls: &calls}
	}
	m, _, _ := newMachine(t, WithBehaviors(behaviors))

	steps := []struct {
		e    event.Event
		want []string
	}{
		{event.Input(event.KeyDown, event.KeyRight), []string{"exit Idle", "enter Run"}},
		{event.Input(event.KeyUp, event.KeyRight), []string{"exit Run", "enter Run"}},
		{event.Input(event.KeyDown, event.KeyA), []string{"exit Run", "enter AutoRun"}},
		{event.Input(event.KeyDown, event.KeyLeft), []string{"exit AutoRun", "enter Run"}},
		{event.Input(event.KeyDown, event.KeySpace), []string{"exit Run", "enter Idle"}},
		{event.Timeout(0), []string{"exit Idle", "enter Sleep"}},
		{event.Input(event.KeyDown, event.KeySpace), []string{"exit Sleep", "enter Idle"}},
	}
	for i, step := range steps {
		calls = calls[:0]
		if !m.HandleEvent(step.e) {
			t.Fatalf("step %d: %s did not match", i, step.e)
		}
		if fmt.Sprint(calls) != fmt.Sprint(step.want) {
			t.Fatalf("step %d: calls %v, want %v", i, calls, step.want)
		}
	}
}

func TestFrameWrapsAfterEightTicks(t *testing.T) {
	for _, id := range IDs {
		t.Run(id.String(), func(t *testing.T) {
			m, pose, _ := enterState(t, id)
			pose.Frame = 3
			for i := 0; i < 8; i++ {
				m.Update()
				if pose.Frame < 0 || pose.Frame >= 8 {
					t.Fatalf("frame %d out of range", pose.Frame)
				}
			}
			if pose.Frame != 3 {
				t.Fatalf("expected frame 3, got %d", pose.Frame)
			}
		})
	}
}

func TestIdleTimeoutBoundary(t *testing.T) {
	m, pose, clock := newMachine(t)
	entry := pose.StartTime

	clock.now = entry + 2
	m.Update()
	clock.now = entry + 4.0
	m.Update()
	if m.Current() != Idle {
		t.Fatalf("timeout fired at exactly 4.0, now %s", m.Current())
	}

	clock.now = entry + 4.0 + 1e-6
	m.Update()
	if m.Current() != Sleep {
		t.Fatalf("expected Sleep after dwell, got %s", m.Current())
	}
}

func TestSleepNeverTimesOut(t *testing.T) {
	var transitions int
	m, pose, clock := newMachine(t, WithObserver(func(from, to ID, e event.Event) { transitions++ }))

	clock.now = pose.StartTime + 10
	m.Update()
	if m.Current() != Sleep || transitions != 1 {
		t.Fatalf("expected one transition into Sleep, got %s after %d", m.Current(), transitions)
	}
	for i := 0; i < 50; i++ {
		clock.now += 10
		m.Update()
	}
	if m.Current() != Sleep || transitions != 1 {
		t.Fatalf("sleep re-triggered: state %s, transitions %d", m.Current(), transitions)
	}
	if m.HandleEvent(event.Timeout(0)) {
		t.Fatal("Sleep must ignore timeouts")
	}
}

func TestRunScenario(t *testing.T) {
	m, pose, _ := newMachine(t)

	if !m.HandleEvent(event.Input(event.KeyDown, event.KeyRight)) {
		t.Fatal("right down not handled in Idle")
	}
	if m.Current() != Run || pose.Dir != 1 || pose.Action != component.BandRunRight {
		t.Fatalf("expected Run facing right, got %s dir %d action %d", m.Current(), pose.Dir, pose.Action)
	}

	x := pose.X
	for i := 0; i < 10; i++ {
		m.Update()
	}
	if pose.X != x+50 {
		t.Fatalf("expected x %g, got %g", x+50, pose.X)
	}
}

func TestRunKeyReleaseConfirmsDirection(t *testing.T) {
	m, pose, _ := newMachine(t)
	m.HandleEvent(event.Input(event.KeyDown, event.KeyRight))
	m.HandleEvent(event.Input(event.KeyUp, event.KeyLeft))
	if m.Current() != Run || pose.Dir != -1 || pose.Action != component.BandRunLeft {
		t.Fatalf("expected Run facing left, got %s dir %d action %d", m.Current(), pose.Dir, pose.Action)
	}
}

func TestSpeeds(t *testing.T) {
	tests := []struct {
		id    ID
		dir   int
		delta float64
	}{
		{Run, 1, 5},
		{Run, -1, -5},
		{AutoRun, 1, 20},
		{AutoRun, -1, -20},
	}
	for _, tt := range tests {
		m, pose, _ := enterState(t, tt.id)
		pose.Dir = tt.dir
		for i := 0; i < 5; i++ {
			x := pose.X
			m.Update()
			if pose.X-x != tt.delta {
				t.Fatalf("%s dir %d: step moved %g, want %g", tt.id, tt.dir, pose.X-x, tt.delta)
			}
		}
	}
}

func TestAutoRunScenario(t *testing.T) {
	m, pose, clock := newMachine(t)
	m.HandleEvent(event.Input(event.KeyDown, event.KeyRight))
	if !m.HandleEvent(event.Input(event.KeyDown, event.KeyA)) {
		t.Fatal("A down not handled in Run")
	}
	if m.Current() != AutoRun || pose.Action != component.BandRunRight {
		t.Fatalf("expected AutoRun facing right, got %s action %d", m.Current(), pose.Action)
	}
	entered := pose.StartTime

	clock.now = entered + 4
	m.Update()
	if m.Current() != AutoRun {
		t.Fatalf("left AutoRun at exactly 4.0")
	}
	clock.now = entered + 4.5
	m.Update()
	if m.Current() != Idle {
		t.Fatalf("expected Idle after dwell, got %s", m.Current())
	}
	if pose.Action != component.BandIdleRight {
		t.Fatalf("expected right idle band, got %d", pose.Action)
	}
	if pose.StartTime != clock.now {
		t.Fatal("Idle did not restart the dwell clock")
	}
}

func TestBounceOnDraw(t *testing.T) {
	m, pose, _ := enterState(t, AutoRun, WithBounceOnDraw(true))
	pose.Face(1)
	pose.X = 801

	r := &recordingRenderer{}
	m.Draw(r)
	if pose.Dir != -1 || pose.Action != component.BandRunLeft {
		t.Fatalf("expected flip to left, got dir %d action %d", pose.Dir, pose.Action)
	}
	if r.cells[0].SrcY != component.BandRunRight*100 {
		t.Fatal("the bouncing frame must be drawn with the old band")
	}

	m.Update()
	if pose.X != 781 {
		t.Fatalf("expected x 781, got %g", pose.X)
	}
}

func TestBounceInUpdate(t *testing.T) {
	m, pose, _ := enterState(t, AutoRun)
	pose.Face(-1)
	pose.X = -1

	m.Draw(&recordingRenderer{})
	if pose.Dir != -1 {
		t.Fatal("draw must not mutate the pose by default")
	}

	m.Update()
	if pose.Dir != 1 || pose.Action != component.BandRunRight {
		t.Fatalf("expected flip to right, got dir %d action %d", pose.Dir, pose.Action)
	}
	if pose.X != 19 {
		t.Fatalf("expected x 19, got %g", pose.X)
	}
}

func TestDrawCells(t *testing.T) {
	tests := []struct {
		id     ID
		action int
		want   Cell
	}{
		{Idle, 3, Cell{SrcX: 200, SrcY: 300, W: 100, H: 100, DstX: 400, DstY: 90, DstW: 100, DstH: 100}},
		{Run, 1, Cell{SrcX: 200, SrcY: 100, W: 100, H: 100, DstX: 400, DstY: 90, DstW: 100, DstH: 100}},
		{AutoRun, 0, Cell{SrcX: 200, SrcY: 0, W: 100, H: 100, DstX: 400, DstY: 125, DstW: 200, DstH: 200}},
		{Sleep, 2, Cell{SrcX: 200, SrcY: 200, W: 100, H: 100, DstX: 425, DstY: 65, DstW: 100, DstH: 100, Rotation: math.Pi * 1.5}},
		{Sleep, 3, Cell{SrcX: 200, SrcY: 300, W: 100, H: 100, DstX: 375, DstY: 65, DstW: 100, DstH: 100, Rotation: math.Pi / 2}},
	}
	for _, tt := range tests {
		m, pose, _ := enterState(t, tt.id)
		pose.Frame, pose.Action = 2, tt.action
		r := &recordingRenderer{}
		m.Draw(r)
		if len(r.cells) != 1 {
			t.Fatalf("%s: expected one cell, got %d", tt.id, len(r.cells))
		}
		if r.cells[0] != tt.want {
			t.Errorf("%s action %d: cell %+v, want %+v", tt.id, tt.action, r.cells[0], tt.want)
		}
	}
}

func TestInvalidTablePanics(t *testing.T) {
	tests := map[string]Table{
		"missing state": func() Table {
			tb := DefaultTable()
			delete(tb, Sleep)
			return tb
		}(),
		"unknown target": func() Table {
			tb := DefaultTable()
			tb[Idle] = append(tb[Idle], Rule{event.SpaceUp, ID(42)})
			return tb
		}(),
	}
	for name, tb := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			pose := component.NewPose()
			New(&pose, &fakeClock{}, WithTable(tb), WithLogger(quietLogger()))
		})
	}
}

func TestFirstMatchWins(t *testing.T) {
	tb := DefaultTable()
	tb[Idle] = append([]Rule{{event.RightDown, Sleep}}, tb[Idle]...)
	if len(tb.Shadowed()) != 1 {
		t.Fatalf("expected one shadowed rule, got %v", tb.Shadowed())
	}

	m, _, _ := newMachine(t, WithTable(tb))
	m.HandleEvent(event.Input(event.KeyDown, event.KeyRight))
	if m.Current() != Sleep {
		t.Fatalf("expected the earlier rule to win, got %s", m.Current())
	}
}

func TestEmptyRuleListIsValid(t *testing.T) {
	tb := DefaultTable()
	tb[Sleep] = nil
	m, pose, clock := newMachine(t, WithTable(tb))
	clock.now = pose.StartTime + 5
	m.Update()
	for _, e := range allEvents() {
		if m.HandleEvent(e) {
			t.Fatalf("%s matched an empty list", e)
		}
	}
}

func TestWithBounds(t *testing.T) {
	m, pose, _ := enterState(t, AutoRun, WithBounds(100, 300))
	pose.Face(1)
	pose.X = 310

	m.Update()
	if pose.Dir != -1 || pose.X != 290 {
		t.Fatalf("expected turn at the custom edge, got dir %d x %g", pose.Dir, pose.X)
	}
}
