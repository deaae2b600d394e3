package screen

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func quiet() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestFlowFromMenu(t *testing.T) {
	var plays, stops int
	f, err := NewFlow(Menu, Hooks{OnPlay: func() { plays++ }, OnStop: func() { stops++ }}, quiet())
	if err != nil {
		t.Fatalf("new flow: %v", err)
	}
	if f.Current() != Menu || plays != 0 {
		t.Fatalf("expected menu without play, got %s plays %d", f.Current(), plays)
	}

	if err := f.TogglePause(); err != nil {
		t.Fatalf("toggle on menu: %v", err)
	}
	if f.Current() != Menu {
		t.Fatalf("pause must be ignored on the menu, got %s", f.Current())
	}

	if err := f.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if f.Current() != Playing || plays != 1 {
		t.Fatalf("expected playing with one play, got %s plays %d", f.Current(), plays)
	}

	if err := f.TogglePause(); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if f.Current() != Paused || stops != 1 {
		t.Fatalf("expected paused with one stop, got %s stops %d", f.Current(), stops)
	}

	if err := f.TogglePause(); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if f.Current() != Playing || plays != 2 {
		t.Fatalf("expected playing again, got %s plays %d", f.Current(), plays)
	}
}

func TestFlowStartTwiceFails(t *testing.T) {
	f, err := NewFlow(Playing, Hooks{}, quiet())
	if err != nil {
		t.Fatalf("new flow: %v", err)
	}
	if err := f.Start(); err == nil {
		t.Fatal("expected error starting from playing")
	}
}

func TestFlowStartingInPlayRunsHook(t *testing.T) {
	var plays int
	if _, err := NewFlow(Playing, Hooks{OnPlay: func() { plays++ }}, quiet()); err != nil {
		t.Fatalf("new flow: %v", err)
	}
	if plays != 1 {
		t.Fatalf("expected OnPlay once, got %d", plays)
	}
}

func TestFlowRejectsUnknownInitial(t *testing.T) {
	if _, err := NewFlow(Paused, Hooks{}, quiet()); err == nil {
		t.Fatal("expected error")
	}
}
