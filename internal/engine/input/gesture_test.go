package input

import "testing"

func TestGestureClick(t *testing.T) {
	var g Gesture
	g.Press(100, 100, 1)
	if _, ok := g.Move(101, 102, 1, 2); ok {
		t.Fatal("Move() inside slop reported a drag")
	}
	ev, ok := g.Release(102, 101, 1)
	if !ok {
		t.Fatal("Release() = no click, want click")
	}
	if ev.Type != EventClick || ev.MouseX != 102 || ev.MouseY != 101 || ev.Button != 1 {
		t.Errorf("Release() = %+v, want click at (102, 101) button 1", ev)
	}
}

func TestGestureDrag(t *testing.T) {
	var g Gesture
	g.Press(10, 10, 1)
	ev, ok := g.Move(30, 10, 20, 0)
	if !ok || ev.Type != EventDrag || ev.DeltaX != 20 {
		t.Fatalf("Move() = %+v, %v, want drag with DeltaX 20", ev, ok)
	}
	// Coming back to the start still ends a drag, not a click.
	if _, ok := g.Release(10, 10, 1); ok {
		t.Error("Release() after drag reported a click")
	}
}

func TestGestureIgnoresStrayEvents(t *testing.T) {
	var g Gesture
	if _, ok := g.Move(5, 5, 5, 5); ok {
		t.Error("Move() without press reported a drag")
	}
	if _, ok := g.Release(5, 5, 1); ok {
		t.Error("Release() without press reported a click")
	}

	g.Press(0, 0, 1)
	if _, ok := g.Release(0, 0, 3); ok {
		t.Error("Release() of another button reported a click")
	}
	if _, ok := g.Release(0, 0, 1); !ok {
		t.Error("Release() of pressed button = no click, want click")
	}
}
