package input

// ClickSlop is how far, in pixels, the pointer may travel between press and
// release and still count as a click.
const ClickSlop = 4

// Gesture separates clicks from drags for a single pointer.
// The zero value is ready to use.
type Gesture struct {
	down     bool
	button   uint8
	startX   int
	startY   int
	dragging bool
}

// Press records a button press.
func (g *Gesture) Press(x, y int, button uint8) {
	if g.down {
		return
	}
	*g = Gesture{down: true, button: button, startX: x, startY: y}
}

// Move reports a drag event once the pointer has left the click slop.
func (g *Gesture) Move(x, y, dx, dy int) (Event, bool) {
	if !g.down {
		return Event{}, false
	}
	if !g.dragging && !within(x-g.startX, y-g.startY) {
		g.dragging = true
	}
	if !g.dragging {
		return Event{}, false
	}
	return Event{Type: EventDrag, MouseX: x, MouseY: y, DeltaX: dx, DeltaY: dy, Button: g.button}, true
}

// Release ends the gesture and reports a click if the pointer never dragged.
func (g *Gesture) Release(x, y int, button uint8) (Event, bool) {
	if !g.down || button != g.button {
		return Event{}, false
	}
	click := !g.dragging && within(x-g.startX, y-g.startY)
	*g = Gesture{}
	if !click {
		return Event{}, false
	}
	return Event{Type: EventClick, MouseX: x, MouseY: y, Button: button}, true
}

func within(dx, dy int) bool {
	return dx*dx+dy*dy <= ClickSlop*ClickSlop
}
