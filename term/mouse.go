package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/OpticalFlyer/modwin/ui"
)

// PointerKind tags a pointer event.
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// PointerEvent is a mouse transition in GUI units.
type PointerEvent struct {
	Kind   PointerKind
	X, Y   int
	Button ui.MouseButton
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button ui.MouseButton
}{
	{tcell.ButtonPrimary, ui.MouseButtonLeft},
	{tcell.ButtonSecondary, ui.MouseButtonRight},
	{tcell.ButtonMiddle, ui.MouseButtonMiddle},
}

// Mouse turns tcell's button state snapshots into press, drag and release
// transitions.
type Mouse struct {
	held       tcell.ButtonMask
	lastX      int
	lastY      int
	toGUI      func(cx, cy int) (int, int)
	positioned bool
}

// NewMouse creates a tracker converting cells with toGUI.
func NewMouse(toGUI func(cx, cy int) (int, int)) *Mouse {
	return &Mouse{toGUI: toGUI}
}

// Position returns the last pointer position in GUI units.
func (m *Mouse) Position() (int, int) {
	return m.lastX, m.lastY
}

// Translate returns the transitions ev represents. Releases are reported
// before presses.
func (m *Mouse) Translate(ev *tcell.EventMouse) []PointerEvent {
	cx, cy := ev.Position()
	x, y := m.toGUI(cx, cy)
	moved := !m.positioned || x != m.lastX || y != m.lastY
	m.lastX, m.lastY, m.positioned = x, y, true

	now := ev.Buttons() & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
	var out []PointerEvent

	for _, b := range mouseButtons {
		if m.held&b.mask != 0 && now&b.mask == 0 {
			out = append(out, PointerEvent{Kind: PointerUp, X: x, Y: y, Button: b.button})
		}
	}
	for _, b := range mouseButtons {
		if m.held&b.mask == 0 && now&b.mask != 0 {
			out = append(out, PointerEvent{Kind: PointerDown, X: x, Y: y, Button: b.button})
		}
	}
	if len(out) == 0 && moved && now != 0 {
		for _, b := range mouseButtons {
			if now&b.mask != 0 {
				out = append(out, PointerEvent{Kind: PointerMove, X: x, Y: y, Button: b.button})
				break
			}
		}
	}

	m.held = now
	return out
}
