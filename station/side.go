package station

import (
	"github.com/OpticalFlyer/modwin/layout"
	"github.com/OpticalFlyer/modwin/ui"
)

const (
	sidePadding  = 4
	scrollHeight = 12
)

// SideInventory is a scrollable slot grid, usually hung off a window edge.
// Rows scrolled out of view are hidden from the window.
type SideInventory struct {
	*ui.BaseModule

	slots   []*ui.Slot
	rows    int
	cols    int
	visible int
	scroll  int

	up   *ui.Button
	down *ui.Button
}

// NewSideInventory builds a side inventory from spec. A missing row or
// column count falls back to 1.
func NewSideInventory(spec layout.ModuleSpec, anchor ui.Anchor) *SideInventory {
	s := &SideInventory{
		BaseModule: ui.NewBaseModule(spec.Name, spec.X, spec.Y, spec.Width, spec.Height, anchor),
		rows:       max(spec.Rows, 1),
		cols:       max(spec.Columns, 1),
	}
	s.Texture = spec.Texture
	s.Background = ui.RGB(0xc6c6c6)
	s.Border = 1

	s.visible = (spec.Height - 2*sidePadding - scrollHeight) / slotPitch
	s.visible = min(max(s.visible, 1), s.rows)

	for i := 0; i < s.rows*s.cols; i++ {
		s.slots = append(s.slots, s.PlaceSlot(0, 0))
	}

	half := (spec.Width - 2*sidePadding) / 2
	buttonY := spec.Height - sidePadding - scrollHeight
	s.up = ui.NewButton(sidePadding, buttonY, half, scrollHeight, "^", func() { s.Scroll(-1) })
	s.down = ui.NewButton(sidePadding+half, buttonY, half, scrollHeight, "v", func() { s.Scroll(1) })
	s.AddWidget(s.up)
	s.AddWidget(s.down)

	s.arrange()
	return s
}

// Slots returns every slot, visible or not, in row-major order.
func (s *SideInventory) Slots() []*ui.Slot {
	return s.slots
}

// Offset returns the first visible row.
func (s *SideInventory) Offset() int {
	return s.scroll
}

// VisibleRows returns how many rows fit in the module.
func (s *SideInventory) VisibleRows() int {
	return s.visible
}

// Scroll moves the view by delta rows, clamped to the content.
func (s *SideInventory) Scroll(delta int) {
	next := min(max(s.scroll+delta, 0), s.rows-s.visible)
	if next == s.scroll {
		return
	}
	s.scroll = next
	s.arrange()
}

func (s *SideInventory) arrange() {
	for i, slot := range s.slots {
		row, col := i/s.cols, i%s.cols
		shown := row - s.scroll
		hidden := shown < 0 || shown >= s.visible
		s.HideSlot(slot, hidden)
		if hidden {
			shown = 0
		}
		s.MoveSlot(slot, sidePadding+col*slotPitch, sidePadding+shown*slotPitch)
	}
	s.up.SetDisabled(s.scroll == 0)
	s.down.SetDisabled(s.scroll >= s.rows-s.visible)
}
