package ui

// accepting reports whether the window takes input and draw events.
func (w *Window) accepting() bool {
	return w.state != StateUninitialized && w.state != StateClosed
}

// ModuleAt returns the first module, in registration order, whose region
// contains the corner-relative point (x, y). Nil means the base window.
func (w *Window) ModuleAt(x, y int) Module {
	ax, ay := x+w.cornerX, y+w.cornerY
	for _, e := range w.entries {
		if e.hasGood && e.region.Contains(ax, ay) {
			return e.module
		}
	}
	return nil
}

// ModuleForSlot returns the module owning the slot's inventory. Ownership
// follows inventory identity only, never the slot's position.
func (w *Window) ModuleForSlot(slot *Slot) Module {
	if slot == nil {
		return nil
	}
	return w.ModuleForInventory(slot.Inventory())
}

// ModuleForInventory returns the module whose inventory is inv.
func (w *Window) ModuleForInventory(inv *Inventory) Module {
	if inv == nil {
		return nil
	}
	for _, e := range w.entries {
		if e.module.Inventory() == inv {
			return e.module
		}
	}
	return nil
}

// PointerDown routes a press at corner-relative (x, y). It reports whether
// the window handled it.
func (w *Window) PointerDown(x, y int, button MouseButton) bool {
	if !w.accepting() {
		return false
	}
	w.lastClick = w.now()
	ax, ay := x+w.cornerX, y+w.cornerY

	if m := w.ModuleAt(x, y); m != nil {
		if w.dispatch(m, "pointer down", func() bool { return m.PointerDown(ax, ay, button) }) {
			return true
		}
	}

	slot := w.SlotAt(ax, ay)
	if slot == nil {
		return false
	}
	if w.onSlotClick != nil {
		w.onSlotClick(slot.Unwrap(), button)
	}
	return true
}

// PointerMove routes a drag at corner-relative (x, y).
func (w *Window) PointerMove(x, y int, button MouseButton) bool {
	if !w.accepting() {
		return false
	}
	since := w.now().Sub(w.lastClick)
	ax, ay := x+w.cornerX, y+w.cornerY

	if m := w.ModuleAt(x, y); m != nil {
		if w.dispatch(m, "pointer move", func() bool { return m.PointerMove(ax, ay, button, since) }) {
			return true
		}
	}
	return false
}

// PointerUp routes a release at corner-relative (x, y).
func (w *Window) PointerUp(x, y int, button MouseButton) bool {
	if !w.accepting() {
		return false
	}
	ax, ay := x+w.cornerX, y+w.cornerY

	if m := w.ModuleAt(x, y); m != nil {
		if w.dispatch(m, "pointer up", func() bool { return m.PointerUp(ax, ay, button) }) {
			return true
		}
	}
	return false
}

// dispatch calls a module handler; a panicking handler did not consume.
func (w *Window) dispatch(m Module, op string, fn func() bool) bool {
	var consumed bool
	if !w.guard(m, op, func() { consumed = fn() }) {
		return false
	}
	return consumed
}

// IsPointInRegion tests an absolute point against a corner-relative
// rectangle with the same one unit margin as Region.Contains.
func (w *Window) IsPointInRegion(left, top, width, height, x, y int) bool {
	x -= w.cornerX
	y -= w.cornerY
	return Region{Left: left, Top: top, Width: width, Height: height}.Contains(x, y)
}

// IsMouseOverSlot reports whether the absolute point (x, y) is over slot.
// Slots hidden by their module never report hover.
func (w *Window) IsMouseOverSlot(slot *Slot, x, y int) bool {
	if !w.slotVisible(slot) {
		return false
	}
	slot.Sync()
	return w.IsPointInRegion(slot.X, slot.Y, SlotSize, SlotSize, x, y)
}

// SlotAt returns the first visible slot under the absolute point (x, y).
func (w *Window) SlotAt(x, y int) *Slot {
	for _, s := range w.slots {
		if w.IsMouseOverSlot(s, x, y) {
			return s
		}
	}
	return nil
}

// HidesPanel reports whether any module overlaps area, so an external
// overlay can keep out of the way.
func (w *Window) HidesPanel(area Region) bool {
	for _, e := range w.entries {
		if e.hasGood && e.region.Overlaps(area) {
			return true
		}
	}
	return false
}

// slotVisible asks the owning module, if any, whether slot is shown.
// A failing module leaves the slot visible.
func (w *Window) slotVisible(slot *Slot) bool {
	m := w.ModuleForSlot(slot)
	if m == nil {
		return true
	}
	visible := true
	w.guard(m, "should draw slot", func() { visible = m.ShouldDrawSlot(slot.Unwrap()) })
	return visible
}
