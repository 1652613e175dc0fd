package ui

import "image/color"

const (
	labelColor      = 0x404040
	labelX          = 8
	titleY          = 6
	inventoryOffset = 96 - 2
	tooltipOffset   = 12
)

// DrawFrame draws the whole window for one frame. The pointer is
// corner-relative, as for the pointer handlers.
func (w *Window) DrawFrame(r Renderer, pointerX, pointerY int, partialTick float64) {
	if !w.accepting() {
		return
	}
	ax, ay := pointerX+w.cornerX, pointerY+w.cornerY

	// Draw against the base box; modules outside it were already placed.
	defer w.overrideGeometry(Region{
		Left:   w.cornerX,
		Top:    w.cornerY,
		Width:  w.realWidth,
		Height: w.realHeight,
	})()

	w.drawBackgroundLayer(r, partialTick, ax, ay)

	Translated(r, w.box.Left, w.box.Top, func() {
		var hovered *Slot
		for _, s := range w.slots {
			w.drawSlot(r, s)
			if hovered == nil && w.IsMouseOverSlot(s, ax, ay) {
				hovered = s
			}
		}
		w.hover.Track(hovered)
		w.drawHighlight(r)
		w.drawForegroundLayer(r, ax, ay)
	})

	w.drawTooltip(r, ax, ay)
}

func (w *Window) drawBackgroundLayer(r Renderer, partialTick float64, x, y int) {
	if w.background != "" {
		r.BindTexture(w.background)
		r.DrawTexturedRect(w.cornerX, w.cornerY, 0, 0, w.realWidth, w.realHeight)
	}
	for _, e := range w.entries {
		m := e.module
		w.guard(m, "draw background", func() { m.DrawBackground(r, partialTick, x, y) })
	}
}

// drawForegroundLayer runs translated to the box corner. Each module draws
// in its own local space.
func (w *Window) drawForegroundLayer(r Renderer, x, y int) {
	if w.title != "" {
		r.DrawString(w.title, labelX, titleY, RGB(labelColor))
	}
	if w.inventoryLabel != "" {
		r.DrawString(w.inventoryLabel, labelX, w.box.Height-inventoryOffset, RGB(labelColor))
	}

	for _, e := range w.entries {
		if !e.hasGood {
			continue
		}
		m, area := e.module, e.region
		Translated(r, -w.box.Left, -w.box.Top, func() {
			Translated(r, area.Left, area.Top, func() {
				w.guard(m, "draw foreground", func() { m.DrawForeground(r, x, y) })
			})
		})
	}
}

// drawSlot hides slots their module suppresses and moves proxies onto their
// parent before handing the slot to the generic routine.
func (w *Window) drawSlot(r Renderer, s *Slot) {
	if !w.slotVisible(s) {
		return
	}
	s.Sync()
	r.DrawSlot(s)
}

func (w *Window) drawHighlight(r Renderer) {
	s := w.hover.slot
	if s == nil {
		return
	}
	a := uint8(w.hover.Alpha() * highlightAlpha)
	if a == 0 {
		return
	}
	area := Region{Left: s.X, Top: s.Y, Width: SlotSize, Height: SlotSize}
	if err := DrawFrame(r, area, highlightWidth, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: a}); err != nil {
		w.logger.Debug("slot highlight skipped", "slot", s.Index, "err", err)
	}
}

func (w *Window) drawTooltip(r Renderer, x, y int) {
	s := w.hover.slot
	if s == nil || s.Stack() == "" {
		return
	}
	r.DrawString(s.Stack(), x+tooltipOffset, y-tooltipOffset, color.White)
}

// HoveredSlot returns the slot highlighted by the last frame.
func (w *Window) HoveredSlot() *Slot {
	return w.hover.slot
}
