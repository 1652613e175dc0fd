package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	highlightFade  = 0.15 // seconds
	highlightAlpha = 0x80
	highlightWidth = 1
)

// highlight fades in an outline over the hovered slot.
type highlight struct {
	slot  *Slot
	tween *gween.Tween
	alpha float32
}

// Track points the highlight at slot, restarting the fade when it changes.
func (h *highlight) Track(slot *Slot) {
	if slot == h.slot {
		return
	}
	h.slot = slot
	h.alpha = 0
	if slot == nil {
		h.tween = nil
		return
	}
	h.tween = gween.New(0, 1, highlightFade, ease.OutQuad)
}

// Update advances the fade by dt seconds.
func (h *highlight) Update(dt float32) {
	if h.tween == nil {
		return
	}
	val, done := h.tween.Update(dt)
	h.alpha = val
	if done {
		h.alpha = 1
		h.tween = nil
	}
}

// Alpha returns the current opacity in [0, 1].
func (h *highlight) Alpha() float32 {
	return h.alpha
}
