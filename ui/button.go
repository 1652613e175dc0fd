package ui

import (
	"image/color"
)

// Widget is an interactive element inside a module. Coordinates are local
// to the module's top-left corner.
type Widget interface {
	Bounds() Region
	Draw(r Renderer)
	// HandleInput reports whether the widget took the pointer event.
	HandleInput(x, y int, pressed bool) bool
}

var _ Widget = (*Button)(nil)

type Button struct {
	x, y          int
	width, height int
	text          string
	onClick       func()

	// State
	isHovered bool
	isPressed bool
	disabled  bool
}

func NewButton(x, y, width, height int, text string, onClick func()) *Button {
	return &Button{
		x:       x,
		y:       y,
		width:   width,
		height:  height,
		text:    text,
		onClick: onClick,
	}
}

// SetDisabled greys the button out and stops it from taking input.
func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
	if disabled {
		b.isPressed = false
		b.isHovered = false
	}
}

func (b *Button) Draw(r Renderer) {
	// Colors
	var bgColor color.Color
	switch {
	case b.disabled:
		bgColor = color.RGBA{60, 60, 60, 255}
	case b.isPressed:
		bgColor = color.RGBA{100, 100, 100, 255}
	case b.isHovered:
		bgColor = color.RGBA{180, 180, 180, 255}
	default:
		bgColor = color.RGBA{150, 150, 150, 255}
	}

	bounds := b.Bounds()
	r.FillRect(bounds, bgColor)
	_ = DrawFrame(r, bounds, 1, color.Black)

	if b.text != "" {
		r.DrawString(b.text, b.x+3, b.y+(b.height-8)/2, color.White)
	}
}

func (b *Button) HandleInput(x, y int, pressed bool) bool {
	if b.disabled {
		return false
	}
	// Check if point is within button bounds
	if b.Bounds().ContainsMargin(x, y, 0) {
		b.isHovered = true

		if pressed {
			b.isPressed = true
		} else if b.isPressed {
			b.isPressed = false
			if b.onClick != nil {
				b.onClick()
			}
		}
		return true
	}

	b.isHovered = false
	b.isPressed = false
	return false
}

func (b *Button) Bounds() Region {
	return Region{
		Left:   b.x,
		Top:    b.y,
		Width:  b.width,
		Height: b.height,
	}
}
