package ui

import (
	"image/color"
	"time"
)

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Module is a self-contained rectangular UI unit composed into a Window.
// All pointer coordinates handed to a Module are absolute GUI coordinates.
type Module interface {
	// UpdatePosition recomputes the module's absolute region from the
	// window's corner and real size. It must be idempotent.
	UpdatePosition(cornerX, cornerY, windowWidth, windowHeight int)
	Region() Region
	// Inventory identifies the slot collection the module owns, or nil.
	Inventory() *Inventory

	DrawBackground(r Renderer, partialTick float64, pointerX, pointerY int)
	// DrawForeground is called with the renderer translated to the
	// module's top-left corner.
	DrawForeground(r Renderer, pointerX, pointerY int)

	// Pointer handlers return true when the event was consumed.
	PointerDown(x, y int, button MouseButton) bool
	PointerMove(x, y int, button MouseButton, sinceClick time.Duration) bool
	PointerUp(x, y int, button MouseButton) bool

	// ShouldDrawSlot lets a module hide one of its own slots from drawing
	// and hit testing.
	ShouldDrawSlot(slot *Slot) bool

	Resize(width, height int)
	SetResolution(width, height int)
}

// Extension is an optional integration shared with modules that ask for it,
// such as an external item list overlay.
type Extension interface {
	Name() string
}

// ExtensionReceiver is implemented by modules that want the window's
// Extension. Modules that do not implement it are skipped.
type ExtensionReceiver interface {
	ReceiveExtension(ext Extension)
}

// Renderer is the drawing surface provided by the host. Coordinates are GUI
// units, offset by the current translation.
type Renderer interface {
	BindTexture(name string)
	// DrawTexturedRect draws the (u, v, width, height) area of the bound
	// texture at (x, y).
	DrawTexturedRect(x, y, u, v, width, height int)
	FillRect(area Region, c color.Color)
	// FillTriangles fills indexed triangles given as flat x,y pairs.
	FillTriangles(vertices []float32, indices []uint16, c color.Color)
	DrawString(s string, x, y int, c color.Color)
	// DrawSlot is the generic slot routine: slot frame and item at the
	// slot's own position.
	DrawSlot(slot *Slot)

	PushTranslate(dx, dy int)
	PopTranslate()
}

// Translated runs fn with r translated by (dx, dy). The translation is popped
// on every exit path, including panics.
func Translated(r Renderer, dx, dy int, fn func()) {
	r.PushTranslate(dx, dy)
	defer r.PopTranslate()
	fn()
}

// RGB converts a 0xRRGGBB value into an opaque color.
func RGB(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}
