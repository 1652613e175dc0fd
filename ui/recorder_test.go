package ui

import (
	"fmt"
	"image/color"
	"time"
)

// recorder is a Renderer that logs every call with absolute coordinates.
type recorder struct {
	ops     []string
	stack   [][2]int
	tx, ty  int
	slots   []*Slot
	slotPos [][2]int
	panicOn string
}

func (r *recorder) log(format string, args ...any) {
	op := fmt.Sprintf(format, args...)
	r.ops = append(r.ops, op)
	if r.panicOn != "" && op == r.panicOn {
		panic("recorder: " + op)
	}
}

func (r *recorder) BindTexture(name string) { r.log("bind %s", name) }

func (r *recorder) DrawTexturedRect(x, y, u, v, width, height int) {
	r.log("texture %d,%d %dx%d", x+r.tx, y+r.ty, width, height)
}

func (r *recorder) FillRect(area Region, c color.Color) {
	r.log("fill %d,%d %dx%d", area.Left+r.tx, area.Top+r.ty, area.Width, area.Height)
}

func (r *recorder) FillTriangles(vertices []float32, indices []uint16, c color.Color) {
	r.log("triangles %d", len(indices)/3)
}

func (r *recorder) DrawString(s string, x, y int, c color.Color) {
	r.log("string %q %d,%d", s, x+r.tx, y+r.ty)
}

func (r *recorder) DrawSlot(slot *Slot) {
	r.slots = append(r.slots, slot)
	r.slotPos = append(r.slotPos, [2]int{slot.X, slot.Y})
	r.log("slot %d %d,%d", slot.Index, slot.X+r.tx, slot.Y+r.ty)
}

func (r *recorder) PushTranslate(dx, dy int) {
	r.stack = append(r.stack, [2]int{r.tx, r.ty})
	r.tx += dx
	r.ty += dy
}

func (r *recorder) PopTranslate() {
	last := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.tx, r.ty = last[0], last[1]
}

func (r *recorder) has(op string) bool {
	return r.index(op) >= 0
}

func (r *recorder) index(op string) int {
	for i, o := range r.ops {
		if o == op {
			return i
		}
	}
	return -1
}

// stubModule sits at a fixed offset from the window corner and records the
// events it receives.
type stubModule struct {
	name          string
	dx, dy        int
	width, height int
	inv           *Inventory

	consume  bool
	panicOn  string
	hidden   map[*Slot]bool
	received []string
	ext      Extension

	region Region
}

func newStub(name string, dx, dy, width, height int) *stubModule {
	return &stubModule{
		name:    name,
		dx:      dx,
		dy:      dy,
		width:   width,
		height:  height,
		inv:     NewInventory(name),
		consume: true,
		hidden:  make(map[*Slot]bool),
	}
}

func (m *stubModule) String() string { return m.name }

func (m *stubModule) maybePanic(op string) {
	if m.panicOn == op {
		panic(m.name + " failed in " + op)
	}
}

func (m *stubModule) UpdatePosition(cornerX, cornerY, windowWidth, windowHeight int) {
	m.maybePanic("update")
	m.region = Region{Left: cornerX + m.dx, Top: cornerY + m.dy, Width: m.width, Height: m.height}
}

func (m *stubModule) Region() Region        { return m.region }
func (m *stubModule) Inventory() *Inventory { return m.inv }

func (m *stubModule) DrawBackground(r Renderer, partialTick float64, pointerX, pointerY int) {
	m.maybePanic("background")
	r.FillRect(m.region, color.Black)
}

func (m *stubModule) DrawForeground(r Renderer, pointerX, pointerY int) {
	m.maybePanic("foreground")
	r.DrawString(m.name, 0, 0, color.Black)
}

func (m *stubModule) PointerDown(x, y int, button MouseButton) bool {
	m.maybePanic("down")
	m.received = append(m.received, fmt.Sprintf("down %d,%d", x, y))
	return m.consume
}

func (m *stubModule) PointerMove(x, y int, button MouseButton, sinceClick time.Duration) bool {
	m.maybePanic("move")
	m.received = append(m.received, fmt.Sprintf("move %d,%d", x, y))
	return m.consume
}

func (m *stubModule) PointerUp(x, y int, button MouseButton) bool {
	m.maybePanic("up")
	m.received = append(m.received, fmt.Sprintf("up %d,%d", x, y))
	return m.consume
}

func (m *stubModule) ShouldDrawSlot(slot *Slot) bool {
	m.maybePanic("should draw")
	return !m.hidden[slot]
}

func (m *stubModule) Resize(width, height int) {
	m.received = append(m.received, fmt.Sprintf("resize %dx%d", width, height))
}

func (m *stubModule) SetResolution(width, height int) {
	m.received = append(m.received, fmt.Sprintf("resolution %dx%d", width, height))
}

type receivingStub struct {
	*stubModule
}

func (m receivingStub) ReceiveExtension(ext Extension) { m.ext = ext }

type namedExtension string

func (e namedExtension) Name() string { return string(e) }
