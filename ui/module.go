package ui

import (
	"image/color"
	"time"
)

// Anchor selects the window edge a module is positioned against.
type Anchor int

const (
	// AnchorInside offsets the module from the window corner.
	AnchorInside Anchor = iota
	// AnchorLeft places the module's right edge at the window's left edge.
	AnchorLeft
	// AnchorRight places the module's left edge at the window's right edge.
	AnchorRight
	// AnchorTop places the module's bottom edge at the window's top edge.
	AnchorTop
	// AnchorBottom places the module's top edge at the window's bottom edge.
	AnchorBottom
)

type slotPlacement struct {
	slot *Slot
	x, y int
}

type anchorArgs struct {
	cornerX, cornerY int
	width, height    int
}

var _ Module = (*BaseModule)(nil)

// BaseModule implements Module for a rectangular area with slots and widgets.
// Concrete modules embed it and override what they need.
type BaseModule struct {
	Name             string
	OffsetX, OffsetY int
	Width, Height    int
	Anchor           Anchor

	// Background fills the region when set.
	Background color.Color
	// Texture is drawn over the region from its top-left texel when set.
	Texture     string
	Border      int
	BorderColor color.Color

	inventory *Inventory
	slots     []slotPlacement
	hidden    map[*Slot]bool
	widgets   []Widget

	region       Region
	anchor       anchorArgs
	anchored     bool
	screenWidth  int
	screenHeight int
}

// NewBaseModule creates a module of the given size placed against anchor.
func NewBaseModule(name string, offsetX, offsetY, width, height int, anchor Anchor) *BaseModule {
	return &BaseModule{
		Name:        name,
		OffsetX:     offsetX,
		OffsetY:     offsetY,
		Width:       width,
		Height:      height,
		Anchor:      anchor,
		BorderColor: color.Black,
		inventory:   NewInventory(name),
		hidden:      make(map[*Slot]bool),
	}
}

func (m *BaseModule) String() string {
	return m.Name
}

// UpdatePosition derives the absolute region from the window anchor. Owned
// slots follow the module.
func (m *BaseModule) UpdatePosition(cornerX, cornerY, windowWidth, windowHeight int) {
	m.anchor = anchorArgs{cornerX: cornerX, cornerY: cornerY, width: windowWidth, height: windowHeight}
	m.anchored = true

	left := cornerX + m.OffsetX
	top := cornerY + m.OffsetY
	switch m.Anchor {
	case AnchorLeft:
		left = cornerX - m.Width + m.OffsetX
	case AnchorRight:
		left = cornerX + windowWidth + m.OffsetX
	case AnchorTop:
		top = cornerY - m.Height + m.OffsetY
	case AnchorBottom:
		top = cornerY + windowHeight + m.OffsetY
	}
	m.region = Region{Left: left, Top: top, Width: m.Width, Height: m.Height}

	for _, p := range m.slots {
		p.slot.X = left - cornerX + p.x
		p.slot.Y = top - cornerY + p.y
	}
}

func (m *BaseModule) Region() Region {
	return m.region
}

func (m *BaseModule) Inventory() *Inventory {
	return m.inventory
}

// PlaceSlot adds a slot to the module's inventory at module-local (x, y).
func (m *BaseModule) PlaceSlot(x, y int) *Slot {
	s := m.inventory.AddSlot(x, y)
	m.slots = append(m.slots, slotPlacement{slot: s, x: x, y: y})
	if m.anchored {
		m.UpdatePosition(m.anchor.cornerX, m.anchor.cornerY, m.anchor.width, m.anchor.height)
	}
	return s
}

// MoveSlot changes the module-local position of a placed slot.
func (m *BaseModule) MoveSlot(s *Slot, x, y int) {
	for i := range m.slots {
		if m.slots[i].slot == s {
			m.slots[i].x, m.slots[i].y = x, y
		}
	}
	if m.anchored {
		m.UpdatePosition(m.anchor.cornerX, m.anchor.cornerY, m.anchor.width, m.anchor.height)
	}
}

// HideSlot hides or shows one of the module's slots.
func (m *BaseModule) HideSlot(s *Slot, hidden bool) {
	if hidden {
		m.hidden[s] = true
		return
	}
	delete(m.hidden, s)
}

// AddWidget appends a widget drawn in module-local space.
func (m *BaseModule) AddWidget(w Widget) {
	m.widgets = append(m.widgets, w)
}

// ToLocal converts absolute GUI coordinates into module-local ones.
func (m *BaseModule) ToLocal(x, y int) (int, int) {
	return x - m.region.Left, y - m.region.Top
}

// ScreenSize returns the last screen size relayed to the module.
func (m *BaseModule) ScreenSize() (int, int) {
	return m.screenWidth, m.screenHeight
}

func (m *BaseModule) DrawBackground(r Renderer, partialTick float64, pointerX, pointerY int) {
	if m.Background != nil {
		r.FillRect(m.region, m.Background)
	}
	if m.Texture != "" {
		r.BindTexture(m.Texture)
		r.DrawTexturedRect(m.region.Left, m.region.Top, 0, 0, m.region.Width, m.region.Height)
	}
	if m.Border > 0 {
		_ = DrawFrame(r, m.region, m.Border, m.BorderColor)
	}
}

func (m *BaseModule) DrawForeground(r Renderer, pointerX, pointerY int) {
	for _, w := range m.widgets {
		w.Draw(r)
	}
}

func (m *BaseModule) PointerDown(x, y int, button MouseButton) bool {
	if button != MouseButtonLeft {
		return false
	}
	return m.widgetInput(x, y, true)
}

func (m *BaseModule) PointerMove(x, y int, button MouseButton, sinceClick time.Duration) bool {
	return false
}

func (m *BaseModule) PointerUp(x, y int, button MouseButton) bool {
	if button != MouseButtonLeft {
		return false
	}
	return m.widgetInput(x, y, false)
}

func (m *BaseModule) widgetInput(x, y int, pressed bool) bool {
	lx, ly := m.ToLocal(x, y)
	consumed := false
	for _, w := range m.widgets {
		if w.HandleInput(lx, ly, pressed) {
			consumed = true
		}
	}
	return consumed
}

func (m *BaseModule) ShouldDrawSlot(slot *Slot) bool {
	return !m.hidden[slot]
}

func (m *BaseModule) Resize(width, height int) {
	m.SetResolution(width, height)
}

// SetResolution records the screen size and re-derives the region from the
// last anchor.
func (m *BaseModule) SetResolution(width, height int) {
	m.screenWidth, m.screenHeight = width, height
	if m.anchored {
		m.UpdatePosition(m.anchor.cornerX, m.anchor.cornerY, m.anchor.width, m.anchor.height)
	}
}
