package ui

import "errors"

// SlotSize is the edge length of a slot in GUI units.
const SlotSize = 16

// ErrSlotWrapped is returned when a slot already has a proxy in the window.
var ErrSlotWrapped = errors.New("ui: slot already wrapped by a proxy")

// Inventory is a slot collection. Its pointer is the identity used to decide
// which module owns a slot.
type Inventory struct {
	Name  string
	Slots []*Slot
}

// NewInventory creates an empty inventory.
func NewInventory(name string) *Inventory {
	return &Inventory{Name: name}
}

// AddSlot creates a slot at (x, y) relative to the window corner and appends it.
func (inv *Inventory) AddSlot(x, y int) *Slot {
	s := NewSlot(inv, len(inv.Slots), x, y)
	inv.Slots = append(inv.Slots, s)
	return s
}

// SlotKind tags the slot variant.
type SlotKind uint8

const (
	SlotPlain SlotKind = iota
	SlotProxy
)

// Slot is an item slot. X and Y are relative to the window corner.
//
// A proxy slot mirrors a parent slot owned by a module so the window's
// generic slot routine can draw it. The proxy never owns the parent.
type Slot struct {
	Index int
	X, Y  int
	Item  string

	inventory *Inventory
	parent    *Slot
}

// NewSlot creates a plain slot in inv.
func NewSlot(inv *Inventory, index, x, y int) *Slot {
	return &Slot{Index: index, X: x, Y: y, inventory: inv}
}

// NewProxy creates a proxy for parent positioned where the parent is now.
func NewProxy(parent *Slot) *Slot {
	return &Slot{Index: parent.Index, X: parent.X, Y: parent.Y, parent: parent}
}

// Kind reports whether s is a plain slot or a proxy.
func (s *Slot) Kind() SlotKind {
	if s.parent != nil {
		return SlotProxy
	}
	return SlotPlain
}

// Unwrap returns the parent of a proxy, or s itself.
func (s *Slot) Unwrap() *Slot {
	if s.parent != nil {
		return s.parent
	}
	return s
}

// Inventory returns the owning inventory. Proxies forward the parent's.
func (s *Slot) Inventory() *Inventory {
	return s.Unwrap().inventory
}

// Stack returns the item shown in the slot.
func (s *Slot) Stack() string {
	return s.Unwrap().Item
}

// Sync copies the parent's current position into a proxy.
func (s *Slot) Sync() {
	if s.parent == nil {
		return
	}
	s.X = s.parent.X
	s.Y = s.parent.Y
}
