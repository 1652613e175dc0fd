package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrNilModule is returned when a nil module is added to a window.
var ErrNilModule = errors.New("ui: nil module")

// ErrNilSlot is returned when a nil slot is wrapped.
var ErrNilSlot = errors.New("ui: nil slot")

// State is the lifecycle state of a Window.
type State uint8

const (
	StateUninitialized State = iota
	StateInitialized
	StateResized
	StateResolutionChanged
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateResized:
		return "resized"
	case StateResolutionChanged:
		return "resolution-changed"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// SlotClickFunc receives clicks on slots that no module consumed. It runs on
// the UI thread; anything touching world state must be scheduled.
type SlotClickFunc func(slot *Slot, button MouseButton)

// Config describes a Window before any module is added.
type Config struct {
	// Width and Height are the base window size in GUI units.
	Width, Height int

	Title          string
	InventoryLabel string
	// Background names a texture drawn at the corner with the base size.
	Background string

	// Extension is shared with modules implementing ExtensionReceiver.
	Extension   Extension
	OnSlotClick SlotClickFunc
	Logger      *slog.Logger
}

type moduleEntry struct {
	module  Module
	region  Region
	hasGood bool
}

// Window composes several modules into one on-screen window. Its box grows
// to enclose every module and all draw, pointer and slot events are routed
// to the module that owns them.
//
// A Window is driven from a single UI goroutine and is not safe for
// concurrent use.
type Window struct {
	entries []moduleEntry
	slots   []*Slot
	proxied map[*Slot]*Slot

	// anchor and base size of the window itself
	cornerX, cornerY      int
	realWidth, realHeight int
	// realized box, possibly grown by modules
	box Region

	screenWidth, screenHeight int

	title          string
	inventoryLabel string
	background     string
	extension      Extension
	onSlotClick    SlotClickFunc
	logger         *slog.Logger

	state     State
	hover     highlight
	lastClick time.Time
	now       func() time.Time
}

// NewWindow creates an uninitialized window with the configured base size.
func NewWindow(cfg Config) *Window {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Window{
		proxied:        make(map[*Slot]*Slot),
		box:            Region{Width: cfg.Width, Height: cfg.Height},
		realWidth:      -1,
		realHeight:     -1,
		title:          cfg.Title,
		inventoryLabel: cfg.InventoryLabel,
		background:     cfg.Background,
		extension:      cfg.Extension,
		onSlotClick:    cfg.OnSlotClick,
		logger:         logger,
		now:            time.Now,
	}
}

// AddModule appends a module. Later modules draw over earlier ones; earlier
// modules win pointer lookups where regions overlap.
func (w *Window) AddModule(m Module) error {
	if m == nil {
		return ErrNilModule
	}
	w.entries = append(w.entries, moduleEntry{module: m})
	if w.state != StateUninitialized && w.state != StateClosed {
		w.updateSubmodule(len(w.entries) - 1)
	}
	return nil
}

// Modules returns the modules in registration order.
func (w *Window) Modules() []Module {
	out := make([]Module, len(w.entries))
	for i, e := range w.entries {
		out[i] = e.module
	}
	return out
}

// ModuleAreas returns the reconciled region of every module.
func (w *Window) ModuleAreas() []Region {
	areas := make([]Region, len(w.entries))
	for i, e := range w.entries {
		areas[i] = e.region
	}
	return areas
}

// AddSlot registers a slot with the window's generic slot routine.
func (w *Window) AddSlot(s *Slot) {
	w.slots = append(w.slots, s)
}

// AddInventory registers every slot of inv.
func (w *Window) AddInventory(inv *Inventory) {
	w.slots = append(w.slots, inv.Slots...)
}

// Wrap registers a proxy for a module-owned slot. A slot can be wrapped
// once per window.
func (w *Window) Wrap(parent *Slot) (*Slot, error) {
	if parent == nil {
		return nil, ErrNilSlot
	}
	parent = parent.Unwrap()
	if _, ok := w.proxied[parent]; ok {
		return nil, fmt.Errorf("wrap slot %d of %q: %w", parent.Index, inventoryName(parent.Inventory()), ErrSlotWrapped)
	}
	proxy := NewProxy(parent)
	w.proxied[parent] = proxy
	w.slots = append(w.slots, proxy)
	return proxy, nil
}

// Slots returns the registered slots.
func (w *Window) Slots() []*Slot {
	return w.slots
}

// State returns the lifecycle state.
func (w *Window) State() State {
	return w.state
}

// Corner returns the window anchor.
func (w *Window) Corner() (x, y int) {
	return w.cornerX, w.cornerY
}

// RealSize returns the base window size used to position modules.
func (w *Window) RealSize() (width, height int) {
	return w.realWidth, w.realHeight
}

// Box returns the realized window box enclosing every module.
func (w *Window) Box() Region {
	return w.box
}

// ToLocal converts absolute GUI coordinates into corner-relative ones.
func (w *Window) ToLocal(x, y int) (int, int) {
	return x - w.cornerX, y - w.cornerY
}

// Init runs the first layout pass for a screen of the given size.
func (w *Window) Init(screenWidth, screenHeight int) {
	if w.state == StateClosed {
		return
	}
	w.layout(screenWidth, screenHeight)
	w.advance(StateInitialized)
}

// Resize relays a screen resize to every module and reconciles the box.
// Modules see the new size before the layout pass so a module that sizes
// itself from the screen is measured at its new size.
func (w *Window) Resize(screenWidth, screenHeight int) {
	if w.state == StateClosed {
		return
	}
	for i := range w.entries {
		m := w.entries[i].module
		w.guard(m, "resize", func() { m.Resize(screenWidth, screenHeight) })
	}
	w.layout(screenWidth, screenHeight)
	w.advance(StateResized)
}

// SetResolution relays a resolution change to every module, shares the
// optional extension and reconciles the box.
func (w *Window) SetResolution(screenWidth, screenHeight int) {
	if w.state == StateClosed {
		return
	}
	for i := range w.entries {
		m := w.entries[i].module
		w.guard(m, "set resolution", func() { m.SetResolution(screenWidth, screenHeight) })
		w.shareExtension(m)
	}
	w.layout(screenWidth, screenHeight)
	w.advance(StateResolutionChanged)
}

// Close moves the window to its terminal state. Later events are ignored.
func (w *Window) Close() {
	w.state = StateClosed
	w.hover.Track(nil)
	w.logger.Debug("window closed", "title", w.title)
}

// Update advances time based effects by dt seconds.
func (w *Window) Update(dt float32) {
	w.hover.Update(dt)
}

func (w *Window) advance(next State) {
	if w.state == StateUninitialized {
		next = StateInitialized
	}
	if w.state != next {
		w.logger.Debug("window state", "from", w.state, "to", next, "box", w.box)
	}
	w.state = next
}

// layout centres the base box on the screen and reconciles every module.
// The box is reset to the base size first so repeated passes never drift.
func (w *Window) layout(screenWidth, screenHeight int) {
	if w.realWidth > -1 {
		w.box.Width = w.realWidth
		w.box.Height = w.realHeight
	}
	w.screenWidth, w.screenHeight = screenWidth, screenHeight
	w.box.Left = (screenWidth - w.box.Width) / 2
	w.box.Top = (screenHeight - w.box.Height) / 2

	w.cornerX, w.cornerY = w.box.Left, w.box.Top
	w.realWidth, w.realHeight = w.box.Width, w.box.Height

	for i := range w.entries {
		w.updateSubmodule(i)
	}
}

// updateSubmodule positions one module against the corner and grows the box
// to enclose it. A region with a negative size falls back to the module's
// last good region.
func (w *Window) updateSubmodule(i int) {
	e := &w.entries[i]
	m := e.module

	var r Region
	ok := w.guard(m, "update position", func() {
		m.UpdatePosition(w.cornerX, w.cornerY, w.realWidth, w.realHeight)
		r = m.Region()
	})
	if !ok || !r.Valid() {
		if ok {
			w.logger.Warn("module reported invalid region", "module", moduleName(m), "region", r)
		}
		if !e.hasGood {
			return
		}
		r = e.region
	} else {
		e.region = r
		e.hasGood = true
	}

	w.box.ExtendToInclude(r)
}

func (w *Window) shareExtension(m Module) {
	if w.extension == nil {
		return
	}
	rcv, ok := m.(ExtensionReceiver)
	if !ok {
		return
	}
	w.guard(m, "receive extension", func() { rcv.ReceiveExtension(w.extension) })
}

// overrideGeometry swaps the realized box for view and returns the function
// restoring it. Use as: defer w.overrideGeometry(view)().
func (w *Window) overrideGeometry(view Region) (restore func()) {
	saved := w.box
	w.box = view
	return func() { w.box = saved }
}

// guard runs fn and recovers a module panic, reporting false instead.
func (w *Window) guard(m Module, op string, fn func()) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			w.logger.Error("module handler failed", "op", op, "module", moduleName(m), "panic", rec)
			ok = false
		}
	}()
	fn()
	return true
}

func moduleName(m Module) string {
	if n, ok := m.(fmt.Stringer); ok {
		return n.String()
	}
	return fmt.Sprintf("%T", m)
}

func inventoryName(inv *Inventory) string {
	if inv == nil {
		return ""
	}
	return inv.Name
}
