// Package station builds the demo crafting station: a base window holding
// the player inventory, composed with the modules a layout file describes.
package station

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/OpticalFlyer/modwin/layout"
	"github.com/OpticalFlyer/modwin/sched"
	"github.com/OpticalFlyer/modwin/ui"
)

const (
	playerColumns = 9
	playerRows    = 3
)

// Station is an open crafting station window and the state behind it.
//
// Slot contents are only changed by actions running on the scheduler's
// owner thread.
type Station struct {
	Window *ui.Window
	Player *ui.Inventory

	Crafting []*Crafting
	Sides    []*SideInventory
	Tools    []*Tools

	held      string
	scheduler sched.Scheduler
	logger    *slog.Logger
}

// Open builds the station window described by cfg. The window is not
// initialized; the host calls Init once it knows the screen size.
func Open(cfg *layout.Config, scheduler sched.Scheduler, logger *slog.Logger) (*Station, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("open station: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	st := &Station{
		Player:    NewPlayerInventory(cfg.Window.Height),
		scheduler: scheduler,
		logger:    logger,
	}
	st.Window = ui.NewWindow(ui.Config{
		Width:          cfg.Window.Width,
		Height:         cfg.Window.Height,
		Title:          cfg.Window.Title,
		InventoryLabel: cfg.Window.InventoryLabel,
		Background:     cfg.Window.Background,
		Extension:      DefaultRecipes(),
		OnSlotClick:    st.click,
		Logger:         logger,
	})
	st.Window.AddInventory(st.Player)

	for _, spec := range cfg.Modules {
		anchor, err := layout.ParseAnchor(spec.Anchor)
		if err != nil {
			return nil, fmt.Errorf("open station: module %q: %w", spec.Name, err)
		}

		var m ui.Module
		switch spec.Kind {
		case layout.KindCrafting:
			c := NewCrafting(spec, anchor)
			st.Crafting = append(st.Crafting, c)
			m = c
		case layout.KindSideInventory:
			s := NewSideInventory(spec, anchor)
			st.Sides = append(st.Sides, s)
			m = s
		case layout.KindTools:
			t := NewTools(spec, anchor, scheduler,
				Action{Label: "Clear", Run: st.ClearGrids},
				Action{Label: "Sort", Run: st.SortPlayer},
			)
			st.Tools = append(st.Tools, t)
			m = t
		default:
			return nil, fmt.Errorf("open station: module %q: unknown kind %q", spec.Name, spec.Kind)
		}

		if err := st.Window.AddModule(m); err != nil {
			return nil, fmt.Errorf("open station: %w", err)
		}
		for _, s := range m.Inventory().Slots {
			if _, err := st.Window.Wrap(s); err != nil {
				return nil, fmt.Errorf("open station: %w", err)
			}
		}
	}

	logger.Info("station opened", "title", cfg.Window.Title, "modules", len(cfg.Modules), "slots", len(st.Window.Slots()))
	return st, nil
}

// NewPlayerInventory lays out three storage rows and the hotbar along the
// bottom of a window of the given height.
func NewPlayerInventory(windowHeight int) *ui.Inventory {
	inv := ui.NewInventory("player")
	for row := 0; row < playerRows; row++ {
		for col := 0; col < playerColumns; col++ {
			inv.AddSlot(8+col*slotPitch, windowHeight-82+row*slotPitch)
		}
	}
	for col := 0; col < playerColumns; col++ {
		inv.AddSlot(8+col*slotPitch, windowHeight-24)
	}
	return inv
}

// Held returns the item carried by the pointer.
func (st *Station) Held() string {
	return st.held
}

// Stock puts items into the first empty slots of inv. It returns the
// items that did not fit.
func Stock(inv *ui.Inventory, items ...string) []string {
	for _, s := range inv.Slots {
		if len(items) == 0 {
			break
		}
		if s.Item == "" {
			s.Item = items[0]
			items = items[1:]
		}
	}
	return items
}

// click runs on the UI thread; the swap itself is scheduled.
func (st *Station) click(slot *ui.Slot, button ui.MouseButton) {
	st.scheduler.Schedule(func() { st.interact(slot, button) })
}

// interact swaps the held item with the slot. Only the left button moves
// items. Taking from a crafting output consumes the grid.
func (st *Station) interact(slot *ui.Slot, button ui.MouseButton) {
	if button != ui.MouseButtonLeft {
		return
	}

	owner, _ := st.Window.ModuleForSlot(slot).(*Crafting)
	if owner != nil && owner.IsOutput(slot) {
		if st.held != "" {
			return
		}
		st.held = owner.Take()
		st.logger.Debug("crafted", "item", st.held, "grid", owner.Name)
		return
	}

	st.held, slot.Item = slot.Item, st.held
	if owner != nil {
		owner.Refresh()
	}
	st.logger.Debug("slot swapped", "slot", slot.Index, "inventory", slot.Inventory().Name, "held", st.held)
}

// ClearGrids moves every crafting ingredient back into the player
// inventory. Items that do not fit stay in the grid.
func (st *Station) ClearGrids() {
	for _, c := range st.Crafting {
		left := Stock(st.Player, c.Clear()...)
		if len(left) > 0 {
			Stock(c.inventoryGrid(), left...)
			c.Refresh()
			st.logger.Warn("player inventory full", "grid", c.Name, "kept", len(left))
		}
	}
}

// SortPlayer orders the player inventory by item name, empty slots last.
func (st *Station) SortPlayer() {
	var items []string
	for _, s := range st.Player.Slots {
		if s.Item != "" {
			items = append(items, s.Item)
		}
		s.Item = ""
	}
	sort.Strings(items)
	Stock(st.Player, items...)
}
