// Package layout reads window layout files describing the base window and
// the modules composed around it.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OpticalFlyer/modwin/ui"
)

// Module kinds understood by the station package.
const (
	KindCrafting      = "crafting"
	KindSideInventory = "side_inventory"
	KindTools         = "tools"
)

// ErrNoModules is returned when a layout declares no modules.
var ErrNoModules = errors.New("layout declares no modules")

// Config is a complete window layout.
type Config struct {
	Window   WindowSpec   `yaml:"window"`
	GUIScale int          `yaml:"gui_scale"`
	Unicode  bool         `yaml:"force_unicode"`
	Modules  []ModuleSpec `yaml:"modules"`
}

// WindowSpec describes the base window.
type WindowSpec struct {
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	Title          string `yaml:"title"`
	InventoryLabel string `yaml:"inventory_label"`
	Background     string `yaml:"background"`
}

// ModuleSpec places one module against the window.
type ModuleSpec struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Anchor  string `yaml:"anchor"`
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Rows    int    `yaml:"rows"`
	Columns int    `yaml:"columns"`
	Texture string `yaml:"texture"`
}

// ValidationError points at the offending field.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DefaultConfig returns the built-in crafting station layout: a side
// inventory hanging off the left edge, the crafting grid inside the base
// window and a tool panel past the right edge.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowSpec{
			Width:          176,
			Height:         166,
			Title:          "Crafting Station",
			InventoryLabel: "Inventory",
		},
		Modules: []ModuleSpec{
			{Name: "chest", Kind: KindSideInventory, Anchor: "left", X: 4, Y: 0, Width: 80, Height: 100, Rows: 5, Columns: 4},
			{Name: "grid", Kind: KindCrafting, Anchor: "inside", X: 36, Y: 16, Width: 104, Height: 56, Rows: 3, Columns: 3},
			{Name: "tools", Kind: KindTools, Anchor: "right", X: -4, Y: 0, Width: 70, Height: 60},
		},
	}
}

// Validate checks sizes, names and kinds.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return &ValidationError{Path: "window", Err: fmt.Errorf("width and height must be > 0")}
	}
	if c.GUIScale < 0 {
		return &ValidationError{Path: "gui_scale", Err: fmt.Errorf("gui_scale must be >= 0")}
	}
	if len(c.Modules) == 0 {
		return &ValidationError{Path: "modules", Err: ErrNoModules}
	}

	seen := make(map[string]struct{}, len(c.Modules))
	for i, m := range c.Modules {
		path := fmt.Sprintf("modules[%d]", i)
		if strings.TrimSpace(m.Name) == "" {
			return &ValidationError{Path: path + ".name", Err: fmt.Errorf("name is required")}
		}
		if _, dup := seen[m.Name]; dup {
			return &ValidationError{Path: path + ".name", Err: fmt.Errorf("duplicate module %q", m.Name)}
		}
		seen[m.Name] = struct{}{}

		switch m.Kind {
		case KindCrafting, KindSideInventory, KindTools:
		default:
			return &ValidationError{Path: path + ".kind", Err: fmt.Errorf("kind must be one of: %s, %s, %s", KindCrafting, KindSideInventory, KindTools)}
		}
		if _, err := ParseAnchor(m.Anchor); err != nil {
			return &ValidationError{Path: path + ".anchor", Err: err}
		}
		if m.Width <= 0 || m.Height <= 0 {
			return &ValidationError{Path: path, Err: fmt.Errorf("width and height must be > 0")}
		}
		if m.Rows < 0 || m.Columns < 0 {
			return &ValidationError{Path: path, Err: fmt.Errorf("rows and columns must be >= 0")}
		}
	}
	return nil
}

// ParseAnchor maps an anchor name onto ui.Anchor. Empty means inside.
func ParseAnchor(name string) (ui.Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "inside":
		return ui.AnchorInside, nil
	case "left":
		return ui.AnchorLeft, nil
	case "right":
		return ui.AnchorRight, nil
	case "top":
		return ui.AnchorTop, nil
	case "bottom":
		return ui.AnchorBottom, nil
	default:
		return ui.AnchorInside, fmt.Errorf("anchor must be one of: inside, left, right, top, bottom")
	}
}
