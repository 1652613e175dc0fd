package station

import (
	"image/color"

	"github.com/OpticalFlyer/modwin/layout"
	"github.com/OpticalFlyer/modwin/ui"
)

const (
	slotPitch   = ui.SlotSize + 2
	gridPadding = 2
	outputGap   = 24
)

var arrowColor = ui.RGB(0x8b8b8b)

// Crafting is a grid of input slots feeding a single output slot.
type Crafting struct {
	*ui.BaseModule

	grid    []*ui.Slot
	output  *ui.Slot
	recipes Recipes
	arrowX  int
	arrowY  int
}

// NewCrafting builds a crafting grid from spec. A missing row or column
// count falls back to 3.
func NewCrafting(spec layout.ModuleSpec, anchor ui.Anchor) *Crafting {
	rows, cols := spec.Rows, spec.Columns
	if rows <= 0 {
		rows = 3
	}
	if cols <= 0 {
		cols = 3
	}

	c := &Crafting{
		BaseModule: ui.NewBaseModule(spec.Name, spec.X, spec.Y, spec.Width, spec.Height, anchor),
		recipes:    DefaultRecipes(),
	}
	c.Texture = spec.Texture
	c.Background = ui.RGB(0xc6c6c6)
	c.Border = 1

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c.grid = append(c.grid, c.PlaceSlot(gridPadding+col*slotPitch, gridPadding+row*slotPitch))
		}
	}

	gridRight := gridPadding + cols*slotPitch
	c.arrowX = gridRight + 4
	c.arrowY = gridPadding + (rows*slotPitch-ui.SlotSize)/2
	c.output = c.PlaceSlot(c.arrowX+outputGap, c.arrowY)
	return c
}

// Grid returns the input slots in row-major order.
func (c *Crafting) Grid() []*ui.Slot {
	return c.grid
}

// Output returns the result slot.
func (c *Crafting) Output() *ui.Slot {
	return c.output
}

// IsOutput reports whether s is the result slot.
func (c *Crafting) IsOutput(s *ui.Slot) bool {
	return s.Unwrap() == c.output
}

// ReceiveExtension picks up the window's shared recipe book.
func (c *Crafting) ReceiveExtension(ext ui.Extension) {
	if r, ok := ext.(Recipes); ok {
		c.recipes = r
		c.Refresh()
	}
}

// Refresh recomputes the output from the grid.
func (c *Crafting) Refresh() {
	items := make([]string, len(c.grid))
	for i, s := range c.grid {
		items[i] = s.Item
	}
	c.output.Item = c.recipes.Match(items)
}

// Take removes the current result and consumes one of every ingredient.
// It returns "" when the grid matches nothing.
func (c *Crafting) Take() string {
	result := c.output.Item
	if result == "" {
		return ""
	}
	for _, s := range c.grid {
		s.Item = ""
	}
	c.Refresh()
	return result
}

// inventoryGrid views the input slots as an inventory.
func (c *Crafting) inventoryGrid() *ui.Inventory {
	return &ui.Inventory{Name: c.Name, Slots: c.grid}
}

// Clear empties the grid and returns the removed items.
func (c *Crafting) Clear() []string {
	var out []string
	for _, s := range c.grid {
		if s.Item != "" {
			out = append(out, s.Item)
			s.Item = ""
		}
	}
	c.Refresh()
	return out
}

func (c *Crafting) DrawForeground(r ui.Renderer, pointerX, pointerY int) {
	c.BaseModule.DrawForeground(r, pointerX, pointerY)
	r.DrawString("=>", c.arrowX, c.arrowY+4, arrowColor)
	if c.output.Item == "" {
		_ = ui.DrawFrame(r, ui.Region{Left: c.arrowX + outputGap, Top: c.arrowY, Width: ui.SlotSize, Height: ui.SlotSize}, 1, color.Black)
	}
}
