// Package term draws compositor windows on a character terminal with tcell.
//
// GUI units map onto cells by a fixed cell size; a shape covers every cell
// whose centre it contains.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/OpticalFlyer/modwin/ui"
)

// Default GUI units per terminal cell. Cells are roughly twice as tall as
// they are wide.
const (
	DefaultCellWidth  = 4
	DefaultCellHeight = 8
)

type cell struct {
	x, y int
}

type rgb struct {
	r, g, b uint32
}

var _ ui.Renderer = (*Renderer)(nil)

// Renderer implements ui.Renderer on a tcell screen.
type Renderer struct {
	screen       tcell.Screen
	cellW, cellH int

	stack  [][2]int
	tx, ty int

	// background colour painted into each cell this frame
	bg map[cell]rgb
}

// NewRenderer creates a renderer for screen. Non-positive cell sizes use
// the defaults.
func NewRenderer(screen tcell.Screen, cellW, cellH int) *Renderer {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	return &Renderer{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		bg:     make(map[cell]rgb),
	}
}

// Begin clears the screen for a new frame.
func (r *Renderer) Begin() {
	r.screen.Clear()
	clear(r.bg)
	r.stack = r.stack[:0]
	r.tx, r.ty = 0, 0
}

// GUISize returns the screen size in GUI units.
func (r *Renderer) GUISize() (int, int) {
	w, h := r.screen.Size()
	return w * r.cellW, h * r.cellH
}

// CellToGUI returns the GUI point at the centre of a cell.
func (r *Renderer) CellToGUI(cx, cy int) (int, int) {
	return cx*r.cellW + r.cellW/2, cy*r.cellH + r.cellH/2
}

// GUIToCell returns the cell holding a GUI point.
func (r *Renderer) GUIToCell(x, y int) (int, int) {
	return floorDiv(x, r.cellW), floorDiv(y, r.cellH)
}

func (r *Renderer) BindTexture(name string) {}

// DrawTexturedRect shades the area; terminals have no textures.
func (r *Renderer) DrawTexturedRect(x, y, u, v, width, height int) {
	r.eachCell(ui.Region{Left: x, Top: y, Width: width, Height: height}, func(c cell) {
		r.put(c, '░', rgb{0x5555, 0x5555, 0x5555})
	})
}

func (r *Renderer) FillRect(area ui.Region, c color.Color) {
	r.eachCell(area, func(cl cell) { r.paint(cl, c) })
}

func (r *Renderer) FillTriangles(vertices []float32, indices []uint16, c color.Color) {
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, d := int(indices[i])*2, int(indices[i+1])*2, int(indices[i+2])*2
		if d+1 >= len(vertices) || a+1 >= len(vertices) || b+1 >= len(vertices) {
			continue
		}
		r.fillTriangle(
			vertices[a]+float32(r.tx), vertices[a+1]+float32(r.ty),
			vertices[b]+float32(r.tx), vertices[b+1]+float32(r.ty),
			vertices[d]+float32(r.tx), vertices[d+1]+float32(r.ty),
			c,
		)
	}
}

func (r *Renderer) DrawString(s string, x, y int, c color.Color) {
	cx, cy := r.GUIToCell(x+r.tx, y+r.ty)
	fg := toRGB(c)
	for _, ch := range s {
		r.put(cell{cx, cy}, ch, fg)
		cx++
	}
}

// DrawSlot paints the slot and as much of the item name as fits.
func (r *Renderer) DrawSlot(slot *ui.Slot) {
	area := ui.Region{Left: slot.X, Top: slot.Y, Width: ui.SlotSize, Height: ui.SlotSize}
	r.FillRect(area, ui.RGB(0x8b8b8b))

	item := []rune(slot.Stack())
	if n := ui.SlotSize / r.cellW; len(item) > n {
		item = item[:n]
	}
	r.DrawString(string(item), slot.X, slot.Y, color.Black)
}

func (r *Renderer) PushTranslate(dx, dy int) {
	r.stack = append(r.stack, [2]int{r.tx, r.ty})
	r.tx += dx
	r.ty += dy
}

func (r *Renderer) PopTranslate() {
	if len(r.stack) == 0 {
		return
	}
	last := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.tx, r.ty = last[0], last[1]
}

// eachCell calls fn for every cell whose centre lies in the translated area.
func (r *Renderer) eachCell(area ui.Region, fn func(cell)) {
	area = area.Translate(r.tx, r.ty)
	x0, y0 := r.GUIToCell(area.Left, area.Top)
	x1, y1 := r.GUIToCell(area.Right(), area.Bottom())
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			px, py := r.CellToGUI(cx, cy)
			if px >= area.Left && px < area.Right() && py >= area.Top && py < area.Bottom() {
				fn(cell{cx, cy})
			}
		}
	}
}

func (r *Renderer) fillTriangle(ax, ay, bx, by, cx, cy float32, c color.Color) {
	minX, maxX := min(ax, bx, cx), max(ax, bx, cx)
	minY, maxY := min(ay, by, cy), max(ay, by, cy)
	x0, y0 := r.GUIToCell(int(minX), int(minY))
	x1, y1 := r.GUIToCell(int(maxX), int(maxY))

	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			gx, gy := r.CellToGUI(col, row)
			px, py := float32(gx), float32(gy)
			d1 := edge(px, py, ax, ay, bx, by)
			d2 := edge(px, py, bx, by, cx, cy)
			d3 := edge(px, py, cx, cy, ax, ay)
			neg := d1 < 0 || d2 < 0 || d3 < 0
			pos := d1 > 0 || d2 > 0 || d3 > 0
			if !(neg && pos) {
				r.paint(cell{col, row}, c)
			}
		}
	}
}

// paint blends c over the cell background.
func (r *Renderer) paint(cl cell, c color.Color) {
	sr, sg, sb, sa := c.RGBA()
	if sa == 0 {
		return
	}
	dst := r.bg[cl]
	inv := 0xffff - sa
	out := rgb{
		r: sr + dst.r*inv/0xffff,
		g: sg + dst.g*inv/0xffff,
		b: sb + dst.b*inv/0xffff,
	}
	r.bg[cl] = out
	r.setCell(cl, ' ', nil)
}

func (r *Renderer) put(cl cell, ch rune, fg rgb) {
	r.setCell(cl, ch, &fg)
}

func (r *Renderer) setCell(cl cell, ch rune, fg *rgb) {
	w, h := r.screen.Size()
	if cl.x < 0 || cl.y < 0 || cl.x >= w || cl.y >= h {
		return
	}
	style := tcell.StyleDefault
	if bg, ok := r.bg[cl]; ok {
		style = style.Background(bg.color())
	}
	if fg != nil {
		style = style.Foreground(fg.color())
	}
	r.screen.SetContent(cl.x, cl.y, ch, nil, style)
}

func (c rgb) color() tcell.Color {
	return tcell.NewRGBColor(int32(c.r>>8), int32(c.g>>8), int32(c.b>>8))
}

func toRGB(c color.Color) rgb {
	r, g, b, _ := c.RGBA()
	return rgb{r, g, b}
}

func edge(px, py, ax, ay, bx, by float32) float32 {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
