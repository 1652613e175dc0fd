// Package gfx draws compositor windows with ebiten.
package gfx

import (
	"hash/fnv"
	"image"
	"image/color"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/OpticalFlyer/modwin/ui"
)

// glyphScale shrinks the 13 pixel basic font to the 8 unit GUI line height.
const glyphScale = 8.0 / 13.0

var (
	slotColor   = ui.RGB(0x8b8b8b)
	slotShade   = ui.RGB(0x373737)
	defaultFace = text.NewGoXFace(basicfont.Face7x13)
)

var whitePixel *ebiten.Image

// ensureWhitePixel returns a lazily created white source pixel. It is cut
// from the middle of a 3x3 image so sampling never bleeds past its edge.
func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

var _ ui.Renderer = (*Renderer)(nil)

// Renderer implements ui.Renderer on an ebiten image. Positions are GUI
// units multiplied by the scale factor.
type Renderer struct {
	screen   *ebiten.Image
	textures *Textures
	bound    string
	factor   float32

	stack  [][2]int
	tx, ty int

	vertices []ebiten.Vertex
}

// NewRenderer creates a renderer drawing textures from the given cache.
func NewRenderer(textures *Textures) *Renderer {
	return &Renderer{textures: textures, factor: 1}
}

// Begin starts a frame on screen with the given GUI scale factor.
func (r *Renderer) Begin(screen *ebiten.Image, factor int) {
	r.screen = screen
	r.factor = float32(max(factor, 1))
	r.stack = r.stack[:0]
	r.tx, r.ty = 0, 0
}

// project maps a GUI point, after translation, onto screen pixels.
func (r *Renderer) project(x, y float32) (float32, float32) {
	return (x + float32(r.tx)) * r.factor, (y + float32(r.ty)) * r.factor
}

func (r *Renderer) BindTexture(name string) {
	r.bound = name
}

func (r *Renderer) DrawTexturedRect(x, y, u, v, width, height int) {
	if r.textures == nil || r.bound == "" {
		return
	}
	img := r.textures.Get(r.bound)
	sub := img.SubImage(image.Rect(u, v, u+width, v+height)).(*ebiten.Image)

	px, py := r.project(float32(x), float32(y))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.factor), float64(r.factor))
	op.GeoM.Translate(float64(px), float64(py))
	r.screen.DrawImage(sub, op)
}

func (r *Renderer) FillRect(area ui.Region, c color.Color) {
	px, py := r.project(float32(area.Left), float32(area.Top))
	vector.DrawFilledRect(r.screen, px, py,
		float32(area.Width)*r.factor, float32(area.Height)*r.factor,
		c, false)
}

func (r *Renderer) FillTriangles(vertices []float32, indices []uint16, c color.Color) {
	cr, cg, cb, ca := colorScale(c)
	r.vertices = r.vertices[:0]
	for i := 0; i+1 < len(vertices); i += 2 {
		px, py := r.project(vertices[i], vertices[i+1])
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   px,
			DstY:   py,
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	r.screen.DrawTriangles(r.vertices, indices, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{})
}

func (r *Renderer) DrawString(s string, x, y int, c color.Color) {
	px, py := r.project(float32(x), float32(y))
	op := &text.DrawOptions{}
	op.GeoM.Scale(float64(r.factor)*glyphScale, float64(r.factor)*glyphScale)
	op.GeoM.Translate(float64(px), float64(py))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(r.screen, s, defaultFace, op)
}

// DrawSlot draws the sunken slot square and a swatch with the item's
// initial.
func (r *Renderer) DrawSlot(slot *ui.Slot) {
	area := ui.Region{Left: slot.X, Top: slot.Y, Width: ui.SlotSize, Height: ui.SlotSize}
	r.FillRect(area, slotShade)
	r.FillRect(ui.Region{Left: slot.X + 1, Top: slot.Y + 1, Width: ui.SlotSize - 1, Height: ui.SlotSize - 1}, slotColor)

	item := slot.Stack()
	if item == "" {
		return
	}
	r.FillRect(ui.Region{Left: slot.X + 2, Top: slot.Y + 2, Width: ui.SlotSize - 4, Height: ui.SlotSize - 4}, ItemColor(item))
	r.DrawString(itemInitial(item), slot.X+5, slot.Y+4, color.White)
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

// itemInitial returns the upper-cased first rune of an item name.
func itemInitial(item string) string {
	first, _ := utf8.DecodeRuneInString(item)
	return string(unicode.ToUpper(first))
}

// ItemColor picks a stable swatch colour for an item name.
func ItemColor(item string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(item))
	v := h.Sum32()
	return color.RGBA{
		R: 0x40 | uint8(v>>16)&0x9f,
		G: 0x40 | uint8(v>>8)&0x9f,
		B: 0x40 | uint8(v)&0x9f,
		A: 0xff,
	}
}

// colorScale converts c to the premultiplied scale DrawTriangles expects.
func colorScale(c color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}
