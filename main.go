package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/modwin/gfx"
	"github.com/OpticalFlyer/modwin/layout"
	"github.com/OpticalFlyer/modwin/scale"
	"github.com/OpticalFlyer/modwin/sched"
	"github.com/OpticalFlyer/modwin/station"
	"github.com/OpticalFlyer/modwin/ui"
)

// Items the demo player starts with.
var starterKit = []string{"log", "log", "coal", "cobblestone", "cobblestone", "cobblestone", "cobblestone"}

var backdrop = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}

// Debug overlay extent in display pixels.
const (
	debugWidth      = 200
	debugLineHeight = 16
)

var pointerButtons = []struct {
	ebiten ebiten.MouseButton
	ui     ui.MouseButton
}{
	{ebiten.MouseButtonLeft, ui.MouseButtonLeft},
	{ebiten.MouseButtonRight, ui.MouseButtonRight},
	{ebiten.MouseButtonMiddle, ui.MouseButtonMiddle},
}

// Modwin implements ebiten.Game interface.
type Modwin struct {
	station  *station.Station
	queue    *sched.Queue
	renderer *gfx.Renderer
	logger   *slog.Logger

	res         scale.Resolution
	guiScale    int
	unicode     bool
	initialized bool
	debugMode   bool

	// last cursor position in GUI units
	cursorX, cursorY int

	// Touch state
	lastTouchX map[ebiten.TouchID]float64
	lastTouchY map[ebiten.TouchID]float64
}

func (g *Modwin) window() *ui.Window {
	return g.station.Window
}

func (g *Modwin) Update() error {
	if !g.initialized {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.setGUIScale(scale.ZoomIn(g.guiScale, g.res.DisplayWidth, g.res.DisplayHeight))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.setGUIScale(scale.ZoomOut(g.guiScale, g.res.DisplayWidth, g.res.DisplayHeight))
	}

	g.handleMouse()
	g.handleTouchEvents()

	g.queue.Drain()
	g.window().Update(1 / float32(ebiten.TPS()))
	return nil
}

func (g *Modwin) handleMouse() {
	x, y := g.res.ToGUI(ebiten.CursorPosition())
	moved := x != g.cursorX || y != g.cursorY
	g.cursorX, g.cursorY = x, y
	lx, ly := g.window().ToLocal(x, y)

	for _, b := range pointerButtons {
		switch {
		case inpututil.IsMouseButtonJustPressed(b.ebiten):
			g.window().PointerDown(lx, ly, b.ui)
		case inpututil.IsMouseButtonJustReleased(b.ebiten):
			g.window().PointerUp(lx, ly, b.ui)
		case moved && ebiten.IsMouseButtonPressed(b.ebiten):
			g.window().PointerMove(lx, ly, b.ui)
		}
	}
}

func (g *Modwin) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)

	g.renderer.Begin(screen, g.res.Factor)
	lx, ly := g.window().ToLocal(g.cursorX, g.cursorY)
	g.window().DrawFrame(g.renderer, lx, ly, 0)

	if held := g.station.Held(); held != "" {
		g.renderer.FillRect(ui.Region{Left: g.cursorX - 6, Top: g.cursorY - 6, Width: 12, Height: 12}, gfx.ItemColor(held))
		g.renderer.DrawString(held, g.cursorX+8, g.cursorY, color.White)
	}

	if g.debugMode {
		debugText := fmt.Sprintf("GUI: %dx%d @%d\nBox: %+v\nState: %v\nModule: %v",
			g.res.ScaledWidth, g.res.ScaledHeight, g.res.Factor,
			g.window().Box(), g.window().State(), g.window().ModuleAt(lx, ly))
		x, y := debugOrigin(g.window(), g.res, strings.Count(debugText, "\n")+1)
		ebitenutil.DebugPrintAt(screen, debugText, x, y)
	}
}

// debugOrigin places the debug text at the top-left corner, or at the
// bottom-left one when a module covers the top.
func debugOrigin(w *ui.Window, res scale.Resolution, lines int) (int, int) {
	height := lines * debugLineHeight
	factor := max(res.Factor, 1)
	area := ui.Region{Width: debugWidth/factor + 1, Height: height/factor + 1}
	if !w.HidesPanel(area) {
		return 0, 0
	}
	return 0, res.DisplayHeight - height
}

func (g *Modwin) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.applyResolution(scale.New(outsideWidth, outsideHeight, g.guiScale, g.unicode))
	return outsideWidth, outsideHeight
}

func (g *Modwin) setGUIScale(guiScale int) {
	if guiScale == g.guiScale {
		return
	}
	g.guiScale = guiScale
	g.applyResolution(scale.New(g.res.DisplayWidth, g.res.DisplayHeight, guiScale, g.unicode))
}

// applyResolution initializes the window on the first layout and relays
// later changes of the scaled screen.
func (g *Modwin) applyResolution(res scale.Resolution) {
	switch {
	case !g.initialized:
		g.window().Init(res.ScaledWidth, res.ScaledHeight)
		g.initialized = true
	case res.Changed(g.res):
		g.window().SetResolution(res.ScaledWidth, res.ScaledHeight)
	}
	g.res = res
}

func main() {
	layoutPath := flag.String("layout", "", "layout file (default ~/.config/modwin/layout.yaml)")
	assetsDir := flag.String("assets", "assets", "directory holding textures")
	termMode := flag.Bool("term", false, "run in the terminal")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadLayout(*layoutPath)
	if err != nil {
		log.Fatal(err)
	}

	queue := sched.NewQueue(logger)
	st, err := station.Open(cfg, queue, logger)
	if err != nil {
		log.Fatal(err)
	}
	station.Stock(st.Player, starterKit...)

	if *termMode {
		if err := runTerminal(st, queue, logger); err != nil {
			log.Fatal(err)
		}
		return
	}

	app := &Modwin{
		station:  st,
		queue:    queue,
		renderer: gfx.NewRenderer(gfx.NewTextures(os.DirFS(*assetsDir), logger)),
		logger:   logger,
		guiScale: cfg.GUIScale,
		unicode:  cfg.Unicode,
	}

	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
	st.Window.Close()
}

func loadLayout(path string) (*layout.Config, error) {
	if path == "" {
		return layout.Load()
	}
	return layout.LoadFromPath(path)
}
