package term

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/OpticalFlyer/modwin/sched"
	"github.com/OpticalFlyer/modwin/ui"
)

// TickRate is how often the host drains scheduled work and redraws.
const TickRate = 20

// Host runs a window on a tcell screen.
type Host struct {
	screen   tcell.Screen
	window   *ui.Window
	queue    *sched.Queue
	renderer *Renderer
	mouse    *Mouse
	clicker  *Clicker
	logger   *slog.Logger
}

// NewHost wires window to screen. clicker may be nil.
func NewHost(screen tcell.Screen, window *ui.Window, queue *sched.Queue, clicker *Clicker, logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.Default()
	}
	r := NewRenderer(screen, DefaultCellWidth, DefaultCellHeight)
	return &Host{
		screen:   screen,
		window:   window,
		queue:    queue,
		renderer: r,
		mouse:    NewMouse(r.CellToGUI),
		clicker:  clicker,
		logger:   logger,
	}
}

// Start enables the mouse and lays the window out for the current screen.
func (h *Host) Start() {
	h.screen.EnableMouse()
	w, ht := h.renderer.GUISize()
	h.window.Init(w, ht)
	h.logger.Debug("terminal host started", "gui_width", w, "gui_height", ht)
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventResize:
		h.screen.Sync()
		w, ht := h.renderer.GUISize()
		h.window.Resize(w, ht)

	case *tcell.EventMouse:
		for _, p := range h.mouse.Translate(ev) {
			h.pointer(p)
		}
	}
	return true
}

func (h *Host) pointer(p PointerEvent) {
	x, y := h.window.ToLocal(p.X, p.Y)
	switch p.Kind {
	case PointerDown:
		if h.window.PointerDown(x, y, p.Button) && h.clicker != nil {
			h.clicker.Click()
		}
	case PointerMove:
		h.window.PointerMove(x, y, p.Button)
	case PointerUp:
		h.window.PointerUp(x, y, p.Button)
	}
}

// Tick runs scheduled work and advances animations by dt seconds.
func (h *Host) Tick(dt float32) {
	h.queue.Drain()
	h.window.Update(dt)
}

// Draw renders one frame.
func (h *Host) Draw() {
	h.renderer.Begin()
	x, y := h.window.ToLocal(h.mouse.Position())
	h.window.DrawFrame(h.renderer, x, y, 0)
	h.screen.Show()
}

// Run polls events and ticks until the user quits or ctx ends.
func (h *Host) Run(ctx context.Context) error {
	h.Start()

	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go h.pump(ctx, events)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok || !h.HandleEvent(ev) {
				h.window.Close()
				return nil
			}

		case <-ticker.C:
			h.Tick(1.0 / TickRate)
			h.Draw()
		}
	}
}

// pump forwards polled events until the screen finishes or ctx ends.
func (h *Host) pump(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}
