package station

import (
	"github.com/OpticalFlyer/modwin/layout"
	"github.com/OpticalFlyer/modwin/sched"
	"github.com/OpticalFlyer/modwin/ui"
)

const (
	toolPadding = 4
	toolHeight  = 14
)

// Action is a labelled operation offered by a tool panel.
type Action struct {
	Label string
	Run   func()
}

// Tools is a column of buttons. Pressing one schedules its action on the
// owner thread instead of running it from the input handler.
type Tools struct {
	*ui.BaseModule
	buttons []*ui.Button
}

// NewTools builds a tool panel from spec with one button per action.
func NewTools(spec layout.ModuleSpec, anchor ui.Anchor, scheduler sched.Scheduler, actions ...Action) *Tools {
	t := &Tools{
		BaseModule: ui.NewBaseModule(spec.Name, spec.X, spec.Y, spec.Width, spec.Height, anchor),
	}
	t.Texture = spec.Texture
	t.Background = ui.RGB(0xc6c6c6)
	t.Border = 1

	for i, a := range actions {
		run := a.Run
		b := ui.NewButton(toolPadding, toolPadding+i*(toolHeight+2), spec.Width-2*toolPadding, toolHeight, a.Label, func() {
			scheduler.Schedule(run)
		})
		t.buttons = append(t.buttons, b)
		t.AddWidget(b)
	}
	return t
}

// Buttons returns the panel's buttons in action order.
func (t *Tools) Buttons() []*ui.Button {
	return t.buttons
}
