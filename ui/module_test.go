package ui

import "testing"

func TestBaseModuleAnchors(t *testing.T) {
	tests := []struct {
		name   string
		anchor Anchor
		dx, dy int
		want   Region
	}{
		{name: "inside", anchor: AnchorInside, dx: 5, dy: 6, want: Region{Left: 105, Top: 206, Width: 40, Height: 30}},
		{name: "left", anchor: AnchorLeft, dx: 4, want: Region{Left: 64, Top: 200, Width: 40, Height: 30}},
		{name: "right", anchor: AnchorRight, dx: -4, want: Region{Left: 272, Top: 200, Width: 40, Height: 30}},
		{name: "top", anchor: AnchorTop, want: Region{Left: 100, Top: 170, Width: 40, Height: 30}},
		{name: "bottom", anchor: AnchorBottom, dy: 2, want: Region{Left: 100, Top: 302, Width: 40, Height: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewBaseModule(tt.name, tt.dx, tt.dy, 40, 30, tt.anchor)
			m.UpdatePosition(100, 200, 176, 100)
			if got := m.Region(); got != tt.want {
				t.Errorf("region = %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestBaseModuleSlotsFollowRegion(t *testing.T) {
	m := NewBaseModule("side", 0, 4, 40, 80, AnchorLeft)
	s := m.PlaceSlot(7, 10)

	m.UpdatePosition(100, 50, 176, 166)
	// module left = 60, top = 54: slot is corner-relative
	if s.X != -33 || s.Y != 14 {
		t.Errorf("slot at (%d, %d); want (-33, 14)", s.X, s.Y)
	}

	m.UpdatePosition(20, 10, 176, 166)
	if s.X != -33 || s.Y != 14 {
		t.Errorf("slot moved relative to the corner: (%d, %d)", s.X, s.Y)
	}
	if s.Inventory() != m.Inventory() {
		t.Error("placed slot not owned by the module")
	}
}

func TestBaseModuleResolutionReappliesAnchor(t *testing.T) {
	m := NewBaseModule("m", 3, 3, 10, 10, AnchorInside)
	m.SetResolution(640, 480)
	if m.Region() != (Region{}) {
		t.Errorf("unanchored module moved: %+v", m.Region())
	}

	m.UpdatePosition(10, 10, 100, 100)
	m.OffsetX = 20
	m.Resize(800, 600)
	if got := m.Region().Left; got != 30 {
		t.Errorf("left = %d; want 30", got)
	}
	if w, h := m.ScreenSize(); w != 800 || h != 600 {
		t.Errorf("screen = %dx%d", w, h)
	}
}

func TestBaseModuleButtonThroughWindow(t *testing.T) {
	var clicks int
	m := NewBaseModule("tools", 0, 0, 60, 60, AnchorRight)
	m.AddWidget(NewButton(10, 10, 40, 12, "Clear", func() { clicks++ }))

	w := newTestWindow(100, 100)
	w.AddModule(m)
	w.Init(100, 100) // corner (0, 0), module at x 100..160

	if !w.PointerDown(115, 15, MouseButtonLeft) {
		t.Fatal("press on button not consumed")
	}
	if clicks != 0 {
		t.Fatal("button fired on press")
	}
	if !w.PointerUp(115, 15, MouseButtonLeft) {
		t.Fatal("release on button not consumed")
	}
	if clicks != 1 {
		t.Errorf("clicks = %d; want 1", clicks)
	}

	if w.PointerDown(140, 50, MouseButtonLeft) {
		t.Error("press outside the button consumed")
	}
	if w.PointerDown(115, 15, MouseButtonRight) {
		t.Error("right click consumed by a left-click button")
	}
}

func TestBaseModuleHiddenSlot(t *testing.T) {
	m := NewBaseModule("m", 0, 0, 10, 10, AnchorInside)
	s := m.PlaceSlot(0, 0)
	if !m.ShouldDrawSlot(s) {
		t.Fatal("slot hidden by default")
	}
	m.HideSlot(s, true)
	if m.ShouldDrawSlot(s) {
		t.Error("hidden slot drawn")
	}
	m.HideSlot(s, false)
	if !m.ShouldDrawSlot(s) {
		t.Error("shown slot hidden")
	}
}

func TestButtonDisabled(t *testing.T) {
	var clicks int
	b := NewButton(0, 0, 10, 10, "", func() { clicks++ })
	b.SetDisabled(true)
	if b.HandleInput(5, 5, true) || b.HandleInput(5, 5, false) {
		t.Error("disabled button took input")
	}
	if clicks != 0 {
		t.Error("disabled button fired")
	}
}

func TestBaseModuleMoveSlot(t *testing.T) {
	m := NewBaseModule("m", 10, 0, 40, 40, AnchorInside)
	s := m.PlaceSlot(2, 2)
	m.UpdatePosition(0, 0, 100, 100)
	m.MoveSlot(s, 2, 20)
	if s.X != 12 || s.Y != 20 {
		t.Errorf("slot at (%d, %d); want (12, 20)", s.X, s.Y)
	}
}
