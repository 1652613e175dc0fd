package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/modwin/scale"
	"github.com/OpticalFlyer/modwin/ui"
)

// handleTouchEvents maps a single touch onto the left button and a two
// finger pinch onto the GUI scale.
func (g *Modwin) handleTouchEvents() {
	touches := make([]ebiten.TouchID, 0, 8)
	touches = ebiten.AppendTouchIDs(touches)

	if g.lastTouchX == nil {
		g.lastTouchX = make(map[ebiten.TouchID]float64)
		g.lastTouchY = make(map[ebiten.TouchID]float64)
	}

	// Ended touches release where they were last seen
	for id := range g.lastTouchX {
		if !containsTouchID(touches, id) {
			if len(g.lastTouchX) == 1 {
				g.touchPointer(ui.MouseButtonLeft, g.lastTouchX[id], g.lastTouchY[id], false)
			}
			delete(g.lastTouchX, id)
			delete(g.lastTouchY, id)
		}
	}

	switch len(touches) {
	case 1:
		id := touches[0]
		x, y := ebiten.TouchPosition(id)
		fx, fy := float64(x), float64(y)
		if lastX, ok := g.lastTouchX[id]; !ok {
			g.touchPointer(ui.MouseButtonLeft, fx, fy, true)
		} else if lastX != fx || g.lastTouchY[id] != fy {
			gx, gy := g.res.ToGUI(x, y)
			lx, ly := g.window().ToLocal(gx, gy)
			g.window().PointerMove(lx, ly, ui.MouseButtonLeft)
		}
		g.lastTouchX[id], g.lastTouchY[id] = fx, fy

	case 2:
		id1, id2 := touches[0], touches[1]
		x1, y1 := ebiten.TouchPosition(id1)
		x2, y2 := ebiten.TouchPosition(id2)
		currentDist := distance(float64(x1), float64(y1), float64(x2), float64(y2))

		_, ok1 := g.lastTouchX[id1]
		_, ok2 := g.lastTouchX[id2]
		if ok1 && ok2 {
			prevDist := distance(g.lastTouchX[id1], g.lastTouchY[id1],
				g.lastTouchX[id2], g.lastTouchY[id2])

			if currentDist > prevDist*1.1 {
				g.setGUIScale(scale.ZoomIn(g.guiScale, g.res.DisplayWidth, g.res.DisplayHeight))
			} else if currentDist < prevDist*0.9 {
				g.setGUIScale(scale.ZoomOut(g.guiScale, g.res.DisplayWidth, g.res.DisplayHeight))
			}
		}

		g.lastTouchX[id1], g.lastTouchY[id1] = float64(x1), float64(y1)
		g.lastTouchX[id2], g.lastTouchY[id2] = float64(x2), float64(y2)
	}
}

func (g *Modwin) touchPointer(button ui.MouseButton, x, y float64, down bool) {
	gx, gy := g.res.ToGUI(int(x), int(y))
	g.cursorX, g.cursorY = gx, gy
	lx, ly := g.window().ToLocal(gx, gy)
	if down {
		g.window().PointerDown(lx, ly, button)
		return
	}
	g.window().PointerUp(lx, ly, button)
}

// Helper function to check if a TouchID is in a slice
func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}

// Helper function to calculate distance between two points
func distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}
