package scale

// MaxFactor returns the largest factor a display of the given size allows.
func MaxFactor(displayWidth, displayHeight int) int {
	return New(displayWidth, displayHeight, 0, false).Factor
}

// ZoomIn returns the GUI scale one step larger than the current one, or
// guiScale unchanged at the display's limit. A guiScale of 0 (auto) is
// already the largest and stays put.
func ZoomIn(guiScale, displayWidth, displayHeight int) int {
	if guiScale <= 0 || guiScale >= MaxFactor(displayWidth, displayHeight) {
		return guiScale
	}
	return guiScale + 1
}

// ZoomOut returns the GUI scale one step smaller. Auto resolves to the
// current factor first; 1 is the minimum.
func ZoomOut(guiScale, displayWidth, displayHeight int) int {
	if guiScale <= 0 {
		guiScale = MaxFactor(displayWidth, displayHeight)
	}
	if guiScale <= 1 {
		return 1
	}
	return guiScale - 1
}
