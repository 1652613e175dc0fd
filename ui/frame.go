package ui

import (
	"fmt"
	"image/color"

	earcut "github.com/flywave/go-earcut"
)

// Frame triangulates the ring between area and area inset by thickness.
// Vertices are flat x,y pairs suitable for Renderer.FillTriangles.
func Frame(area Region, thickness int) ([]float32, []uint16, error) {
	if thickness <= 0 || 2*thickness >= area.Width || 2*thickness >= area.Height {
		return rectTriangles(area), []uint16{0, 1, 2, 0, 2, 3}, nil
	}

	inner := Region{
		Left:   area.Left + thickness,
		Top:    area.Top + thickness,
		Width:  area.Width - 2*thickness,
		Height: area.Height - 2*thickness,
	}

	data := make([]float64, 0, 16)
	data = appendCorners(data, area)
	data = appendCorners(data, inner)

	idx, err := earcut.Earcut(data, []int{4}, 2)
	if err != nil {
		return nil, nil, fmt.Errorf("triangulate frame %v: %w", area, err)
	}

	vertices := make([]float32, len(data))
	for i, v := range data {
		vertices[i] = float32(v)
	}
	indices := make([]uint16, len(idx))
	for i, v := range idx {
		indices[i] = uint16(v)
	}
	return vertices, indices, nil
}

// DrawFrame fills the ring of the given thickness around area.
func DrawFrame(r Renderer, area Region, thickness int, c color.Color) error {
	vertices, indices, err := Frame(area, thickness)
	if err != nil {
		return err
	}
	r.FillTriangles(vertices, indices, c)
	return nil
}

func appendCorners(data []float64, r Region) []float64 {
	return append(data,
		float64(r.Left), float64(r.Top),
		float64(r.Right()), float64(r.Top),
		float64(r.Right()), float64(r.Bottom()),
		float64(r.Left), float64(r.Bottom()),
	)
}

func rectTriangles(r Region) []float32 {
	return []float32{
		float32(r.Left), float32(r.Top),
		float32(r.Right()), float32(r.Top),
		float32(r.Right()), float32(r.Bottom()),
		float32(r.Left), float32(r.Bottom()),
	}
}
