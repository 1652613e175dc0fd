package ui

import "testing"

func TestFrameRing(t *testing.T) {
	vertices, indices, err := Frame(Region{Left: 2, Top: 3, Width: 16, Height: 16}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(vertices) != 16 {
		t.Errorf("vertices = %d; want 8 points", len(vertices)/2)
	}
	if len(indices) != 24 {
		t.Errorf("triangles = %d; want 8", len(indices)/3)
	}
	for _, i := range indices {
		if int(i) >= len(vertices)/2 {
			t.Fatalf("index %d out of range", i)
		}
	}
}

func TestFrameTooThickFillsRect(t *testing.T) {
	tests := []struct {
		name      string
		thickness int
	}{
		{name: "zero", thickness: 0},
		{name: "covers width", thickness: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vertices, indices, err := Frame(Region{Width: 16, Height: 20}, tt.thickness)
			if err != nil {
				t.Fatal(err)
			}
			if len(vertices) != 8 || len(indices) != 6 {
				t.Errorf("got %d vertices, %d indices; want a plain rectangle", len(vertices)/2, len(indices))
			}
		})
	}
}

func BenchmarkFrame(b *testing.B) {
	area := Region{Left: 10, Top: 10, Width: 176, Height: 166}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := Frame(area, 2); err != nil {
			b.Fatal(err)
		}
	}
}
