package ui

import "testing"

func TestRegionContains(t *testing.T) {
	r := Region{Left: 10, Top: 20, Width: 30, Height: 40}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "interior", x: 25, y: 35, want: true},
		{name: "top-left corner", x: 10, y: 20, want: true},
		{name: "one past top-left", x: 9, y: 19, want: true},
		{name: "two left of edge", x: 8, y: 19, want: false},
		{name: "two above edge", x: 9, y: 18, want: false},
		{name: "right edge", x: 40, y: 30, want: true},
		{name: "one past right edge", x: 41, y: 30, want: false},
		{name: "bottom edge", x: 30, y: 60, want: true},
		{name: "one past bottom edge", x: 30, y: 61, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v; want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRegionContainsMarginZero(t *testing.T) {
	r := Region{Width: 10, Height: 10}
	if !r.ContainsMargin(0, 0, 0) {
		t.Error("origin should be inside")
	}
	if r.ContainsMargin(10, 5, 0) {
		t.Error("right edge is exclusive without a margin")
	}
}

func TestRegionExtendToInclude(t *testing.T) {
	tests := []struct {
		name  string
		base  Region
		other Region
		want  Region
	}{
		{
			name:  "left growth moves anchor",
			base:  Region{Width: 100, Height: 100},
			other: Region{Left: -10, Width: 50, Height: 50},
			want:  Region{Left: -10, Width: 110, Height: 100},
		},
		{
			name:  "top growth moves anchor",
			base:  Region{Width: 100, Height: 100},
			other: Region{Top: -20, Width: 10, Height: 10},
			want:  Region{Top: -20, Width: 100, Height: 120},
		},
		{
			name:  "right and bottom growth keep anchor",
			base:  Region{Width: 100, Height: 100},
			other: Region{Left: 90, Top: 90, Width: 30, Height: 40},
			want:  Region{Width: 120, Height: 130},
		},
		{
			name:  "contained region is a no-op",
			base:  Region{Width: 100, Height: 100},
			other: Region{Left: 40, Width: 30, Height: 30},
			want:  Region{Width: 100, Height: 100},
		},
		{
			name:  "region wider on both sides",
			base:  Region{Left: 10, Width: 10, Height: 10},
			other: Region{Left: 0, Width: 40, Height: 10},
			want:  Region{Left: 0, Width: 40, Height: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.base
			got.ExtendToInclude(tt.other)
			if got != tt.want {
				t.Errorf("got %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestRegionOverlaps(t *testing.T) {
	a := Region{Width: 10, Height: 10}
	if a.Overlaps(Region{Left: 10, Width: 5, Height: 5}) {
		t.Error("adjacent regions must not overlap")
	}
	if !a.Overlaps(Region{Left: 9, Top: 9, Width: 5, Height: 5}) {
		t.Error("regions sharing a corner cell overlap")
	}
}
