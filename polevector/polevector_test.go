package polevector

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rigkit/tendon/vecmath"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		name        string
		start       mgl64.Vec3
		mid         mgl64.Vec3
		end         mgl64.Vec3
		minDistance float64
		expected    mgl64.Vec3
	}{
		{
			name:        "bend longer than minimum is kept as-is",
			start:       mgl64.Vec3{0, 0, 0},
			mid:         mgl64.Vec3{0, 5, 0},
			end:         mgl64.Vec3{10, 0, 0},
			minDistance: 5.0,
			// midpoint (5,0,0), direction (-5,5,0), length √50 ≥ 5
			expected: mgl64.Vec3{0, 5, 0},
		},
		{
			name:        "shallow bend is pushed out to the minimum",
			start:       mgl64.Vec3{0, 0, 0},
			mid:         mgl64.Vec3{5, 1, 0},
			end:         mgl64.Vec3{10, 0, 0},
			minDistance: 5.0,
			// direction (0,1,0) rescaled to (0,5,0)
			expected: mgl64.Vec3{5, 5, 0},
		},
		{
			name:        "bend exactly at the minimum is unchanged",
			start:       mgl64.Vec3{0, 0, 0},
			mid:         mgl64.Vec3{5, 5, 0},
			end:         mgl64.Vec3{10, 0, 0},
			minDistance: 5.0,
			expected:    mgl64.Vec3{5, 5, 0},
		},
		{
			name:        "offset limb away from the origin",
			start:       mgl64.Vec3{0, 15, 0},
			mid:         mgl64.Vec3{5, 15, 1},
			end:         mgl64.Vec3{10, 15, 0},
			minDistance: 5.0,
			// direction (0,0,1) rescaled to (0,0,5)
			expected: mgl64.Vec3{5, 15, 5},
		},
		{
			name:        "zero minimum never rescales",
			start:       mgl64.Vec3{0, 0, 0},
			mid:         mgl64.Vec3{5, 0.25, 0},
			end:         mgl64.Vec3{10, 0, 0},
			minDistance: 0,
			expected:    mgl64.Vec3{5, 0.25, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Position(tt.start, tt.mid, tt.end, tt.minDistance)
			if err != nil {
				t.Fatalf("Position() error = %v", err)
			}
			if !got.ApproxEqualThreshold(tt.expected, 1e-6) {
				t.Errorf("Position() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPositionMinimumDistanceProperty(t *testing.T) {
	tests := []struct {
		name  string
		start mgl64.Vec3
		mid   mgl64.Vec3
		end   mgl64.Vec3
	}{
		{
			name:  "tiny bend",
			start: mgl64.Vec3{0, 0, 0},
			mid:   mgl64.Vec3{1, 0.001, 0},
			end:   mgl64.Vec3{2, 0, 0},
		},
		{
			name:  "moderate bend below minimum",
			start: mgl64.Vec3{-3, 2, 1},
			mid:   mgl64.Vec3{0, 4, 1},
			end:   mgl64.Vec3{3, 2, 1},
		},
	}

	const minDistance = 5.0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Position(tt.start, tt.mid, tt.end, minDistance)
			if err != nil {
				t.Fatalf("Position() error = %v", err)
			}

			midpoint := vecmath.Midpoint(tt.start, tt.end)
			dist := got.Sub(midpoint).Len()
			if dist < minDistance-1e-9 {
				t.Errorf("pole vector at distance %v from midpoint, want >= %v", dist, minDistance)
			}
		})
	}
}

func TestPositionDegenerateLimb(t *testing.T) {
	tests := []struct {
		name  string
		start mgl64.Vec3
		mid   mgl64.Vec3
		end   mgl64.Vec3
	}{
		{
			name:  "collinear along X",
			start: mgl64.Vec3{0, 0, 0},
			mid:   mgl64.Vec3{1, 0, 0},
			end:   mgl64.Vec3{2, 0, 0},
		},
		{
			name:  "all joints coincident",
			start: mgl64.Vec3{3, 3, 3},
			mid:   mgl64.Vec3{3, 3, 3},
			end:   mgl64.Vec3{3, 3, 3},
		},
		{
			name:  "mid exactly at the midpoint",
			start: mgl64.Vec3{0, 1, 0},
			mid:   mgl64.Vec3{2, 1, 0},
			end:   mgl64.Vec3{4, 1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Position(tt.start, tt.mid, tt.end, DefaultMinDistance)

			var degenerate DegenerateLimbError
			if !errors.As(err, &degenerate) {
				t.Fatalf("Position() error = %v, want DegenerateLimbError", err)
			}
		})
	}
}
