package vecmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMidpoint(t *testing.T) {
	tests := []struct {
		name     string
		a        mgl64.Vec3
		b        mgl64.Vec3
		expected mgl64.Vec3
	}{
		{
			name:     "origin to x axis",
			a:        mgl64.Vec3{0, 0, 0},
			b:        mgl64.Vec3{10, 0, 0},
			expected: mgl64.Vec3{5, 0, 0},
		},
		{
			name:     "coincident points",
			a:        mgl64.Vec3{2, -1, 4},
			b:        mgl64.Vec3{2, -1, 4},
			expected: mgl64.Vec3{2, -1, 4},
		},
		{
			name:     "mixed signs",
			a:        mgl64.Vec3{-4, 2, 6},
			b:        mgl64.Vec3{4, -2, -6},
			expected: mgl64.Vec3{0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Midpoint(tt.a, tt.b)
			if !got.ApproxEqualThreshold(tt.expected, 1e-10) {
				t.Errorf("Midpoint() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTranslationRoundTrip(t *testing.T) {
	v := mgl64.Vec3{1.5, -2, 8}

	if got := Translation(TranslationMat(v)); !got.ApproxEqualThreshold(v, 1e-10) {
		t.Errorf("Translation(TranslationMat(v)) = %v, want %v", got, v)
	}
}

func TestTranslationDiscardsRotation(t *testing.T) {
	m := mgl64.Translate3D(3, 4, 5).Mul4(mgl64.HomogRotate3DZ(1.3))

	if got := Translation(m); !got.ApproxEqualThreshold(mgl64.Vec3{3, 4, 5}, 1e-10) {
		t.Errorf("Translation() = %v, want (3,4,5)", got)
	}
}

func TestTRSTranslationOnly(t *testing.T) {
	got := TRS(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, RotateOrderXYZ)

	if !got.ApproxEqualThreshold(mgl64.Translate3D(1, 2, 3), 1e-10) {
		t.Errorf("TRS() = %v, want pure translation", got)
	}
}

func TestTRSRotatesPoints(t *testing.T) {
	// 90° around Z maps +X to +Y.
	m := TRS(mgl64.Vec3{}, mgl64.Vec3{0, 0, 90}, mgl64.Vec3{1, 1, 1}, RotateOrderXYZ)

	got := m.Mul4x1(mgl64.Vec4{1, 0, 0, 1}).Vec3()
	if !got.ApproxEqualThreshold(mgl64.Vec3{0, 1, 0}, 1e-9) {
		t.Errorf("rotated point = %v, want (0,1,0)", got)
	}
}

func TestTRSRotateOrderMatters(t *testing.T) {
	rotate := mgl64.Vec3{90, 0, 90}
	unit := mgl64.Vec3{1, 1, 1}

	// Order xyz applies X before Z: (0,1,0) → (0,0,1) → (0,0,1).
	xyz := TRS(mgl64.Vec3{}, rotate, unit, RotateOrderXYZ)
	gotXYZ := xyz.Mul4x1(mgl64.Vec4{0, 1, 0, 1}).Vec3()
	if !gotXYZ.ApproxEqualThreshold(mgl64.Vec3{0, 0, 1}, 1e-9) {
		t.Errorf("xyz rotated point = %v, want (0,0,1)", gotXYZ)
	}

	// Order zyx applies Z before X: (0,1,0) → (-1,0,0) → (-1,0,0).
	zyx := TRS(mgl64.Vec3{}, rotate, unit, RotateOrderZYX)
	gotZYX := zyx.Mul4x1(mgl64.Vec4{0, 1, 0, 1}).Vec3()
	if !gotZYX.ApproxEqualThreshold(mgl64.Vec3{-1, 0, 0}, 1e-9) {
		t.Errorf("zyx rotated point = %v, want (-1,0,0)", gotZYX)
	}
}

func TestTRSScale(t *testing.T) {
	m := TRS(mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{2, 3, 4}, RotateOrderXYZ)

	got := m.Mul4x1(mgl64.Vec4{1, 1, 1, 1}).Vec3()
	if !got.ApproxEqualThreshold(mgl64.Vec3{2, 3, 4}, 1e-10) {
		t.Errorf("scaled point = %v, want (2,3,4)", got)
	}
}

func TestParseRotateOrder(t *testing.T) {
	for order, name := range rotateOrderNames {
		got, err := ParseRotateOrder(name)
		if err != nil {
			t.Fatalf("ParseRotateOrder(%q) error = %v", name, err)
		}
		if got != order {
			t.Errorf("ParseRotateOrder(%q) = %v, want %v", name, got, order)
		}
	}

	if _, err := ParseRotateOrder("xxy"); err == nil {
		t.Error("ParseRotateOrder(\"xxy\") expected an error")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(mgl64.Vec3{1, -2, 3}) {
		t.Error("IsFinite() = false for a finite vector")
	}
	if IsFinite(mgl64.Vec3{math.NaN(), 0, 0}) {
		t.Error("IsFinite() = true for NaN")
	}
	if IsFinite(mgl64.Vec3{0, math.Inf(1), 0}) {
		t.Error("IsFinite() = true for +Inf")
	}
}

func TestIsFiniteMat(t *testing.T) {
	if !IsFiniteMat(mgl64.Ident4()) {
		t.Error("IsFiniteMat() = false for identity")
	}

	bad := mgl64.Ident4()
	bad[5] = math.Inf(-1)
	if IsFiniteMat(bad) {
		t.Error("IsFiniteMat() = true for a matrix with -Inf")
	}
}
