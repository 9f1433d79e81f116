// Package vecmath holds the small geometric helpers shared by the rig solvers.
//
// Vectors and matrices are mgl64 values throughout: column-major mgl64.Mat4,
// column-vector convention (world = parent · local), right-handed space.
package vecmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotateOrder is one of the six standard Euler application orders.
// RotateOrderXYZ means the X rotation is applied first, then Y, then Z.
type RotateOrder int

const (
	RotateOrderXYZ RotateOrder = iota
	RotateOrderYZX
	RotateOrderZXY
	RotateOrderXZY
	RotateOrderYXZ
	RotateOrderZYX
)

const (
	axisX = iota
	axisY
	axisZ
)

var rotateOrderAxes = map[RotateOrder][3]int{
	RotateOrderXYZ: {axisX, axisY, axisZ},
	RotateOrderYZX: {axisY, axisZ, axisX},
	RotateOrderZXY: {axisZ, axisX, axisY},
	RotateOrderXZY: {axisX, axisZ, axisY},
	RotateOrderYXZ: {axisY, axisX, axisZ},
	RotateOrderZYX: {axisZ, axisY, axisX},
}

var rotateOrderNames = map[RotateOrder]string{
	RotateOrderXYZ: "xyz",
	RotateOrderYZX: "yzx",
	RotateOrderZXY: "zxy",
	RotateOrderXZY: "xzy",
	RotateOrderYXZ: "yxz",
	RotateOrderZYX: "zyx",
}

func (ro RotateOrder) String() string {
	if name, ok := rotateOrderNames[ro]; ok {
		return name
	}
	return fmt.Sprintf("RotateOrder(%d)", int(ro))
}

// ParseRotateOrder parses the lowercase axis-order form ("xyz", "zyx", ...).
func ParseRotateOrder(s string) (RotateOrder, error) {
	for ro, name := range rotateOrderNames {
		if name == s {
			return ro, nil
		}
	}
	return RotateOrderXYZ, fmt.Errorf("unknown rotate order %q", s)
}

// Midpoint returns the point halfway along the segment from a to b.
func Midpoint(a, b mgl64.Vec3) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(0.5))
}

// Translation extracts the translation component of a transform.
func Translation(m mgl64.Mat4) mgl64.Vec3 {
	return m.Col(3).Vec3()
}

// TranslationMat builds a translation-only transform, discarding any
// rotation or scale the source pose carried.
func TranslationMat(v mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(v.X(), v.Y(), v.Z())
}

// TRS composes a transform from translation, Euler rotation in degrees and
// scale. The rotation axes are applied in the given rotate order, so for
// RotateOrderXYZ the matrix is T · Rz · Ry · Rx · S.
func TRS(translate, rotateDeg, scale mgl64.Vec3, order RotateOrder) mgl64.Mat4 {
	rot := mgl64.Ident4()
	for _, axis := range rotateOrderAxes[order] {
		angle := mgl64.DegToRad(rotateDeg[axis])
		var r mgl64.Mat4
		switch axis {
		case axisX:
			r = mgl64.HomogRotate3DX(angle)
		case axisY:
			r = mgl64.HomogRotate3DY(angle)
		case axisZ:
			r = mgl64.HomogRotate3DZ(angle)
		}
		rot = r.Mul4(rot)
	}

	return TranslationMat(translate).Mul4(rot).Mul4(mgl64.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// IsFinite reports whether every component is a finite number.
func IsFinite(v mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return false
		}
	}
	return true
}

// IsFiniteMat reports whether every matrix element is a finite number.
func IsFiniteMat(m mgl64.Mat4) bool {
	for i := 0; i < 16; i++ {
		if math.IsNaN(m[i]) || math.IsInf(m[i], 0) {
			return false
		}
	}
	return true
}
