// Package offset computes parent-offset matrices: the local placement a node
// needs so that, composed with its parent's world transform, it reproduces a
// target world pose while its own translate/rotate/scale channels stay at
// identity.
//
// This is the closed form of the host-side technique of duplicating a node,
// zeroing its channels, multiplying its world matrix by the parent's world
// inverse matrix and baking the product into the node's offset-parent input.
package offset

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// detEpsilon is the determinant magnitude below which a parent transform is
// treated as non-invertible (collapsed scale on at least one axis).
const detEpsilon = 1e-12

// DegenerateTransformError reports a parent world transform that cannot be
// inverted.
type DegenerateTransformError struct {
	Det float64
}

func (e DegenerateTransformError) Error() string {
	return fmt.Sprintf("parent transform is degenerate (determinant %g)", e.Det)
}

// ComputeOffset returns the offset matrix O such that Compose(parentWorld, O)
// equals targetWorld. A nil parentWorld means the node lives in world space
// and the offset is the target pose itself.
func ComputeOffset(targetWorld mgl64.Mat4, parentWorld *mgl64.Mat4) (mgl64.Mat4, error) {
	if parentWorld == nil {
		return targetWorld, nil
	}

	det := parentWorld.Det()
	if math.Abs(det) < detEpsilon {
		return mgl64.Mat4{}, DegenerateTransformError{Det: det}
	}

	return parentWorld.Inv().Mul4(targetWorld), nil
}

// Compose applies an offset under a parent world transform, recovering the
// world pose the offset was solved for.
func Compose(parentWorld, offset mgl64.Mat4) mgl64.Mat4 {
	return parentWorld.Mul4(offset)
}
