// Package polevector places the pole-vector control for an IK limb.
//
// The control sits in the limb's bend plane, offset from the midpoint of the
// straight start→end line towards the mid joint, and never closer to that
// midpoint than a minimum distance. A pole vector too close to the chain makes
// the IK solve numerically unstable or prone to flipping.
package polevector

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rigkit/tendon/vecmath"
)

// DefaultMinDistance is the minimum pole-vector distance used when a limb
// does not specify its own.
const DefaultMinDistance = 5.0

// bendEpsilon is the bend-vector length below which the limb is treated as
// perfectly straight.
const bendEpsilon = 1e-9

// DegenerateLimbError reports a straight limb whose joints give no bend
// direction to place the pole vector along.
type DegenerateLimbError struct {
	Start, Mid, End mgl64.Vec3
}

func (e DegenerateLimbError) Error() string {
	return fmt.Sprintf("limb is straight, no bend direction for pole vector (start %v, mid %v, end %v)",
		e.Start, e.Mid, e.End)
}

// Position computes the world-space pole-vector position for the limb with
// the given start, mid and end joint positions.
//
// The result is midpoint + direction, where midpoint is halfway along the
// straight start→end line and direction points from that midpoint to the mid
// joint, rescaled to minDistance when shorter.
func Position(start, mid, end mgl64.Vec3, minDistance float64) (mgl64.Vec3, error) {
	midpoint := vecmath.Midpoint(start, end)
	direction := mid.Sub(midpoint)

	dist := direction.Len()
	if dist < bendEpsilon {
		return mgl64.Vec3{}, DegenerateLimbError{Start: start, Mid: mid, End: end}
	}
	if dist < minDistance {
		direction = direction.Mul(minDistance / dist)
	}

	return midpoint.Add(direction), nil
}
