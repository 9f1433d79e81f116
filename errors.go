package tendon

import "fmt"

// InvalidLimbSpecError reports a limb spec that cannot carry the requested
// control set, e.g. fewer than three joints with a pole vector requested.
type InvalidLimbSpecError struct {
	Joints   int
	Controls ControlSet
	Reason   string
}

func (e InvalidLimbSpecError) Error() string {
	return fmt.Sprintf("invalid limb spec (%d joints): %s", e.Joints, e.Reason)
}

// NameCollisionError reports two plan entries resolving to the same name.
// A colliding plan is rejected whole; no partial plan is returned.
type NameCollisionError struct {
	Name string
}

func (e NameCollisionError) Error() string {
	return fmt.Sprintf("plan entries collide on name %q", e.Name)
}
