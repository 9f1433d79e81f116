// Package tendon plans IK/FK limb rigs as pure data.
//
// Plan turns an immutable LimbSpec into an ordered list of entries (duplicate
// joints, FK controls, IK control, pole-vector control), each carrying the
// offset matrix or world pose it must be placed at. The plan never touches a
// scene graph: a host-application adapter creates the nodes, parents them and
// applies each entry's offset as the node's parent-independent placement
// input, in the given order.
package tendon

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rigkit/tendon/offset"
	"github.com/rigkit/tendon/polevector"
	"github.com/rigkit/tendon/vecmath"
)

// ControlSet selects which controls a limb plan emits. Duplicate joints are
// always emitted; the zero value plans a bare duplicate chain.
type ControlSet uint8

const (
	ControlFK ControlSet = 1 << iota
	ControlIK
	ControlPoleVector
)

// DefaultControls builds the full IK/FK setup.
const DefaultControls = ControlFK | ControlIK | ControlPoleVector

func (cs ControlSet) Has(c ControlSet) bool {
	return cs&c != 0
}

// JointSpec is a single skin joint sampled from the host scene.
type JointSpec struct {
	Name        string
	World       mgl64.Mat4
	Parent      string
	RotateOrder vecmath.RotateOrder
}

// LimbSpec describes one limb to plan: an ordered root→end joint chain
// (e.g. shoulder→elbow→wrist) plus naming and control options.
type LimbSpec struct {
	Joints        []JointSpec
	Side          SideTag
	JointNaming   NamingRule // skin joint → duplicate joint
	ControlNaming NamingRule // duplicate joint → FK control
	Controls      ControlSet

	// MidIndex designates the bend joint used for pole-vector placement.
	// Zero picks the chain middle, len(Joints)/2.
	MidIndex int

	// PoleVectorDistance is the minimum pole-vector distance from the chain.
	// Zero uses polevector.DefaultMinDistance.
	PoleVectorDistance float64
}

// EntryKind tags what a plan entry asks the adapter to create.
type EntryKind int

const (
	KindDuplicateJoint EntryKind = iota
	KindFkControl
	KindIkControl
	KindPvControl
)

var entryKindNames = map[EntryKind]string{
	KindDuplicateJoint: "duplicate_joint",
	KindFkControl:      "fk_control",
	KindIkControl:      "ik_control",
	KindPvControl:      "pv_control",
}

func (k EntryKind) String() string {
	if name, ok := entryKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EntryKind(%d)", int(k))
}

// ControlPlanEntry is one node the adapter must create.
//
// Offset is the entry's placement: relative to the named Parent entry when
// Parent is set, a full world pose otherwise. Drives names the duplicate
// joint whose translate/rotate/scale channels the entry must be wired to
// (FK controls only).
type ControlPlanEntry struct {
	Kind        EntryKind
	Name        string
	Parent      string
	Offset      mgl64.Mat4
	RotateOrder vecmath.RotateOrder
	Drives      string
}

// PoleVectorBinding declares that the IK solve's pole-vector input must track
// the pole control's world translation expressed relative to the start joint
// and re-added. A direct pole-vector constraint does not cooperate with
// offset-matrix placement, so the binding is emitted as data for the adapter
// to wire with whatever native mechanism reproduces Resolve.
type PoleVectorBinding struct {
	StartJoint string
	Control    string
}

// Resolve evaluates the binding: start + (pv − start). Algebraically the pole
// control's position, but kept decomposed to mirror the two-node
// subtract/re-add network the binding describes.
func (b PoleVectorBinding) Resolve(startWorld, pvWorld mgl64.Vec3) mgl64.Vec3 {
	relative := pvWorld.Sub(startWorld)
	return startWorld.Add(relative)
}

// RigPlan is the ordered output of Plan. Entries are emitted duplicates
// first, root before children, then FK controls, then IK and pole-vector
// controls; the adapter must apply them in order because each child's offset
// was solved against its parent's resolved world transform.
type RigPlan struct {
	Entries    []ControlPlanEntry
	PoleVector *PoleVectorBinding
}

// Plan computes the creation plan for one limb. It is a pure function of the
// spec: no state is held across calls and concurrent calls need no
// coordination.
func Plan(spec LimbSpec) (*RigPlan, error) {
	if err := validate(spec); err != nil {
		return nil, err
	}

	minDist := spec.PoleVectorDistance
	if minDist == 0 {
		minDist = polevector.DefaultMinDistance
	}

	plan := &RigPlan{}
	seen := make(map[string]struct{})
	add := func(entry ControlPlanEntry) error {
		if _, ok := seen[entry.Name]; ok {
			return NameCollisionError{Name: entry.Name}
		}
		seen[entry.Name] = struct{}{}
		plan.Entries = append(plan.Entries, entry)
		return nil
	}

	// Duplicate chain, root first: each child's offset is solved against the
	// previous source joint's world pose, which the previous duplicate
	// reproduces exactly.
	dupNames := make([]string, len(spec.Joints))
	for i, joint := range spec.Joints {
		dupNames[i] = spec.JointNaming.Apply(joint.Name)

		parentName := ""
		var parentWorld *mgl64.Mat4
		if i > 0 {
			parentName = dupNames[i-1]
			world := spec.Joints[i-1].World
			parentWorld = &world
		}

		off, err := offset.ComputeOffset(joint.World, parentWorld)
		if err != nil {
			return nil, fmt.Errorf("duplicate of joint %q: %w", joint.Name, err)
		}

		if err := add(ControlPlanEntry{
			Kind:        KindDuplicateJoint,
			Name:        dupNames[i],
			Parent:      parentName,
			Offset:      off,
			RotateOrder: joint.RotateOrder,
		}); err != nil {
			return nil, err
		}
	}

	if spec.Controls.Has(ControlFK) {
		ctrlNames := make([]string, len(spec.Joints))
		for i, joint := range spec.Joints {
			ctrlNames[i] = spec.ControlNaming.Apply(dupNames[i])

			parentName := ""
			var parentWorld *mgl64.Mat4
			if i > 0 {
				parentName = ctrlNames[i-1]
				world := spec.Joints[i-1].World
				parentWorld = &world
			}

			off, err := offset.ComputeOffset(joint.World, parentWorld)
			if err != nil {
				return nil, fmt.Errorf("FK control for joint %q: %w", joint.Name, err)
			}

			if err := add(ControlPlanEntry{
				Kind:   KindFkControl,
				Name:   ctrlNames[i],
				Parent: parentName,
				Offset: off,
				Drives: dupNames[i],
			}); err != nil {
				return nil, err
			}
		}
	}

	if spec.Controls.Has(ControlIK) {
		// Only the end joint's translation is matched, never its rotation or
		// scale: the IK control stays world-oriented.
		end := spec.Joints[len(spec.Joints)-1]
		pose := vecmath.TranslationMat(vecmath.Translation(end.World))

		if err := add(ControlPlanEntry{
			Kind:   KindIkControl,
			Name:   ikControlName(spec.Side),
			Offset: pose,
		}); err != nil {
			return nil, err
		}
	}

	if spec.Controls.Has(ControlPoleVector) {
		mid := spec.MidIndex
		if mid == 0 {
			mid = len(spec.Joints) / 2
		}

		pos, err := polevector.Position(
			vecmath.Translation(spec.Joints[0].World),
			vecmath.Translation(spec.Joints[mid].World),
			vecmath.Translation(spec.Joints[len(spec.Joints)-1].World),
			minDist,
		)
		if err != nil {
			return nil, fmt.Errorf("pole vector for limb %q: %w", spec.Joints[0].Name, err)
		}

		name := pvControlName(spec.Side)
		if err := add(ControlPlanEntry{
			Kind:   KindPvControl,
			Name:   name,
			Offset: vecmath.TranslationMat(pos),
		}); err != nil {
			return nil, err
		}

		plan.PoleVector = &PoleVectorBinding{
			StartJoint: dupNames[0],
			Control:    name,
		}
	}

	return plan, nil
}

func validate(spec LimbSpec) error {
	joints := len(spec.Joints)
	if joints == 0 {
		return InvalidLimbSpecError{Joints: joints, Controls: spec.Controls,
			Reason: "at least one joint is required"}
	}
	if spec.Controls.Has(ControlIK) && joints < 2 {
		return InvalidLimbSpecError{Joints: joints, Controls: spec.Controls,
			Reason: "an IK control requires at least two joints"}
	}
	if spec.Controls.Has(ControlPoleVector) && joints < 3 {
		return InvalidLimbSpecError{Joints: joints, Controls: spec.Controls,
			Reason: "a pole-vector control requires at least three joints"}
	}
	if spec.Controls.Has(ControlPoleVector) && spec.MidIndex != 0 {
		if spec.MidIndex <= 0 || spec.MidIndex >= joints-1 {
			return InvalidLimbSpecError{Joints: joints, Controls: spec.Controls,
				Reason: fmt.Sprintf("mid joint index %d is not strictly between start and end", spec.MidIndex)}
		}
	}
	return nil
}
