// Package specfile loads limb descriptions from YAML documents.
//
// A document carries the limb's joint chain as world-space TRS values (or raw
// column-major matrices), the two naming rules and the control options:
//
//	side: left
//	joint_naming: {search: skin, replace: fk}
//	control_naming: {search: jnt, replace: ctrl}
//	controls: [fk, ik, pole_vector]
//	joints:
//	  - name: L_arm_01_skin_jnt
//	    rotate_order: xyz
//	    translate: [0, 0, 0]
package specfile

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rigkit/tendon"
	"github.com/rigkit/tendon/vecmath"
	"gopkg.in/yaml.v3"
)

// Document mirrors the on-disk YAML limb description.
type Document struct {
	Side               string            `yaml:"side"`
	JointNaming        tendon.NamingRule `yaml:"joint_naming"`
	ControlNaming      tendon.NamingRule `yaml:"control_naming"`
	Controls           []string          `yaml:"controls"`
	MidIndex           int               `yaml:"mid_index"`
	PoleVectorDistance float64           `yaml:"pole_vector_distance"`
	Joints             []Joint           `yaml:"joints"`
}

// Joint is one joint sample. World pose is given either as TRS (rotation in
// degrees, applied per rotate_order) or as a raw column-major 16-element
// matrix, which wins when both are present.
type Joint struct {
	Name        string       `yaml:"name"`
	RotateOrder string       `yaml:"rotate_order"`
	Translate   [3]float64   `yaml:"translate"`
	Rotate      [3]float64   `yaml:"rotate"`
	Scale       *[3]float64  `yaml:"scale"`
	Matrix      *[16]float64 `yaml:"matrix"`
}

var controlNames = map[string]tendon.ControlSet{
	"fk":          tendon.ControlFK,
	"ik":          tendon.ControlIK,
	"pole_vector": tendon.ControlPoleVector,
}

// Load reads and parses a limb spec file.
func Load(path string) (tendon.LimbSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tendon.LimbSpec{}, fmt.Errorf("read limb spec: %w", err)
	}
	spec, err := Parse(data)
	if err != nil {
		return tendon.LimbSpec{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return spec, nil
}

// Parse decodes a YAML limb document and resolves it into a LimbSpec.
func Parse(data []byte) (tendon.LimbSpec, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return tendon.LimbSpec{}, fmt.Errorf("decode yaml: %w", err)
	}
	return doc.LimbSpec()
}

// LimbSpec resolves the document: defaults are filled in (side sniffed from
// the first joint name, full control set, xyz rotate order, unit scale) and
// enum fields are validated.
func (doc Document) LimbSpec() (tendon.LimbSpec, error) {
	if len(doc.Joints) == 0 {
		return tendon.LimbSpec{}, fmt.Errorf("document has no joints")
	}

	spec := tendon.LimbSpec{
		JointNaming:        doc.JointNaming,
		ControlNaming:      doc.ControlNaming,
		MidIndex:           doc.MidIndex,
		PoleVectorDistance: doc.PoleVectorDistance,
	}

	if doc.Side == "" {
		spec.Side = tendon.SideFromName(doc.Joints[0].Name)
	} else {
		side, err := tendon.ParseSideTag(doc.Side)
		if err != nil {
			return tendon.LimbSpec{}, err
		}
		spec.Side = side
	}

	if len(doc.Controls) == 0 {
		spec.Controls = tendon.DefaultControls
	} else {
		for _, name := range doc.Controls {
			control, ok := controlNames[name]
			if !ok {
				return tendon.LimbSpec{}, fmt.Errorf("unknown control %q", name)
			}
			spec.Controls |= control
		}
	}

	for i, joint := range doc.Joints {
		if joint.Name == "" {
			return tendon.LimbSpec{}, fmt.Errorf("joint %d has no name", i)
		}

		resolved, err := joint.jointSpec()
		if err != nil {
			return tendon.LimbSpec{}, fmt.Errorf("joint %q: %w", joint.Name, err)
		}
		if i > 0 {
			resolved.Parent = doc.Joints[i-1].Name
		}
		spec.Joints = append(spec.Joints, resolved)
	}

	return spec, nil
}

func (j Joint) jointSpec() (tendon.JointSpec, error) {
	order := vecmath.RotateOrderXYZ
	if j.RotateOrder != "" {
		var err error
		order, err = vecmath.ParseRotateOrder(j.RotateOrder)
		if err != nil {
			return tendon.JointSpec{}, err
		}
	}

	var world mgl64.Mat4
	if j.Matrix != nil {
		world = mgl64.Mat4(*j.Matrix)
	} else {
		scale := mgl64.Vec3{1, 1, 1}
		if j.Scale != nil {
			scale = mgl64.Vec3(*j.Scale)
		}
		world = vecmath.TRS(mgl64.Vec3(j.Translate), mgl64.Vec3(j.Rotate), scale, order)
	}

	if !vecmath.IsFiniteMat(world) {
		return tendon.JointSpec{}, fmt.Errorf("world transform is not finite")
	}

	return tendon.JointSpec{
		Name:        j.Name,
		World:       world,
		RotateOrder: order,
	}, nil
}
