package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rigkit/tendon"
	"github.com/rigkit/tendon/vecmath"
)

func main() {
	// Snapshot a bent left arm: shoulder at the origin, elbow forward of the
	// straight shoulder→wrist line.
	scene := tendon.NewStaticScene()
	scene.AddNode("L_arm_01_skin_jnt", mgl64.Translate3D(0, 15, 0), vecmath.RotateOrderXYZ)
	scene.AddNode("L_arm_02_skin_jnt", mgl64.Translate3D(5, 15, 1), vecmath.RotateOrderXYZ)
	scene.AddNode("L_arm_03_skin_jnt", mgl64.Translate3D(10, 15, 0), vecmath.RotateOrderXYZ)

	joints, err := tendon.SnapshotLimb(scene, []string{
		"L_arm_01_skin_jnt",
		"L_arm_02_skin_jnt",
		"L_arm_03_skin_jnt",
	})
	if err != nil {
		panic(err)
	}

	plan, err := tendon.Plan(tendon.LimbSpec{
		Joints:        joints,
		Side:          tendon.SideLeft,
		JointNaming:   tendon.NamingRule{Search: "skin", Replace: "fk"},
		ControlNaming: tendon.NamingRule{Search: "jnt", Replace: "ctrl"},
		Controls:      tendon.DefaultControls,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("Plan with %d entries:\n", len(plan.Entries))
	for _, entry := range plan.Entries {
		parent := entry.Parent
		if parent == "" {
			parent = "<world>"
		}
		fmt.Printf("  %-15s %-22s parent=%-22s position=%v\n",
			entry.Kind, entry.Name, parent, vecmath.Translation(entry.Offset))
		if entry.Drives != "" {
			fmt.Printf("                  drives %s\n", entry.Drives)
		}
	}
	if plan.PoleVector != nil {
		fmt.Printf("Pole vector: drive IK from %s relative to %s\n",
			plan.PoleVector.Control, plan.PoleVector.StartJoint)
	}
}
