package tendon

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rigkit/tendon/vecmath"
)

// Scene is the read-only snapshot contract a host-application adapter
// provides. The planner never mutates the scene; it only samples world poses
// and rotate orders from it.
type Scene interface {
	WorldTransform(nodeID string) (mgl64.Mat4, error)
	RotateOrder(nodeID string) (vecmath.RotateOrder, error)
	WorldPosition(nodeID string) (mgl64.Vec3, error)
}

// SnapshotLimb samples an ordered root→end joint chain from the scene. Each
// joint's Parent is the previous name in the chain.
func SnapshotLimb(scene Scene, names []string) ([]JointSpec, error) {
	joints := make([]JointSpec, 0, len(names))

	parent := ""
	for _, name := range names {
		world, err := scene.WorldTransform(name)
		if err != nil {
			return nil, fmt.Errorf("snapshot joint %q: %w", name, err)
		}
		order, err := scene.RotateOrder(name)
		if err != nil {
			return nil, fmt.Errorf("snapshot joint %q: %w", name, err)
		}

		joints = append(joints, JointSpec{
			Name:        name,
			World:       world,
			Parent:      parent,
			RotateOrder: order,
		})
		parent = name
	}

	return joints, nil
}

type staticNode struct {
	world mgl64.Mat4
	order vecmath.RotateOrder
}

// StaticScene is an in-memory Scene: a snapshot of node poses captured up
// front. Host bridges fill one before planning so the planner never calls
// back into the application mid-plan.
type StaticScene struct {
	nodes map[string]staticNode
}

func NewStaticScene() *StaticScene {
	return &StaticScene{nodes: make(map[string]staticNode)}
}

// AddNode records a node's world pose and rotate order, replacing any
// previous sample under the same name.
func (s *StaticScene) AddNode(name string, world mgl64.Mat4, order vecmath.RotateOrder) {
	s.nodes[name] = staticNode{world: world, order: order}
}

func (s *StaticScene) WorldTransform(nodeID string) (mgl64.Mat4, error) {
	node, ok := s.nodes[nodeID]
	if !ok {
		return mgl64.Mat4{}, fmt.Errorf("scene snapshot has no node %q", nodeID)
	}
	return node.world, nil
}

func (s *StaticScene) RotateOrder(nodeID string) (vecmath.RotateOrder, error) {
	node, ok := s.nodes[nodeID]
	if !ok {
		return vecmath.RotateOrderXYZ, fmt.Errorf("scene snapshot has no node %q", nodeID)
	}
	return node.order, nil
}

func (s *StaticScene) WorldPosition(nodeID string) (mgl64.Vec3, error) {
	world, err := s.WorldTransform(nodeID)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return vecmath.Translation(world), nil
}
