package anim

import (
	"errors"
	"fmt"

	"github.com/Faultbox/glmath/pkg/math"
)

// ErrUnknownNode is returned when a node name is not part of the model.
var ErrUnknownNode = errors.New("unknown node")

// Node is one transform in a model hierarchy.
type Node[T math.Scalar] struct {
	Name   string
	Parent string // Empty for a root

	// Static transform, inherited by children
	Position math.Vec3[T]
	Axis     math.Vec3[T] // Rotation axis, used when RotKeys is empty
	Angle    T            // Rotation angle (radians)
	Scale    math.Vec3[T]

	// Vertex-only transform, not inherited by children
	Offset math.Vec3[T]
	Basis  math.Mat3[T]

	// Animation keyframes
	PosKeys   []VectorKey[T]
	RotKeys   []RotationKey[T]
	ScaleKeys []VectorKey[T]
}

// NewNode returns a node with unit scale and an identity basis.
func NewNode[T math.Scalar](name, parent string) Node[T] {
	return Node[T]{
		Name:   name,
		Parent: parent,
		Scale:  math.Vec3[T]{X: 1, Y: 1, Z: 1},
		Basis:  math.Mat3Identity[T](),
	}
}

// Local returns the node's own Position * Rotation * Scale matrix at time.
// Keyframes take precedence over the static transform, except that
// animated scale multiplies the static scale.
func (n *Node[T]) Local(time T) math.Mat4[T] {
	local := math.Translate(SampleVector(n.PosKeys, time, n.Position))

	// Apply rotation (axis-angle OR keyframe, not both)
	if len(n.RotKeys) > 0 {
		local.MulIn(SampleRotation(n.RotKeys, time).ToMat4())
	} else if n.Angle != 0 {
		axis := n.Axis
		if err := axis.TryNormalize(); err == nil {
			local.MulIn(math.RotateAxis(axis, n.Angle))
		}
	}

	local.MulIn(math.Scale(n.Scale))
	if len(n.ScaleKeys) > 0 {
		local.MulIn(math.Scale(SampleVector(n.ScaleKeys, time, math.Vec3[T]{X: 1, Y: 1, Z: 1})))
	}
	return local
}

// Model is a set of named nodes forming a hierarchy.
type Model[T math.Scalar] struct {
	Nodes []Node[T]
	index map[string]int
}

// NewModel indexes nodes by name. Later duplicates shadow earlier ones.
func NewModel[T math.Scalar](nodes ...Node[T]) *Model[T] {
	m := &Model[T]{Nodes: nodes, index: make(map[string]int, len(nodes))}
	for i := range nodes {
		m.index[nodes[i].Name] = i
	}
	return m
}

// Node returns the node with the given name, or nil.
func (m *Model[T]) Node(name string) *Node[T] {
	i, ok := m.index[name]
	if !ok {
		return nil
	}
	return &m.Nodes[i]
}

// HierarchyMatrix returns parent * ... * Local for the named node: the
// matrix its children inherit. A parent that is missing is treated as the
// root, and a cycle is cut where it closes.
func (m *Model[T]) HierarchyMatrix(name string, time T) (math.Mat4[T], error) {
	node := m.Node(name)
	if node == nil {
		return math.Mat4Identity[T](), fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return m.hierarchy(node, time, make(map[string]bool)), nil
}

func (m *Model[T]) hierarchy(node *Node[T], time T, visited map[string]bool) math.Mat4[T] {
	// Prevent infinite recursion
	if visited[node.Name] {
		return math.Mat4Identity[T]()
	}
	visited[node.Name] = true

	local := node.Local(time)
	if node.Parent == "" || node.Parent == node.Name {
		return local
	}
	parent := m.Node(node.Parent)
	if parent == nil {
		return local
	}
	return m.hierarchy(parent, time, visited).Mul(local)
}

// VertexMatrix returns the matrix applied to the node's own vertices:
// the hierarchy matrix followed by the node's Offset and Basis.
func (m *Model[T]) VertexMatrix(name string, time T) (math.Mat4[T], error) {
	h, err := m.HierarchyMatrix(name, time)
	if err != nil {
		return h, err
	}
	node := m.Node(name)
	return h.Mul(math.Translate(node.Offset)).Mul(node.Basis.Mat4()), nil
}

// Animated reports whether any node has more than one keyframe in a track.
// A single keyframe is a static pose.
func (m *Model[T]) Animated() bool {
	for i := range m.Nodes {
		n := &m.Nodes[i]
		if len(n.RotKeys) > 1 || len(n.PosKeys) > 1 || len(n.ScaleKeys) > 1 {
			return true
		}
	}
	return false
}
