package render

import (
	"math"
	"sync"

	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/vmath"
)

// Node is a scene-graph handle
// The frame loop writes it and the renderer reads it; mu guards both sides
type Node struct {
	scene    *SceneGraph
	kind     engine.Kind
	parent   *Node
	children []*Node

	position vmath.Vec3
	rotation vmath.Vec3
	scale    vmath.Vec3
	visible  bool
	color    RGB
	vertices []vmath.Vec3
}

// Transform is a node's placement in world space, projected on the XY plane
type Transform struct {
	Position vmath.Vec3
	RotZ     float64
	Scale    vmath.Vec3
}

// Apply maps a local point through the transform
func (t Transform) Apply(p vmath.Vec3) vmath.Vec3 {
	x, y := p.X*t.Scale.X, p.Y*t.Scale.Y
	sin, cos := math.Sincos(t.RotZ)
	return vmath.V3(t.Position.X+x*cos-y*sin, t.Position.Y+x*sin+y*cos, t.Position.Z+p.Z*t.Scale.Z)
}

func (t Transform) compose(n *Node) Transform {
	return Transform{
		Position: t.Apply(n.position),
		RotZ:     t.RotZ + n.rotation.Z,
		Scale:    vmath.V3(t.Scale.X*n.scale.X, t.Scale.Y*n.scale.Y, t.Scale.Z*n.scale.Z),
	}
}

func (n *Node) Attach(parent engine.Handle) {
	p, ok := parent.(*Node)
	if !ok {
		return
	}
	n.scene.mu.Lock()
	defer n.scene.mu.Unlock()
	n.detachLocked()
	n.parent = p
	p.children = append(p.children, n)
}

func (n *Node) Detach() {
	n.scene.mu.Lock()
	defer n.scene.mu.Unlock()
	n.detachLocked()
}

func (n *Node) detachLocked() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			last := len(p.children) - 1
			p.children[i] = p.children[last]
			p.children[last] = nil
			p.children = p.children[:last]
			break
		}
	}
	n.parent = nil
}

func (n *Node) SetPosition(x, y, z float64) { n.set(func() { n.position = vmath.V3(x, y, z) }) }
func (n *Node) SetRotation(x, y, z float64) { n.set(func() { n.rotation = vmath.V3(x, y, z) }) }
func (n *Node) SetScale(x, y, z float64)    { n.set(func() { n.scale = vmath.V3(x, y, z) }) }
func (n *Node) SetVisible(visible bool)     { n.set(func() { n.visible = visible }) }
func (n *Node) SetColor(rgb uint32)         { n.set(func() { n.color = FromHex(rgb) }) }

func (n *Node) VertexCount() int {
	n.scene.mu.Lock()
	defer n.scene.mu.Unlock()
	return len(n.vertices)
}

func (n *Node) SetVertex(i int, x, y, z float64) {
	n.set(func() {
		for len(n.vertices) <= i {
			n.vertices = append(n.vertices, vmath.Vec3{})
		}
		n.vertices[i] = vmath.V3(x, y, z)
	})
}

func (n *Node) set(fn func()) {
	n.scene.mu.Lock()
	fn()
	n.scene.mu.Unlock()
}

func (n *Node) Kind() engine.Kind      { return n.kind }
func (n *Node) Color() RGB             { return n.color }
func (n *Node) Rotation() vmath.Vec3   { return n.rotation }
func (n *Node) Vertices() []vmath.Vec3 { return n.vertices }

// SceneGraph is the engine.Scene both front ends draw from
type SceneGraph struct {
	mu    sync.Mutex
	root  *Node
	count [engine.KindCloudBlock + 1]int
}

func NewSceneGraph() *SceneGraph {
	s := &SceneGraph{}
	s.root = s.newNode(engine.KindGroup)
	return s
}

func (s *SceneGraph) newNode(kind engine.Kind) *Node {
	return &Node{scene: s, kind: kind, scale: vmath.V3(1, 1, 1), visible: true}
}

func (s *SceneGraph) NewHandle(kind engine.Kind) engine.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int(kind) < len(s.count) {
		s.count[kind]++
	}
	return s.newNode(kind)
}

func (s *SceneGraph) Root() engine.Handle {
	return s.root
}

// Created returns how many handles of kind were made
func (s *SceneGraph) Created(kind engine.Kind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int(kind) >= len(s.count) {
		return 0
	}
	return s.count[kind]
}

// Walk visits every visible node attached under the root, parents first
// fn runs under the scene lock and must not call back into handles
func (s *SceneGraph) Walk(fn func(n *Node, world Transform)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	identity := Transform{Scale: vmath.V3(1, 1, 1)}
	for _, c := range s.root.children {
		walk(c, identity, fn)
	}
}

func walk(n *Node, parent Transform, fn func(*Node, Transform)) {
	if !n.visible {
		return
	}
	world := parent.compose(n)
	fn(n, world)
	for _, c := range n.children {
		walk(c, world, fn)
	}
}
