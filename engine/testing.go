package engine

import "github.com/lixenwraith/aviator/vmath"

// MockHandle records every write for assertions in headless tests
type MockHandle struct {
	Kind     Kind
	ID       int
	Parent   *MockHandle
	Children int
	Position vmath.Vec3
	Rotation vmath.Vec3
	Scale    vmath.Vec3
	Visible  bool
	Color    uint32
	Vertices []vmath.Vec3
	Attaches int
	Detaches int
}

func (h *MockHandle) Attach(parent Handle) {
	if h.Parent != nil {
		h.Detach()
	}
	if p, ok := parent.(*MockHandle); ok {
		h.Parent = p
		p.Children++
	}
	h.Attaches++
}

func (h *MockHandle) Detach() {
	if h.Parent != nil {
		h.Parent.Children--
		h.Parent = nil
	}
	h.Detaches++
}

func (h *MockHandle) SetPosition(x, y, z float64) { h.Position = vmath.V3(x, y, z) }
func (h *MockHandle) SetRotation(x, y, z float64) { h.Rotation = vmath.V3(x, y, z) }
func (h *MockHandle) SetScale(x, y, z float64)    { h.Scale = vmath.V3(x, y, z) }
func (h *MockHandle) SetVisible(visible bool)     { h.Visible = visible }
func (h *MockHandle) SetColor(rgb uint32)         { h.Color = rgb }

func (h *MockHandle) VertexCount() int { return len(h.Vertices) }

func (h *MockHandle) SetVertex(i int, x, y, z float64) {
	for len(h.Vertices) <= i {
		h.Vertices = append(h.Vertices, vmath.Vec3{})
	}
	h.Vertices[i] = vmath.V3(x, y, z)
}

// MockScene is a headless Scene counting handle construction per kind
type MockScene struct {
	root    *MockHandle
	Handles []*MockHandle
	Created map[Kind]int
}

// NewMockScene creates an empty headless scene
func NewMockScene() *MockScene {
	return &MockScene{
		root:    &MockHandle{Kind: KindGroup, Visible: true, Scale: vmath.V3(1, 1, 1)},
		Created: make(map[Kind]int),
	}
}

func (s *MockScene) NewHandle(kind Kind) Handle {
	h := &MockHandle{Kind: kind, ID: len(s.Handles) + 1, Visible: true, Scale: vmath.V3(1, 1, 1)}
	s.Handles = append(s.Handles, h)
	s.Created[kind]++
	return h
}

func (s *MockScene) Root() Handle { return s.root }
