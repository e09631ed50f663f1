package engine

// Kind tells the rendering collaborator what a handle depicts
type Kind uint8

const (
	KindGroup Kind = iota
	KindAircraft
	KindPropeller
	KindPilotHair
	KindCoin
	KindEnemy
	KindParticle
	KindSea
	KindSky
	KindCloud
	KindCloudBlock
)

var kindNames = [...]string{
	KindGroup:      "group",
	KindAircraft:   "aircraft",
	KindPropeller:  "propeller",
	KindPilotHair:  "pilot-hair",
	KindCoin:       "coin",
	KindEnemy:      "enemy",
	KindParticle:   "particle",
	KindSea:        "sea",
	KindSky:        "sky",
	KindCloud:      "cloud",
	KindCloudBlock: "cloud-block",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Handle is the opaque visual object owned by exactly one entity
// The core only writes through it, it never reads geometry or material back
type Handle interface {
	Attach(parent Handle)
	Detach()
	SetPosition(x, y, z float64)
	SetRotation(x, y, z float64)
	SetScale(x, y, z float64)
	SetVisible(visible bool)
	SetColor(rgb uint32)
}

// Deformable is implemented by handles whose vertices the core perturbs (sea surface)
type Deformable interface {
	Handle
	VertexCount() int
	SetVertex(i int, x, y, z float64)
}

// Scene creates handles for the core
// Handles are created once per entity and never destroyed while the session lives
type Scene interface {
	NewHandle(kind Kind) Handle
	Root() Handle
}
