package components

import (
	"math"

	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/parameter"
	"github.com/lixenwraith/aviator/vmath"
)

// Pilot holds the swaying hair strands on the pilot's head
type Pilot struct {
	Hair   [parameter.PilotHairCount]engine.Handle
	Scales [parameter.PilotHairCount]float64
	Phase  float64
}

// Aircraft is the session singleton; its handles outlive every replay
type Aircraft struct {
	Handle    engine.Handle
	Propeller engine.Handle
	Pilot     Pilot

	Position      vmath.Vec3
	Rotation      vmath.Vec3
	PropellerSpin float64
}

// NewAircraft builds the aircraft hierarchy under the scene root
func NewAircraft(scene engine.Scene) *Aircraft {
	a := &Aircraft{
		Handle:    scene.NewHandle(engine.KindAircraft),
		Propeller: scene.NewHandle(engine.KindPropeller),
	}
	a.Handle.Attach(scene.Root())
	a.Handle.SetColor(parameter.ColorRed)
	a.Handle.SetScale(parameter.PlaneScale, parameter.PlaneScale, parameter.PlaneScale)
	a.Propeller.Attach(a.Handle)
	a.Propeller.SetColor(parameter.ColorBrown)

	for i := range a.Pilot.Hair {
		h := scene.NewHandle(engine.KindPilotHair)
		h.Attach(a.Handle)
		h.SetColor(parameter.ColorBrown)
		a.Pilot.Hair[i] = h
	}
	return a
}

// ResetPose puts the aircraft level at its resting altitude
func (a *Aircraft) ResetPose(defaultHeight float64) {
	a.Position = vmath.V3(0, defaultHeight, 0)
	a.Rotation = vmath.Vec3{}
	a.Sync()
}

// SpinPropeller advances the propeller by the given angle
func (a *Aircraft) SpinPropeller(delta float64) {
	a.PropellerSpin = math.Mod(a.PropellerSpin+delta, vmath.TwoPi)
	a.Propeller.SetRotation(a.PropellerSpin, 0, 0)
}

// SwayHair recomputes strand scales and advances the phase one step
func (a *Aircraft) SwayHair() {
	p := &a.Pilot
	for i := range p.Hair {
		s := parameter.PilotHairBase + math.Cos(p.Phase+float64(i)*parameter.PilotHairSpacing)*parameter.PilotHairAmp
		p.Scales[i] = s
		p.Hair[i].SetScale(1, s, 1)
	}
	p.Phase += parameter.PilotHairStep
}

// Sync writes the pose to the handle
func (a *Aircraft) Sync() {
	a.Handle.SetPosition(a.Position.X, a.Position.Y, a.Position.Z)
	a.Handle.SetRotation(a.Rotation.X, a.Rotation.Y, a.Rotation.Z)
}
