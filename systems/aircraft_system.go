package systems

import (
	"time"

	"github.com/lixenwraith/aviator/components"
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/parameter"
	"github.com/lixenwraith/aviator/vmath"
)

// AircraftSystem steers the aircraft toward the pointer and animates its cosmetics
type AircraftSystem struct {
	aircraft *components.Aircraft
	camera   components.Camera
}

func NewAircraftSystem(ctx *engine.GameContext) *AircraftSystem {
	s := &AircraftSystem{
		aircraft: components.NewAircraft(ctx.Scene),
		camera:   components.NewCamera(ctx.State.PlaneDefaultHeight),
	}
	s.aircraft.ResetPose(ctx.State.PlaneDefaultHeight)
	return s
}

func (s *AircraftSystem) Priority() int {
	return parameter.PriorityAircraft
}

// Aircraft returns the session aircraft
func (s *AircraftSystem) Aircraft() *components.Aircraft {
	return s.aircraft
}

// Camera returns the current viewpoint
func (s *AircraftSystem) Camera() components.Camera {
	return s.camera
}

// Steer maps the pointer to a target pose and eases the aircraft and camera toward it
// Collision impulses push the target and decay afterwards
func (s *AircraftSystem) Steer(ctx *engine.GameContext, dt time.Duration) {
	gs := ctx.State
	ms := engine.Milliseconds(dt)
	ptr := ctx.Pointer
	a := s.aircraft

	targetY := vmath.Normalize(ptr.Y, -parameter.PlanePointerYRange, parameter.PlanePointerYRange,
		gs.PlaneDefaultHeight-gs.PlaneAmpHeight, gs.PlaneDefaultHeight+gs.PlaneAmpHeight)
	targetX := vmath.Normalize(ptr.X, -1, 1, -gs.PlaneAmpWidth*parameter.PlaneLateralNearRatio, -gs.PlaneAmpWidth)
	gs.PlaneSpeed = vmath.Normalize(ptr.X, -parameter.PlanePointerSpeedRange, parameter.PlanePointerSpeedRange,
		gs.PlaneMinSpeed, gs.PlaneMaxSpeed)

	gs.PlaneCollisionDisplacementX += gs.PlaneCollisionSpeedX
	targetX += gs.PlaneCollisionDisplacementX
	gs.PlaneCollisionDisplacementY += gs.PlaneCollisionSpeedY
	targetY += gs.PlaneCollisionDisplacementY

	a.Position.Y += (targetY - a.Position.Y) * ms * gs.PlaneMoveSensitivity
	a.Position.X += (targetX - a.Position.X) * ms * gs.PlaneMoveSensitivity
	a.Rotation.Z = (targetY - a.Position.Y) * ms * gs.PlaneRotXSensitivity
	a.Rotation.X = (a.Position.Y - targetY) * ms * gs.PlaneRotZSensitivity
	a.Sync()

	s.camera.Position.Y += (a.Position.Y - s.camera.Position.Y) * ms * gs.CameraSensitivity

	gs.PlaneCollisionSpeedX += -gs.PlaneCollisionSpeedX * ms * parameter.CollisionSpeedDecay
	gs.PlaneCollisionDisplacementX += -gs.PlaneCollisionDisplacementX * ms * parameter.CollisionDisplacementDecay
	gs.PlaneCollisionSpeedY += -gs.PlaneCollisionSpeedY * ms * parameter.CollisionSpeedDecay
	gs.PlaneCollisionDisplacementY += -gs.PlaneCollisionDisplacementY * ms * parameter.CollisionDisplacementDecay
}

// Fall animates the game-over dive and reports whether the aircraft passed the floor
func (s *AircraftSystem) Fall(ctx *engine.GameContext, dt time.Duration) bool {
	gs := ctx.State
	ms := engine.Milliseconds(dt)
	a := s.aircraft

	a.Rotation.Z += (parameter.PlaneFallTargetRollZ - a.Rotation.Z) * parameter.PlaneFallRollRate * ms
	a.Rotation.X += parameter.PlaneFallPitchRate * ms
	gs.PlaneFallSpeed *= parameter.PlaneFallGrowth
	a.Position.Y -= gs.PlaneFallSpeed * ms
	a.Sync()

	return a.Position.Y < parameter.PlaneFallFloor
}

// Update runs the cosmetics that animate in every phase
func (s *AircraftSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	gs := ctx.State
	ms := engine.Milliseconds(dt)

	s.aircraft.SpinPropeller(parameter.PropellerBaseSpin + gs.PlaneSpeed*ms*parameter.PropellerSpeedSpin)
	s.aircraft.SwayHair()
	s.camera.FOV = vmath.Normalize(ctx.Pointer.X, -1, 1, parameter.CameraFOVMin, parameter.CameraFOVMax)
}

// Reset returns the aircraft and camera to their starting pose, keeping every handle
func (s *AircraftSystem) Reset(ctx *engine.GameContext) {
	s.aircraft.ResetPose(ctx.State.PlaneDefaultHeight)
	s.camera = components.NewCamera(ctx.State.PlaneDefaultHeight)
}
