package parameter

// Plane Flight Envelope
const (
	// PlaneDefaultHeight is the resting altitude above the sea surface
	PlaneDefaultHeight = 100.0

	// PlaneAmpHeight is the vertical half-range reachable through the pointer
	PlaneAmpHeight = 80.0

	// PlaneAmpWidth is the lateral reach; lateral target spans [-W, -0.7W]
	PlaneAmpWidth = 75.0

	// PlaneLateralNearRatio scales PlaneAmpWidth for the pointer-left end of the lateral band
	PlaneLateralNearRatio = 0.7

	PlaneMoveSensitivity = 0.005
	PlaneRotXSensitivity = 0.0008
	PlaneRotZSensitivity = 0.0004

	PlaneMinSpeed = 1.2
	PlaneMaxSpeed = 1.6

	// PlanePointerYRange is the pointer y half-range mapped to the full height band
	PlanePointerYRange = 0.75

	// PlanePointerSpeedRange is the pointer x half-range mapped to [PlaneMinSpeed, PlaneMaxSpeed]
	PlanePointerSpeedRange = 0.5

	// PlaneScale is the uniform scale of the aircraft model
	PlaneScale = 0.25
)

// Collision Impulse
const (
	// CollisionImpulse is the knockback speed imparted along the separation vector
	CollisionImpulse = 100.0

	// CollisionSpeedDecay relaxes collision speed toward zero per ms
	CollisionSpeedDecay = 0.03

	// CollisionDisplacementDecay relaxes collision displacement toward zero per ms
	CollisionDisplacementDecay = 0.01
)

// Game Over Fall
const (
	PlaneFallSpeed       = 0.001
	PlaneFallGrowth      = 1.05
	PlaneFallRollRate    = 0.0002
	PlaneFallPitchRate   = 0.0003
	PlaneFallFloor       = -200.0
	PlaneFallTargetRollZ = -1.5707963267948966 // -π/2
)

// Propeller and Pilot
const (
	PropellerBaseSpin  = 0.2
	PropellerSpeedSpin = 0.005

	PilotHairCount   = 12
	PilotHairStep    = 0.16
	PilotHairBase    = 0.75
	PilotHairAmp     = 0.25
	PilotHairSpacing = 1.0 / 3.0
)

// Camera
const (
	CameraDefaultZ    = 200.0
	CameraSensitivity = 0.002
	CameraFOVMin      = 40.0
	CameraFOVMax      = 80.0
	CameraFOVDefault  = 50.0
)
