package components

import (
	"github.com/lixenwraith/aviator/parameter"
	"github.com/lixenwraith/aviator/vmath"
)

// Camera is the perspective viewpoint the front ends project with
type Camera struct {
	Position vmath.Vec3
	FOV      float64 // Vertical field of view in degrees
}

// NewCamera places the camera at the aircraft resting altitude
func NewCamera(defaultHeight float64) Camera {
	return Camera{
		Position: vmath.V3(0, defaultHeight, parameter.CameraDefaultZ),
		FOV:      parameter.CameraFOVDefault,
	}
}
