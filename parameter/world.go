package parameter

// Sea
const (
	// SeaRadius is the radius of the rotating sea cylinder, centre sits SeaRadius below the origin
	SeaRadius = 600.0

	// SeaLength is the cylinder depth along z
	SeaLength = 800.0

	// SeaRadialSegments and SeaHeightSegments define the vertex grid of the sea surface
	SeaRadialSegments = 40
	SeaHeightSegments = 10

	WavesMinAmp   = 5.0
	WavesMaxAmp   = 20.0
	WavesMinSpeed = 0.001 // radians per ms
	WavesMaxSpeed = 0.003

	// SeaRollPerFrame is the constant cosmetic spin added each frame on top of speed-driven rotation
	SeaRollPerFrame = 0.005
)

// Sky
const (
	CloudCount        = 20
	CloudMinHeight    = 750.0
	CloudHeightJitter = 200.0
	CloudMinDepth     = -400.0
	CloudDepthJitter  = 400.0
	CloudMinScale     = 1.0
	CloudScaleJitter  = 2.0

	CloudMinBlocks    = 3
	CloudBlockJitter  = 3 // blocks = CloudMinBlocks + [0, CloudBlockJitter)
	CloudBlockSpacing = 15.0
	CloudBlockOffset  = 10.0
	CloudBlockSpin    = 0.005
	CloudBlockMinSize = 0.1
	CloudBlockSizeVar = 0.9
)
