package parameter

// Coins
const (
	CoinPoolSize          = 20
	CoinDistanceTolerance = 15.0
	CoinValue             = 3.0
	CoinsSpeed            = 0.5

	// CoinMaxBatch bounds coin batch size to [1, CoinMaxBatch]
	CoinMaxBatch = 10

	// CoinAngleStep spaces consecutive coins of a batch along the orbit
	CoinAngleStep = 0.02

	// CoinWaveMinAmp and CoinWaveAmpJitter shape the radial wave across a batch
	CoinWaveMinAmp    = 10.0
	CoinWaveAmpJitter = 10.0
	CoinWaveFrequency = 0.5

	CoinBurstDensity = 5
	CoinBurstScale   = 0.8
)

// Enemies
const (
	EnemyPoolSize          = 10
	EnemyDistanceTolerance = 10.0
	EnemyValue             = 10.0
	EnemiesSpeed           = 0.6
	EnemyAngleStep         = 0.1

	EnemyBurstDensity = 15
	EnemyBurstScale   = 3.0
)

// Orbital Holder
const (
	// SpawnHeightMargin narrows the random radius jitter below PlaneAmpHeight
	SpawnHeightMargin = 20.0

	// RotationJitter is the max random spin per frame applied to orbiting entities
	RotationJitter = 0.1
)
