package parameter

// Explosion Particles
const (
	ParticlePoolSize = 10

	// ParticleSpread is the max offset of a particle target from the burst origin on x and y
	ParticleSpread = 50.0

	// ParticleDurationBase and ParticleDurationFactor give duration = base * rand * factor seconds
	ParticleDurationBase   = 0.6
	ParticleDurationFactor = 0.2

	// ParticleMaxDelay is the max start delay (seconds) of the position transition
	ParticleMaxDelay = 0.1

	// ParticleMaxSpin is the max rotation target on x and y
	ParticleMaxSpin = 12.0

	// ParticleResidualScale is the scale a particle shrinks to before retiring
	ParticleResidualScale = 0.1
)
