package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/aviator/config"
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/parameter"
	"github.com/lixenwraith/aviator/vmath"
)

func TestBurstRunsToCompletion(t *testing.T) {
	w := newTestWorld(t, config.Default())
	origin := vmath.V3(10, 90, 0)

	w.particles.SpawnBurst(w.ctx, origin, 15, parameter.ColorRed, 3)
	if w.particles.Active() != 15 {
		t.Fatalf("active = %d, want 15", w.particles.Active())
	}
	if w.particles.Pool().Total() != 15 {
		t.Errorf("total = %d, want 15 (10 prefilled + 5 built)", w.particles.Pool().Total())
	}

	for _, p := range w.particles.Pool().InUse() {
		if d := p.PosX.To - origin.X; d < -parameter.ParticleSpread || d > parameter.ParticleSpread {
			t.Errorf("target x offset %v out of spread", d)
		}
		if p.PosX.Delay > parameter.ParticleMaxDelay*1000 {
			t.Errorf("delay %v ms too long", p.PosX.Delay)
		}
		if p.Scale.From != 3 || p.Scale.To != parameter.ParticleResidualScale {
			t.Errorf("scale tween %v -> %v", p.Scale.From, p.Scale.To)
		}
	}

	// Longest burst: 120ms duration after 100ms delay
	w.particles.Update(w.ctx, 250*time.Millisecond)

	if w.particles.Active() != 0 {
		t.Fatalf("active = %d after completion", w.particles.Active())
	}
	for _, h := range w.scene.Handles {
		if h.Kind != engine.KindParticle {
			continue
		}
		if h.Scale != vmath.V3(1, 1, 1) || h.Visible || h.Parent != nil {
			t.Errorf("retired particle %d: scale %+v visible %v parent %v", h.ID, h.Scale, h.Visible, h.Parent)
		}
	}
}

func TestBurstReusesPooledParticles(t *testing.T) {
	w := newTestWorld(t, config.Default())

	for i := 0; i < 5; i++ {
		w.particles.SpawnBurst(w.ctx, vmath.Vec3{}, 5, parameter.ColorCoin, 0.8)
		w.particles.Update(w.ctx, 250*time.Millisecond)
	}
	if total := w.particles.Pool().Total(); total != parameter.ParticlePoolSize {
		t.Errorf("constructed %d particles, want prefill %d only", total, parameter.ParticlePoolSize)
	}
}

func TestParticleReplayPolicy(t *testing.T) {
	tests := []struct {
		policy     config.ParticlePolicy
		wantActive int
	}{
		{config.ParticlesContinue, 5},
		{config.ParticlesRetire, 0},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			cfg := config.Default()
			cfg.Replay.Particles = tt.policy
			w := newTestWorld(t, cfg)

			w.particles.SpawnBurst(w.ctx, vmath.V3(0, 100, 0), 5, parameter.ColorCoin, 0.8)
			w.particles.Reset(w.ctx)

			if got := w.particles.Active(); got != tt.wantActive {
				t.Fatalf("active after reset = %d, want %d", got, tt.wantActive)
			}
			if err := w.particles.Pool().Verify(); err != nil {
				t.Fatal(err)
			}

			// Continued bursts still finish on their own
			w.particles.Update(w.ctx, 250*time.Millisecond)
			if w.particles.Active() != 0 {
				t.Errorf("active = %d after completion", w.particles.Active())
			}
		})
	}
}
