package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/events"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a one-shot sound effect
type Cue int

const (
	CueCoin Cue = iota
	CueImpact
	CueCrash
	CueLevelUp
	cueCount
)

// SoundManager turns game events into synthesized sound
// It runs silent until Initialize succeeds, so headless sessions work unchanged
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	drone       *DroneGenerator
	droneCtrl   *beep.Ctrl
	initialized bool
	muted       bool
	triggered   [cueCount]int
}

func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	drone := NewDroneGenerator(sampleRate)
	sm := &SoundManager{
		mixer:     mixer,
		volume:    &effects.Volume{Streamer: mixer, Base: 2},
		drone:     drone,
		droneCtrl: &beep.Ctrl{Streamer: drone},
	}
	return sm
}

// Initialize opens the audio device and starts the engine drone
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	sm.volume.Silent = sm.muted
	sm.mixer.Add(sm.droneCtrl)
	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup stops every sound
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.droneCtrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted silences or restores output
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	sm.locked(func() { sm.volume.Silent = muted })
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetThrottle maps aircraft speed factor to drone pitch
func (sm *SoundManager) SetThrottle(planeSpeed float64) {
	sm.drone.SetFrequency(droneBaseFreq * planeSpeed)
}

// Triggered returns how many times a cue was requested
func (sm *SoundManager) Triggered(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.triggered[c]
}

// Play queues a one-shot cue
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.triggered[c]++
	if !sm.initialized {
		return
	}

	var s beep.Streamer
	switch c {
	case CueCoin:
		s = beep.Take(sampleRate.N(180*time.Millisecond), NewChimeGenerator(sampleRate))
	case CueImpact:
		s = beep.Take(sampleRate.N(250*time.Millisecond), NewImpactGenerator(sampleRate))
	case CueCrash:
		s = beep.Take(sampleRate.N(1200*time.Millisecond), NewCrashGenerator(sampleRate, 1200*time.Millisecond))
	case CueLevelUp:
		s = beep.Take(sampleRate.N(360*time.Millisecond), NewArpeggioGenerator(sampleRate, 120*time.Millisecond))
	default:
		return
	}
	sm.locked(func() { sm.mixer.Add(s) })
}

func (sm *SoundManager) setDronePaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.locked(func() { sm.droneCtrl.Paused = paused })
}

// DronePaused reports whether the engine drone is stopped
func (sm *SoundManager) DronePaused() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.droneCtrl.Paused
}

// locked runs fn under the speaker lock when the device is open; caller holds sm.mu
func (sm *SoundManager) locked(fn func()) {
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventCoinCollected,
		events.EventEnemyHit,
		events.EventLevelUp,
		events.EventGameOver,
		events.EventReplay,
	}
}

func (sm *SoundManager) HandleEvent(ctx *engine.GameContext, event events.GameEvent) {
	switch event.Type {
	case events.EventCoinCollected:
		sm.Play(CueCoin)
	case events.EventEnemyHit:
		sm.Play(CueImpact)
	case events.EventLevelUp:
		sm.Play(CueLevelUp)
	case events.EventGameOver:
		sm.Play(CueCrash)
		sm.setDronePaused(true)
	case events.EventReplay:
		sm.setDronePaused(false)
	default:
		log.Printf("audio: unexpected event %s", event.Type)
	}
}
