package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/aviator/audio"
	"github.com/lixenwraith/aviator/config"
	"github.com/lixenwraith/aviator/game"
	"github.com/lixenwraith/aviator/input"
	"github.com/lixenwraith/aviator/render"
)

var (
	configFlag    = flag.String("config", "", "TOML config file layered over the defaults")
	debugFlag     = flag.Bool("debug", false, "Write the debug log to logs/aviator.log")
	seedFlag      = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	fpsFlag       = flag.Int("fps", 60, "Frame rate")
	particlesFlag = flag.String("replay-particles", "", "Particle policy on replay: continue or retire")
	muteFlag      = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	os.Exit(run())
}

// run owns every deferred cleanup and reports the process exit code
func run() (code int) {
	var screen tcell.Screen

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mAVIATOR CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer func() {
			log.Printf("aviator stopped")
			logFile.Close()
		}()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("seed %d, replay particles %s", seed, cfg.Replay.Particles)

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	sound := audio.NewSoundManager()
	sound.SetMuted(*muteFlag)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	scene := render.NewSceneGraph()
	pointer := input.NewPointer()
	g := game.New(cfg, scene, pointer, game.Options{Seed: seed, Sound: sound})

	debugRenderer := render.NewDebugRenderer()
	orchestrator := render.NewDefaultOrchestrator(screen, debugRenderer)

	loop(screen, g, scene, pointer, sound, orchestrator, debugRenderer)
	return 0
}

// loadConfig reads the config file and applies flag overrides
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return config.Config{}, err
	}
	if *particlesFlag != "" {
		policy, err := config.ParseParticlePolicy(*particlesFlag)
		if err != nil {
			return config.Config{}, fmt.Errorf("-replay-particles: %w", err)
		}
		cfg.Replay.Particles = policy
	}
	if *fpsFlag <= 0 {
		return config.Config{}, fmt.Errorf("-fps must be > 0, got %d", *fpsFlag)
	}
	return cfg, cfg.Validate()
}

func loop(screen tcell.Screen, g *game.Game, scene *render.SceneGraph, pointer *input.Pointer,
	sound *audio.SoundManager, orchestrator *render.RenderOrchestrator, debugRenderer *render.DebugRenderer) {

	keys := input.DefaultKeyTable()
	eventChan := make(chan tcell.Event, 256)

	// Pointer motion is stored straight from the poller; everything else goes through the frame loop
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if m, ok := ev.(*tcell.EventMouse); ok {
				x, y := m.Position()
				w, h := screen.Size()
				pointer.SetScreen(float64(x)+0.5, float64(y)+0.5, float64(w), float64(h))
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(time.Second / time.Duration(*fpsFlag))
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch keys.Classify(ev) {
			case input.IntentQuit:
				return
			case input.IntentPause:
				log.Printf("paused: %v", g.TogglePause())
			case input.IntentMute:
				sound.SetMuted(!sound.Muted())
			case input.IntentReplay:
				g.ConfirmReplay()
			case input.IntentDebug:
				debugRenderer.Toggle()
			case input.IntentResize:
				orchestrator.Resize(screen.Size())
			}

		case <-frameTicker.C:
			g.Tick()
			w, h := orchestrator.Size()
			ctx := render.NewRenderContext(g, scene, w, h)
			ctx.Muted = sound.Muted()
			orchestrator.RenderFrame(ctx)
		}
	}
}
