package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/aviator/audio"
	"github.com/lixenwraith/aviator/config"
	"github.com/lixenwraith/aviator/game"
	"github.com/lixenwraith/aviator/input"
	"github.com/lixenwraith/aviator/render"
	"github.com/lixenwraith/aviator/vmath"
)

var (
	configFlag    = flag.String("config", "", "TOML config file layered over the defaults")
	seedFlag      = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	widthFlag     = flag.Int("width", 960, "Window width")
	heightFlag    = flag.Int("height", 600, "Window height")
	particlesFlag = flag.String("replay-particles", "", "Particle policy on replay: continue or retire")
	muteFlag      = flag.Bool("mute", false, "Start with sound muted")
)

var errQuit = errors.New("quit")

// window adapts a session to ebiten.Game
type window struct {
	game    *game.Game
	scene   *render.SceneGraph
	pointer *input.Pointer
	sound   *audio.SoundManager
	width   int
	height  int
	debug   bool

	touch     input.TouchTracker
	touchIDs  []ebiten.TouchID
	ids       []int
	positions []vmath.Vec2
	cursorX   int
	cursorY   int
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.game.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		w.sound.SetMuted(!w.sound.Muted())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		w.debug = !w.debug
	}

	released := w.readPointer()
	if released || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.game.ConfirmReplay()
	}

	w.game.Tick()
	return nil
}

// readPointer steers from the active touch, else from the cursor when it moves
// Returns true on the frame the last finger lifts
func (w *window) readPointer() bool {
	w.touchIDs = ebiten.AppendTouchIDs(w.touchIDs[:0])
	w.ids = w.ids[:0]
	w.positions = w.positions[:0]
	for _, id := range w.touchIDs {
		x, y := ebiten.TouchPosition(id)
		w.ids = append(w.ids, int(id))
		w.positions = append(w.positions, vmath.Vec2{X: float64(x), Y: float64(y)})
	}

	pos, touching, released := w.touch.Update(w.ids, w.positions)
	if touching {
		w.pointer.SetScreen(pos.X, pos.Y, float64(w.width), float64(w.height))
		return false
	}

	mx, my := ebiten.CursorPosition()
	if mx != w.cursorX || my != w.cursorY {
		w.cursorX, w.cursorY = mx, my
		w.pointer.SetScreen(float64(mx), float64(my), float64(w.width), float64(w.height))
	}
	return released
}

func (w *window) Draw(screen *ebiten.Image) {
	drawFrame(screen, w.game, w.scene, w.width, w.height, w.debug)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.width, w.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if *particlesFlag != "" {
		if cfg.Replay.Particles, err = config.ParseParticlePolicy(*particlesFlag); err != nil {
			fmt.Fprintf(os.Stderr, "-replay-particles: %v\n", err)
			os.Exit(2)
		}
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	sound := audio.NewSoundManager()
	sound.SetMuted(*muteFlag)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	scene := render.NewSceneGraph()
	pointer := input.NewPointer()
	w := &window{
		game:    game.New(cfg, scene, pointer, game.Options{Seed: seed, Sound: sound}),
		scene:   scene,
		pointer: pointer,
		sound:   sound,
		width:   *widthFlag,
		height:  *heightFlag,
	}

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("Aviator")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
