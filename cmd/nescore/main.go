// Command nescore loads an iNES cartridge image and runs it against an
// ebiten window: the emulated machine runs on its own goroutine while
// ebiten drives input polling and drawing.
package main

import (
	"context"
	"flag"
	"os"
	"sync"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kwalton/nescore/compositor"
	"github.com/kwalton/nescore/console"
	"github.com/kwalton/nescore/controller"
	"github.com/kwalton/nescore/mappers"
	"github.com/kwalton/nescore/nesrom"
)

var (
	romFile = flag.String("rom", "", "Path to the iNES ROM to run.")
	scale   = flag.Int("scale", 2, "Window scale factor.")
)

// keys maps each controller button index to the keyboard key that drives
// it.
var keys = [8]ebiten.Key{
	controller.A:      ebiten.KeyA,
	controller.B:      ebiten.KeyS,
	controller.Select: ebiten.KeyShiftRight,
	controller.Start:  ebiten.KeyEnter,
	controller.Up:     ebiten.KeyUp,
	controller.Down:   ebiten.KeyDown,
	controller.Left:   ebiten.KeyLeft,
	controller.Right:  ebiten.KeyRight,
}

// Game wires a console.System into ebiten's Game interface. The system
// runs on its own goroutine, producing composited frames that Draw blits
// on ebiten's schedule; Update only polls input.
type Game struct {
	sys *console.System

	mu    sync.Mutex
	frame []byte
}

// Run drives the emulated machine until ctx is cancelled, storing each
// completed frame's composited pixels for Draw to pick up.
func (g *Game) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		data := g.sys.RunFrame()
		pixels := compositor.Composite(data)

		g.mu.Lock()
		g.frame = pixels
		g.mu.Unlock()
	}
}

// Update polls the keyboard once per tick and sets every button's state on
// the controller, pressed or released.
func (g *Game) Update() error {
	ctrl := g.sys.Controller()
	for button, key := range keys {
		if ebiten.IsKeyPressed(key) {
			ctrl.KeyDown(button)
		} else {
			ctrl.KeyUp(button)
		}
	}
	return nil
}

// Draw blits the most recently completed frame into screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	pixels := g.frame
	g.mu.Unlock()

	if pixels == nil {
		return
	}
	screen.ReplacePixels(pixels)
}

// Layout returns the NES's fixed resolution, so ebiten scales the window
// rather than the emulated picture.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return compositor.Width, compositor.Height
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if *romFile == "" {
		glog.Fatal("nescore: -rom is required")
	}

	rom, err := nesrom.New(*romFile)
	if err != nil {
		glog.Fatalf("nescore: loading ROM: %v", err)
	}

	m, err := mappers.Get(rom)
	if err != nil {
		glog.Fatalf("nescore: selecting mapper: %v", err)
	}

	game := &Game{sys: console.New(m)}

	ebiten.SetWindowSize(compositor.Width*(*scale), compositor.Height*(*scale))
	ebiten.SetWindowTitle("nescore")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	ctx, cancel := context.WithCancel(context.Background())
	go game.Run(ctx)

	if err := ebiten.RunGame(game); err != nil {
		glog.Fatalf("nescore: %v", err)
	}

	cancel()
	os.Exit(0)
}
