package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/flapecs/config"
	"github.com/plus3/flapecs/ecs/debugui"
	debugui_ebiten "github.com/plus3/flapecs/ecs/debugui/ebiten"
	"github.com/plus3/flapecs/game"
	"github.com/plus3/flapecs/render"
)

// bannerTicks is how long the game over message stays up.
const bannerTicks = 120

type App struct {
	game   *game.Game
	canvas *render.Canvas
	seed   uint64

	bannerLeft int

	imguiBackend *debugui_ebiten.ImguiBackend
	overlay      *debugui.Overlay
	frameTimer   *debugui.FrameTimer
}

func main() {
	configPath := flag.String("config", "flapecs.yaml", "Path to the YAML settings file.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	seed := flag.Uint64("seed", 0, "Obstacle RNG seed. 0 picks one from the clock.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debug
		case "seed":
			cfg.Seed = *seed
		}
	})

	app := &App{
		canvas: render.NewCanvas(),
		seed:   cfg.SeedOrNow(),
	}
	app.game = game.New(game.NewSeededSpawner(app.seed))

	width := int(game.ScreenWidth * cfg.Window.Scale)
	height := int(game.ScreenHeight * cfg.Window.Scale)
	if cfg.Debug {
		backend := debugui_ebiten.NewImguiBackend(cfg.Window.Title, width, height)
		app.imguiBackend = &backend
		app.overlay = debugui.NewOverlay()
		app.frameTimer = debugui.NewFrameTimer()
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}
	ebiten.SetTPS(cfg.TicksPerSecond)

	log.Printf("Starting session %s (seed %d)", app.game.SessionId(), app.seed)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
	log.Printf("Played %d sessions, best score %d", app.game.Sessions(), app.game.BestScore())
}

func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if a.imguiBackend != nil {
		a.imguiBackend.BeginFrame()
	}

	if a.imguiBackend == nil || !debugui.CaptureState().WantCaptureKeyboard {
		if ebiten.IsKeyPressed(ebiten.KeyQ) {
			if a.imguiBackend != nil {
				a.imguiBackend.EndFrame()
			}
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			a.game.Flap()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			log.Printf("Session %s abandoned at score %d", a.game.SessionId(), a.game.State().Score)
			a.game.Reset()
			a.clearBanner()
		}
	}

	outcome := a.game.Tick()
	switch {
	case outcome.Collided:
		log.Printf("Game over: session %s scored %d in %d frames", outcome.SessionId, outcome.FinalScore, outcome.FinalFrame)
		a.canvas.Banner = fmt.Sprintf("Game Over! Score: %d", outcome.FinalScore)
		a.bannerLeft = bannerTicks
	case a.bannerLeft > 0:
		a.bannerLeft--
		if a.bannerLeft == 0 {
			a.clearBanner()
		}
	}

	if a.imguiBackend != nil {
		a.overlay.Render(a.debugView(), a.frameTimer.GetDeltaTime())
		a.imguiBackend.EndFrame()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	state := a.game.State()
	a.canvas.Screen = screen
	a.canvas.Render(state.Entities, state.Score)

	if a.imguiBackend != nil {
		a.imguiBackend.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.imguiBackend != nil {
		a.imguiBackend.Layout(game.ScreenWidth, game.ScreenHeight)
	}
	return game.ScreenWidth, game.ScreenHeight
}

func (a *App) clearBanner() {
	a.canvas.Banner = ""
	a.bannerLeft = 0
}

func (a *App) debugView() debugui.View {
	state := a.game.State()
	return debugui.View{
		Entities: state.Entities,
		Systems:  a.game.Stats(),
		Session: debugui.Session{
			Id:        a.game.SessionId(),
			Frame:     state.Frame,
			Score:     state.Score,
			BestScore: a.game.BestScore(),
			Sessions:  a.game.Sessions(),
			Seed:      a.seed,
			Flapping:  a.game.FlapPending(),
		},
	}
}
