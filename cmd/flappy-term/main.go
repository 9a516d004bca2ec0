package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/flapecs/config"
	"github.com/plus3/flapecs/game"
	"github.com/plus3/flapecs/render"
)

const bannerDuration = 2 * time.Second

type Term struct {
	screen   tcell.Screen
	game     *game.Game
	terminal *render.Terminal
	interval time.Duration

	// autopilot, when set, plays instead of the keyboard.
	autopilot *game.Autopilot

	bannerUntil time.Time
}

func NewTerm(cfg config.Config, demo bool) (*Term, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init screen: %w", err)
	}

	terminal := render.NewTerminal(screen)
	terminal.Glyphs.Avatar, terminal.Glyphs.Obstacle = cfg.Glyphs()

	t := &Term{
		screen:   screen,
		game:     game.New(game.NewSeededSpawner(cfg.SeedOrNow())),
		terminal: terminal,
		interval: cfg.TickInterval(),
	}
	if demo {
		pilot := game.DefaultAutopilot
		t.autopilot = &pilot
	}
	return t, nil
}

// handleInput reports false when the player asked to quit.
func (t *Term) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case ' ':
				t.game.Flap()
			case 'r':
				t.game.Reset()
				t.terminal.Banner = ""
			}
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}

	return true
}

func (t *Term) tick(now time.Time) {
	if t.autopilot != nil && t.autopilot.ShouldFlap(t.game.State().Entities) {
		t.game.Flap()
	}

	outcome := t.game.Tick()
	if outcome.Collided {
		log.Printf("Game over: session %s scored %d in %d frames", outcome.SessionId, outcome.FinalScore, outcome.FinalFrame)
		t.terminal.Banner = fmt.Sprintf("Game Over! Score: %d", outcome.FinalScore)
		t.bannerUntil = now.Add(bannerDuration)
	} else if t.terminal.Banner != "" && now.After(t.bannerUntil) {
		t.terminal.Banner = ""
	}

	state := t.game.State()
	t.terminal.Render(state.Entities, state.Score)
}

func (t *Term) run() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			t.tick(now)
		}
	}
}

func main() {
	configPath := flag.String("config", "flapecs.yaml", "Path to the YAML settings file.")
	demo := flag.Bool("demo", false, "Let the autopilot play.")
	logPath := flag.String("log", "flappy-term.log", "File that receives log output while the screen is in use.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	t, err := NewTerm(cfg, *demo)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to start: %v", err)
	}

	log.Printf("Starting session %s", t.game.SessionId())
	t.run()
	t.screen.Fini()

	log.SetOutput(os.Stderr)
	log.Printf("Played %d sessions, best score %d", t.game.Sessions(), t.game.BestScore())
}
