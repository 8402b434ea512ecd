package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/phrase-drift/assembler"
	"github.com/lixenwraith/phrase-drift/audio"
	"github.com/lixenwraith/phrase-drift/config"
	"github.com/lixenwraith/phrase-drift/engine"
	"github.com/lixenwraith/phrase-drift/events"
	"github.com/lixenwraith/phrase-drift/input"
	"github.com/lixenwraith/phrase-drift/render"
)

// maxFrameDelta caps the step after a stall so words never jump across the center zone
const maxFrameDelta = 100 * time.Millisecond

var errNoTerminal = errors.New("phrase-drift needs an interactive terminal; try 'phrase-drift phrases 5'")

// sketch owns every piece of interactive state; only the run loop touches it
type sketch struct {
	screen   tcell.Screen
	asm      *assembler.Assembler
	renderer *render.Renderer
	pointer  *input.PointerTracker
	clock    *engine.PausableClock
	router   *events.Router[*sketch]
	player   *audio.Player
}

func runSketch(cfg config.Config, loader *config.Loader, mute bool) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	if f := setupLogging(cfg.Debug); f != nil {
		defer f.Close()
	}

	seed := resolveSeed(cfg.Seed)
	asm, err := assembler.NewDefault(cfg.Options(), seed)
	if err != nil {
		return err
	}
	log.Printf("seed %d, template %s", seed, asm.Grammar().Template())

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPHRASE-DRIFT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	player := audio.NewPlayer(cfg.Audio.Volume)
	player.SetMuted(mute || !cfg.Audio.Enabled)
	if err := player.Initialize(); err != nil {
		// Non-fatal, the sketch runs silent
		log.Printf("audio initialization failed: %v", err)
	} else {
		defer player.Cleanup()
	}

	s := &sketch{
		screen:   screen,
		asm:      asm,
		renderer: render.NewRenderer(screen, cfg.BoxSize, cfg.HUD),
		pointer:  input.NewPointerTracker(cfg.SpeedSensitivity),
		clock:    engine.NewPausableClock(engine.NewMonotonicTimeProvider(), maxFrameDelta),
		router:   events.NewRouter[*sketch](asm.Events()),
		player:   player,
	}
	s.router.Register(audio.EventHandler[*sketch]{Player: player})
	s.router.Register(logHandler[*sketch]())

	var updates <-chan config.Config
	if loader.ConfigFileUsed() != "" {
		if w, err := config.NewWatcher(loader); err != nil {
			log.Printf("config watch disabled: %v", err)
		} else if err := w.Start(); err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			defer w.Stop()
			updates = w.Updates
		}
	}

	return s.run(cfg.FrameInterval(), updates)
}

func (s *sketch) run(interval time.Duration, updates <-chan config.Config) error {
	eventChan := make(chan tcell.Event, 256)
	// Input polling uses a raw goroutine as it interacts directly with the terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := s.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(interval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !s.handleIntent(input.Translate(ev), time.Now()) {
				return nil
			}

		case cfg, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			s.applyConfig(cfg)

		case now := <-frameTicker.C:
			s.frame(now)
		}
	}
}

// handleIntent applies one input action; false means quit
func (s *sketch) handleIntent(in input.Intent, now time.Time) bool {
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentTogglePause:
		log.Printf("paused: %v", s.clock.Toggle())
	case input.IntentToggleHUD:
		s.renderer.ToggleHUD()
	case input.IntentToggleMute:
		log.Printf("muted: %v", s.player.ToggleMute())
	case input.IntentResize:
		s.screen.Sync()
		s.renderer.Resize()
	case input.IntentPointer:
		s.pointer.Move(in.X, in.Y, now)
	}
	return true
}

// frame advances the sketch by the elapsed unpaused time and redraws
func (s *sketch) frame(now time.Time) {
	proj := s.renderer.Projection()
	proj.SetRotation(s.pointer.Rotation(proj.Width, proj.Height))

	speed := s.pointer.SpeedMultiplier(now)
	if dt := s.clock.Frame(); dt > 0 {
		s.asm.Tick(dt, speed, proj)
	}
	s.router.DispatchAll(s)

	s.renderer.Draw(s.asm, render.Status{
		Paused:          s.clock.IsPaused(),
		Muted:           s.player.Muted(),
		SpeedMultiplier: speed,
	})
}

// applyConfig takes the tunables that are safe to change mid-run
// Structural settings (lanes, box size, seed) need a restart
func (s *sketch) applyConfig(cfg config.Config) {
	s.asm.SetSpawnChance(cfg.SpawnChance)
	s.pointer.SetSensitivity(cfg.SpeedSensitivity)
	s.renderer.SetHUD(cfg.HUD)
	s.player.SetVolume(cfg.Audio.Volume)
	s.player.SetMuted(!cfg.Audio.Enabled)
	log.Printf("config applied: spawn=%.2f sensitivity=%.3f hud=%v", cfg.SpawnChance, cfg.SpeedSensitivity, cfg.HUD)
}
