package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/store"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to the log directory")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
)

func main() {
	// Restore the terminal if the main goroutine panics
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	if logFile := setupLogging(cfg.LogDir, cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("vi-snake starting, seed %d, high score file %s", seed, cfg.HighScorePath)

	scores := store.NewFileStore(cfg.HighScorePath)
	eng := engine.NewEngine(rand.New(rand.NewSource(seed)), scores)

	// Audio is optional, an uninitialized manager plays nothing
	sounds := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sounds.Cleanup()
		}
	}
	sounds.SetMuted(*muteFlag)

	session, err := game.NewSession(eng, sounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen)
	handler := input.NewHandler(session, sounds)
	handler.OnResize(func(width, height int) {
		renderer.Resize(width, height)
		screen.Sync()
	})

	session.Start()
	defer session.Stop()

	run(screen, handler, renderer, session, sounds)
	log.Printf("session %s: quit at score %d", session.ID, session.Snapshot().Score)
}

// applyFlags overrides config values with flags given on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "seed":
			cfg.Seed = *seedFlag
		}
	})
}

// run polls input on its own goroutine and renders at a fixed frame rate until quit
func run(screen tcell.Screen, handler *input.Handler, renderer *render.TerminalRenderer, session *game.Session, sounds *audio.SoundManager) {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, constants.InputEventBuffer)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !handler.HandleEvent(ev) {
				return
			}

		case <-ticker.C:
			renderer.Draw(session.Snapshot(), sounds.Muted())
		}
	}
}
