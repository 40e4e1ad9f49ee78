package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/1siamBot/shooter-engine/engine/audio"
	"github.com/1siamBot/shooter-engine/engine/config"
	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/1siamBot/shooter-engine/engine/game"
	"github.com/1siamBot/shooter-engine/engine/term"
	"github.com/gdamore/tcell/v2"
)

func main() {
	cfgPath := flag.String("config", "", "path to a config file")
	logPath := flag.String("log", "termgame.log", "log file; the terminal is busy drawing")
	flag.Parse()

	if f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := game.New(game.Options{
		Width:     float64(cfg.Playfield.Width),
		Height:    float64(cfg.Playfield.Height),
		TickRate:  float64(cfg.Sim.TPS),
		Seed:      seed,
		Strict:    cfg.Sim.Strict,
		TwoPlayer: cfg.Sim.TwoPlayer,
	})
	s.World.Music = cfg.Audio.Music
	log.Printf("session %s seed %d", s.ID, s.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	if cfg.Audio.Enabled {
		am := audio.NewAudioManager(cfg.Audio.SampleRate, cfg.Audio.Volume)
		am.MusicOn = cfg.Audio.Music
		if err := am.Init(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			am.Attach(s.World.Events)
			defer am.Close()
		}
	}

	run(s, screen, cfg.Sim.TPS)
}

func run(s *game.Session, screen tcell.Screen, tps int) {
	r := term.NewRenderer(screen)
	keys := term.NewKeys()

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if keys.Handle(ev) {
					log.Printf("quit at tick %d, score %d", s.Loop.CurrentTick(), s.World.Score)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			s.Tick(aimAhead(keys.Snapshot()))
			r.Draw(s.World, s.Background)
		}
	}
}

// aimAhead marks the snapshot as pointerless; terminals have no mouse.
func aimAhead(in core.Snapshot) core.Snapshot {
	in.NoPointer = true
	return in
}
