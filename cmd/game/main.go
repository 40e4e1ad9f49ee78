package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/1siamBot/shooter-engine/engine/audio"
	"github.com/1siamBot/shooter-engine/engine/config"
	"github.com/1siamBot/shooter-engine/engine/core"
	"github.com/1siamBot/shooter-engine/engine/game"
	"github.com/1siamBot/shooter-engine/engine/input"
	"github.com/1siamBot/shooter-engine/engine/render"
	"github.com/1siamBot/shooter-engine/engine/replay"
	"github.com/1siamBot/shooter-engine/engine/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game implements ebiten.Game interface
type Game struct {
	session  *game.Session
	renderer *render.Renderer
	hud      *ui.HUD
	menu     *ui.Menu
	input    *input.InputState
	audio    *audio.AudioManager

	recorder *replay.Replay
	playback *replay.Replay
}

func NewGame(cfg config.Config) (*Game, error) {
	opts := game.Options{
		Width:     float64(cfg.Playfield.Width),
		Height:    float64(cfg.Playfield.Height),
		TickRate:  float64(cfg.Sim.TPS),
		Seed:      cfg.Sim.Seed,
		Strict:    cfg.Sim.Strict,
		TwoPlayer: cfg.Sim.TwoPlayer,
	}

	var playback *replay.Replay
	if cfg.Replay.Play != "" {
		rp, err := replay.Load(cfg.Replay.Play)
		if err != nil {
			return nil, err
		}
		h := rp.Header
		opts.Width, opts.Height = h.Width, h.Height
		opts.TickRate, opts.Seed, opts.TwoPlayer = h.TickRate, h.Seed, h.TwoPlayer
		playback = rp
		log.Printf("replaying session %s (%d frames)", h.Session, len(rp.Frames))
	} else if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	bindings, err := input.ParseBindings(cfg.Keys)
	if err != nil {
		return nil, err
	}

	s := game.New(opts)
	s.World.Music = cfg.Audio.Music
	log.Printf("session %s seed %d", s.ID, s.Seed)

	g := &Game{
		session:  s,
		renderer: render.NewRenderer(cfg.Debug.Hitboxes),
		hud:      ui.NewHUD(int(opts.Width), int(opts.Height)),
		menu:     ui.NewMenu(int(opts.Width), int(opts.Height)),
		input:    input.NewInputState(bindings),
		playback: playback,
	}

	if cfg.Audio.Enabled {
		am := audio.NewAudioManager(cfg.Audio.SampleRate, cfg.Audio.Volume)
		am.MusicOn = cfg.Audio.Music
		if err := am.Init(); err != nil {
			// non-fatal, the game runs silent
			log.Printf("audio disabled: %v", err)
		} else {
			am.Attach(s.World.Events)
			g.audio = am
		}
	}

	if cfg.Replay.Record != "" && playback == nil {
		rec, err := replay.NewRecorder(cfg.Replay.Record, replay.Header{
			Session:   s.ID,
			Seed:      s.Seed,
			Width:     opts.Width,
			Height:    opts.Height,
			TickRate:  opts.TickRate,
			TwoPlayer: opts.TwoPlayer,
		})
		if err != nil {
			return nil, err
		}
		g.recorder = rec
	}
	return g, nil
}

func (g *Game) Update() error {
	snap := g.input.Update()
	if g.playback != nil {
		var ok bool
		if snap, ok = g.playback.Next(); !ok {
			log.Printf("replay finished at tick %d, score %d", g.session.Loop.CurrentTick(), g.session.World.Score)
			return ebiten.Termination
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.renderer.Hitboxes = !g.renderer.Hitboxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		g.hud.ShowFPS = !g.hud.ShowFPS
	}

	if g.recorder != nil {
		if err := g.recorder.Record(g.session.Loop.CurrentTick()+1, snap); err != nil {
			return err
		}
	}
	g.session.Tick(snap)
	g.menu.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session.World, g.session.Background)
	state := g.session.State()
	if state != core.StateStart {
		g.hud.Draw(screen, g.session.Stats())
	}
	g.menu.Draw(screen, state, g.session.Stats())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.session.World.Width), int(g.session.World.Height)
}

func (g *Game) Close() {
	if g.recorder != nil {
		if err := g.recorder.Close(); err != nil {
			log.Printf("replay: %v", err)
		}
	}
	if g.audio != nil {
		g.audio.Close()
	}
}

func main() {
	cfgPath := flag.String("config", "", "path to a config file (yaml, toml or json)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	g, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Playfield.Width, cfg.Playfield.Height)
	ebiten.SetWindowTitle("Space Fighter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(g.session.Loop.TickRate))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
