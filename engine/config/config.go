// Package config loads runtime settings from a file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full runtime configuration
type Config struct {
	Playfield PlayfieldConfig     `mapstructure:"playfield"`
	Sim       SimConfig           `mapstructure:"sim"`
	Audio     AudioConfig         `mapstructure:"audio"`
	Debug     DebugConfig         `mapstructure:"debug"`
	Replay    ReplayConfig        `mapstructure:"replay"`
	Keys      map[string][]string `mapstructure:"keys"`
}

// PlayfieldConfig is the logical size of the playfield in pixels
type PlayfieldConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// SimConfig tunes the simulation loop
type SimConfig struct {
	TPS       int   `mapstructure:"tps"`
	Seed      int64 `mapstructure:"seed"` // 0 picks a seed from the clock
	Strict    bool  `mapstructure:"strict"`
	TwoPlayer bool  `mapstructure:"two_player"`
}

// AudioConfig controls sound output
type AudioConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Volume     float64 `mapstructure:"volume"`
	Music      bool    `mapstructure:"music"`
	SampleRate int     `mapstructure:"sample_rate"`
}

// DebugConfig toggles developer overlays
type DebugConfig struct {
	Hitboxes bool `mapstructure:"hitboxes"`
}

// ReplayConfig names files to record to or play back from
type ReplayConfig struct {
	Record string `mapstructure:"record"`
	Play   string `mapstructure:"play"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("playfield.width", 800)
	v.SetDefault("playfield.height", 600)
	v.SetDefault("sim.tps", 60)
	v.SetDefault("sim.seed", 0)
	v.SetDefault("sim.strict", false)
	v.SetDefault("sim.two_player", false)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
	v.SetDefault("audio.music", true)
	v.SetDefault("audio.sample_rate", 44100)
	v.SetDefault("debug.hitboxes", false)
	v.SetDefault("replay.record", "")
	v.SetDefault("replay.play", "")
}

// Default returns the configuration used when no file is given
func Default() Config {
	cfg, _ := decode(newViper())
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SHOOTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path, if any, over the defaults.
// Environment variables such as SHOOTER_SIM_SEED override both.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	cfg, err := decode(v)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("%w: playfield %dx%d", ErrInvalid, c.Playfield.Width, c.Playfield.Height)
	}
	if c.Sim.TPS < 1 || c.Sim.TPS > 240 {
		return fmt.Errorf("%w: sim.tps %d outside [1,240]", ErrInvalid, c.Sim.TPS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %.2f outside [0,1]", ErrInvalid, c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate %d", ErrInvalid, c.Audio.SampleRate)
	}
	if c.Replay.Record != "" && c.Replay.Record == c.Replay.Play {
		return fmt.Errorf("%w: replay.record and replay.play are the same file", ErrInvalid)
	}
	return nil
}
