// Package config loads the sketch settings from defaults, an optional
// .phrase-drift.toml file and PHRASE_DRIFT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/phrase-drift/assembler"
)

const (
	EnvPrefix  = "PHRASE_DRIFT"
	ConfigName = ".phrase-drift"
	ConfigType = "toml"
)

var ErrInvalidConfig = errors.New("invalid config")

// AudioConfig holds the chime settings
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// Config holds all runtime configuration for a session
type Config struct {
	BoxSize          float64       `mapstructure:"box_size"`
	CenterThreshold  float64       `mapstructure:"center_threshold"`
	SpawnChance      float64       `mapstructure:"spawn_chance"`
	SpeedSensitivity float64       `mapstructure:"speed_sensitivity"`
	ResetDelay       time.Duration `mapstructure:"reset_delay"`
	FrameRate        int           `mapstructure:"frame_rate"`
	Lines            int           `mapstructure:"lines"`
	Curves           int           `mapstructure:"curves"`
	Seed             int64         `mapstructure:"seed"` // 0 seeds from the clock
	HUD              bool          `mapstructure:"hud"`
	Debug            bool          `mapstructure:"debug"`
	Audio            AudioConfig   `mapstructure:"audio"`
}

func setDefaults(v *viper.Viper) {
	d := assembler.DefaultOptions()
	v.SetDefault("box_size", d.BoxSize)
	v.SetDefault("center_threshold", d.CenterThreshold)
	v.SetDefault("spawn_chance", d.SpawnChance)
	v.SetDefault("speed_sensitivity", 0.01)
	v.SetDefault("reset_delay", d.ResetDelay)
	v.SetDefault("frame_rate", 60)
	v.SetDefault("lines", d.Lines)
	v.SetDefault("curves", d.Curves)
	v.SetDefault("seed", 0)
	v.SetDefault("hud", true)
	v.SetDefault("debug", false)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
}

// Loader owns one viper instance; after Load it is only touched by a Watcher
type Loader struct {
	v    *viper.Viper
	path string
}

// NewLoader creates a loader; an empty path searches the working and home directories
func NewLoader(path string) *Loader {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType(ConfigType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	return &Loader{v: v, path: path}
}

// BindFlag lets a command-line flag override key
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("bind %s: nil flag", key)
	}
	return l.v.BindPFlag(key, flag)
}

// Load reads the config file if present and returns the validated result
// A missing file is only an error when it was named explicitly
func (l *Loader) Load() (Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFileUsed returns the file read by the last Load, empty when none
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Options converts the config into assembler tuning
func (c Config) Options() assembler.Options {
	opts := assembler.DefaultOptions()
	opts.BoxSize = c.BoxSize
	opts.CenterThreshold = c.CenterThreshold
	opts.SpawnChance = c.SpawnChance
	opts.ResetDelay = c.ResetDelay
	opts.Lines = c.Lines
	opts.Curves = c.Curves
	return opts
}

// FrameInterval is the host loop period
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// Validate reports the first out-of-range setting
func (c Config) Validate() error {
	switch {
	case c.FrameRate <= 0 || c.FrameRate > 240:
		return fmt.Errorf("%w: frame rate %d", ErrInvalidConfig, c.FrameRate)
	case c.SpeedSensitivity < 0:
		return fmt.Errorf("%w: speed sensitivity %v", ErrInvalidConfig, c.SpeedSensitivity)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume %v", ErrInvalidConfig, c.Audio.Volume)
	}
	if err := c.Options().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
