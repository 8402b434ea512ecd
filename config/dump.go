package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

type audioFile struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// configFile is the on-disk layout; durations are written as strings
type configFile struct {
	BoxSize          float64   `toml:"box_size"`
	CenterThreshold  float64   `toml:"center_threshold"`
	SpawnChance      float64   `toml:"spawn_chance"`
	SpeedSensitivity float64   `toml:"speed_sensitivity"`
	ResetDelay       string    `toml:"reset_delay"`
	FrameRate        int       `toml:"frame_rate"`
	Lines            int       `toml:"lines"`
	Curves           int       `toml:"curves"`
	Seed             int64     `toml:"seed"`
	HUD              bool      `toml:"hud"`
	Debug            bool      `toml:"debug"`
	Audio            audioFile `toml:"audio"`
}

// Dump renders cfg as a TOML document Load accepts
func Dump(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(configFile{
		BoxSize:          cfg.BoxSize,
		CenterThreshold:  cfg.CenterThreshold,
		SpawnChance:      cfg.SpawnChance,
		SpeedSensitivity: cfg.SpeedSensitivity,
		ResetDelay:       cfg.ResetDelay.String(),
		FrameRate:        cfg.FrameRate,
		Lines:            cfg.Lines,
		Curves:           cfg.Curves,
		Seed:             cfg.Seed,
		HUD:              cfg.HUD,
		Debug:            cfg.Debug,
		Audio:            audioFile(cfg.Audio),
	})
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
