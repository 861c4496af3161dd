package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mknier/gravis/internal/trajectory"
)

const (
	DefaultMaxAnimFrames = trajectory.DefaultMaxAnimFrames
	DefaultSinkMode      = "local"
	DefaultSinkPort      = 9876
)

type Config struct {
	// Rs is the Schwarzschild radius of the central mass in meters.
	// It has no usable default and must be set per trajectory.
	Rs float64 `yaml:"rs"`

	// Conversion is "spherical" (input rows carry r, theta, phi) or
	// "identity" (already Cartesian).
	Conversion string `yaml:"conversion"`

	MaxAnimFrames     int     `yaml:"max_anim_frames"`
	AttractorRadius   float64 `yaml:"attractor_radius"`
	AnimationStepSize float64 `yaml:"animation_step_size"`

	Sink SinkConfig `yaml:"sink"`
}

type SinkConfig struct {
	// Mode selects the display target: "local" spawns the terminal
	// viewer, "remote" connects to a viewer on another host.
	Mode string `yaml:"mode"`

	// Host for remote mode. Empty means discover the default gateway,
	// which is where the viewer runs under a virtualized guest.
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func DefaultConfig() *Config {
	return &Config{
		Conversion:    "spherical",
		MaxAnimFrames: DefaultMaxAnimFrames,
		Sink: SinkConfig{
			Mode: DefaultSinkMode,
			Port: DefaultSinkPort,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Rs <= 0 {
		return fmt.Errorf("config: rs must be positive, got %g", c.Rs)
	}
	if _, err := c.ConversionMode(); err != nil {
		return err
	}
	switch c.Sink.Mode {
	case "local", "remote":
	default:
		return fmt.Errorf("config: unknown sink mode %q", c.Sink.Mode)
	}
	if c.AttractorRadius < 0 {
		return fmt.Errorf("config: attractor_radius must be >= 0")
	}
	if c.AnimationStepSize < 0 {
		return fmt.Errorf("config: animation_step_size must be >= 0")
	}
	return nil
}

func (c *Config) ConversionMode() (trajectory.Conversion, error) {
	switch c.Conversion {
	case "", "spherical":
		return trajectory.SphericalToCartesian, nil
	case "identity":
		return trajectory.Identity, nil
	default:
		return 0, fmt.Errorf("config: unknown conversion %q", c.Conversion)
	}
}
