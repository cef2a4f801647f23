// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// OutputConfig settings about the written coordinate files
type OutputConfig struct {
	// the number of decimal places kept for every coordinate
	Precision int `mapstructure:"precision"`

	// format of each oligo's name, passed its zero-based position
	NameFormat string `mapstructure:"name-format"`

	// appended to the design's basename to make the output file's name
	Suffix string `mapstructure:"suffix"`

	// optional path of a javascript data file (var DATA = ...;) for the viewer
	ViewerPath string `mapstructure:"viewer-path"`
}

// HelixConfig is the twist of a helix on one lattice type
type HelixConfig struct {
	// the number of bases in one repeat of the lattice
	BasesPerRepeat int `mapstructure:"bases-per-repeat"`

	// the number of full turns the helix makes per repeat
	TurnsPerRepeat int `mapstructure:"turns-per-repeat"`

	// rotation (degrees) of the forward backbone at base 0
	EulerZ float64 `mapstructure:"euler-z"`
}

// LatticeConfig is for the geometry of the helices
type LatticeConfig struct {
	// radius of a helix in nm, also half the spacing between neighbors
	Radius float64 `mapstructure:"radius"`

	// rise per base along the helix axis in nm
	Rise float64 `mapstructure:"rise"`

	// angle (degrees) from the forward backbone to the reverse backbone
	MinorGroove float64 `mapstructure:"minor-groove"`

	Honeycomb HelixConfig `mapstructure:"honeycomb"`

	Square HelixConfig `mapstructure:"square"`
}

// ColorConfig is for oligos whose colors aren't in the design
type ColorConfig struct {
	Scaffold string `mapstructure:"scaffold"`

	Staple string `mapstructure:"staple"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// log debug output
	Verbose bool `mapstructure:"verbose"`

	Output OutputConfig `mapstructure:"output"`

	Lattice LatticeConfig `mapstructure:"lattice"`

	Colors ColorConfig `mapstructure:"colors"`
}

func init() {
	SetDefaults(viper.GetViper())
}

// SetDefaults registers the built-in value of every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)

	v.SetDefault("output.precision", 6)
	v.SetDefault("output.name-format", "oligo%03d")
	v.SetDefault("output.suffix", "_coords.json")
	v.SetDefault("output.viewer-path", "")

	v.SetDefault("lattice.radius", 1.125)
	v.SetDefault("lattice.rise", 0.34)
	v.SetDefault("lattice.minor-groove", 180.0)
	v.SetDefault("lattice.honeycomb.bases-per-repeat", 21)
	v.SetDefault("lattice.honeycomb.turns-per-repeat", 2)
	v.SetDefault("lattice.honeycomb.euler-z", 17.143)
	v.SetDefault("lattice.square.bases-per-repeat", 32)
	v.SetDefault("lattice.square.turns-per-repeat", 3)
	v.SetDefault("lattice.square.euler-z", 0.0)

	v.SetDefault("colors.scaffold", "#0066cc")
	v.SetDefault("colors.staple", "#888888")
}

// New returns a new Config struct populated by Viper settings: the
// defaults, the file named by the "settings" key (if any), and any bound
// command line flags.
func New() (*Config, error) {
	return Load(viper.GetViper())
}

// Load merges the settings file named by v's "settings" key into v and
// decodes the result.
func Load(v *viper.Viper) (*Config, error) {
	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// validate rejects settings the exporter can't work with
func (c *Config) validate() error {
	if c.Output.Precision < 0 {
		return fmt.Errorf("output.precision must not be negative: %d", c.Output.Precision)
	}
	if c.Output.Suffix == "" {
		return fmt.Errorf("output.suffix must not be empty")
	}
	if c.Lattice.Radius <= 0 || c.Lattice.Rise <= 0 {
		return fmt.Errorf("lattice radius and rise must be positive: %v, %v", c.Lattice.Radius, c.Lattice.Rise)
	}
	for name, h := range map[string]HelixConfig{"honeycomb": c.Lattice.Honeycomb, "square": c.Lattice.Square} {
		if h.BasesPerRepeat <= 0 {
			return fmt.Errorf("lattice.%s.bases-per-repeat must be positive: %d", name, h.BasesPerRepeat)
		}
	}
	return nil
}
