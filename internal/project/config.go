package project

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the contents of tangent.toml. CLI flags override any of it.
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Output      OutputConfig      `toml:"output"`
}

type DiagnosticsConfig struct {
	// Max caps the number of diagnostics kept per parse.
	Max       int  `toml:"max"`
	ShowNotes bool `toml:"show_notes"`
	// Context is the number of source lines shown above the primary line.
	Context int8 `toml:"context"`
}

type OutputConfig struct {
	Color string `toml:"color"` // auto, always, never
	Paths string `toml:"paths"` // auto, absolute, relative, basename
}

// DefaultConfig returns the settings used when no tangent.toml exists.
func DefaultConfig() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{
			Max:       64,
			ShowNotes: true,
			Context:   0,
		},
		Output: OutputConfig{
			Color: "auto",
			Paths: "auto",
		},
	}
}

// Load parses tangent.toml at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid [output].color %q: want auto, always or never", c.Output.Color)
	}
	switch c.Output.Paths {
	case "auto", "absolute", "relative", "basename":
	default:
		return fmt.Errorf("invalid [output].paths %q: want auto, absolute, relative or basename", c.Output.Paths)
	}
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("invalid [diagnostics].max %d: must not be negative", c.Diagnostics.Max)
	}
	return nil
}
