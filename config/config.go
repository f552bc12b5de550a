// Package config loads the run-rule variants and search settings used by
// the crucible command from a YAML file.
//
// A file only needs the keys it changes; everything else keeps Default():
//
//	heuristic: manhattan   # none | dijkstra | manhattan | astar
//	compression: true
//	log_level: info        # debug | info | warn | error
//	variants:
//	  - name: basic
//	    min_run: 1
//	    max_run: 3
//	  - name: ultra
//	    min_run: 4
//	    max_run: 10
//
// A max_run of 0 (or omitted) means no cap on straight runs.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crucible/crucible"
)

// ErrUnknownVariant indicates a variant name absent from the configuration.
var ErrUnknownVariant = errors.New("config: unknown variant")

// validate is shared by every Config; validator caches struct metadata.
var validate = validator.New()

// Config is the full set of tunables for a crucible run.
type Config struct {
	// Heuristic orders the search queue.
	Heuristic string `yaml:"heuristic" validate:"oneof=none dijkstra manhattan astar"`

	// Compression prunes dominated frontier entries.
	Compression bool `yaml:"compression"`

	// LogLevel is the minimum slog level written by the command.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Variants are the named run rules, solved in order by "crucible all".
	Variants []Variant `yaml:"variants" validate:"required,min=1,unique=Name,dive"`
}

// Variant is one named pair of run limits.
type Variant struct {
	Name   string `yaml:"name" validate:"required"`
	MinRun int    `yaml:"min_run" validate:"gte=1"`
	MaxRun int    `yaml:"max_run" validate:"omitempty,gtefield=MinRun"`
}

// Rule converts v into search limits; MaxRun 0 becomes crucible.Unbounded.
func (v Variant) Rule() crucible.Rule {
	r := crucible.Rule{MinRun: v.MinRun, MaxRun: v.MaxRun}
	if r.MaxRun == 0 {
		r.MaxRun = crucible.Unbounded
	}
	return r
}

// Default returns the two standard variants with A* and compression enabled.
func Default() Config {
	basic, ultra := crucible.BasicRule(), crucible.UltraRule()
	return Config{
		Heuristic:   crucible.HeuristicManhattan.String(),
		Compression: true,
		LogLevel:    "info",
		Variants: []Variant{
			{Name: "basic", MinRun: basic.MinRun, MaxRun: basic.MaxRun},
			{Name: "ultra", MinRun: ultra.MinRun, MaxRun: ultra.MaxRun},
		},
	}
}

// Load reads the YAML file at path over Default() and validates the result.
// Unknown keys are rejected so that typos do not pass silently.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML from r over Default() and validates the result.
// An empty document yields Default().
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the struct tags of c and its variants.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}

// Variant returns the variant called name.
func (c *Config) Variant(name string) (Variant, error) {
	for _, v := range c.Variants {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// SearchOptions translates the global settings into crucible options.
func (c *Config) SearchOptions() ([]crucible.Option, error) {
	h, err := crucible.ParseHeuristic(c.Heuristic)
	if err != nil {
		return nil, err
	}
	return []crucible.Option{
		crucible.WithHeuristic(h),
		crucible.WithCompression(c.Compression),
	}, nil
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to Info.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
