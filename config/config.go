// SPDX-License-Identifier: MIT

// Package config assembles the run configuration of the maxcut CLI.
//
// Sources, lowest priority first:
//
//  1. Defaults (Default).
//  2. An optional YAML file.
//  3. A .env file; its keys only fill variables missing from the environment.
//  4. Environment variables, decoded by envconfig (DWAVE_API_TOKEN,
//     DWAVE_API_ENDPOINT, DWAVE_API_SOLVER, MAXCUT_LOG_LEVEL and
//     MAXCUT_LOG_FORMAT).
//  5. Command-line flags, applied by the caller before Validate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/maxcut/builder"
	"github.com/katalvlaran/maxcut/core"
	"github.com/katalvlaran/maxcut/qubo"
	"github.com/katalvlaran/maxcut/solver"
	"github.com/katalvlaran/maxcut/visual"
)

// Environment variables read by Load.
const (
	EnvToken     = "DWAVE_API_TOKEN"
	EnvEndpoint  = "DWAVE_API_ENDPOINT"
	EnvSolver    = "DWAVE_API_SOLVER"
	EnvLogLevel  = "MAXCUT_LOG_LEVEL"
	EnvLogFormat = "MAXCUT_LOG_FORMAT"
)

// DefaultEndpoint is the public SAPI endpoint.
const DefaultEndpoint = "https://cloud.dwavesys.com/sapi/v2"

var (
	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrRead wraps failures to read or decode a config file.
	ErrRead = errors.New("config: cannot read configuration")
)

var validate = validator.New()

// Config is the full run configuration.
type Config struct {
	// Scheme selects the encoding: "qubo" or "ising".
	Scheme string `yaml:"scheme" validate:"oneof=qubo ising"`
	// Edges lists "u v" pairs, with a third weight element when Weighted.
	// Empty means the built-in five-node example.
	Edges    [][]string `yaml:"edges" validate:"dive,min=2,max=3,dive,required"`
	Weighted bool       `yaml:"weighted"`

	NumReads int `yaml:"num_reads" validate:"min=1,max=10000"`
	// ChainStrength 0 selects the scheme default.
	ChainStrength float64 `yaml:"chain_strength" validate:"gte=0"`
	Label         string  `yaml:"label" validate:"max=256"`

	// Plot is the PNG path; empty selects the scheme default.
	Plot       string `yaml:"plot"`
	NoPlot     bool   `yaml:"no_plot"`
	LayoutSeed int64  `yaml:"layout_seed"`

	Solver SolverConfig `yaml:"solver"`
	Log    LogConfig    `yaml:"log"`
}

// SolverConfig locates the remote sampler.
// The envconfig tags must match the Env* constants.
type SolverConfig struct {
	Endpoint string `yaml:"endpoint" envconfig:"DWAVE_API_ENDPOINT" validate:"required,url"`
	Token    string `yaml:"token" envconfig:"DWAVE_API_TOKEN"`
	Name     string `yaml:"name" envconfig:"DWAVE_API_SOLVER"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level  string `yaml:"level" envconfig:"MAXCUT_LOG_LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"MAXCUT_LOG_FORMAT" validate:"oneof=console json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scheme:   "qubo",
		NumReads: solver.DefaultNumReads,
		Solver:   SolverConfig{Endpoint: DefaultEndpoint},
		Log:      LogConfig{Level: "info", Format: "console"},
	}
}

// Load layers the YAML file at path (skipped when empty) over the defaults,
// exports the dotenv files (".env" when none given, silently skipped when
// absent) into the process environment, then applies environment overrides.
// It does not validate; callers apply flag overrides and then call Validate.
func Load(path string, dotenv ...string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("Load(%q): %w: %w", path, ErrRead, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Load(%q): %w: %w", path, ErrRead, err)
		}
	}

	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, f := range dotenv {
		// godotenv.Load never overrides variables already set.
		err := godotenv.Load(f)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("Load: dotenv %q: %w: %w", f, ErrRead, err)
		}
	}

	endpoint, level, format := cfg.Solver.Endpoint, cfg.Log.Level, cfg.Log.Format
	if err := envconfig.Process("", &cfg.Solver); err != nil {
		return nil, fmt.Errorf("Load: env: %w: %w", ErrRead, err)
	}
	if err := envconfig.Process("", &cfg.Log); err != nil {
		return nil, fmt.Errorf("Load: env: %w: %w", ErrRead, err)
	}
	// An empty endpoint or log setting in the environment keeps the lower layer.
	if cfg.Solver.Endpoint == "" {
		cfg.Solver.Endpoint = endpoint
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = format
	}

	return cfg, nil
}

// Validate checks every field constraint.
func (c *Config) Validate() error {
	c.Scheme = strings.ToLower(strings.TrimSpace(c.Scheme))
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for i, e := range c.Edges {
		switch {
		case c.Weighted && len(e) != 3:
			return fmt.Errorf("%w: edge %d: weighted edges need [u, v, weight]", ErrInvalid, i)
		case !c.Weighted && len(e) == 3:
			return fmt.Errorf("%w: edge %d: weight %q given but weighted is off", ErrInvalid, i, e[2])
		}
	}

	return nil
}

// Vartype maps Scheme to its variable domain.
func (c *Config) Vartype() qubo.Vartype {
	vt, err := qubo.ParseVartype(c.Scheme)
	if err != nil {
		return qubo.Binary
	}
	return vt
}

// Params returns the sampler parameters with scheme defaults filled in.
func (c *Config) Params() solver.Params {
	p := solver.DefaultParams(c.Vartype())
	p.NumReads = c.NumReads
	if c.ChainStrength > 0 {
		p.ChainStrength = c.ChainStrength
	}
	if c.Label != "" {
		p.Label = c.Label
	}
	return p
}

// PlotPath returns Plot or the scheme's default file name.
func (c *Config) PlotPath() string {
	if c.Plot != "" {
		return c.Plot
	}
	return visual.PlotName(c.Vartype())
}

// ClientConfig returns the solver connection settings.
func (c *Config) ClientConfig() solver.ClientConfig {
	return solver.ClientConfig{Endpoint: c.Solver.Endpoint, Token: c.Solver.Token, Solver: c.Solver.Name}
}

// GraphOptions returns the core options implied by Weighted.
func (c *Config) GraphOptions() []core.GraphOption {
	if c.Weighted {
		return []core.GraphOption{core.WithWeighted()}
	}
	return nil
}

// Constructor returns the graph constructor for Edges.
func (c *Config) Constructor() (builder.Constructor, error) {
	if len(c.Edges) == 0 {
		return builder.MaxCutExample(), nil
	}
	if !c.Weighted {
		pairs := make([]builder.Pair, len(c.Edges))
		for i, e := range c.Edges {
			if len(e) < 2 {
				return nil, fmt.Errorf("%w: edge %d: need [u, v]", ErrInvalid, i)
			}
			pairs[i] = builder.Pair{e[0], e[1]}
		}
		return builder.EdgeList(pairs), nil
	}
	edges := make([]builder.WeightedEdge, len(c.Edges))
	for i, e := range c.Edges {
		if len(e) != 3 {
			return nil, fmt.Errorf("%w: edge %d: need [u, v, weight]", ErrInvalid, i)
		}
		w, err := strconv.ParseInt(e[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d weight %q: %w", ErrInvalid, i, e[2], err)
		}
		edges[i] = builder.WeightedEdge{U: e[0], V: e[1], Weight: w}
	}
	return builder.WeightedEdgeList(edges), nil
}

// ParseEdges reads "u-v,u-v[:w]" as used by the -edges flag.
// Vertex IDs cannot contain '-', ',' or ':'; use the YAML edges list for those.
func ParseEdges(s string) ([][]string, error) {
	var out [][]string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		var weight string
		if i := strings.IndexByte(item, ':'); i >= 0 {
			item, weight = item[:i], item[i+1:]
		}
		u, v, ok := strings.Cut(item, "-")
		if !ok || u == "" || v == "" || strings.Contains(v, "-") {
			return nil, fmt.Errorf("%w: edge %q: want u-v or u-v:w", ErrInvalid, item)
		}
		e := []string{strings.TrimSpace(u), strings.TrimSpace(v)}
		if weight != "" {
			e = append(e, strings.TrimSpace(weight))
		}
		out = append(out, e)
	}
	return out, nil
}
