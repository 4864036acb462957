package bench

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and LoadConfig for unusable suites.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Config describes a benchmark suite.
type Config struct {
	// OutputDir receives the CSV reports.
	OutputDir string `yaml:"output_dir"`

	// Seed drives graph generation and start-vertex choice. Zero picks one
	// from the clock at run time.
	Seed int64 `yaml:"seed"`

	// Repeats is how many times each case is run.
	Repeats int `yaml:"repeats"`

	// Engines are run in order; the first one is the reference.
	Engines []string `yaml:"engines"`

	Generated GeneratedConfig `yaml:"generated"`
	Datasets  []DatasetConfig `yaml:"datasets"`
}

// GeneratedConfig is the grid of RandomRarity graphs. Every vertex count is
// combined with every rarity.
type GeneratedConfig struct {
	Prefix       string    `yaml:"prefix"`
	VertexCounts []int     `yaml:"vertex_counts"`
	Rarities     []float64 `yaml:"rarities"`
}

// DatasetConfig is one edge-list file.
type DatasetConfig struct {
	Name        string `yaml:"name"`
	Path        string `yaml:"path"`
	VertexCount int    `yaml:"vertex_count"`
	Delimiter   string `yaml:"delimiter"`
	Undirected  bool   `yaml:"undirected"`
	Header      bool   `yaml:"header"`
}

// DefaultEngines is the reference engine, the level engine and pools of 2 to 5 workers.
var DefaultEngines = []string{"sequential", "level", "pool:2", "pool:3", "pool:4", "pool:5"}

// DefaultConfig returns the 10x9 generated grid used by the reference benchmark.
func DefaultConfig() Config {
	return Config{
		OutputDir: "output",
		Repeats:   1,
		Engines:   append([]string(nil), DefaultEngines...),
		Generated: GeneratedConfig{
			Prefix:       "generated_",
			VertexCounts: []int{10, 20, 50, 100, 200, 500, 1000, 2000, 5000, 10000},
			Rarities:     []float64{1, 5, 10, 15, 20, 30, 50, 100, 200},
		},
	}
}

// LoadConfig reads a YAML suite from path on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("bench: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
// Keys absent from data keep their defaults; present lists replace them.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("bench: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the suite can run.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is empty", ErrInvalidConfig)
	}
	if c.Repeats < 1 {
		return fmt.Errorf("%w: repeats must be >= 1, got %d", ErrInvalidConfig, c.Repeats)
	}
	if len(c.Engines) == 0 {
		return fmt.Errorf("%w: no engines", ErrInvalidConfig)
	}
	for _, name := range c.Engines {
		if _, err := ParseEngine(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	for _, n := range c.Generated.VertexCounts {
		if n < 1 {
			return fmt.Errorf("%w: vertex count %d", ErrInvalidConfig, n)
		}
	}
	for _, r := range c.Generated.Rarities {
		if r < 0 {
			return fmt.Errorf("%w: rarity %g", ErrInvalidConfig, r)
		}
	}
	for i, d := range c.Datasets {
		if d.Name == "" || d.Path == "" {
			return fmt.Errorf("%w: dataset %d needs name and path", ErrInvalidConfig, i)
		}
		if d.VertexCount < 0 {
			return fmt.Errorf("%w: dataset %s: vertex_count %d", ErrInvalidConfig, d.Name, d.VertexCount)
		}
	}
	return nil
}
