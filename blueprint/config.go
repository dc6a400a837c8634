// SPDX-License-Identifier: MIT

package blueprint

import (
	"fmt"
	"math"
	"os"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/terragrid/terrain"
)

// Config holds every parameter that shapes a blueprint. Two blueprints built
// from equal configs are identical.
type Config struct {
	CellSize       int                 `yaml:"cell_size" json:"cell_size"`
	GridScale      int                 `yaml:"grid_scale" json:"grid_scale"`
	CanvasWidth    int                 `yaml:"canvas_width" json:"canvas_width"`
	CanvasHeight   int                 `yaml:"canvas_height" json:"canvas_height"`
	Rows           int                 `yaml:"rows,omitempty" json:"rows,omitempty"`       // overrides the canvas-derived row count
	Columns        int                 `yaml:"columns,omitempty" json:"columns,omitempty"` // overrides the canvas-derived column count
	NoiseScale     float64             `yaml:"noise_scale" json:"noise_scale"`
	NoiseOctaves   int                 `yaml:"noise_octaves" json:"noise_octaves"`
	Roughness      float64             `yaml:"roughness" json:"roughness"`
	Seed           string              `yaml:"seed" json:"seed"`
	QuadrantFactor int                 `yaml:"quadrant_factor" json:"quadrant_factor"`
	Boundary       BoundaryPolicy      `yaml:"boundary" json:"boundary"`
	Bands          terrain.Table       `yaml:"bands,omitempty" json:"bands,omitempty"`
	Passability    terrain.Passability `yaml:"passability" json:"passability"`
}

// DefaultConfig returns the stock 1920×1080 continent at 10px cells.
func DefaultConfig() Config {
	return Config{
		CellSize:       10,
		GridScale:      1,
		CanvasWidth:    1920,
		CanvasHeight:   1080,
		NoiseScale:     100,
		NoiseOctaves:   12,
		Roughness:      0.5,
		Seed:           "CONTINENT",
		QuadrantFactor: 30,
		Boundary:       BoundaryClip,
		Passability:    terrain.DefaultPassability(),
	}
}

// Dimensions returns the row and column counts implied by c.
func (c Config) Dimensions() (rows, cols int) {
	rows, cols = c.Rows, c.Columns
	if c.CellSize > 0 {
		if rows == 0 {
			rows = c.CanvasHeight * c.GridScale / c.CellSize
		}
		if cols == 0 {
			cols = c.CanvasWidth * c.GridScale / c.CellSize
		}
	}

	return rows, cols
}

// Table returns the configured band table, or the default one.
func (c Config) Table() terrain.Table {
	if len(c.Bands) == 0 {
		return terrain.DefaultTable()
	}

	return c.Bands
}

// SeedValue hashes the textual seed into the integer seed of the generators.
func (c Config) SeedValue() int64 { return SeedFromString(c.Seed) }

// SeedFromString maps any string to a stable int64 seed.
func SeedFromString(s string) int64 { return int64(xxhash.Sum64String(s)) }

// Validate returns an error wrapping ErrInvalidConfig for the first invalid field.
func (c Config) Validate() error {
	rows, cols := c.Dimensions()
	switch {
	case c.CellSize < 1:
		return fmt.Errorf("%w: cell_size %d", ErrInvalidConfig, c.CellSize)
	case c.GridScale < 1:
		return fmt.Errorf("%w: grid_scale %d", ErrInvalidConfig, c.GridScale)
	case c.Rows < 0 || c.Columns < 0:
		return fmt.Errorf("%w: negative rows/columns override", ErrInvalidConfig)
	case rows < 2 || cols < 2:
		return fmt.Errorf("%w: grid %dx%d is smaller than 2x2", ErrInvalidConfig, rows, cols)
	case !(c.NoiseScale > 0):
		return fmt.Errorf("%w: noise_scale %v", ErrInvalidConfig, c.NoiseScale)
	case c.NoiseOctaves < 1:
		return fmt.Errorf("%w: noise_octaves %d", ErrInvalidConfig, c.NoiseOctaves)
	case c.Roughness < 0:
		return fmt.Errorf("%w: roughness %v", ErrInvalidConfig, c.Roughness)
	case c.QuadrantFactor < 1:
		return fmt.Errorf("%w: quadrant_factor %d", ErrInvalidConfig, c.QuadrantFactor)
	case !c.Boundary.Valid():
		return fmt.Errorf("%w: boundary %q", ErrInvalidConfig, c.Boundary)
	}
	if c.Rows == 0 {
		if _, ok := pixelProduct(c.CanvasHeight, c.GridScale); !ok {
			return fmt.Errorf("%w: canvas_height %d × grid_scale %d overflows", ErrInvalidConfig, c.CanvasHeight, c.GridScale)
		}
	}
	if c.Columns == 0 {
		if _, ok := pixelProduct(c.CanvasWidth, c.GridScale); !ok {
			return fmt.Errorf("%w: canvas_width %d × grid_scale %d overflows", ErrInvalidConfig, c.CanvasWidth, c.GridScale)
		}
	}
	if _, ok := pixelProduct(max(rows, cols), c.CellSize); !ok {
		return fmt.Errorf("%w: %dx%d grid at cell_size %d exceeds %d pixels", ErrInvalidConfig, rows, cols, c.CellSize, maxPixels)
	}
	if _, ok := pixelProduct(c.CellSize, c.QuadrantFactor, c.GridScale); !ok {
		return fmt.Errorf("%w: quadrant side %d × %d × %d exceeds %d pixels", ErrInvalidConfig, c.CellSize, c.QuadrantFactor, c.GridScale, maxPixels)
	}
	if err := c.Table().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// maxPixels bounds every pixel length derived from a Config.
const maxPixels = math.MaxInt32

// pixelProduct multiplies non-negative factors, failing once the product
// would pass maxPixels.
func pixelProduct(xs ...int) (int, bool) {
	p := 1
	for _, x := range xs {
		if x < 0 || (x > 0 && p > maxPixels/x) {
			return 0, false
		}
		p *= x
	}

	return p, true
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("blueprint: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
