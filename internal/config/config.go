// Package config handles tool configuration loading and management.
package config

import "github.com/Faultbox/spritephys/pkg/collider"

// Config holds all tool settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Extract ExtractConfig `yaml:"extract"`
	Sprites SpritesConfig `yaml:"sprites"`
	Physics PhysicsConfig `yaml:"physics"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds viewer window settings.
type WindowConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// ExtractConfig holds the extraction pipeline tunables.
type ExtractConfig struct {
	AlphaThreshold uint8   `yaml:"alpha_threshold"`
	MinBlobArea    int     `yaml:"min_blob_area"`
	MinPolygonArea float64 `yaml:"min_polygon_area"`
	MaxVertices    int     `yaml:"max_vertices"`
}

// Options converts the section into pipeline options.
func (e ExtractConfig) Options() []collider.Option {
	return []collider.Option{
		collider.WithAlphaThreshold(e.AlphaThreshold),
		collider.WithMinBlobArea(e.MinBlobArea),
		collider.WithMinPolygonArea(e.MinPolygonArea),
		collider.WithMaxVertices(e.MaxVertices),
	}
}

// SpritesConfig names the demo scene images by role. An empty path skips
// the role. Typed fields instead of a name→path map: a missing role is a
// visible zero value, not a runtime lookup failure.
type SpritesConfig struct {
	Car      string `yaml:"car"`
	Terrain  string `yaml:"terrain"`
	Boulders string `yaml:"boulders"`
}

// PhysicsConfig holds simulation settings for the viewer.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
	Density float64 `yaml:"density"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values, matching the
// pipeline's own defaults.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Extract: ExtractConfig{
			AlphaThreshold: 0,
			MinBlobArea:    4,
			MinPolygonArea: 0.25,
			MaxVertices:    8,
		},
		Sprites: SpritesConfig{
			Car:      "assets/sprite/car.png",
			Terrain:  "assets/sprite/terrain.png",
			Boulders: "assets/sprite/boulders.png",
		},
		Physics: PhysicsConfig{
			Gravity: -98,
			Density: 1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
