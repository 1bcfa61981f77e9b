// Package config provides configuration for the go-skinview preview server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Server holds all configuration for the preview server.
type Server struct {
	// Network
	Port string `yaml:"port"`

	// Playback
	FPS   int     `yaml:"fps"`   // frames per second (default: 30)
	Mode  string  `yaml:"mode"`  // initial animation mode
	Speed float64 `yaml:"speed"` // playback speed multiplier
	Cape  bool    `yaml:"cape"`  // animate a cape attachment
	Seed  int64   `yaml:"seed"`  // mixed-mode rng seed (0 = time-seeded)

	// Logging
	LogLevel string `yaml:"log_level"`

	// Static viewer assets directory ("" disables)
	StaticDir string `yaml:"static_dir"`
}

// Default returns Server config with sensible defaults.
func Default() Server {
	return Server{
		Port:      "8090",
		FPS:       30,
		Mode:      "idle",
		Speed:     1.0,
		Cape:      true,
		LogLevel:  "info",
		StaticDir: "./web",
	}
}

// TickInterval returns the frame interval for the configured FPS.
func (c *Server) TickInterval() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}

// Load reads a YAML config file over the defaults. A missing file is not
// an error; env overrides are applied last either way.
func Load(path string) (Server, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides fields from SKINVIEW_* environment variables.
// Malformed numeric values keep the file/default value.
func (c *Server) applyEnv() {
	if port := os.Getenv("SKINVIEW_PORT"); port != "" {
		c.Port = port
	}
	if mode := os.Getenv("SKINVIEW_MODE"); mode != "" {
		c.Mode = mode
	}
	if lvl := os.Getenv("SKINVIEW_LOG_LEVEL"); lvl != "" {
		c.LogLevel = lvl
	}
	if v := os.Getenv("SKINVIEW_FPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.FPS = n
		}
	}
	if v := os.Getenv("SKINVIEW_SPEED"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Speed = f
		}
	}
	if v := os.Getenv("SKINVIEW_CAPE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Cape = b
		}
	}
	if v := os.Getenv("SKINVIEW_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
}
