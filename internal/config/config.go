// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"gopkg.in/yaml.v3"

	"github.com/ik5/slicewave/timeline"
	"github.com/ik5/slicewave/waveform"
)

// Config holds the rendering and layout settings. Values come from the
// defaults, then an optional YAML file, then the environment.
type Config struct {
	Cutoffs waveform.Cutoffs `yaml:"cutoffs"`

	// Zoom is the horizontal scale, pixels per scene unit.
	Zoom float64 `yaml:"zoom"`
	// PixelsPerSecond is the scene width given to one second of audio.
	PixelsPerSecond float64 `yaml:"pixels_per_second"`

	RulerHeight   float64 `yaml:"ruler_height"`
	ElementHeight float64 `yaml:"element_height"`
	// SceneHeight is the height of rendered images.
	SceneHeight float64 `yaml:"scene_height"`

	// SampleRate, when set, resamples loaded audio to a common rate.
	SampleRate int `yaml:"sample_rate"`
	// MixDown folds loaded audio to mono.
	MixDown bool `yaml:"mix_down"`
}

func Default() Config {
	return Config{
		Cutoffs:         waveform.DefaultCutoffs(),
		Zoom:            1,
		PixelsPerSecond: 200,
		RulerHeight:     timeline.RulerHeight,
		ElementHeight:   160,
		SceneHeight:     178,
	}
}

// Load reads path, when not empty, over the defaults and applies the
// SLICEWAVE_* environment overrides. The result is validated.
func Load(path string) (Config, error) {
	return load(path, os.Getenv)
}

func load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			kind := ftag.Internal
			if errors.Is(err, fs.ErrNotExist) {
				kind = ftag.NotFound
			}
			return Config{}, fault.Wrap(err,
				fmsg.WithDesc("read config", fmt.Sprintf("Cannot read config file %s.", path)),
				ftag.With(kind))
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fault.Wrap(err,
				fmsg.WithDesc("parse config", fmt.Sprintf("Config file %s is not valid YAML.", path)),
				ftag.With(ftag.InvalidArgument))
		}
	}

	cfg.Cutoffs.Max = envFloat(getenv, "SLICEWAVE_MAX_CUTOFF", cfg.Cutoffs.Max)
	cfg.Cutoffs.VeryHigh = envFloat(getenv, "SLICEWAVE_VERY_HIGH_CUTOFF", cfg.Cutoffs.VeryHigh)
	cfg.Cutoffs.High = envFloat(getenv, "SLICEWAVE_HIGH_CUTOFF", cfg.Cutoffs.High)
	cfg.Zoom = envFloat(getenv, "SLICEWAVE_ZOOM", cfg.Zoom)
	cfg.PixelsPerSecond = envFloat(getenv, "SLICEWAVE_PIXELS_PER_SECOND", cfg.PixelsPerSecond)
	cfg.SampleRate = envInt(getenv, "SLICEWAVE_SAMPLE_RATE", cfg.SampleRate)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects settings the renderer cannot work with.
func (c Config) Validate() error {
	if err := c.Cutoffs.Validate(); err != nil {
		return invalid(err, "Detail level cutoffs must satisfy 0 < max <= very_high < high.")
	}

	switch {
	case c.Zoom <= 0:
		return invalid(fmt.Errorf("zoom %g", c.Zoom), "Zoom must be positive.")
	case c.PixelsPerSecond <= 0:
		return invalid(fmt.Errorf("pixels per second %g", c.PixelsPerSecond), "pixels_per_second must be positive.")
	case c.RulerHeight < 0:
		return invalid(fmt.Errorf("ruler height %g", c.RulerHeight), "ruler_height cannot be negative.")
	case c.ElementHeight <= 0:
		return invalid(fmt.Errorf("element height %g", c.ElementHeight), "element_height must be positive.")
	case c.SceneHeight < c.RulerHeight+c.ElementHeight:
		return invalid(fmt.Errorf("scene height %g below %g", c.SceneHeight, c.RulerHeight+c.ElementHeight),
			"scene_height must fit the ruler and the slices.")
	case c.SampleRate < 0:
		return invalid(fmt.Errorf("sample rate %d", c.SampleRate), "sample_rate cannot be negative.")
	}

	return nil
}

func invalid(err error, issue string) error {
	return fault.Wrap(err, fmsg.WithDesc("invalid config", issue), ftag.With(ftag.InvalidArgument))
}

func envFloat(getenv func(string) string, key string, fallback float64) float64 {
	if v := getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envInt(getenv func(string) string, key string, fallback int) int {
	if v := getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
