// Copyright 2025 go-vision Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the YAML configuration of the vision command.
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-vision/convolve"
	"github.com/ajroetker/go-vision/disparity"
	"github.com/ajroetker/go-vision/pyramid"
)

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("invalid configuration")

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds the settings of every vision sub-command. Fields are loaded
// from YAML and may be overridden by command line flags.
type Config struct {
	LogLevel string `yaml:"log_level"`
	// Workers is the worker pool size. 0 uses GOMAXPROCS, 1 disables the
	// pool.
	Workers  int  `yaml:"workers"`
	Unrolled bool `yaml:"unrolled"`

	Blur      Blur      `yaml:"blur"`
	Disparity Disparity `yaml:"disparity"`
	Pyramid   Pyramid   `yaml:"pyramid"`
}

// Blur configures the blur command.
type Blur struct {
	Sigma  float64 `yaml:"sigma"`
	Radius int     `yaml:"radius"`
	// Border is "normalized", "inner" or a border type name.
	Border string  `yaml:"border"`
	Value  float64 `yaml:"value"`
}

// Disparity configures the disparity command.
type Disparity struct {
	Min         int `yaml:"min"`
	Range       int `yaml:"range"`
	RadiusX     int `yaml:"radius_x"`
	RadiusY     int `yaml:"radius_y"`
	MaxError    int `yaml:"max_error"`
	RightToLeft int `yaml:"right_to_left"`
}

// Pyramid configures the pyramid command.
type Pyramid struct {
	Levels int     `yaml:"levels"`
	Sigma  float64 `yaml:"sigma"`
	Border string  `yaml:"border"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Unrolled: true,
		Blur: Blur{
			Sigma:  1.5,
			Border: "normalized",
		},
		Disparity: Disparity{
			Range:       64,
			RadiusX:     3,
			RadiusY:     3,
			MaxError:    -1,
			RightToLeft: 1,
		},
		Pyramid: Pyramid{
			Levels: 4,
			Sigma:  1,
			Border: "normalized",
		},
	}
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if !lo.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return errors.Wrapf(ErrInvalid, "log_level %q not one of %s", c.LogLevel, strings.Join(logLevels, ", "))
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalid, "workers %d", c.Workers)
	}
	if c.Blur.Sigma <= 0 && c.Blur.Radius <= 0 {
		return errors.Wrap(ErrInvalid, "blur needs a sigma or a radius")
	}
	if _, err := c.Blur.Mode(); err != nil {
		return errors.Wrapf(ErrInvalid, "blur border: %v", err)
	}
	if err := c.Disparity.Matcher().Validate(); err != nil {
		return errors.Wrapf(ErrInvalid, "disparity: %v", err)
	}
	if c.Pyramid.Levels < 1 {
		return errors.Wrapf(ErrInvalid, "pyramid levels %d", c.Pyramid.Levels)
	}
	if c.Pyramid.Sigma <= 0 {
		return errors.Wrapf(ErrInvalid, "pyramid sigma %v", c.Pyramid.Sigma)
	}
	if _, err := convolve.ParseMode(c.Pyramid.Border, 0); err != nil {
		return errors.Wrapf(ErrInvalid, "pyramid border: %v", err)
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Mode returns the convolution mode named by Border.
func (b Blur) Mode() (convolve.Mode, error) {
	return convolve.ParseMode(b.Border, b.Value)
}

// Matcher converts the section to a disparity.Config.
func (d Disparity) Matcher() disparity.Config {
	return disparity.Config{
		MinDisparity:   d.Min,
		RangeDisparity: d.Range,
		RadiusX:        d.RadiusX,
		RadiusY:        d.RadiusY,
		MaxError:       d.MaxError,
		RightToLeft:    d.RightToLeft,
	}
}

// Config converts the section to a pyramid.Config.
func (p Pyramid) Config() (pyramid.Config, error) {
	m, err := convolve.ParseMode(p.Border, 0)
	if err != nil {
		return pyramid.Config{}, err
	}
	return pyramid.Config{Levels: p.Levels, Sigma: p.Sigma, Mode: m}, nil
}

// Load reads path over the defaults. A missing file yields the defaults.
// Unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML data into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "decode")
	}
	return cfg.Validate()
}

// Save writes c to path as YAML.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write config %s", path)
}
