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

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-vision/convolve"
	"github.com/ajroetker/go-vision/disparity"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, slog.LevelInfo, cfg.Level())

	m, err := cfg.Blur.Mode()
	require.NoError(t, err)
	assert.Equal(t, convolve.Normalized.String(), m.String())

	p, err := cfg.Pyramid.Config()
	require.NoError(t, err)
	assert.Equal(t, 4, p.Levels)
}

func TestParse(t *testing.T) {
	cfg := Default()
	err := Parse([]byte(`
log_level: debug
workers: 3
blur:
  sigma: 0
  radius: 4
  border: reflect
disparity:
  min: 2
  range: 32
  radius_x: 2
  radius_y: 1
`), cfg)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 4, cfg.Blur.Radius)
	assert.Equal(t, disparity.Config{
		MinDisparity:   2,
		RangeDisparity: 32,
		RadiusX:        2,
		RadiusY:        1,
		MaxError:       -1,
		RightToLeft:    1,
	}, cfg.Disparity.Matcher())
	// untouched sections keep their defaults
	assert.Equal(t, Default().Pyramid, cfg.Pyramid)
}

func TestParse_Empty(t *testing.T) {
	cfg := Default()
	require.NoError(t, Parse(nil, cfg))
	assert.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "colour: red\n",
		"log level":      "log_level: loud\n",
		"workers":        "workers: -2\n",
		"blur size":      "blur: {sigma: 0, radius: 0}\n",
		"blur border":    "blur: {border: mirror}\n",
		"disparity":      "disparity: {range: 0}\n",
		"disparity min":  "disparity: {min: -4}\n",
		"pyramid levels": "pyramid: {levels: 0}\n",
		"pyramid sigma":  "pyramid: {sigma: -1}\n",
		"not yaml":       "blur: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			err := Parse([]byte(doc), Default())
			require.Error(t, err)
		})
	}
	err := Parse([]byte("workers: -2\n"), Default())
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vision.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg.Workers = 2
	cfg.Pyramid.Levels = 6
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	require.NoError(t, os.WriteFile(path, []byte("workers: x\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}
