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

package main

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vision/kernel"
	"github.com/ajroetker/go-vision/pyramid"
)

type pyramidEnv struct {
	*rootEnv

	input     string
	outputDir string
	levels    int
}

func pyramidCmd(root *rootEnv) *cobra.Command {
	env := &pyramidEnv{rootEnv: root}
	cmd := &cobra.Command{
		Use:   "pyramid",
		Short: "Gaussian pyramid of a gray image",
		Long: `Writes each level of a Gaussian pyramid to the output directory as
level_<i>.png. Level i is 2^i times smaller than the input.`,
		Args: cobra.NoArgs,
		RunE: env.runPyramidCmd,
	}
	cmd.Flags().StringVar(&env.input, "input", "", "input image")
	cmd.Flags().StringVar(&env.outputDir, "output-dir", "", "directory for the levels")
	cmd.Flags().IntVar(&env.levels, "levels", 0, "number of levels, overrides the configuration")
	must(cmd.MarkFlagRequired("input"))
	must(cmd.MarkFlagRequired("output-dir"))
	return cmd
}

func (e *pyramidEnv) runPyramidCmd(cmd *cobra.Command, _ []string) error {
	section := e.cfg.Pyramid
	if cmd.Flags().Changed("levels") {
		section.Levels = e.levels
	}
	cfg, err := section.Config()
	if err != nil {
		return err
	}
	src, err := loadGray(e.input)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	pool := e.pool()
	defer pool.Close()
	cache, err := kernel.NewCache(4)
	if err != nil {
		return err
	}
	p, err := pyramid.New[uint8, int32](cfg, cache, e.engineOptions(pool)...)
	if err != nil {
		return err
	}
	if err := p.Process(src); err != nil {
		return err
	}
	// Level sizes differ by powers of four, so levels are handed out one at
	// a time.
	errs := make([]error, p.NumLevels())
	pool.ParallelForAtomic(p.NumLevels(), func(i int) {
		level := p.Level(i)
		path := filepath.Join(e.outputDir, fmt.Sprintf("level_%d.png", i))
		errs[i] = saveGray(level, path)
		e.logger.Debug("level",
			slog.Int("level", i),
			slog.Int("scale", p.Scale(i)),
			slog.Int("width", level.Width),
			slog.Int("height", level.Height))
	})
	if err := stderrors.Join(errs...); err != nil {
		return err
	}
	e.logger.Info("pyramid", slog.String("input", e.input), slog.Int("levels", p.NumLevels()))
	return nil
}
