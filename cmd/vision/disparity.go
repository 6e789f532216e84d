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
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-vision/disparity"
	"github.com/ajroetker/go-vision/image"
)

type disparityEnv struct {
	*rootEnv

	left   string
	right  string
	output string
	raw    bool
	min    int
	rng    int
	radius int
	maxErr int
	r2lTol int
}

func disparityCmd(root *rootEnv) *cobra.Command {
	env := &disparityEnv{rootEnv: root}
	cmd := &cobra.Command{
		Use:   "disparity",
		Short: "Dense stereo disparity by SAD block matching",
		Long: `Computes the disparity of every pixel of a rectified stereo pair. The
output stores disparities relative to --min stretched to [0, 255], with
invalid pixels set to 0. Use --raw to store the values unscaled, where
invalid pixels hold the range.`,
		Args: cobra.NoArgs,
		RunE: env.runDisparityCmd,
	}
	cmd.Flags().StringVar(&env.left, "left", "", "left image")
	cmd.Flags().StringVar(&env.right, "right", "", "right image")
	cmd.Flags().StringVar(&env.output, "output", "", "output disparity image")
	cmd.Flags().BoolVar(&env.raw, "raw", false, "store raw disparity values")
	cmd.Flags().IntVar(&env.min, "min", 0, "minimum disparity")
	cmd.Flags().IntVar(&env.rng, "range", 0, "number of disparities searched")
	cmd.Flags().IntVar(&env.radius, "radius", 0, "block radius, both axes")
	cmd.Flags().IntVar(&env.maxErr, "max-error", 0, "maximum per pixel error, negative disables")
	cmd.Flags().IntVar(&env.r2lTol, "right-to-left", 0, "right to left tolerance, negative disables")
	must(cmd.MarkFlagRequired("left"))
	must(cmd.MarkFlagRequired("right"))
	must(cmd.MarkFlagRequired("output"))
	return cmd
}

func (e *disparityEnv) runDisparityCmd(cmd *cobra.Command, _ []string) error {
	cfg := e.cfg.Disparity
	flags := cmd.Flags()
	if flags.Changed("min") {
		cfg.Min = e.min
	}
	if flags.Changed("range") {
		cfg.Range = e.rng
	}
	if flags.Changed("radius") {
		cfg.RadiusX, cfg.RadiusY = e.radius, e.radius
	}
	if flags.Changed("max-error") {
		cfg.MaxError = e.maxErr
	}
	if flags.Changed("right-to-left") {
		cfg.RightToLeft = e.r2lTol
	}

	var left, right *image.Gray[uint8]
	g, _ := errgroup.WithContext(cmd.Context())
	g.Go(func() (err error) {
		left, err = loadGray(e.left)
		return err
	})
	g.Go(func() (err error) {
		right, err = loadGray(e.right)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	pool := e.pool()
	defer pool.Close()
	m, err := disparity.New[uint8, int32](cfg.Matcher(), disparity.WithPool(pool))
	if err != nil {
		return err
	}
	out := image.NewGray[uint8](left.Width, left.Height)
	start := time.Now()
	if err := m.Process(left, right, out); err != nil {
		return err
	}
	e.logger.Info("disparity",
		slog.String("matcher", m.String()),
		slog.Int("width", left.Width),
		slog.Int("height", left.Height),
		slog.Int("invalid", countInvalid(out, m.Invalid())),
		slog.Duration("elapsed", time.Since(start)))
	if !e.raw {
		out = stretch(pool, out, m.Invalid())
	}
	return saveGray(out, e.output)
}

func countInvalid(img *image.Gray[uint8], invalid uint8) int {
	n := 0
	for y := range img.Height {
		for _, v := range img.Row(y) {
			if v == invalid {
				n++
			}
		}
	}
	return n
}
