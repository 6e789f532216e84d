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
	"fmt"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vision/convolve"
	"github.com/ajroetker/go-vision/image"
	"github.com/ajroetker/go-vision/kernel"
)

type benchEnv struct {
	*rootEnv

	size   int
	width  int
	rounds int
}

func benchCmd(root *rootEnv) *cobra.Command {
	env := &benchEnv{rootEnv: root}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the unrolled and generic convolution loops",
		Args:  cobra.NoArgs,
		RunE:  env.runBenchCmd,
	}
	cmd.Flags().IntVar(&env.size, "size", 1024, "image side in pixels")
	cmd.Flags().IntVar(&env.width, "width", 5, "kernel width, odd")
	cmd.Flags().IntVar(&env.rounds, "rounds", 20, "convolutions per measurement")
	return cmd
}

type benchCase struct {
	name string
	run  func(e *convolve.Engine[uint8, int32], k *kernel.Kernel1D[int32], src, dst *image.Gray[uint8]) error
}

var benchCases = []benchCase{
	{"horizontal", func(e *convolve.Engine[uint8, int32], k *kernel.Kernel1D[int32], src, dst *image.Gray[uint8]) error {
		return e.HorizontalDiv(k, src, dst, k.Sum())
	}},
	{"vertical", func(e *convolve.Engine[uint8, int32], k *kernel.Kernel1D[int32], src, dst *image.Gray[uint8]) error {
		return e.VerticalDiv(k, src, dst, k.Sum())
	}},
	{"normalized", func(e *convolve.Engine[uint8, int32], k *kernel.Kernel1D[int32], src, dst *image.Gray[uint8]) error {
		return e.Separable(k, k, src, dst, convolve.Normalized)
	}},
}

func (b *benchEnv) runBenchCmd(cmd *cobra.Command, _ []string) error {
	coef := make([]int32, b.width)
	for i := range coef {
		coef[i] = int32(1 + min(i, b.width-1-i))
	}
	k, err := kernel.New1D(coef...)
	if err != nil {
		return err
	}
	src := image.NewGray[uint8](b.size, b.size)
	rng := rand.New(rand.NewSource(1))
	for y := range src.Height {
		for x := range src.Row(y) {
			src.Row(y)[x] = uint8(rng.Intn(256))
		}
	}
	dst := image.NewGray[uint8](b.size, b.size)

	pool := b.pool()
	defer pool.Close()
	pixels := int64(b.size) * int64(b.size) * int64(b.rounds)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "case\tloops\telapsed\tthroughput")
	for _, unrolled := range []bool{true, false} {
		e, err := convolve.New[uint8, int32](convolve.WithPool(pool), convolve.WithUnrolled(unrolled))
		if err != nil {
			return err
		}
		loops := "generic"
		if unrolled {
			loops = "unrolled"
		}
		for _, c := range benchCases {
			start := time.Now()
			for range b.rounds {
				if err := c.run(e, k, src, dst); err != nil {
					return err
				}
			}
			elapsed := time.Since(start)
			rate := uint64(float64(pixels) / elapsed.Seconds())
			fmt.Fprintf(w, "%s\t%s\t%s\t%s/s\n", c.name, loops, elapsed.Round(time.Microsecond), humanize.Bytes(rate))
		}
	}
	fmt.Fprintf(w, "\n%s pixels per case, kernel width %d\n", humanize.Comma(pixels), b.width)
	return w.Flush()
}
