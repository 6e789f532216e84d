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

// Command convgen writes the unrolled convolution loops of package convolve.
//
// Usage:
//
//	convgen -output ../../convolve/unrolled.gen.go -widths 3,5,7,9,11
//
// Or via go:generate from package convolve:
//
//	//go:generate go run ../cmd/convgen -output unrolled.gen.go
//
// For every width it emits the horizontal, vertical and 2D loops and their
// down-sampled variants, plus one dispatcher per operation that returns false
// for kernels it has no loop for.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	outputFile = flag.String("output", "unrolled.gen.go", "Output Go file")
	packageOut = flag.String("pkg", "convolve", "Output package name")
	widthList  = flag.String("widths", "3,5,7,9,11", "Comma-separated odd kernel widths to unroll")
)

func main() {
	flag.Parse()

	widths, err := parseWidths(*widthList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		Package: *packageOut,
		Widths:  widths,
	}
	src, err := gen.Generate(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s for widths %s\n", *outputFile, *widthList)
}

func parseWidths(s string) ([]int, error) {
	var widths []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		w, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("width %q: %w", p, err)
		}
		if w < 1 || w%2 == 0 {
			return nil, fmt.Errorf("width %d must be odd and positive", w)
		}
		widths = append(widths, w)
	}
	if len(widths) == 0 {
		return nil, fmt.Errorf("no widths given")
	}
	return widths, nil
}
