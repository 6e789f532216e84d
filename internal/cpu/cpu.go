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

// Package cpu reports host capabilities and the environment switches that
// select between the unrolled and the generic convolution loops.
package cpu

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// NoUnrollEnvVar names the environment variable that forces the generic
// convolution loops.
const NoUnrollEnvVar = "VISION_NO_UNROLL"

// NoUnrollEnv reports whether VISION_NO_UNROLL is set. Any non-empty value
// that does not parse as false counts as set.
func NoUnrollEnv() bool {
	val := os.Getenv(NoUnrollEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Info describes the host.
type Info struct {
	Arch     string
	NumCPU   int
	Features []string
	Unrolled bool
}

// Detect returns the host description.
func Detect() Info {
	return Info{
		Arch:     runtime.GOARCH,
		NumCPU:   runtime.NumCPU(),
		Features: features(),
		Unrolled: !NoUnrollEnv(),
	}
}

// String formats the description on one line.
func (i Info) String() string {
	f := "none"
	if len(i.Features) > 0 {
		f = strings.Join(i.Features, ",")
	}
	return i.Arch + " cpus=" + strconv.Itoa(i.NumCPU) + " features=" + f +
		" unrolled=" + strconv.FormatBool(i.Unrolled)
}
