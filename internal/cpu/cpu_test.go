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

package cpu

import (
	"runtime"
	"strings"
	"testing"
)

func TestNoUnrollEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv(NoUnrollEnvVar, tt.val)
		if got := NoUnrollEnv(); got != tt.want {
			t.Errorf("NoUnrollEnv() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	t.Setenv(NoUnrollEnvVar, "1")
	info := Detect()
	if info.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", info.Arch, runtime.GOARCH)
	}
	if info.NumCPU < 1 {
		t.Errorf("NumCPU = %d", info.NumCPU)
	}
	if info.Unrolled {
		t.Error("Unrolled should be false when VISION_NO_UNROLL is set")
	}
	if s := info.String(); !strings.Contains(s, "unrolled=false") {
		t.Errorf("String() = %q", s)
	}
}
