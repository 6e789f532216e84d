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

//go:build arm64

package cpu

import "golang.org/x/sys/cpu"

func features() []string {
	var f []string
	// ASIMD is part of ARMv8-A, checked for consistency.
	if cpu.ARM64.HasASIMD {
		f = append(f, "neon")
	}
	if cpu.ARM64.HasASIMDHP {
		f = append(f, "fp16")
	}
	if cpu.ARM64.HasSVE {
		f = append(f, "sve")
	}
	return f
}
