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

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vision/internal/cpu"
)

func infoCmd(root *rootEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the platform and effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool := root.pool()
			defer pool.Close()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "platform:  %s\n", cpu.Detect())
			fmt.Fprintf(out, "workers:   %d\n", pool.NumWorkers())
			fmt.Fprintf(out, "unrolled:  %v\n", root.cfg.Unrolled)
			fmt.Fprintf(out, "log level: %s\n", root.cfg.Level())
			return nil
		},
	}
}
