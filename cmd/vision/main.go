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

// Command vision runs the convolution and block matching core on image
// files.
//
// Usage:
//
//	vision blur --input in.png --output out.png --sigma 2
//	vision disparity --left l.png --right r.png --output d.png --range 64
//	vision pyramid --input in.png --output-dir levels/
//	vision info
//	vision bench --size 1024
//
// Settings are read from the YAML file named by --config and overridden by
// flags.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vision/config"
	"github.com/ajroetker/go-vision/convolve"
	"github.com/ajroetker/go-vision/internal/workerpool"
)

// rootEnv holds the settings shared by every sub-command.
type rootEnv struct {
	configFile string
	logLevel   string
	workers    int
	noUnroll   bool

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	env := &rootEnv{}
	cmd := &cobra.Command{
		Use:           "vision",
		Short:         "Convolution and stereo block matching on image files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return env.setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&env.configFile, "config", "vision.yaml", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&env.logLevel, "log-level", "", "debug, info, warn or error")
	cmd.PersistentFlags().IntVar(&env.workers, "workers", -1, "worker pool size, 0 for GOMAXPROCS, 1 to disable")
	cmd.PersistentFlags().BoolVar(&env.noUnroll, "no-unroll", false, "use the generic convolution loops")

	cmd.AddCommand(
		blurCmd(env),
		disparityCmd(env),
		pyramidCmd(env),
		infoCmd(env),
		benchCmd(env),
	)
	return cmd
}

// setup loads the configuration and applies the persistent flags.
func (r *rootEnv) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(r.configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = r.logLevel
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = r.workers
	}
	if r.noUnroll {
		cfg.Unrolled = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	r.cfg = cfg
	r.logger = NewLogger(cfg.Level())
	return nil
}

// pool returns the configured worker pool, or nil when it is disabled. The
// caller closes it.
func (r *rootEnv) pool() *workerpool.Pool {
	if r.cfg.Workers == 1 {
		return nil
	}
	return workerpool.New(r.cfg.Workers)
}

// engineOptions returns the convolution options of the configuration.
func (r *rootEnv) engineOptions(pool *workerpool.Pool) []convolve.Option {
	return []convolve.Option{convolve.WithPool(pool), convolve.WithUnrolled(r.cfg.Unrolled)}
}
