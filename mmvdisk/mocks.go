//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package mmvdisk

import (
	"context"
	"io"
	"strings"

	"github.com/scaleadm/pdiskctl/config"
	"github.com/scaleadm/pdiskctl/logging"
)

type (
	// MockRunCmdConfig alters mock runner behavior. Canned output is
	// keyed by the full command string.
	MockRunCmdConfig struct {
		LookPathErr  error
		RunCmdOut    map[string]string
		RunCmdStderr map[string]string
		RunCmdErr    map[string]error

		// Calls records every command string issued, in order.
		Calls []string
	}
)

// MockRunner returns a Runner whose command execution is satisfied
// from the supplied MockRunCmdConfig instead of a real mmvdisk binary.
func MockRunner(log logging.Logger, cfg *config.Config, mrc *MockRunCmdConfig, out io.Writer) *Runner {
	return &Runner{
		log: log,
		cfg: cfg,
		out: out,
		lookPath: func(string) (string, error) {
			return cfg.Tool, mrc.LookPathErr
		},
		runCmd: func(_ context.Context, bin string, args ...string) (*RunResult, error) {
			cmdStr := strings.Join(append([]string{bin}, args...), " ")
			mrc.Calls = append(mrc.Calls, cmdStr)

			return &RunResult{
				Stdout: mrc.RunCmdOut[cmdStr],
				Stderr: mrc.RunCmdStderr[cmdStr],
			}, mrc.RunCmdErr[cmdStr]
		},
	}
}
