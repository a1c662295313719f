//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package mmvdisk drives the mmvdisk disk-management command to find
// pdisks in not-ok or replace-pending states and walk them through the
// prepare/replace workflow. mmvdisk itself is an opaque collaborator:
// it is invoked with an argument vector and its human-readable text
// output is captured and interpreted.
package mmvdisk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/scaleadm/pdiskctl/config"
	"github.com/scaleadm/pdiskctl/lib/txtfmt"
	"github.com/scaleadm/pdiskctl/logging"
)

// Working artifacts regenerated on each invocation.
const (
	FileNotOK   = "not_ok_pdisk.txt"
	FileReplace = "replace_pdisk.txt"
	FileReport  = "disk_health_result.txt"
)

var (
	argsListNotOK   = []string{"pdisk", "list", "--rg", "all", "--not-ok"}
	argsListReplace = []string{"pdisk", "list", "--rg", "all", "--replace"}
)

func listDetailArgs(rg, pdisk string) []string {
	return []string{"pdisk", "list", "--rg", rg, "--pdisk", pdisk, "-L"}
}

func prepareArgs(rg, pdisk string) []string {
	return []string{"pdisk", "replace", "--prepare", "--rg", rg, "--pdisk", pdisk}
}

func replaceArgs(rg, pdisk string) []string {
	return []string{"pdisk", "replace", "--recovery-group", rg, "--pdisk", pdisk}
}

type (
	// RunResult holds the separately captured output streams of one
	// tool invocation.
	RunResult struct {
		Stdout string
		Stderr string
	}

	runCmdFn   func(ctx context.Context, bin string, args ...string) (*RunResult, error)
	lookPathFn func(string) (string, error)

	// Runner invokes mmvdisk and interprets its output. Command
	// execution is injected so tests can substitute canned output.
	Runner struct {
		log      logging.Logger
		cfg      *config.Config
		out      io.Writer
		runCmd   runCmdFn
		lookPath lookPathFn
	}
)

// NewRunner returns a Runner using the real mmvdisk binary from the
// supplied configuration, printing operator output to out.
func NewRunner(log logging.Logger, cfg *config.Config, out io.Writer) *Runner {
	return &Runner{
		log:      log,
		cfg:      cfg,
		out:      out,
		runCmd:   run,
		lookPath: exec.LookPath,
	}
}

func run(ctx context.Context, bin string, args ...string) (*RunResult, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return &RunResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}, err
}

func (r *Runner) cmdString(args []string) string {
	return strings.Join(append([]string{r.cfg.Tool}, args...), " ")
}

func (r *Runner) cmdContext(parent context.Context) (context.Context, context.CancelFunc) {
	if r.cfg.ToolTimeoutSecs > 0 {
		return context.WithTimeout(parent,
			time.Duration(r.cfg.ToolTimeoutSecs)*time.Second)
	}
	return context.WithCancel(parent)
}

// Capture invokes the tool with the given arguments, prints a
// command/description banner for operator visibility, and writes the
// captured stdout verbatim to outFile, overwriting prior content. Any
// stderr output, a missing binary, or a process-level failure is
// fatal.
func (r *Runner) Capture(ctx context.Context, args []string, outFile, desc string) (string, error) {
	if _, err := r.lookPath(r.cfg.Tool); err != nil {
		return "", FaultToolNotFound(r.cfg.Tool)
	}

	cmdStr := r.cmdString(args)

	banner := txtfmt.NewTableFormatter("Command: ", cmdStr)
	fmt.Fprint(r.out, banner.Format([]txtfmt.TableRow{
		{"Command: ": " ", cmdStr: desc},
	}))

	res, err := r.invoke(ctx, args, cmdStr)
	if err != nil {
		if _, exited := errors.Cause(err).(*exec.ExitError); exited {
			err = FaultToolRunFailed(cmdStr, err)
		}
		return "", err
	}
	if res.Stderr != "" {
		return "", FaultToolReported(cmdStr, res.Stderr)
	}

	fmt.Fprintln(r.out, res.Stdout)

	if err := os.WriteFile(outFile, []byte(res.Stdout), 0644); err != nil {
		return "", errors.Wrapf(err, "writing captured output to %s", outFile)
	}

	return cmdStr, nil
}

// CaptureNotOK captures the cluster-wide not-ok pdisk listing into
// outFile and returns the command string that produced it.
func (r *Runner) CaptureNotOK(ctx context.Context, outFile string) (string, error) {
	return r.Capture(ctx, argsListNotOK, outFile, "Disk not ok")
}

// CaptureReplace captures the cluster-wide replace-pending pdisk
// listing into outFile and returns the command string that produced it.
func (r *Runner) CaptureReplace(ctx context.Context, outFile string) (string, error) {
	return r.Capture(ctx, argsListReplace, outFile, "List of replace disks")
}

// Output invokes the tool for a per-disk action or long listing and
// returns captured stdout along with the command string. A non-zero
// exit is not fatal here: action outcomes are classified from the
// output text, and mmvdisk reports workflow failures on stdout.
func (r *Runner) Output(ctx context.Context, args []string) (string, string, error) {
	cmdStr := r.cmdString(args)

	res, err := r.invoke(ctx, args, cmdStr)
	if err != nil {
		if _, exited := errors.Cause(err).(*exec.ExitError); !exited {
			return "", cmdStr, err
		}
	}

	return res.Stdout, cmdStr, nil
}

func (r *Runner) invoke(parent context.Context, args []string, cmdStr string) (*RunResult, error) {
	ctx, cancel := r.cmdContext(parent)
	defer cancel()

	res, err := r.runCmd(ctx, r.cfg.Tool, args...)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return res, FaultToolTimedOut(cmdStr, r.cfg.ToolTimeoutSecs)
		}
		if _, exited := err.(*exec.ExitError); exited {
			return res, err
		}
		return res, FaultToolRunFailed(cmdStr, err)
	}

	return res, nil
}
