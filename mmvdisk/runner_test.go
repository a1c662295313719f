//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package mmvdisk

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/scaleadm/pdiskctl/common/test"
	"github.com/scaleadm/pdiskctl/config"
	"github.com/scaleadm/pdiskctl/logging"
)

func testRunner(t *testing.T, mrc *MockRunCmdConfig) (*Runner, *logging.LogBuffer, *bytes.Buffer) {
	t.Helper()

	log, logBuf := logging.NewTestLogger(t.Name())
	cfg := config.DefaultConfig()
	cfg.Tool = "mmvdisk"
	cfg.WorkDir = t.TempDir()

	var out bytes.Buffer
	return MockRunner(log, cfg, mrc, &out), logBuf, &out
}

func exitError(t *testing.T) error {
	t.Helper()

	err := exec.Command("false").Run()
	if _, ok := err.(*exec.ExitError); !ok {
		t.Fatalf("expected ExitError from false(1), got %v", err)
	}
	return err
}

func TestMmvdisk_Capture(t *testing.T) {
	cmdNotOK := "mmvdisk pdisk list --rg all --not-ok"

	for name, tc := range map[string]struct {
		mrc    *MockRunCmdConfig
		expErr error
	}{
		"success": {
			mrc: &MockRunCmdConfig{
				RunCmdOut: map[string]string{cmdNotOK: testListing},
			},
		},
		"tool not found": {
			mrc:    &MockRunCmdConfig{LookPathErr: errors.New("no mmvdisk")},
			expErr: FaultToolNotFound("mmvdisk"),
		},
		"stderr output is fatal": {
			mrc: &MockRunCmdConfig{
				RunCmdStderr: map[string]string{cmdNotOK: "mmvdisk: rg manager not active\n"},
			},
			expErr: FaultToolReported(cmdNotOK, "mmvdisk: rg manager not active"),
		},
		"run failure is fatal": {
			mrc: &MockRunCmdConfig{
				RunCmdErr: map[string]error{cmdNotOK: errors.New("fork failed")},
			},
			expErr: FaultToolRunFailed(cmdNotOK, errors.New("fork failed")),
		},
	} {
		t.Run(name, func(t *testing.T) {
			runner, _, out := testRunner(t, tc.mrc)
			outFile := filepath.Join(runner.cfg.WorkDir, FileNotOK)

			gotCmd, gotErr := runner.Capture(context.Background(),
				argsListNotOK, outFile, "Disk not ok")
			test.CmpErr(t, tc.expErr, gotErr)
			if tc.expErr != nil {
				if _, err := os.Stat(outFile); !os.IsNotExist(err) {
					t.Fatal("capture file should not exist after failure")
				}
				return
			}

			test.AssertEqual(t, cmdNotOK, gotCmd, "unexpected command string")

			// banner shows the command and its description
			if !strings.Contains(out.String(), cmdNotOK) ||
				!strings.Contains(out.String(), "Disk not ok") {
				t.Fatalf("banner missing from output: %q", out.String())
			}

			captured, err := os.ReadFile(outFile)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(testListing, string(captured)); diff != "" {
				t.Fatalf("unexpected capture (-want, +got):\n%s\n", diff)
			}
		})
	}
}

func TestMmvdisk_Capture_ExitErrorIsFatal(t *testing.T) {
	cmdNotOK := "mmvdisk pdisk list --rg all --not-ok"
	runner, _, _ := testRunner(t, &MockRunCmdConfig{
		RunCmdErr: map[string]error{cmdNotOK: exitError(t)},
	})

	_, gotErr := runner.Capture(context.Background(), argsListNotOK,
		filepath.Join(runner.cfg.WorkDir, FileNotOK), "Disk not ok")
	test.CmpErr(t, FaultToolRunFailed(cmdNotOK, exitError(t)), gotErr)
}

func TestMmvdisk_Output_ToleratesExitError(t *testing.T) {
	cmdReplace := "mmvdisk pdisk replace --recovery-group rg_ess01a --pdisk e1d1s01"
	runner, _, _ := testRunner(t, &MockRunCmdConfig{
		RunCmdOut: map[string]string{cmdReplace: "mmvdisk: carrier released\n"},
		RunCmdErr: map[string]error{cmdReplace: exitError(t)},
	})

	gotOut, gotCmd, gotErr := runner.Output(context.Background(),
		replaceArgs("rg_ess01a", "e1d1s01"))
	if gotErr != nil {
		t.Fatalf("non-zero tool exit should not be fatal for actions: %s", gotErr)
	}
	test.AssertEqual(t, cmdReplace, gotCmd, "unexpected command string")
	test.AssertEqual(t, "mmvdisk: carrier released\n", gotOut, "unexpected output")
}

func TestMmvdisk_InvokeTimeout(t *testing.T) {
	log, _ := logging.NewTestLogger(t.Name())
	cfg := config.DefaultConfig()
	cfg.Tool = "mmvdisk"
	cfg.ToolTimeoutSecs = 1

	runner := &Runner{
		log: log,
		cfg: cfg,
		out: &bytes.Buffer{},
		lookPath: func(string) (string, error) {
			return cfg.Tool, nil
		},
		runCmd: func(ctx context.Context, _ string, _ ...string) (*RunResult, error) {
			<-ctx.Done()
			return &RunResult{}, ctx.Err()
		},
	}

	_, _, gotErr := runner.Output(context.Background(),
		prepareArgs("rg_ess01a", "e1d1s01"))
	test.CmpErr(t, FaultToolTimedOut(
		"mmvdisk pdisk replace --prepare --rg rg_ess01a --pdisk e1d1s01", 1), gotErr)
}
