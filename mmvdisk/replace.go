//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package mmvdisk

import (
	"context"
	"strings"
)

// Success/failure phrases in mmvdisk's free-text action output. Phrase
// matching lives only in the interpret functions below so a wording
// change in a future mmvdisk release is a one-line update.
const (
	phrasePrepareDone = "Reinsert carrier."
	phraseNotReplaced = "not physically replaced with a new disk."
)

func interpretPrepareOutput(out string) ActionOutcome {
	if strings.Contains(out, phrasePrepareDone) {
		return OutcomeSuccess
	}
	if strings.TrimSpace(out) == "" {
		return OutcomeUnknown
	}
	return OutcomeFailure
}

func interpretReplaceOutput(out string) ActionOutcome {
	if strings.Contains(out, phraseNotReplaced) {
		return OutcomeFailure
	}
	if strings.TrimSpace(out) == "" {
		return OutcomeUnknown
	}
	return OutcomeSuccess
}

// PrepareReplace runs the prepare-for-replace workflow for one pdisk.
// The outcome is classified from the tool output; a failed preparation
// is logged but not fatal, so remaining disks are still processed.
func (r *Runner) PrepareReplace(ctx context.Context, row DiskRow) (*ActionRecord, error) {
	out, cmdStr, err := r.Output(ctx, prepareArgs(row.RecoveryGroup, row.Pdisk))
	if err != nil {
		return nil, err
	}

	rec := &ActionRecord{Cmd: cmdStr, Outcome: interpretPrepareOutput(out)}
	if rec.Outcome == OutcomeSuccess {
		r.log.Infof("Successfully prepared pdisk for replace!\n Command: %s --> OUTPUT: %s",
			cmdStr, out)
	} else {
		r.log.Infof("Failed preparing pdisk for replace!\n Command: %s --> OUTPUT: %s",
			cmdStr, out)
	}

	return rec, nil
}

// Replace runs the physical-replace workflow for one pdisk. mmvdisk
// reports an un-replaced carrier on stdout; that is classified as a
// non-fatal failure and the run continues.
func (r *Runner) Replace(ctx context.Context, row DiskRow) (*ActionRecord, error) {
	out, cmdStr, err := r.Output(ctx, replaceArgs(row.RecoveryGroup, row.Pdisk))
	if err != nil {
		return nil, err
	}

	rec := &ActionRecord{Cmd: cmdStr, Outcome: interpretReplaceOutput(out)}
	if rec.Outcome == OutcomeFailure {
		r.log.Infof("Failed replacing pdisk! Command: %s --> Error: %s", cmdStr, out)
	} else {
		r.log.Infof("Replacing pdisk! Command: %s --> OUTPUT: %s", cmdStr, out)
	}

	return rec, nil
}

// DispatchReplacements walks every non-divider row through the prepare
// or replace workflow and returns the audit record of every command
// issued. Per-disk workflow failures do not stop the loop; only a tool
// invocation failure is fatal.
func (r *Runner) DispatchReplacements(ctx context.Context, rows []DiskRow, prepare bool) ([]ActionRecord, error) {
	var records []ActionRecord
	for _, row := range rows {
		if row.IsDivider() {
			continue
		}

		var rec *ActionRecord
		var err error
		if prepare {
			rec, err = r.PrepareReplace(ctx, row)
		} else {
			rec, err = r.Replace(ctx, row)
		}
		if err != nil {
			return records, err
		}
		records = append(records, *rec)
	}

	return records, nil
}
