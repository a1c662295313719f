//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package mmvdisk

import (
	"fmt"
	"strings"
)

type (
	// DiskRow identifies one pdisk entry in a listing: the recovery
	// group it belongs to and the pdisk name. Divider artifacts from
	// the text table are carried through and must be skipped by
	// consumers.
	DiskRow struct {
		RecoveryGroup string `json:"recovery_group"`
		Pdisk         string `json:"pdisk"`
	}

	// DiskDetail is the parsed key/value long listing for a single
	// pdisk. Any key present in the tool output is retained; values
	// are ints where they coerce, strings otherwise.
	DiskDetail map[string]interface{}

	// ActionOutcome classifies the result of a prepare or replace
	// action from the tool's free-text output.
	ActionOutcome int

	// ActionRecord captures one issued (or would-be issued) action
	// command and its classified outcome, for audit logging.
	ActionRecord struct {
		Cmd     string
		Outcome ActionOutcome
	}
)

const (
	// OutcomeUnknown means the output matched no known phrase.
	OutcomeUnknown ActionOutcome = iota
	// OutcomeSuccess means the action completed as expected.
	OutcomeSuccess
	// OutcomeFailure means the action did not complete.
	OutcomeFailure
)

func (o ActionOutcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// dividerMark is the run of dashes mmvdisk prints between the listing
// header and its rows.
const dividerMark = "--------"

// IsDivider reports whether the row is a separator artifact from the
// text table rather than a real pdisk entry.
func (r DiskRow) IsDivider() bool {
	return strings.Contains(r.RecoveryGroup, dividerMark) ||
		strings.Contains(r.Pdisk, dividerMark)
}

// Field returns the named detail field rendered as a string, failing
// with a labeled fault when the tool output did not include it.
func (d DiskDetail) Field(name string) (string, error) {
	v, ok := d[name]
	if !ok {
		return "", FaultDetailMissingField(name)
	}
	return fmt.Sprintf("%v", v), nil
}
