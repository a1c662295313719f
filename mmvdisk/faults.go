//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package mmvdisk

import (
	"fmt"
	"strings"

	"github.com/scaleadm/pdiskctl/fault"
	"github.com/scaleadm/pdiskctl/fault/code"
)

// FaultToolNotFound indicates that the mmvdisk command could not be
// resolved.
func FaultToolNotFound(tool string) *fault.Fault {
	return mmvdiskFault(
		code.MissingSoftwareDependency,
		fmt.Sprintf("%s utility not found", tool),
		"verify the IBM Storage Scale installation on this node, or set the tool path in the configuration file",
	)
}

// FaultToolRunFailed indicates a process-level failure running the
// tool.
func FaultToolRunFailed(cmd string, err error) *fault.Fault {
	return mmvdiskFault(
		code.ToolRunFailed,
		fmt.Sprintf("command %q failed: %s", cmd, err), "",
	)
}

// FaultToolReported indicates that the tool wrote to stderr, which is
// always treated as fatal.
func FaultToolReported(cmd, stderr string) *fault.Fault {
	return mmvdiskFault(
		code.ToolReportedError,
		fmt.Sprintf("command %q reported: %s", cmd, strings.TrimSpace(stderr)), "",
	)
}

// FaultToolTimedOut indicates that the tool exceeded the configured
// invocation timeout.
func FaultToolTimedOut(cmd string, secs uint) *fault.Fault {
	return mmvdiskFault(
		code.ToolTimedOut,
		fmt.Sprintf("command %q did not complete within %d seconds", cmd, secs),
		"raise or clear tool_timeout_secs in the configuration file",
	)
}

// FaultListingMissingColumn indicates that the listing table header
// lacks an expected column.
func FaultListingMissingColumn(col string) *fault.Fault {
	return mmvdiskFault(
		code.ListingMissingColumn,
		fmt.Sprintf("pdisk listing has no %q column", col),
		"confirm the installed mmvdisk release still emits the standard listing layout",
	)
}

// FaultListingBadTable indicates that the listing text could not be
// parsed as a table at all.
func FaultListingBadTable(detail string) *fault.Fault {
	return mmvdiskFault(
		code.ListingBadTable,
		fmt.Sprintf("pdisk listing is not a parseable table: %s", detail),
		"inspect the captured listing file for unexpected output",
	)
}

// FaultDetailMissingField indicates that a pdisk long listing lacks a
// field required for reporting.
func FaultDetailMissingField(name string) *fault.Fault {
	return mmvdiskFault(
		code.DetailMissingField,
		fmt.Sprintf("pdisk detail output is missing the %q field", name), "",
	)
}

func mmvdiskFault(code code.Code, desc, res string) *fault.Fault {
	return &fault.Fault{
		Domain:      "mmvdisk",
		Code:        code,
		Description: desc,
		Resolution:  res,
	}
}
