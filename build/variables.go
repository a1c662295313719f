//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package build provides an importable repository of variables set at build time.
package build

var (
	// PdiskctlVersion should be set via linker flag using the value of PDISKCTL_VERSION.
	PdiskctlVersion string = "unset"
	// Revision should be set via linker flag using the VCS revision.
	Revision string = "unset"
	// ToolName defines a consistent name for the CLI helper.
	ToolName = "pdiskctl"

	// DefaultMmvdiskPath is the usual install location of the mmvdisk
	// command on a Storage Scale node.
	DefaultMmvdiskPath = "/usr/lpp/mmfs/bin/mmvdisk"
)
