//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package code is a central repository for all pdiskctl fault codes.
package code

// Code represents a stable fault code.
//
// NB: New codes should always be added at the bottom of their
// respective blocks. This ensures stability of fault codes over time.
type Code int

const (
	// general fault codes
	Unknown Code = iota
	MissingSoftwareDependency
)

const (
	// external tool (mmvdisk) fault codes
	ToolUnknown Code = iota + 100
	ToolRunFailed
	ToolReportedError
	ToolTimedOut
)

const (
	// tool output parsing fault codes
	ListingUnknown Code = iota + 200
	ListingMissingColumn
	ListingBadTable
	DetailMissingField
)

const (
	// notification fault codes
	NotifyUnknown Code = iota + 300
	NotifySendFailed
	NotifyBadRecipient
)

const (
	// configuration fault codes
	ConfigUnknown Code = iota + 400
	ConfigBadSyntax
	ConfigBadWorkDir
)
