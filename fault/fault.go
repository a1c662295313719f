//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package fault provides an error type which carries a stable code,
// a description, and an optional operator-facing resolution.
package fault

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/scaleadm/pdiskctl/fault/code"
)

const (
	unknownDomainStr  = "unknown"
	defaultResolution = "no known resolution"
)

// UnknownFault represents an unknown error.
var UnknownFault = &Fault{Code: code.Unknown}

// Fault represents a well-known error with a stable code and an
// optional resolution hint for the operator.
type Fault struct {
	Domain      string    `json:"domain"`
	Code        code.Code `json:"code"`
	Description string    `json:"description"`
	Resolution  string    `json:"resolution"`
}

func (f *Fault) Error() string {
	msg := fmt.Sprintf("%s: code = %d", sanitizeDomain(f.Domain), f.Code)
	if f.Description != "" {
		msg = fmt.Sprintf("%s description = %q", msg, f.Description)
	}
	return msg
}

// Equals attempts to compare the given error to this one. If they both
// resolve to the same fault code, then they are considered equal.
func (f *Fault) Equals(raw error) bool {
	other, ok := errors.Cause(raw).(*Fault)
	if !ok {
		return false
	}
	return f.Code == other.Code
}

func sanitizeDomain(domain string) string {
	if domain == "" {
		return unknownDomainStr
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', ':':
			return '_'
		}
		return r
	}, domain)
}

// IsFault indicates whether the error is a Fault.
func IsFault(raw error) bool {
	_, ok := errors.Cause(raw).(*Fault)
	return ok
}

// HasResolution indicates whether the error has a resolution defined.
func HasResolution(raw error) bool {
	f, ok := errors.Cause(raw).(*Fault)
	return ok && f.Resolution != ""
}

// ShowResolutionFor returns the resolution string for the given error,
// or a default resolution if the error is not a Fault or does not
// define one.
func ShowResolutionFor(raw error) string {
	f, ok := errors.Cause(raw).(*Fault)
	if !ok {
		f = UnknownFault
	}

	resolution := f.Resolution
	if resolution == "" {
		resolution = defaultResolution
	}
	return fmt.Sprintf("%s: code = %d resolution = %q",
		sanitizeDomain(f.Domain), f.Code, resolution)
}
