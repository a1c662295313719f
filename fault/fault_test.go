//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package fault_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/scaleadm/pdiskctl/fault"
	"github.com/scaleadm/pdiskctl/fault/code"
)

func TestFault_Error(t *testing.T) {
	for name, tc := range map[string]struct {
		testErr     error
		expFaultStr string
		expFaultRes string
		expNotFault bool
	}{
		"nil error": {
			expFaultRes: `unknown: code = 0 resolution = "no known resolution"`,
		},
		"normal error": {
			testErr:     errors.New("not a fault"),
			expFaultStr: "not a fault",
			expNotFault: true,
			expFaultRes: `unknown: code = 0 resolution = "no known resolution"`,
		},
		"empty fault": {
			testErr:     &fault.Fault{},
			expFaultStr: fault.UnknownFault.Error(),
			expFaultRes: `unknown: code = 0 resolution = "no known resolution"`,
		},
		"fault without domain": {
			testErr: &fault.Fault{
				Code:        code.ToolRunFailed,
				Description: "the tool fell over",
				Resolution:  "stand it back up",
			},
			expFaultStr: `unknown: code = 101 description = "the tool fell over"`,
			expFaultRes: `unknown: code = 101 resolution = "stand it back up"`,
		},
		"fault": {
			testErr: &fault.Fault{
				Domain:      "mmvdisk",
				Code:        code.ToolReportedError,
				Description: "the tool fell over",
				Resolution:  "stand it back up",
			},
			expFaultStr: `mmvdisk: code = 102 description = "the tool fell over"`,
			expFaultRes: `mmvdisk: code = 102 resolution = "stand it back up"`,
		},
		"wrapped fault": {
			testErr: errors.Wrap(&fault.Fault{
				Domain:      "notify",
				Code:        code.NotifySendFailed,
				Description: "delivery refused",
				Resolution:  "check the smtp settings",
			}, "sending summary"),
			expFaultStr: "sending summary: " +
				`notify: code = 301 description = "delivery refused"`,
			expFaultRes: `notify: code = 301 resolution = "check the smtp settings"`,
		},
		"domain with spaces": {
			testErr: &fault.Fault{
				Domain:      "disk tool",
				Code:        code.ToolRunFailed,
				Description: "the tool fell over",
			},
			expFaultStr: `disk_tool: code = 101 description = "the tool fell over"`,
			expFaultRes: `disk_tool: code = 101 resolution = "no known resolution"`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			if tc.testErr != nil {
				if tc.testErr.Error() != tc.expFaultStr {
					t.Fatalf("expected %q, got %q", tc.expFaultStr, tc.testErr.Error())
				}
				if fault.IsFault(tc.testErr) == tc.expNotFault {
					t.Fatalf("IsFault(%v) should be %t", tc.testErr, !tc.expNotFault)
				}
			}

			if gotRes := fault.ShowResolutionFor(tc.testErr); gotRes != tc.expFaultRes {
				t.Fatalf("expected %q, got %q", tc.expFaultRes, gotRes)
			}
		})
	}
}

func TestFault_HasResolution(t *testing.T) {
	resolved := &fault.Fault{Domain: "test", Resolution: "do the thing"}
	if !fault.HasResolution(resolved) {
		t.Fatal("expected fault with resolution to have one")
	}
	if !fault.HasResolution(errors.Wrap(resolved, "outer context")) {
		t.Fatal("expected wrapped fault to retain its resolution")
	}
	if fault.HasResolution(&fault.Fault{Domain: "test"}) {
		t.Fatal("expected fault without resolution to have none")
	}
	if fault.HasResolution(errors.New("plain")) {
		t.Fatal("expected plain error to have no resolution")
	}
}

func TestFault_Equals(t *testing.T) {
	a := &fault.Fault{Domain: "one", Code: code.ListingBadTable}
	b := &fault.Fault{Domain: "two", Code: code.ListingBadTable}
	if !a.Equals(errors.Wrap(b, "wrapped")) {
		t.Fatal("expected faults with matching codes to be equal")
	}
	if a.Equals(&fault.Fault{Code: code.ListingMissingColumn}) {
		t.Fatal("expected faults with different codes to be unequal")
	}
	if a.Equals(errors.New("not a fault")) {
		t.Fatal("expected non-fault to be unequal")
	}
}
