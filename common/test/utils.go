//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package test provides shared helpers for unit tests.
package test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual asserts that want and got compare equal, failing the
// test with a diff and the supplied message otherwise.
func AssertEqual(t *testing.T, want, got interface{}, message string) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("%s (-want, +got):\n%s\n", message, diff)
	}
}

// AssertTrue asserts b is true.
func AssertTrue(t *testing.T, b bool, message string) {
	t.Helper()

	if !b {
		t.Fatal(message)
	}
}

// AssertFalse asserts b is false.
func AssertFalse(t *testing.T, b bool, message string) {
	t.Helper()

	if b {
		t.Fatal(message)
	}
}

// CmpErr compares two errors. Equality requires that both are nil, or
// that the actual error string contains the expected error string.
func CmpErr(t *testing.T, want, got error) {
	t.Helper()

	if want == got {
		return
	}
	if want == nil {
		t.Fatalf("unexpected error: %v", got)
	}
	if got == nil {
		t.Fatalf("expected error %q, got nil", want.Error())
	}
	if !strings.Contains(got.Error(), want.Error()) {
		t.Fatalf("unexpected error\n  got: %s\n  want: %s", got.Error(), want.Error())
	}
}
