//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package mmvdisk

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// Terminal-good phrases: when either appears in a listing there is
	// nothing to do and the run ends successfully.
	msgAllOK       = "All pdisks are ok."
	msgNoneFlagged = "No pdisks are marked for replacement."

	// Boilerplate stripped from listings before table parsing.
	noiseDeclustered = "declustered"
	noisePriority    = "mmvdisk: A lower priority value means a higher need for replacement."

	colRecoveryGroup = "recovery group"
	colPdisk         = "pdisk"

	// Suffix of the cleaned copy written next to the raw capture. The
	// raw file is kept for diagnosis of parse failures.
	cleanSuffix = ".clean"
)

var (
	// ErrAllPdisksOK is returned by ParseListing when the tool reports
	// every pdisk healthy. Not a failure.
	ErrAllPdisksOK = errors.New("all pdisks are ok")
	// ErrNoneFlagged is returned by ParseListing when no pdisks are
	// marked for replacement. Not a failure.
	ErrNoneFlagged = errors.New("no pdisks are marked for replacement")
)

// Listing columns are separated by runs of two or more spaces.
var columnSepRE = regexp.MustCompile(`\s{2,}`)

// ParseListing reads a captured pdisk listing, strips known
// boilerplate, and returns the recovery group/pdisk pairs in row
// order. Divider artifacts are returned as rows; consumers skip them
// via DiskRow.IsDivider. A cleaned copy of the text is written beside
// the raw capture.
func ParseListing(path string) ([]DiskRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading listing %s", path)
	}
	contents := string(data)

	if strings.Contains(contents, msgAllOK) {
		return nil, ErrAllPdisksOK
	}
	if strings.Contains(contents, msgNoneFlagged) {
		return nil, ErrNoneFlagged
	}

	contents = strings.ReplaceAll(contents, noiseDeclustered, "")
	contents = strings.ReplaceAll(contents, noisePriority, "")

	if err := os.WriteFile(path+cleanSuffix, []byte(contents), 0644); err != nil {
		return nil, errors.Wrapf(err, "writing cleaned listing %s", path+cleanSuffix)
	}

	return parseListingTable(contents)
}

func parseListingTable(text string) ([]DiskRow, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, FaultListingBadTable("no header row")
	}

	header := splitColumns(lines[0])
	rgIdx, pdIdx := -1, -1
	for i, col := range header {
		switch col {
		case colRecoveryGroup:
			rgIdx = i
		case colPdisk:
			pdIdx = i
		}
	}
	if rgIdx < 0 {
		return nil, FaultListingMissingColumn(colRecoveryGroup)
	}
	if pdIdx < 0 {
		return nil, FaultListingMissingColumn(colPdisk)
	}

	var rows []DiskRow
	for _, line := range lines[1:] {
		fields := splitColumns(line)
		if len(fields) <= rgIdx || len(fields) <= pdIdx {
			continue
		}
		rows = append(rows, DiskRow{
			RecoveryGroup: fields[rgIdx],
			Pdisk:         fields[pdIdx],
		})
	}

	return rows, nil
}

func splitColumns(line string) []string {
	return columnSepRE.Split(strings.TrimSpace(line), -1)
}

// parseKeyValue converts the tool's long-listing "key = value" output
// into a DiskDetail. A leading "pdisk:" label is discarded; blank
// lines and lines without an "=" are skipped; values that parse as
// integers are coerced, and one pair of enclosing double quotes is
// stripped from string values.
func parseKeyValue(text string) DiskDetail {
	text = strings.ReplaceAll(text, "pdisk:", "")

	detail := make(DiskDetail)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.Contains(line, "=") {
			continue
		}

		kv := strings.SplitN(line, "=", 2)
		key := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])

		if n, err := strconv.Atoi(val); err == nil {
			detail[key] = n
			continue
		}
		if len(val) >= 2 && strings.HasPrefix(val, `"`) && strings.HasSuffix(val, `"`) {
			val = val[1 : len(val)-1]
		}
		detail[key] = val
	}

	return detail
}
