//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package mmvdisk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/scaleadm/pdiskctl/lib/txtfmt"
)

// Report table columns, in render order, with the detail fields that
// back them.
var (
	fullColumns  = []string{"Name", "RecoveryGroup", "state", "location", "hardware", "User location", "Server"}
	shortColumns = []string{"Name", "RecoveryGroup", "state", "location", "Server"}

	columnFields = map[string]string{
		"Name":          "name",
		"RecoveryGroup": "recoveryGroup",
		"state":         "state",
		"location":      "location",
		"hardware":      "hardware",
		"User location": "userLocation",
		"Server":        "server",
	}
)

// Summarize fetches and parses the long listing for every non-divider
// row, prints a titled table of the results, and returns the
// accumulated details for downstream use (the JSON report and the
// notification body).
func (r *Runner) Summarize(ctx context.Context, rows []DiskRow, title string) ([]DiskDetail, error) {
	var details []DiskDetail
	for _, row := range rows {
		if row.IsDivider() {
			continue
		}

		out, cmdStr, err := r.Output(ctx, listDetailArgs(row.RecoveryGroup, row.Pdisk))
		if err != nil {
			return nil, err
		}

		detail := parseKeyValue(out)
		if capacity, ok := detail["capacity"].(int); ok && capacity > 0 {
			r.log.Debugf("%s: pdisk %s/%s capacity %s", cmdStr,
				row.RecoveryGroup, row.Pdisk, humanize.IBytes(uint64(capacity)))
		}
		details = append(details, detail)
	}

	table, err := formatDetails(details, fullColumns)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(r.out, title)
	fmt.Fprint(r.out, table)

	return details, nil
}

func formatDetails(details []DiskDetail, cols []string) (string, error) {
	formatter := txtfmt.NewTableFormatter(cols...)

	var table []txtfmt.TableRow
	for _, detail := range details {
		row := txtfmt.TableRow{}
		for _, col := range cols {
			val, err := detail.Field(columnFields[col])
			if err != nil {
				return "", err
			}
			row[col] = val
		}
		table = append(table, row)
	}

	return formatter.Format(table), nil
}

// WriteReport serializes the accumulated details to a pretty-printed
// JSON file, overwriting any prior report, then re-reads the file and
// renders it as a console table. Short mode drops the hardware and
// user-location columns.
func WriteReport(out io.Writer, path string, details []DiskDetail, short bool) error {
	if details == nil {
		details = []DiskDetail{}
	}

	data, err := json.MarshalIndent(details, "", "    ")
	if err != nil {
		return errors.Wrap(err, "marshaling disk report")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing disk report %s", path)
	}

	reread, err := readReport(path)
	if err != nil {
		return err
	}

	cols := fullColumns
	if short {
		cols = shortColumns
	}
	table, err := formatDetails(reread, cols)
	if err != nil {
		return err
	}
	fmt.Fprint(out, table)

	return nil
}

func readReport(path string) ([]DiskDetail, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading disk report %s", path)
	}

	// json.Number keeps large values rendering as written
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var details []DiskDetail
	if err := dec.Decode(&details); err != nil {
		return nil, errors.Wrapf(err, "parsing disk report %s", path)
	}

	return details, nil
}
