//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package logging_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/scaleadm/pdiskctl/logging"
)

func TestLogging_Levels(t *testing.T) {
	log, buf := logging.NewTestLogger("test")

	log.SetLevel(logging.LogLevelError)
	log.Debug("quiet")
	log.Info("quiet")
	log.Error("loud")

	got := buf.String()
	if strings.Contains(got, "quiet") {
		t.Fatalf("unexpected sub-threshold output: %q", got)
	}
	if !strings.Contains(got, "loud") {
		t.Fatalf("missing error output: %q", got)
	}

	buf.Reset()
	log.SetLevel(logging.LogLevelDebug)
	log.Debugf("formatted %d", 42)
	if !strings.Contains(buf.String(), "formatted 42") {
		t.Fatalf("missing debug output: %q", buf.String())
	}
}

func TestLogging_SetStringLevel(t *testing.T) {
	var level logging.LogLevel

	for in, exp := range map[string]logging.LogLevel{
		"debug":    logging.LogLevelDebug,
		"INFO":     logging.LogLevelInfo,
		"Error":    logging.LogLevelError,
		"disabled": logging.LogLevelDisabled,
	} {
		if err := level.SetString(in); err != nil {
			t.Fatalf("SetString(%q): %s", in, err)
		}
		if level.Get() != exp {
			t.Fatalf("SetString(%q) = %s, want %s", in, level.Get(), exp)
		}
	}

	if err := level.SetString("noisy"); err == nil {
		t.Fatal("expected error for bogus level string")
	}
}

func TestLogging_FileLoggerFormat(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs.log")

	log, err := logging.NewCombinedLogger("", new(logging.LogBuffer)).
		WithLogFile(logPath)
	if err != nil {
		t.Fatal(err)
	}

	log.Info("first message")
	log.Error("second message")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 logfile lines, got %d: %q", len(lines), string(data))
	}

	// message, two spaces, timestamp
	lineRe := regexp.MustCompile(`^(first|second) message  \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	for _, line := range lines {
		if !lineRe.MatchString(line) {
			t.Fatalf("logfile line %q does not match layout", line)
		}
	}
}

func TestLogging_FileLoggerAppends(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs.log")

	for i := 0; i < 2; i++ {
		log, err := logging.NewCombinedLogger("", new(logging.LogBuffer)).
			WithLogFile(logPath)
		if err != nil {
			t.Fatal(err)
		}
		log.Info("run marker")
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "run marker"); got != 2 {
		t.Fatalf("expected 2 appended markers, got %d", got)
	}
}
