//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const logFileTimeFormat = "2006-01-02 15:04:05"

// AppendFile opens the named file in append mode, creating it if
// necessary.
func AppendFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0664)
}

// FileLogger emits messages in the tool's logfile layout: the message
// followed by two spaces and a timestamp. It satisfies the Debug, Info
// and Error logger interfaces so that a single instance can be added
// at every level.
type FileLogger struct {
	mu   sync.Mutex
	dest io.Writer
}

// NewFileLogger returns a FileLogger emitting to the supplied writer.
func NewFileLogger(dest io.Writer) *FileLogger {
	return &FileLogger{dest: dest}
}

func (l *FileLogger) output(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := time.Now().Format(logFileTimeFormat)
	if _, err := fmt.Fprintf(l.dest, "%s  %s\n", msg, ts); err != nil {
		fmt.Fprintf(os.Stderr, "logfile write failed: %s\n", err)
	}
}

// Debugf emits a formatted debug message.
func (l *FileLogger) Debugf(format string, args ...interface{}) {
	l.output(fmt.Sprintf(format, args...))
}

// Infof emits a formatted informational message.
func (l *FileLogger) Infof(format string, args ...interface{}) {
	l.output(fmt.Sprintf(format, args...))
}

// Errorf emits a formatted error message.
func (l *FileLogger) Errorf(format string, args ...interface{}) {
	l.output(fmt.Sprintf(format, args...))
}

// WithLogFile adds the named append-mode file as an additional info
// and error destination as part of a chained method call.
func (ll *LeveledLogger) WithLogFile(path string) (*LeveledLogger, error) {
	f, err := AppendFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening logfile %s", path)
	}

	fl := NewFileLogger(f)
	return ll.WithInfoLogger(fl).WithErrorLogger(fl), nil
}
