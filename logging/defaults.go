//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package logging

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

const (
	// DefaultLogLevel is the level at or above which messages are
	// emitted unless otherwise configured.
	DefaultLogLevel = LogLevelInfo

	logOutputDepth = 3
	emptyLogFlags  = 0
	debugLogFlags  = log.Lmicroseconds | log.Lshortfile
	errorLogFlags  = emptyLogFlags
	infoLogFlags   = emptyLogFlags
)

// NewCommandLineLogger returns a logger configured to send non-error
// output to stdout and error output to stderr. The output format is
// suitable for command line utilities which don't want output to
// include timestamps and filenames.
func NewCommandLineLogger() *LeveledLogger {
	return &LeveledLogger{
		level: DefaultLogLevel,
		debugLoggers: []DebugLogger{
			NewDebugLogger(os.Stdout),
		},
		infoLoggers: []InfoLogger{
			NewInfoLogger("", os.Stdout),
		},
		errorLoggers: []ErrorLogger{
			NewErrorLogger("", os.Stderr),
		},
	}
}

// NewCombinedLogger returns a logger configured
// to send all output to the supplied io.Writer.
func NewCombinedLogger(prefix string, output io.Writer) *LeveledLogger {
	return &LeveledLogger{
		level: DefaultLogLevel,
		debugLoggers: []DebugLogger{
			NewDebugLogger(output),
		},
		infoLoggers: []InfoLogger{
			NewInfoLogger(prefix, output),
		},
		errorLoggers: []ErrorLogger{
			NewErrorLogger(prefix, output),
		},
	}
}

// LogBuffer provides a thread-safe wrapper for bytes.Buffer.
type LogBuffer struct {
	sync.Mutex
	buf bytes.Buffer
}

func (lb *LogBuffer) Write(p []byte) (int, error) {
	lb.Lock()
	defer lb.Unlock()
	return lb.buf.Write(p)
}

func (lb *LogBuffer) String() string {
	lb.Lock()
	defer lb.Unlock()
	return lb.buf.String()
}

// Reset clears the buffer.
func (lb *LogBuffer) Reset() {
	lb.Lock()
	defer lb.Unlock()
	lb.buf.Reset()
}

// NewTestLogger returns a logger and a *LogBuffer, with the logger
// configured to send all output into the buffer. The logger's level
// is set to DEBUG by default.
func NewTestLogger(prefix string) (*LeveledLogger, *LogBuffer) {
	var buf LogBuffer
	return NewCombinedLogger(prefix, &buf).
		WithLogLevel(LogLevelDebug), &buf
}

// NewDebugLogger returns a DebugLogger configured for outputting
// debugging messages with standard formatting (e.g. to stderr,
// logfile, etc.)
func NewDebugLogger(output io.Writer) *DefaultDebugLogger {
	return &DefaultDebugLogger{
		baseLogger{
			dest: output,
			log:  log.New(output, "DEBUG ", debugLogFlags),
		},
	}
}

// DefaultDebugLogger implements the DebugLogger interface.
type DefaultDebugLogger struct {
	baseLogger
}

// Debugf emits a formatted debug message.
func (l *DefaultDebugLogger) Debugf(format string, args ...interface{}) {
	out := fmt.Sprintf(format, args...)
	if err := l.log.Output(logOutputDepth, out); err != nil {
		fmt.Fprintf(os.Stderr, "logger Debugf() failed: %s\n", err)
	}
}

// NewInfoLogger returns an InfoLogger configured for outputting
// informational messages with standard formatting (e.g. to stderr,
// logfile, etc.)
func NewInfoLogger(prefix string, output io.Writer) *DefaultInfoLogger {
	if prefix != "" {
		prefix += " "
	}
	return &DefaultInfoLogger{
		baseLogger{
			dest:   output,
			prefix: prefix,
			log:    log.New(output, prefix, infoLogFlags),
		},
	}
}

// DefaultInfoLogger implements the InfoLogger interface.
type DefaultInfoLogger struct {
	baseLogger
}

// Infof emits a formatted informational message.
func (l *DefaultInfoLogger) Infof(format string, args ...interface{}) {
	out := fmt.Sprintf(format, args...)
	if err := l.log.Output(logOutputDepth, out); err != nil {
		fmt.Fprintf(os.Stderr, "logger Infof() failed: %s\n", err)
	}
}

// NewErrorLogger returns an ErrorLogger configured for outputting
// error messages with standard formatting (e.g. to stderr, logfile,
// etc.)
func NewErrorLogger(prefix string, output io.Writer) *DefaultErrorLogger {
	loggerPrefix := "ERROR "
	if prefix != "" {
		loggerPrefix = prefix + " " + loggerPrefix
	}
	return &DefaultErrorLogger{
		baseLogger{
			dest:   output,
			prefix: prefix,
			log:    log.New(output, loggerPrefix, errorLogFlags),
		},
	}
}

// DefaultErrorLogger implements the ErrorLogger interface.
type DefaultErrorLogger struct {
	baseLogger
}

// Errorf emits a formatted error message.
func (l *DefaultErrorLogger) Errorf(format string, args ...interface{}) {
	out := fmt.Sprintf(format, args...)
	if err := l.log.Output(logOutputDepth, out); err != nil {
		fmt.Fprintf(os.Stderr, "logger Errorf() failed: %s\n", err)
	}
}
