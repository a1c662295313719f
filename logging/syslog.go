//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

//go:build linux
// +build linux

package logging

import (
	"log"
	"log/syslog"
)

// MustCreateSyslogger attempts to create a *log.Logger configured
// for output to the system log daemon. If it fails, it will panic.
func MustCreateSyslogger(prio syslog.Priority, flags int) *log.Logger {
	logger, err := syslog.NewLogger(prio, flags)
	if err != nil {
		panic(err)
	}
	return logger
}

// WithSyslogOutput adds syslog forwarding of info and error messages
// as part of a chained method call. Timestamps are left to syslog.
func (ll *LeveledLogger) WithSyslogOutput() *LeveledLogger {
	infoLogger := &DefaultInfoLogger{
		baseLogger{
			log: MustCreateSyslogger(syslog.LOG_INFO, emptyLogFlags),
		},
	}
	errorLogger := &DefaultErrorLogger{
		baseLogger{
			log: MustCreateSyslogger(syslog.LOG_ERR, emptyLogFlags),
		},
	}

	return ll.WithInfoLogger(infoLogger).WithErrorLogger(errorLogger)
}
