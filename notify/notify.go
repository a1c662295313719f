//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package notify delivers the disks-need-replacement email.
package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/scaleadm/pdiskctl/config"
	"github.com/scaleadm/pdiskctl/logging"
	"github.com/scaleadm/pdiskctl/mmvdisk"
)

const subject = "Disk with issue"

type (
	// sendFn matches smtp.SendMail, injected for tests.
	sendFn func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

	// Mailer sends plaintext notifications over a single
	// authenticated SMTP session (STARTTLS when the server offers
	// it, which smtp.SendMail negotiates).
	Mailer struct {
		log  logging.Logger
		smtp *config.SMTPConfig
		send sendFn
	}
)

// NewMailer returns a Mailer delivering via the configured SMTP
// server.
func NewMailer(log logging.Logger, smtpCfg *config.SMTPConfig) *Mailer {
	return &Mailer{
		log:  log,
		smtp: smtpCfg,
		send: smtp.SendMail,
	}
}

// Notify sends one email summarizing the disks that need replacement.
// Delivery failure is fatal to the run; email mode has no fallback
// action.
func (m *Mailer) Notify(recipient string, disks []mmvdisk.DiskDetail) error {
	if !strings.Contains(recipient, "@") {
		return FaultBadRecipient(recipient)
	}

	body := fmt.Sprintf("DISKS NEEDS REPLACEMENT! %v ", disks)
	msg := message(m.smtp.Sender, recipient, subject, body)

	addr := fmt.Sprintf("%s:%d", m.smtp.Server, m.smtp.Port)
	auth := smtp.PlainAuth("", m.smtp.Sender, m.smtp.Password, m.smtp.Server)
	if err := m.send(addr, auth, m.smtp.Sender, []string{recipient}, msg); err != nil {
		return FaultSendFailed(recipient, err)
	}

	m.log.Infof("Email sent to %s", recipient)
	return nil
}

func message(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "Content-Type: text/plain; charset=UTF-8\r\n")
	fmt.Fprintf(&b, "\r\n%s\r\n", body)
	return []byte(b.String())
}
