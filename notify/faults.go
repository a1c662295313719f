//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package notify

import (
	"fmt"

	"github.com/scaleadm/pdiskctl/fault"
	"github.com/scaleadm/pdiskctl/fault/code"
)

// FaultBadRecipient indicates that the recipient address cannot be an
// email address.
func FaultBadRecipient(recipient string) *fault.Fault {
	return notifyFault(
		code.NotifyBadRecipient,
		fmt.Sprintf("%q is not an email address", recipient),
		"supply a full recipient address with --email",
	)
}

// FaultSendFailed indicates that the SMTP delivery failed.
func FaultSendFailed(recipient string, err error) *fault.Fault {
	return notifyFault(
		code.NotifySendFailed,
		fmt.Sprintf("sending notification to %s failed: %s", recipient, err),
		"check the smtp settings in the configuration file",
	)
}

func notifyFault(code code.Code, desc, res string) *fault.Fault {
	return &fault.Fault{
		Domain:      "notify",
		Code:        code,
		Description: desc,
		Resolution:  res,
	}
}
