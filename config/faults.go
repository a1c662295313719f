//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package config

import (
	"fmt"

	"github.com/scaleadm/pdiskctl/fault"
	"github.com/scaleadm/pdiskctl/fault/code"
)

// FaultConfigBadWorkDir indicates that the configured work directory
// does not exist or is not a directory.
func FaultConfigBadWorkDir(dir string) *fault.Fault {
	return configFault(
		code.ConfigBadWorkDir,
		fmt.Sprintf("work directory %q is not usable", dir),
		"create the directory or point work_dir at an existing one",
	)
}

func configFault(code code.Code, desc, res string) *fault.Fault {
	return &fault.Fault{
		Domain:      "config",
		Code:        code,
		Description: desc,
		Resolution:  res,
	}
}
