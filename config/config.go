//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package config loads and validates the pdiskctl configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/scaleadm/pdiskctl/build"
)

const (
	defaultConfigFile = "pdiskctl.yml"
	defaultSysConfDir = "/etc"
	defaultLogFile    = "logs.log"
)

// SMTPConfig holds the settings for the notification mailer.
type SMTPConfig struct {
	Server   string `yaml:"server"`
	Port     int    `yaml:"port"`
	Sender   string `yaml:"sender"`
	Password string `yaml:"password"`
}

// Config defines the pdiskctl configuration.
type Config struct {
	// Tool is the mmvdisk command to invoke. A bare name is resolved
	// via PATH.
	Tool string `yaml:"tool"`
	// WorkDir is where captured tool output and the JSON report are
	// written.
	WorkDir string `yaml:"work_dir"`
	LogFile string `yaml:"log_file"`
	Syslog  bool   `yaml:"syslog"`
	// ToolTimeoutSecs bounds each mmvdisk invocation. Zero waits
	// forever, matching mmvdisk's own behavior on slow hardware paths.
	ToolTimeoutSecs uint       `yaml:"tool_timeout_secs"`
	SMTP            SMTPConfig `yaml:"smtp"`

	Path string `yaml:"-"`
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() *Config {
	return &Config{
		Tool:    build.DefaultMmvdiskPath,
		WorkDir: ".",
		LogFile: defaultLogFile,
		Syslog:  true,
		SMTP: SMTPConfig{
			Server: "smtp.gmail.com",
			Port:   587,
		},
	}
}

// WorkPath returns the path of a working artifact inside the
// configured work directory.
func (c *Config) WorkPath(name string) string {
	return filepath.Join(c.WorkDir, name)
}

// UserConfigPath returns the computed path to the per-user config
// file.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, "."+defaultConfigFile)
}

// SystemConfigPath returns the computed path to the system config
// file.
func SystemConfigPath() string {
	return filepath.Join(defaultSysConfDir, defaultConfigFile)
}

// LoadConfig attempts to load a configuration from the supplied path.
// If the path is empty, the per-user and then the system locations are
// tried in turn.
func LoadConfig(cfgPath string) (*Config, error) {
	if cfgPath == "" {
		for _, path := range []string{UserConfigPath(), SystemConfigPath()} {
			if _, err := os.Stat(path); err == nil {
				cfgPath = path
				break
			}
		}
	}
	if cfgPath == "" {
		return nil, errors.New("no configuration file found")
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", cfgPath)
	}
	cfg.Path = cfgPath

	if st, err := os.Stat(cfg.WorkDir); err != nil || !st.IsDir() {
		return nil, FaultConfigBadWorkDir(cfg.WorkDir)
	}

	return cfg, nil
}
