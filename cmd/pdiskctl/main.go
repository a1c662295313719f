//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/google/uuid"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/scaleadm/pdiskctl/build"
	"github.com/scaleadm/pdiskctl/config"
	"github.com/scaleadm/pdiskctl/fault"
	"github.com/scaleadm/pdiskctl/logging"
	"github.com/scaleadm/pdiskctl/mmvdisk"
	"github.com/scaleadm/pdiskctl/notify"
)

type cliOptions struct {
	Replace    bool   `long:"replace" description:"run the full physical-replace workflow for each flagged pdisk"`
	Prepare    bool   `long:"prepare" description:"run the prepare-for-replace workflow instead of a full replace"`
	Email      string `short:"e" long:"email" value-name:"ADDRESS" description:"email a summary of flagged pdisks instead of acting on them"`
	Short      bool   `long:"short" description:"render the summary table with the reduced column set"`
	Debug      bool   `short:"d" long:"debug" description:"enable debug output"`
	ConfigPath string `short:"o" long:"config-path" description:"path to pdiskctl configuration file"`
	Version    bool   `long:"version" description:"print pdiskctl version and exit"`
}

// Exactly one of replace/prepare/email governs a run.
func (opts *cliOptions) validate() error {
	modes := 0
	for _, set := range []bool{opts.Replace, opts.Prepare, opts.Email != ""} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return errors.New("--replace, --prepare and --email are mutually exclusive")
	}
	return nil
}

// notifier is implemented by notify.Mailer.
type notifier interface {
	Notify(recipient string, disks []mmvdisk.DiskDetail) error
}

func exitWithError(log logging.Logger, err error) {
	cmdName := path.Base(os.Args[0])
	log.Errorf("%s: %v", cmdName, err)
	if fault.HasResolution(err) {
		log.Errorf("%s: %s", cmdName, fault.ShowResolutionFor(err))
	}
	os.Exit(1)
}

func parseOpts(args []string, opts *cliOptions, out io.Writer) (proceed bool, err error) {
	p := flags.NewParser(opts, flags.Default)
	p.Name = build.ToolName
	p.Options ^= flags.PrintErrors // don't allow the library to print errors

	if _, err := p.ParseArgs(args); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			fmt.Fprintln(out, fe.Error())
			return false, nil
		}
		return false, err
	}

	if opts.Version {
		fmt.Fprintf(out, "%s version %s\n", build.ToolName, build.PdiskctlVersion)
		return false, nil
	}

	return true, opts.validate()
}

func run(args []string, log *logging.LeveledLogger) error {
	var opts cliOptions
	proceed, err := parseOpts(args, &opts, os.Stdout)
	if err != nil || !proceed {
		return err
	}

	if opts.Debug {
		log.WithLogLevel(logging.LogLevelDebug)
		log.Debug("debug output enabled")
	}

	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		if opts.ConfigPath != "" {
			return errors.WithMessage(err, "failed to load configuration")
		}
		cfg = config.DefaultConfig()
	} else {
		log.Debugf("configuration loaded from %s", cfg.Path)
	}

	logPath := cfg.LogFile
	if !filepath.IsAbs(logPath) {
		logPath = cfg.WorkPath(logPath)
	}
	if _, err := log.WithLogFile(logPath); err != nil {
		return err
	}
	if cfg.Syslog {
		log.WithSyslogOutput()
	}

	runner := mmvdisk.NewRunner(log, cfg, os.Stdout)
	mailer := notify.NewMailer(log, &cfg.SMTP)

	return runPipeline(context.Background(), log, cfg, runner, mailer, &opts, os.Stdout)
}

// terminalGood handles the two listing outcomes that end a run
// successfully with nothing to do.
func terminalGood(log logging.Logger, cmdStr string, err error) (bool, error) {
	switch errors.Cause(err) {
	case mmvdisk.ErrAllPdisksOK:
		log.Infof("Command: %s ---> All disk are OK!", cmdStr)
		return true, nil
	case mmvdisk.ErrNoneFlagged:
		log.Infof("Command: %s ---> No pdisk are marked for replacement!", cmdStr)
		return true, nil
	}
	return err != nil, err
}

func runPipeline(ctx context.Context, log logging.Logger, cfg *config.Config,
	runner *mmvdisk.Runner, mailer notifier, opts *cliOptions, out io.Writer) error {

	start := time.Now()
	dateStamp := start.UTC().Format("2006-01-02,15:04 UTC")
	runID := uuid.New()
	log.Debugf("run %s started", runID)

	notOKFile := cfg.WorkPath(mmvdisk.FileNotOK)
	notOKCmd, err := runner.CaptureNotOK(ctx, notOKFile)
	if err != nil {
		return err
	}
	replaceFile := cfg.WorkPath(mmvdisk.FileReplace)
	replaceCmd, err := runner.CaptureReplace(ctx, replaceFile)
	if err != nil {
		return err
	}

	notOKRows, err := mmvdisk.ParseListing(notOKFile)
	if done, err := terminalGood(log, notOKCmd, err); done {
		return err
	}
	if _, err := runner.Summarize(ctx, notOKRows, "List of Disks that are not ok"); err != nil {
		return err
	}

	replaceRows, err := mmvdisk.ParseListing(replaceFile)
	if done, err := terminalGood(log, replaceCmd, err); done {
		return err
	}
	needReplace, err := runner.Summarize(ctx, replaceRows, "List of disks needs replace")
	if err != nil {
		return err
	}

	log.Infof("\n\nDISKS NEEDS REPLACEMENT!\n%v\n\n", needReplace)
	log.Infof("%s flagged for replacement", english.Plural(len(needReplace), "pdisk", ""))

	audit := []string{replaceCmd}
	if opts.Email != "" {
		if err := mailer.Notify(opts.Email, needReplace); err != nil {
			return err
		}
	} else {
		records, err := runner.DispatchReplacements(ctx, replaceRows, opts.Prepare)
		if err != nil {
			return err
		}
		for _, rec := range records {
			audit = append(audit, rec.Cmd)
		}
	}
	log.Infof("List of pdisk needs to be replaced:\n Command: %v\n%v", audit, replaceRows)

	if err := mmvdisk.WriteReport(out, cfg.WorkPath(mmvdisk.FileReport),
		needReplace, opts.Short); err != nil {
		return err
	}

	elapsed := time.Since(start)
	hours := int(elapsed.Hours())
	minutes := int(elapsed.Minutes()) % 60
	seconds := elapsed.Seconds() - float64(hours*3600+minutes*60)
	fmt.Fprintf(out, "The program took %d:%02d:%02.0f to run.\n", hours, minutes, seconds)
	fmt.Fprintf(out, "Date and time program was initiated %s\n", dateStamp)
	log.Debugf("run %s finished in %s", runID, elapsed)

	return nil
}

func main() {
	log := logging.NewCommandLineLogger()

	if err := run(os.Args[1:], log); err != nil {
		exitWithError(log, err)
	}
}
