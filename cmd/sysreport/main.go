// Package main provides the entry point for sysreport, which prints the
// local host's identity, boot time, uptime, CPU time and memory totals.
// It takes no arguments.
package main

import (
	"bufio"
	"io"
	"os"

	"github.com/opd-ai/go-sysreport/pkg/sysreport"
)

// Version is the current version of sysreport.
// This default value can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	return runWith(os.Stdout, sysreport.DefaultLogger(), nil)
}

// runWith writes the report to stdout and returns the process exit code.
func runWith(stdout io.Writer, logger sysreport.Logger, opts *sysreport.Options) int {
	o := sysreport.DefaultOptions()
	if opts != nil {
		o = *opts
	}
	o.Logger = logger

	r, err := sysreport.New(&o)
	if err != nil {
		logger.Error("cannot initialize report", "version", Version, "err", err)
		return 1
	}

	logger.Info("generating report", "version", Version, "proc", o.ProcRoot)
	out := bufio.NewWriter(stdout)
	runErr := r.Run(out)
	// Sections completed before a failure are still flushed.
	if err := out.Flush(); err != nil {
		logger.Error("writing report", "err", err)
		return 1
	}
	if runErr != nil {
		logger.Error("report incomplete", "version", Version, "err", runErr)
		return 1
	}
	return 0
}
