// Package main provides the vcf-concordance command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errUsage marks a bad invocation; main prints the usage message to
// stdout for it, matching the tool's documented CLI contract.
var errUsage = errors.New("usage")

const usageMessage = `Usage: vcf-concordance file1.vcf file2.vcf [file3.vcf ...] [--output output.png]
Please provide at least 2 variant files for comparison.`

func main() {
	os.Exit(run())
}

func run() int {
	logger := newLogger()
	defer logger.Sync()

	initConfig(logger)

	cmd := newRootCmd(logger)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Println(usageMessage)
			return ExitUsage
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	return ExitSuccess
}

// newLogger builds a console logger writing to stderr. Diagnostics
// never share stdout with the usage and confirmation lines.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
