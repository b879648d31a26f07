package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gtr/internal/cli"
	"gtr/internal/cli/commands"
	"gtr/internal/config"
	"gtr/internal/domain"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "gtr",
		Short:   "Golden-file test runner",
		Long:    `Compile a solution, run it against golden-file fixtures with a per-test timeout, and report pass/fail/timeout statistics. Supports a benchmark mode that measures execution times without comparing output.`,
		Version: version,
	}

	cfg := config.Load()

	var flags cli.Flags

	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		// A failed run has already printed its closing banner
		if !errors.Is(err, domain.ErrRunFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
