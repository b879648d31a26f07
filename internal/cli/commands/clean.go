package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gtr/internal/build"
	"gtr/internal/config"
)

// CleanCommand handles the clean command
type CleanCommand struct {
	config  *config.Config
	cleaner *build.Cleaner
}

// NewCleanCommand creates a new CleanCommand
func NewCleanCommand(cfg *config.Config, cleaner *build.Cleaner) *CleanCommand {
	return &CleanCommand{
		config:  cfg,
		cleaner: cleaner,
	}
}

// Execute runs the command
func (cc *CleanCommand) Execute(cmd *cobra.Command, args []string) error {
	cc.cleaner.Clean()
	color.Green("✓ Removed compiled artifacts and output files")
	return nil
}
