package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gtr/internal/config"
	"gtr/internal/discovery"
)

// ListCommand handles the list command
type ListCommand struct {
	config     *config.Config
	enumerator *discovery.Enumerator
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, enumerator *discovery.Enumerator) *ListCommand {
	return &ListCommand{
		config:     cfg,
		enumerator: enumerator,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cases, err := lc.enumerator.Enumerate(lc.config.Flags.TypeFilter)
	if err != nil {
		return err
	}

	if len(cases) == 0 {
		color.Yellow("⚠ No test cases found")
		return nil
	}

	for i, tc := range cases {
		marker := color.GreenString("golden")
		if _, err := os.Stat(tc.ExpectedFile); err != nil {
			marker = color.YellowString("no golden file")
		}
		fmt.Printf("%3d. %s (%s)\n", i+1, tc.Name, marker)
	}
	fmt.Printf("\n%d test case(s)\n", len(cases))

	return nil
}
