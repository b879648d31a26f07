package commands

import (
	"github.com/spf13/cobra"

	"gtr/internal/build"
	"gtr/internal/cli"
	"gtr/internal/config"
	"gtr/internal/discovery"
	"gtr/internal/execution"
	"gtr/internal/storage"
	"gtr/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Clean    *CleanCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	cleaner := build.NewCleaner(cfg)
	compiler := build.NewCompiler(cfg)
	enumerator := discovery.NewEnumerator(cfg)
	runner := execution.NewRunner(cfg)
	jsonStorage := storage.NewJSONStorage(cfg)
	viewer := ui.NewFailureViewer()

	return &Commands{
		Run:      NewRunCommand(cfg, cleaner, compiler, enumerator, runner, jsonStorage),
		List:     NewListCommand(cfg, enumerator),
		Clean:    NewCleanCommand(cfg, cleaner),
		Failures: NewFailuresCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Compile the solution and run it against the golden fixtures",
		Long:  "Clean, compile, then execute every test fixture and compare the produced output against the expected files",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return cfg.ValidateTypeFilter(flags.TypeFilter)
		},
		// The run's outcome is reported through banners and the exit
		// code; cobra must not second-guess it.
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	runCmd.Flags().StringVar(&flags.TypeFilter, "type", "", "Filter tests by type (type1 or type2)")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Show detailed output and diffs")
	runCmd.Flags().BoolVarP(&flags.Benchmark, "benchmark", "b", false, "Benchmark mode: only measure execution times, no output comparison")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered test fixtures",
		Long:  "Enumerate test fixtures without running anything",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return cfg.ValidateTypeFilter(flags.TypeFilter)
		},
	}
	listCmd.Flags().StringVar(&flags.TypeFilter, "type", "", "Filter tests by type (type1 or type2)")
	rootCmd.AddCommand(listCmd)

	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove compiled artifacts and previous output files",
		RunE:  c.Clean.Execute,
	}
	rootCmd.AddCommand(cleanCmd)

	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View the last run's failures interactively",
		Long:  "Display failed test cases from the last saved run, with error detail and diffs",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
