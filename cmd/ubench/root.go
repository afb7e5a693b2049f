package main

import (
	"fmt"
	"os"

	"ubench/internal/config"
	"ubench/internal/history"

	"github.com/spf13/cobra"
)

var exit = os.Exit
var cfgFile string

// newStoreFunc opens the history store; replaceable in tests.
var newStoreFunc = func(path string) (history.Store, error) {
	return history.NewSQLiteStore(path)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ubench",
	Short: "Micro-benchmark shell commands",
	Long: `ubench times a command over a fixed number of sequential rounds and
reports mean, min, max and population standard deviation, with optional
per-round timings, run history and regression comparison.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'ubench --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// initConfig reads in config file and ENV variables if set, and rejects
// invalid configuration before any command runs.
func initConfig() {
	config.Load(cfgFile)
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}
