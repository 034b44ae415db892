package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"vanta/internal/application"
	"vanta/internal/config"
	"vanta/internal/session"
)

var (
	configPath string
	outputFlag string
	verbose    bool

	ws *application.Workspace
)

var rootCmd = &cobra.Command{
	Use:   "vanta-cli",
	Short: "CLI for the VANTA music project workspace",
	Long: `vanta-cli drives the VANTA workspace from the command line.

It lists and searches projects and tracks, creates projects, edits vision
board notes and controls the player. The workspace lives in memory, so
changes last for a single invocation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if _, err := parseFormat(outputFlag); err != nil {
			return err
		}

		cfg, err := config.Resolve(configPath)
		if err != nil {
			return err
		}

		level := cfg.Level()
		if verbose {
			level = log.DebugLevel
		}
		logger := config.NewLogger(os.Stderr, level)
		ws = session.New(cfg, logger)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the config file (default $"+config.EnvPath+" or ./"+config.LocalPath+")")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "text", "output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}

// GetWorkspace returns the initialized workspace
func GetWorkspace() *application.Workspace {
	return ws
}
