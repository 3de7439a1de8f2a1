package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	app_log "github.com/nodewire/nodewire/internal/log"
)

var logger *app_log.Logger

var rootCmd = &cobra.Command{
	Use:   "nodewire",
	Short: "nodewire is a visual node-graph editor",
	Long: `nodewire is a visual node-graph editor: drag between ports to wire nodes
together, right-click for the creation palette, box-select with a background
drag, and export the result as a PNG.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		lvl, _ := cmd.Flags().GetString("log-level")
		logger = app_log.New(os.Stderr, app_log.LevelFromString(lvl))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log verbosity (debug, info, error, none)")
}
