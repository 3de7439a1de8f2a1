package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodewire/nodewire/core/editor"
	"github.com/nodewire/nodewire/internal/palette"
	"github.com/nodewire/nodewire/internal/render"
)

// exportCmd renders the sample graph to a PNG without opening a window.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the sample graph to a PNG",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, _ := cmd.Flags().GetString("out")

		state := editor.NewState()
		palette.Sample(state)

		if err := render.Snapshot(state, out, render.DefaultStyle()); err != nil {
			return err
		}
		logger.Infof("[APP] wrote %s", out)
		for _, sink := range palette.Sinks(state.Graph) {
			fmt.Println(palette.Expr(state.Graph, sink))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("out", "nodewire.png", "output PNG path")
}
