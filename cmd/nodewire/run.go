package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/nodewire/nodewire/core/editor"
	"github.com/nodewire/nodewire/internal/palette"
	"github.com/nodewire/nodewire/internal/ui"
)

// runCmd opens the editor window.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive editor window",
	Long: `Opens an editor window. Right-click the background for the node palette,
drag between ports to connect them, and press the print button on a Print
node to dump its expression to stdout.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		demo, _ := cmd.Flags().GetBool("demo")
		palettePath, _ := cmd.Flags().GetString("palette")

		kinds, err := catalog(palettePath)
		if err != nil {
			return err
		}

		state := editor.NewState()
		if demo {
			palette.Sample(state)
		}

		view := ui.New(state, kinds, nil, logger)
		view.OnResponses = reportResponses(state)

		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("nodewire")
		return ebiten.RunGame(view)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("width", 1280, "window width in pixels")
	runCmd.Flags().Int("height", 800, "window height in pixels")
	runCmd.Flags().Bool("demo", false, "start with the sample graph instead of an empty one")
	runCmd.Flags().String("palette", "", "YAML palette file to load on top of the built-in kinds")

	// plain `nodewire` opens the editor with run's defaults
	rootCmd.RunE = func(_ *cobra.Command, args []string) error {
		return runCmd.RunE(runCmd, args)
	}
}
