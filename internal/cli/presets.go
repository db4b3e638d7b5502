package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voidshard/beautify"
)

func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List background and frame presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			printTitle(out, "Backgrounds")
			for _, b := range beautify.BackgroundPresets() {
				fill := beautify.BackgroundFill(beautify.ApplyBackgroundPreset(beautify.DefaultStyle(), string(b)))
				printKeyValue(out, string(b), fill.CSS(1, 1))
			}

			fmt.Fprintln(out)
			printTitle(out, "Frames")
			for _, f := range beautify.FramePresets() {
				s := beautify.ApplyFramePreset(beautify.DefaultStyle(), string(f))
				desc := "no border"
				if s.BorderWidth > 0 {
					desc = fmt.Sprintf("%gpx %s", s.BorderWidth, s.BorderColor)
				}
				printKeyValue(out, string(f), desc)
			}
			return nil
		},
	}
}
