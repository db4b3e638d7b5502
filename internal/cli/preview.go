package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voidshard/beautify"
)

func (c *CLI) previewCommand() *cobra.Command {
	var opts styleOpts
	var asJSON bool
	var box beautify.Box

	cmd := &cobra.Command{
		Use:   "preview <image>",
		Short: "Print the style the live preview applies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.newSession(args[0], &opts)
			if err != nil {
				return err
			}
			r := &beautify.PreviewRenderer{Box: box}
			style, err := r.Render(cmd.Context(), s.State(), s.Source())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(style, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprint(out, style.CSS())
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	cmd.Flags().Float64Var(&box.W, "box-width", 0, "preview container width (default: export canvas)")
	cmd.Flags().Float64Var(&box.H, "box-height", 0, "preview container height (default: export canvas)")

	return cmd
}
