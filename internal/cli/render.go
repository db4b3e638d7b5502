package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/voidshard/beautify"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	styleOpts
	output  string  // file or directory; the export names the file in a directory
	format  string  // png, jpg, webp
	quality float64 // 0..1, jpg and webp only
	scale   int     // output pixel multiplier
	stdout  bool    // write the image to stdout instead of a file
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{output: "."}

	cmd := &cobra.Command{
		Use:   "render <image>",
		Short: "Export a beautified image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := cmd.OutOrStdout()
			if opts.stdout {
				status = cmd.ErrOrStderr()
			}
			return c.runRender(cmd, args[0], &opts, status)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file or directory")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png (default), jpg, webp")
	cmd.Flags().Float64VarP(&opts.quality, "quality", "q", 0, "lossy quality 0-1 (default 0.9)")
	cmd.Flags().IntVarP(&opts.scale, "scale", "s", 0, "output scale 1-8 (default 2)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "write the image to stdout")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts, status io.Writer) error {
	p := newProgress(c.Logger)

	s, err := c.newSession(input, &opts.styleOpts)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		s.Update(beautify.FieldFormat, opts.format)
	}
	if cmd.Flags().Changed("quality") {
		s.Update(beautify.FieldQuality, opts.quality)
	}
	if cmd.Flags().Changed("scale") {
		s.Update(beautify.FieldOutputScale, opts.scale)
	}

	var sink beautify.Sink = beautify.FileSink{Path: opts.output}
	if opts.stdout {
		sink = beautify.WriterSink{W: cmd.OutOrStdout()}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	buf, err := s.ExportTo(ctx, sink)
	if err != nil {
		return err
	}

	printSuccess(status, "Exported %s", buf.Filename)
	printKeyValue(status, "size", fmt.Sprintf("%d×%d", buf.Width, buf.Height))
	printKeyValue(status, "format", string(buf.Format))
	if !opts.stdout {
		printFile(status, beautify.FileSink{Path: opts.output}.Target(buf))
	}
	p.done("Exported " + buf.Filename)
	return nil
}
