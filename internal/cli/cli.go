package cli

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/voidshard/beautify"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "beautify",
		Short:         "Beautify turns screenshots into presentation images",
		Long:          `Beautify applies rounded corners, shadows, backgrounds, filters, transforms and frames to a screenshot and exports the result as png, jpg or webp.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// ReportError prints err as a status line. Coded errors show their user
// message with the code alongside.
func ReportError(w io.Writer, err error) {
	if code := beautify.CodeOf(err); code != "" {
		printError(w, "%s %s", beautify.UserMessage(err), StyleDim.Render("("+string(code)+")"))
		return
	}
	printError(w, "%v", err)
}

// styleOpts are the flags shared by render and preview.
type styleOpts struct {
	styleFile  string
	sets       []string
	background string
	frame      string
}

func (o *styleOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.styleFile, "style", "", "style file (.toml or .json); missing keys keep their defaults")
	cmd.Flags().StringArrayVar(&o.sets, "set", nil, "set a field, e.g. --set corner-radius=32 (repeatable)")
	cmd.Flags().StringVarP(&o.background, "background", "b", "", "background preset")
	cmd.Flags().StringVar(&o.frame, "frame", "", "frame preset")
}

// newSession builds a session for the input file with every style flag
// applied: style file, then presets, then --set values in order.
func (c *CLI) newSession(input string, o *styleOpts) (*beautify.Session, error) {
	s, err := beautify.NewSession(beautify.WithLogger(c.Logger))
	if err != nil {
		return nil, err
	}

	data, mimeType, err := readImage(input)
	if err != nil {
		return nil, err
	}
	src, err := s.Upload(data, mimeType)
	if err != nil {
		return nil, err
	}
	w, h := src.Size()
	s.Logger().Info("loaded "+filepath.Base(input), "mime", src.MIMEType, "width", w, "height", h)

	if o.styleFile != "" {
		raw, err := os.ReadFile(o.styleFile)
		if err != nil {
			return nil, err
		}
		st, err := beautify.DecodeStyle(raw, filepath.Ext(o.styleFile))
		if err != nil {
			return nil, err
		}
		s.SetStyle(st)
	}
	if o.background != "" {
		s.ApplyBackgroundPreset(o.background)
	}
	if o.frame != "" {
		s.ApplyFramePreset(o.frame)
	}
	for _, kv := range o.sets {
		f, v, err := parseSet(kv)
		if err != nil {
			return nil, err
		}
		s.Update(f, v)
	}
	return s, nil
}

// parseSet splits "key=value" and resolves the field name.
func parseSet(kv string) (beautify.Field, string, error) {
	k, v, ok := strings.Cut(kv, "=")
	if !ok {
		return 0, "", fmt.Errorf("invalid --set %q (want key=value)", kv)
	}
	f, ok := beautify.FieldByName(strings.TrimSpace(k))
	if !ok {
		return 0, "", fmt.Errorf("unknown field %q", k)
	}
	return f, strings.TrimSpace(v), nil
}

// readImage loads a file and works out its MIME type, from the extension
// first and the content second.
func readImage(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return data, detectMIME(path, data), nil
}

func detectMIME(path string, data []byte) string {
	if mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); mt != "" {
		return mt
	}
	return http.DetectContentType(data)
}
