package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fcactx/pkg/errors"
	"github.com/matzehuels/fcactx/pkg/fca"
	fcaio "github.com/matzehuels/fcactx/pkg/io"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "fcactx"

	// stdinPath names standard input as a file argument.
	stdinPath = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Config   Config
	Registry *fcaio.Registry
}

// New creates a new CLI instance with a default logger, the default
// configuration and the process-wide format registry.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Config:   defaultConfig(),
		Registry: fcaio.Default,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// PrintError reports err on w without the error code prefix.
func PrintError(w io.Writer, err error) {
	if code := errors.GetCode(err); code != "" {
		printError(w, "%s %s", errors.UserMessage(err), StyleDim.Render("("+string(code)+")"))
		return
	}
	printError(w, "%s", err)
}

// =============================================================================
// Input / Output
// =============================================================================

// readContext loads the context at path, or from standard input when path is
// "-", and returns it with the detected format.
func (c *CLI) readContext(cmd *cobra.Command, path string) (*fca.Context, string, error) {
	if path == stdinPath {
		return c.Registry.Read(cmd.InOrStdin(), "stdin")
	}
	return c.Registry.ImportFile(path)
}

// writeContext writes fc in format to output, or to standard output when
// output is empty or "-".
func (c *CLI) writeContext(cmd *cobra.Command, format string, fc *fca.Context, output string) error {
	if output == "" || output == stdinPath {
		return c.Registry.Write(format, fc, cmd.OutOrStdout())
	}
	if err := c.Registry.ExportFile(format, fc, output); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printSuccess(w, "Wrote %s", StyleHighlight.Render(format))
	printFile(w, output)
	printStats(w, fc)
	return nil
}

// outputFormat returns the format named by the -f flag or the configured
// default. The name must have a registered codec.
func (c *CLI) outputFormat(flag string) (string, error) {
	name := flag
	if name == "" {
		name = c.Config.DefaultFormat
	}
	if _, ok := c.Registry.Codec(name); !ok {
		return "", errors.New(errors.ErrCodeUnknownFormat, "unknown format %q", name)
	}
	return name, nil
}

// addOutputFlags registers -f and -o on cmd.
func addOutputFlags(cmd *cobra.Command, format, output *string) {
	cmd.Flags().StringVarP(format, "format", "f", "", "output format (default from config, else burmeister)")
	cmd.Flags().StringVarP(output, "output", "o", "", "output file (stdout if empty)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return fcaio.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
}
