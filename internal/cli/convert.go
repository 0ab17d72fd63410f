package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fcactx/pkg/errors"
	"github.com/matzehuels/fcactx/pkg/fca"
)

// Combination modes for the combine command.
const (
	modeApposition  = "apposition"
	modeSubposition = "subposition"
)

// convertCommand creates the convert command for rewriting a context in
// another format.
func (c *CLI) convertCommand() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert a context file to another format",
		Long: `Convert a context file to another format.

The input format is detected from the file content. The output format is
taken from -f, or from default_format in the config file.`,
		Example: `  # Burmeister to ConExp XML
  fcactx convert animals.cxt -f conexp-xml -o animals.xml

  # Standard input to JSON on standard output
  cat animals.csv | fcactx convert - -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := c.outputFormat(format)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			fc, from, err := c.readContext(cmd, args[0])
			if err != nil {
				return err
			}
			if err := c.writeContext(cmd, to, fc, output); err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Converted %s from %s to %s", args[0], from, to))
			if output != "" && output != stdinPath {
				printNextStep(cmd.OutOrStdout(), "Inspect", appName+" show "+output)
			}
			return nil
		},
	}
	addOutputFlags(cmd, &format, &output)

	return cmd
}

// transformCommand creates the transform command for dualizing and
// complementing a context.
func (c *CLI) transformCommand() *cobra.Command {
	var (
		format, output string
		dual, invert   bool
	)

	cmd := &cobra.Command{
		Use:   "transform FILE",
		Short: "Dualize or complement a context",
		Long: `Dualize or complement a context.

--dual swaps objects and attributes. --invert replaces the incidence by its
complement. Both may be combined; the result is the same in either order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !dual && !invert {
				return errors.New(errors.ErrCodeInvalidArgument, "nothing to do: pass --dual and/or --invert")
			}
			to, err := c.outputFormat(format)
			if err != nil {
				return err
			}

			fc, _, err := c.readContext(cmd, args[0])
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			if invert {
				fc = fc.Invert()
				logger.Debug("inverted context", "incidences", fc.Size())
			}
			if dual {
				fc = fc.Dual()
				logger.Debug("dualized context", "objects", fc.ObjectCount(), "attributes", fc.AttributeCount())
			}
			return c.writeContext(cmd, to, fc, output)
		},
	}
	addOutputFlags(cmd, &format, &output)
	cmd.Flags().BoolVar(&dual, "dual", false, "swap objects and attributes")
	cmd.Flags().BoolVar(&invert, "invert", false, "complement the incidence relation")

	return cmd
}

// combineCommand creates the combine command for apposition and
// subposition of two contexts.
func (c *CLI) combineCommand() *cobra.Command {
	var format, output, mode string

	cmd := &cobra.Command{
		Use:   "combine A B",
		Short: "Join two contexts side by side or on top of each other",
		Long: `Join two contexts side by side or on top of each other.

apposition places B's attributes next to A's; both must have the same
objects and no attribute in common. subposition places B's objects below
A's; both must have the same attributes and no object in common.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var combine func(a, b *fca.Context) (*fca.Context, error)
			switch mode {
			case modeApposition:
				combine = fca.Apposition
			case modeSubposition:
				combine = fca.Subposition
			default:
				return errors.New(errors.ErrCodeInvalidArgument, "unknown mode %q, want %s or %s", mode, modeApposition, modeSubposition)
			}
			to, err := c.outputFormat(format)
			if err != nil {
				return err
			}

			a, _, err := c.readContext(cmd, args[0])
			if err != nil {
				return err
			}
			b, _, err := c.readContext(cmd, args[1])
			if err != nil {
				return err
			}
			fc, err := combine(a, b)
			if err != nil {
				return err
			}
			return c.writeContext(cmd, to, fc, output)
		},
	}
	addOutputFlags(cmd, &format, &output)
	cmd.Flags().StringVar(&mode, "mode", modeApposition, "combination: apposition, subposition")
	_ = cmd.RegisterFlagCompletionFunc("mode", cobra.FixedCompletions(
		[]string{modeApposition, modeSubposition}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
