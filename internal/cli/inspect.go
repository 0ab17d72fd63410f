package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fcactx/pkg/errors"
)

// formatsCommand lists the registered formats in detection priority.
func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List registered formats in detection priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, StyleTitle.Render("Formats"))
			for i, name := range c.Registry.Formats() {
				mark := ""
				if name == c.Config.DefaultFormat {
					mark = StyleDim.Render(" (default)")
				}
				fmt.Fprintf(w, "  %s %s%s\n", StyleNumber.Render(fmt.Sprintf("%d.", i+1)), StyleValue.Render(name), mark)
			}
			return nil
		},
	}
}

// detectCommand prints the format a file would be read as.
func (c *CLI) detectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect FILE",
		Short: "Print the detected format of a context file",
		Long: `Print the detected format of a context file.

The leading lines of the file are matched against every registered format in
priority order. The file is also decoded, so structural errors are reported
too. Use - to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, format, err := c.readContext(cmd, args[0])
			if err != nil {
				if format != "" && !errors.Is(err, errors.ErrCodeUndeterminedFormat) {
					printInfo(cmd.ErrOrStderr(), "looks like %s", StyleHighlight.Render(format))
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format)
			return nil
		},
	}
}

// infoCommand prints context statistics.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Show object, attribute and incidence counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, format, err := c.readContext(cmd, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printKeyValue(w, "File", args[0])
			printKeyValue(w, "Format", format)
			printKeyValue(w, "Objects", fmt.Sprintf("%d", fc.ObjectCount()))
			printKeyValue(w, "Attributes", fmt.Sprintf("%d", fc.AttributeCount()))
			printKeyValue(w, "Incidences", fmt.Sprintf("%d", fc.Size()))
			printKeyValue(w, "Density", fmt.Sprintf("%.3f", fc.Density()))
			return nil
		},
	}
}

// showCommand renders the cross table of a context.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Render a context as a cross table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, format, err := c.readContext(cmd, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, StyleTitle.Render(args[0])+" "+StyleDim.Render(format))
			if fc.ObjectCount() == 0 && fc.AttributeCount() == 0 {
				printDetail(w, "empty context")
				return nil
			}
			fmt.Fprintln(w, crossTable(fc))
			printStats(w, fc)
			return nil
		},
	}
}
