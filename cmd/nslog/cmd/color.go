package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/nslog/ansi"
	"pkt.systems/nslog/color"
)

func newColorCmd() *cobra.Command {
	var noSwatch bool
	c := &cobra.Command{
		Use:   "color <text>...",
		Short: "Show the hash colour of each argument",
		Long: `Prints the raw hash colour, the readability-adjusted colour, its hex
form and 256-colour index, followed by a swatch rendered the way the console
sink renders namespace labels. Escape sequences are stripped from arguments
first, so labels copied from coloured output hash to their own colour.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				text := ansi.Strip(arg)
				raw := color.HashText(text)
				improved := color.ImproveForLogReadability(raw)
				line := fmt.Sprintf("%s\thash=%s\timproved=%s\thex=%s\tansi256=%d",
					text, raw, improved, color.Hex(improved), ansi.Index256(improved))
				if !noSwatch {
					line += "\t" + ansi.Wrap(" "+text+" ", color.NamespaceStyle(text))
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	c.Flags().BoolVar(&noSwatch, "no-swatch", false, "omit the ANSI colour swatch")
	return c
}
