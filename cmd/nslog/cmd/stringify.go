package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pkt.systems/nslog/safejson"
)

func newStringifyCmd() *cobra.Command {
	var indent int
	c := &cobra.Command{
		Use:   "stringify",
		Short: "Re-encode JSON values read from stdin",
		Long: `Reads a stream of JSON values from stdin and writes each one back with
the encoder the JSON sink uses: sorted object keys and optional indentation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStringify(cmd.InOrStdin(), cmd.OutOrStdout(), indent)
		},
	}
	c.Flags().IntVar(&indent, "indent", 0, "spaces per indentation level (0 for compact, max 10)")
	return c
}

func runStringify(in io.Reader, out io.Writer, indent int) error {
	dec := json.NewDecoder(in)
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decode input: %w", err)
		}
		if _, err := fmt.Fprintln(out, safejson.Stringify(v, indent)); err != nil {
			return err
		}
	}
}
