// Command clauserfmt dumps the token structure of a Clausewitz
// configuration file, indenting by bracket depth, for debugging
// grammar and schema issues without writing a one-off program.
//
// # Usage
//
//	clauserfmt [flags] <file>
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/azrogers/mapzk/clauser"
	"github.com/azrogers/mapzk/log"
)

func main() {
	logCfg := log.NewConfig()

	var indentWidth int

	rootCmd := &cobra.Command{
		Use:           "clauserfmt [flags] <file>",
		Short:         "Dump the token structure of a Clausewitz configuration file",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := logCfg.NewHandler(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return run(args[0], indentWidth, cmd.OutOrStdout())
		},
	}

	rootCmd.Flags().IntVar(&indentWidth, "indent", 2, "spaces per bracket-depth level")
	logCfg.RegisterFlags(rootCmd.Flags())

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(path string, indentWidth int, out io.Writer) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is a CLI argument, expected to name a local file.
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	w := bufio.NewWriter(out)
	defer w.Flush() //nolint:errcheck // best-effort flush on a CLI's stdout.

	return dump(string(data), indentWidth, w)
}

// dump walks the raw token stream (bypassing any ClassMapping schema)
// and writes an indented s-expression-style rendering: every token,
// brackets included, is printed on its own line with its type and text,
// and "{" and "}" increase or decrease the indent level.
func dump(source string, indentWidth int, w *bufio.Writer) error {
	tok := clauser.NewTokenizer(source)

	depth := 0

	for {
		tk, ok, err := tok.Next()
		if err != nil {
			return fmt.Errorf("%s at byte %d: %s", err.Kind, err.Position, err.Message)
		}

		if !ok {
			return nil
		}

		if tk.Type == clauser.TokenCloseBracket {
			depth--
		}

		indent := depth
		if indent < 0 {
			indent = 0
		}

		fmt.Fprintf(w, "%*s%s %q\n", indent*indentWidth, "", tk.Type, tok.Segment(tk))

		if tk.Type == clauser.TokenOpenBracket {
			depth++
		}
	}
}
