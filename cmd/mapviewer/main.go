// Command mapviewer renders a map definition's province image in the
// terminal using ANSI-colored half-block characters, with pan/zoom
// navigation.
//
// # Usage
//
//	mapviewer [flags] <content-root>... <map-file>
//	mapviewer batch [flags] <batch.yaml>
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/azrogers/mapzk/content"
	"github.com/azrogers/mapzk/log"
	"github.com/azrogers/mapzk/mapdef"
	"github.com/azrogers/mapzk/profiler"
	"github.com/azrogers/mapzk/terrain"
)

func main() {
	os.Exit(run())
}

func run() int {
	logCfg := log.NewConfig()
	prof := profiler.New()
	pub := log.NewPublisher()

	rootCmd := &cobra.Command{
		Use:           "mapviewer [flags] <content-root>... <map-file>",
		Short:         "Preview a map definition's province image in the terminal",
		Args:          cobra.MinimumNArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(io.MultiWriter(cmd.ErrOrStderr(), pub))
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return prof.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			//nolint:errcheck // Close only releases subscriber channels; nothing actionable on error.
			pub.Close()

			return prof.Stop()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			roots := args[:len(args)-1]
			mapFile := args[len(args)-1]

			return runViewer(roots, mapFile, pub)
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	prof.RegisterFlags(rootCmd.PersistentFlags())

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	rootCmd.AddCommand(newBatchCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)

		return 1
	}

	return 0
}

func runViewer(roots []string, mapFile string, pub *log.Publisher) error {
	loader := content.NewLoader(roots...)

	source, err := loader.ReadFile(mapFile)
	if err != nil {
		return err
	}

	def, parseErr := mapdef.Parse(source)
	if parseErr != nil {
		return fmt.Errorf("parsing %s: %s", mapFile, parseErr.Error())
	}

	if def.Provinces == "" {
		return fmt.Errorf("%s has no provinces image to preview", mapFile)
	}

	img, err := terrain.Load(loader, def.Provinces)
	if err != nil {
		return fmt.Errorf("loading province image: %w", err)
	}

	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		cols, rows = 80, 24
	}

	p := tea.NewProgram(newModel(img, cols, rows, mapFile, pub.Subscribe()))

	_, err = p.Run()

	return err
}
