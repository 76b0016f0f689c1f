package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/azrogers/mapzk/content"
	"github.com/azrogers/mapzk/mapdef"
)

// batchManifest describes a set of map definitions to validate in one
// non-interactive pass, such as a CI job checking every map in a
// repository still parses after a content change.
type batchManifest struct {
	Entries []batchEntry `yaml:"entries"`
}

type batchEntry struct {
	Name         string   `yaml:"name"`
	ContentRoots []string `yaml:"content_roots"`
	MapFile      string   `yaml:"map_file"`
}

func newBatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "batch [flags] <batch.yaml>",
		Short:         "Parse every map definition listed in a YAML batch manifest",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(args[0], cmd.OutOrStdout())
		},
	}
}

func runBatch(manifestPath string, out io.Writer) error {
	data, err := os.ReadFile(manifestPath) //nolint:gosec // manifestPath is a CLI argument, expected to name a local file.
	if err != nil {
		return fmt.Errorf("reading batch manifest: %w", err)
	}

	var manifest batchManifest

	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("parsing batch manifest: %w", err)
	}

	failures := 0

	for _, entry := range manifest.Entries {
		if err := runBatchEntry(entry, out); err != nil {
			slog.Error("map definition failed to parse", "name", entry.Name, "error", err)

			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d map definitions failed to parse", failures, len(manifest.Entries))
	}

	return nil
}

func runBatchEntry(entry batchEntry, out io.Writer) error {
	loader := content.NewLoader(entry.ContentRoots...)

	source, err := loader.ReadFile(entry.MapFile)
	if err != nil {
		return err
	}

	def, parseErr := mapdef.Parse(source)
	if parseErr != nil {
		return parseErr
	}

	fmt.Fprintf(out, "%s: provinces=%s topology=%s sea_starts=%d\n",
		entry.Name, def.Provinces, def.Topology, len(def.SeaStarts))

	return nil
}
