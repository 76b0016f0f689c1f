package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMapFile(t *testing.T, root, name, contents string) {
	t.Helper()

	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestRunBatch_AllEntriesParse(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeMapFile(t, root, "europe.map", `provinces = "provinces.png" wrap_x = yes`)

	manifest := filepath.Join(t.TempDir(), "batch.yaml")
	manifestYAML := "entries:\n" +
		"  - name: europe\n" +
		"    content_roots:\n" +
		"      - " + root + "\n" +
		"    map_file: europe.map\n"
	require.NoError(t, os.WriteFile(manifest, []byte(manifestYAML), 0o644))

	var out bytes.Buffer
	err := runBatch(manifest, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "provinces=provinces.png")
}

func TestRunBatch_ReportsFailures(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeMapFile(t, root, "broken.map", `unknown_field = 1`)

	manifest := filepath.Join(t.TempDir(), "batch.yaml")
	manifestYAML := "entries:\n" +
		"  - name: broken\n" +
		"    content_roots:\n" +
		"      - " + root + "\n" +
		"    map_file: broken.map\n"
	require.NoError(t, os.WriteFile(manifest, []byte(manifestYAML), 0o644))

	var out bytes.Buffer
	err := runBatch(manifest, &out)
	assert.Error(t, err)
}

func TestRunBatch_MissingManifestFile(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := runBatch(filepath.Join(t.TempDir(), "missing.yaml"), &out)
	assert.Error(t, err)
}
