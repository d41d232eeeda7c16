package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("NATS_URL", "")
	t.Setenv("SEMCRM_NATS_URL", "")
	t.Setenv("SEMCRM_BASE_URI", "")
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

const workDoc = `
base: https://example.org/entity/
entities:
  - id: faust
    class: F1_Work
    labels: [{lang: de, label: Faust}]
    relations:
      - {relation: has_type, uris: ["https://example.org/type/drama"]}
`

func writeDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "work.yaml")
	require.NoError(t, os.WriteFile(path, []byte(workDoc), 0644))
	return path
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "semcrm version "+Version+" (build: "+BuildTime+")\n", out)
}

func TestBuildTurtle(t *testing.T) {
	out, _, err := execute(t, "build", writeDoc(t))
	require.NoError(t, err)

	assert.Contains(t, out, "@prefix lrm:")
	assert.Contains(t, out, "a lrm:F1_Work")
	assert.Contains(t, out, `"Faust"@de`)
	assert.Contains(t, out, "crm:P2_has_type")
}

func TestBuildNTriplesToFile(t *testing.T) {
	doc := writeDoc(t)
	output := filepath.Join(t.TempDir(), "out", "graph.nt")

	_, stderr, err := execute(t, "build", doc, "--output", output, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Build complete")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 4)
	for _, l := range lines {
		assert.True(t, strings.HasSuffix(l, " ."), "line %q", l)
	}
}

func TestBuildFormatFlag(t *testing.T) {
	out, _, err := execute(t, "build", writeDoc(t), "--format", "jsonld")
	require.NoError(t, err)
	var v any
	assert.NoError(t, json.Unmarshal([]byte(out), &v))
}

func TestBuildErrors(t *testing.T) {
	_, _, err := execute(t, "build", filepath.Join(t.TempDir(), "*.yaml"))
	assert.Error(t, err)

	_, _, err = execute(t, "build", writeDoc(t), "--format", "rdfxml")
	assert.Error(t, err)

	_, _, err = execute(t, "build")
	assert.Error(t, err)
}

func TestClasses(t *testing.T) {
	out, _, err := execute(t, "classes")
	require.NoError(t, err)
	assert.Contains(t, out, "E41_Appellation")
	assert.Contains(t, out, "X11_Prototypical_Document")

	out, _, err = execute(t, "classes", "X1_Corpus")
	require.NoError(t, err)
	assert.Contains(t, out, "parents:   D1_Digital_Object, F3_Manifestation")
	assert.Contains(t, out, "has_component")

	out, _, err = execute(t, "classes", "crm:E55_Type", "--json")
	require.NoError(t, err)
	var view classView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "E55_Type", view.Name)
	assert.NotEmpty(t, view.Relations)

	_, _, err = execute(t, "classes", "E0_Nothing")
	assert.Error(t, err)
}

func TestPrefixesAndFormats(t *testing.T) {
	out, _, err := execute(t, "prefixes")
	require.NoError(t, err)
	assert.Contains(t, out, "crm")
	assert.Contains(t, out, "http://www.cidoc-crm.org/cidoc-crm/")

	out, _, err = execute(t, "formats")
	require.NoError(t, err)
	for _, name := range []string{"turtle", "ntriples", "jsonld", "dot"} {
		assert.Contains(t, out, name)
	}
}

func TestWatchRoots(t *testing.T) {
	roots := watchRoots([]string{"corpus/**/*.yaml", "docs", "plays/faust.yaml"})
	assert.Equal(t, []string{"corpus", "docs", "plays/faust.yaml"}, roots)
}

func TestFetchErrors(t *testing.T) {
	_, _, err := execute(t, "fetch", "--format", "rdfxml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")

	_, _, err = execute(t, "fetch", "urn:a", "urn:b")
	assert.Error(t, err)
}
