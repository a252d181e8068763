package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testConfig = `
log:
  level: error
pipelines:
  names:
    - step: where
      args:
        match: {active: true}
    - step: pluck
      args: {path: name}
`

const testDoc = `[{"name": "ada", "active": true}, {"name": "alan", "active": false}]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(zap.ReplaceGlobals(zap.NewNop()))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRun_Stdin(t *testing.T) {
	cfg := writeFile(t, "lambda.yaml", testConfig)

	out, err := execute(t, testDoc, "--config", cfg, "run", "names")
	require.NoError(t, err)
	assert.JSONEq(t, `["ada"]`, out)
}

func TestRun_FileAndYAMLOutput(t *testing.T) {
	cfg := writeFile(t, "lambda.yaml", testConfig)
	doc := writeFile(t, "doc.json", testDoc)

	out, err := execute(t, "", "-c", cfg, "run", "names", "--file", doc, "--output", "yaml")
	require.NoError(t, err)
	assert.YAMLEq(t, "- ada\n", out)
}

func TestRun_Errors(t *testing.T) {
	cfg := writeFile(t, "lambda.yaml", testConfig)

	_, err := execute(t, testDoc, "-c", cfg, "run", "missing")
	assert.ErrorContains(t, err, "unknown pipeline")

	_, err = execute(t, "", "-c", cfg, "run", "names")
	assert.ErrorContains(t, err, "empty document")

	_, err = execute(t, testDoc, "-c", filepath.Join(t.TempDir(), "absent.yaml"), "run", "names")
	assert.ErrorContains(t, err, "open config")

	_, err = execute(t, testDoc, "-c", cfg, "--log-level", "loud", "run", "names")
	assert.ErrorContains(t, err, "log level")
}

func TestList(t *testing.T) {
	cfg := writeFile(t, "lambda.yaml", testConfig)

	out, err := execute(t, "", "-c", cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "names: [where pluck]")
	assert.Contains(t, out, "  deepWhere\n")
	assert.Contains(t, out, "  each\n")
}
