package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"component-generator/internal/diagnostic"
	"component-generator/internal/plan"
)

var coffeeComponent = filepath.Join("..", "..", "examples", "coffee", "component.yaml")

func writeComponent(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "component.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

const shopComponent = `
component: Shop
imports:
  shop: example.com/shop
bindings:
  - key: shop.Widget
    origin: {kind: method, name: provideWidget}
  - key: "map[shop.Color]struct{}"
    contribution: set
`

func TestRun_Text(t *testing.T) {
	stdout, stderr, err := runCLI(t, "-spec", writeComponent(t, shopComponent))
	require.NoError(t, err)

	assert.Equal(t, "provideWidgetProvider di.Provider[shop.Widget]\ncolorProvider di.Provider[shop.Color]\n", stdout)
	assert.Empty(t, stderr)
}

func TestRun_YAMLWithLoad(t *testing.T) {
	stdout, _, err := runCLI(t, "-spec", coffeeComponent, "-load", "-format", "yaml")
	require.NoError(t, err)

	var out plan.FieldsFile
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &out))

	assert.Equal(t, "CoffeeComponent", out.Component)
	require.Len(t, out.Fields, 8)
	assert.Equal(t, "ProvideHeaterProvider", out.Fields[0].Name)
	assert.Equal(t, "backupHeaterLazy", out.Fields[7].Name)
	assert.Equal(t, "di.Lazy[coffee.Heater]", out.Fields[7].Type)
}

func TestRun_EnvDefaults(t *testing.T) {
	t.Setenv(envFormat, "yaml")

	stdout, _, err := runCLI(t, "-spec", writeComponent(t, shopComponent))
	require.NoError(t, err)
	assert.Contains(t, stdout, "component: Shop\n")

	// Flags win over the environment.
	stdout, _, err = runCLI(t, "-spec", writeComponent(t, shopComponent), "-format", "text")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "component:")
}

func TestRun_Warnings(t *testing.T) {
	path := writeComponent(t, `
imports:
  shop: example.com/shop
  other: example.com/other
bindings:
  - key: shop.Widget
  - key: other.Widget
`)

	stdout, stderr, err := runCLI(t, "-spec", path)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count([]byte(stdout), []byte("widgetProvider")))
	assert.Contains(t, stderr, "warning: [bindings[1]]: [duplicate_field_name]")

	_, _, err = runCLI(t, "-spec", path, "-strict")
	assert.ErrorIs(t, err, plan.ErrStrict)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"missing spec", nil, "missing -spec"},
		{"unknown format", []string{"-spec", coffeeComponent, "-format", "xml"}, `unknown format "xml"`},
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
		{"missing file", []string{"-spec", "does-not-exist.yaml"}, "failed to read component file"},
		{"symbols without load", []string{"-spec", coffeeComponent}, "symbol_needs_graph"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestRun_LoadWithoutPackages(t *testing.T) {
	_, _, err := runCLI(t, "-spec", writeComponent(t, shopComponent), "-load")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lists no packages")
}

func TestRun_InvalidComponent(t *testing.T) {
	_, _, err := runCLI(t, "-spec", writeComponent(t, "bindings:\n  - key: tea.Leaf\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.ErrInvalid)
	assert.Contains(t, err.Error(), "unknown_import")
}

func TestLoadConfig(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte(envLoad+"=true\n"+envStrict+"=yes\n"), 0o600))

	t.Setenv(envFormat, "")
	t.Setenv(envLoad, "")
	t.Setenv(envStrict, "")
	require.NoError(t, os.Unsetenv(envLoad))
	require.NoError(t, os.Unsetenv(envStrict))

	cfg, err := loadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, formatText, cfg.Format)
	assert.True(t, cfg.Load)
	assert.False(t, cfg.Strict, "unparsable booleans fall back to the default")
}

func TestLoadConfig_MissingFileIsSkipped(t *testing.T) {
	t.Setenv(envFormat, "")

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, formatText, cfg.Format)
}

func TestLoadConfig_MalformedFileIsReported(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "broken.env")
	require.NoError(t, os.WriteFile(envFile, []byte(envFormat+"=\"yaml\n"), 0o600))

	t.Setenv(envFormat, "")

	cfg, err := loadConfig(envFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.env")
	assert.Equal(t, formatText, cfg.Format)
}
