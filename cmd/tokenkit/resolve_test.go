package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tokenkit/internal/palette"
	tkerrors "github.com/alexisbeaulieu97/tokenkit/pkg/errors"
)

func TestResolveText(t *testing.T) {
	out, err := execute(t, "resolve", "--color", "red", "--variant", "outline", "--mode", "light")
	require.NoError(t, err)

	assert.Contains(t, out, "button red outline md (light)")
	assert.Contains(t, out, "background    transparent")
	assert.Contains(t, out, "border        #dc2626")
	assert.Contains(t, out, "text          #dc2626")
	assert.Contains(t, out, "border width  1")
	assert.Contains(t, out, "pressed       opacity 0.8")
	assert.Contains(t, out, "height 48")
	assert.Contains(t, out, "radius 12")
	assert.NotContains(t, out, "(dark)")
}

func TestResolveBothModesByDefault(t *testing.T) {
	out, err := execute(t, "resolve", "--color", "blue", "--variant", "soft")
	require.NoError(t, err)
	assert.Contains(t, out, "(light)")
	assert.Contains(t, out, "(dark)")
	assert.Contains(t, out, "#3b82f620")
}

func TestResolveJSON(t *testing.T) {
	out, err := execute(t, "resolve", "--family", "compact", "--variant", "outline", "--mode", "dark", "-o", "json")
	require.NoError(t, err)

	var results []resolution
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, "compact", r.Family)
	assert.Empty(t, r.Color)
	assert.Equal(t, "outline", r.Variant)
	assert.Equal(t, "#ffffff0a", r.Treatment.Background)
	assert.Equal(t, "#ffffff14", r.Pressed.Background)
	assert.Equal(t, 6, r.Geometry.Radius)
}

func TestResolveYAML(t *testing.T) {
	out, err := execute(t, "resolve", "--family", "input", "--color", "gray", "--variant", "solid", "--mode", "light", "-o", "yaml")
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	treatment, ok := results[0]["treatment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "#f9fafb", treatment["background"])
	assert.Equal(t, "#6b7280", treatment["placeholder"])
	assert.Equal(t, "solid", results[0]["variant"])
}

func TestResolveInputDefaultsToOutline(t *testing.T) {
	out, err := execute(t, "resolve", "--family", "input", "--mode", "light", "-o", "yaml")
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "outline", results[0]["variant"])
	treatment, ok := results[0]["treatment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "transparent", treatment["background"])
}

func TestResolveUnknownTokensFallBackWithWarning(t *testing.T) {
	out, err := execute(t, "resolve", "--color", "gren", "--variant", "outline", "--mode", "light")
	require.NoError(t, err)
	assert.Contains(t, out, `did you mean "green"`)
	assert.Contains(t, out, "button blue outline md (light)")
}

func TestResolveRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "resolve", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")

	_, err = execute(t, "resolve", "--mode", "sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestResolvePreview(t *testing.T) {
	out, err := execute(t, "resolve", "--mode", "light", "--preview", "--label", "Submit")
	require.NoError(t, err)
	assert.Contains(t, out, "Submit")
}

func TestResolveWithPaletteOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brand.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`hues:
  red:
    shades:
      600: "#aa0000"
`), 0o600))

	out, err := execute(t, "--palette", path, "resolve", "--color", "red", "--variant", "outline", "--mode", "light")
	require.NoError(t, err)
	assert.Contains(t, out, "border        #aa0000")

	_, err = execute(t, "--palette", filepath.Join(t.TempDir(), "missing.yaml"), "resolve")
	var parseErr *tkerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestPaletteCommand(t *testing.T) {
	out, err := execute(t, "palette")
	require.NoError(t, err)
	for _, c := range palette.Default().Colors() {
		assert.Contains(t, out, string(c))
	}

	out, err = execute(t, "palette", "violet")
	require.NoError(t, err)
	assert.Contains(t, out, "#7c3aed")
	assert.Contains(t, out, "950")

	_, err = execute(t, "palette", "violt")
	var tokenErr *tkerrors.TokenError
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, "violet", tokenErr.Suggestion)
}
