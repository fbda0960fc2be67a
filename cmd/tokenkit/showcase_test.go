package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tokenkit/internal/theme"
	"github.com/alexisbeaulieu97/tokenkit/internal/tui"
	tkerrors "github.com/alexisbeaulieu97/tokenkit/pkg/errors"
)

func stubShowcase(t *testing.T, terminal bool) *[]tui.Model {
	t.Helper()
	originalRunner, originalTerminal := showcaseRunner, isTerminal
	t.Cleanup(func() {
		showcaseRunner, isTerminal = originalRunner, originalTerminal
	})

	var runs []tui.Model
	showcaseRunner = func(m tui.Model) error {
		runs = append(runs, m)
		return nil
	}
	isTerminal = func() bool { return terminal }
	return &runs
}

func TestShowcaseRunsBuiltInDocument(t *testing.T) {
	runs := stubShowcase(t, true)

	_, err := execute(t, "showcase", "--mode", "dark")
	require.NoError(t, err)
	require.Len(t, *runs, 1)
	m := (*runs)[0]
	assert.Equal(t, theme.Dark, m.Mode())
	assert.Positive(t, m.Len())
}

func TestShowcaseRequiresTerminal(t *testing.T) {
	runs := stubShowcase(t, false)

	_, err := execute(t, "showcase")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
	assert.Empty(t, *runs)
}

func TestShowcaseConfigErrors(t *testing.T) {
	runs := stubShowcase(t, true)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("controls: []\n"), 0o600))

	_, err := execute(t, "showcase", "--config", path)
	var validationErr *tkerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, *runs)
}

func TestShowcaseLintsTokens(t *testing.T) {
	runs := stubShowcase(t, true)

	path := filepath.Join(t.TempDir(), "typo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`theme: light
controls:
  - id: save
    label: Save
    variant: outlin
`), 0o600))

	out, err := execute(t, "showcase", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, `did you mean "outline"`)
	require.Len(t, *runs, 1)
	assert.Equal(t, theme.Light, (*runs)[0].Mode())
}
