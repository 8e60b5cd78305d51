package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/budget/internal/model"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "budget.json"), zerolog.Nop())
	require.NoError(t, err)
	return s
}

func TestLoadMissingFileCreatesEmptyArray(t *testing.T) {
	s := newStore(t)

	items, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)

	b, err := os.ReadFile(s.Path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestLoadMalformedFileResets(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path, []byte("{not json"), 0o644))

	items, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, items)

	b, err := os.ReadFile(s.Path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestLoadNullIsEmpty(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path, []byte("null"), 0o644))

	items, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestLoadUnrecoverable(t *testing.T) {
	// A directory in place of the file can be neither read nor overwritten.
	dir := t.TempDir()
	s, err := New(dir, zerolog.Nop())
	require.NoError(t, err)

	_, err = s.Load()
	require.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newStore(t)
	in := []model.Item{
		{Name: "rent", Amount: 950},
		{Name: "coffee", Amount: 4.5},
		{Name: "gift", Amount: 0},
	}
	require.NoError(t, s.Save(in))
	first, err := os.ReadFile(s.Path)
	require.NoError(t, err)

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)

	require.NoError(t, s.Save(out))
	second, err := os.ReadFile(s.Path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestSaveWritesNameAndAmountFields(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save([]model.Item{{Name: "tea", Amount: 2.25}}))

	b, err := os.ReadFile(s.Path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"tea","amount":2.25}]`, string(b))
}

func TestNewDefaultsToWorkingDirectory(t *testing.T) {
	s, err := New("", zerolog.Nop())
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, DefaultFileName), s.Path)
}
