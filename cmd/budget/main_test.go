package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/budget/internal/config"
)

func TestParseFlagsNoArgsKeepsEnvironment(t *testing.T) {
	cfg := config.Load()
	want := *cfg

	require.NoError(t, parseFlags(cfg, nil))
	assert.Equal(t, want, *cfg)
}

func TestParseFlagsOverride(t *testing.T) {
	cfg := config.Load()
	require.NoError(t, parseFlags(cfg, []string{"-file", "x.json", "-theme", "mono", "-plain"}))
	assert.Equal(t, "x.json", cfg.DataFile)
	assert.Equal(t, "mono", cfg.Theme)
	assert.True(t, cfg.Plain)
}

func TestParseFlagsRejectsExtraArguments(t *testing.T) {
	assert.Error(t, parseFlags(config.Load(), []string{"register"}))
	assert.Error(t, parseFlags(config.Load(), []string{"-nope"}))
}
