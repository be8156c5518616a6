package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunHelp(t *testing.T) {
	assert.Equal(t, 0, run([]string{"--help"}))
}

func TestRunMissingAPIKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WEATHER_APIKEY", "")
	t.Setenv("WEATHER_LOCATION", "")

	assert.Equal(t, 1, run([]string{"-l", "80918"}))
}
