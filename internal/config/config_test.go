package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
game:
  piles: [3, 5]
agent:
  alpha: 0.7
  epsilon: 0.2
training:
  episodes: 500
log:
  level: debug
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	// Reset global state
	cfg = nil
	v = nil

	// Initialize config
	err = Init(configFile)
	require.NoError(t, err)

	// Test loaded values
	c := Get()
	assert.Equal(t, []int{3, 5}, c.Game.Piles)
	assert.Equal(t, 0.7, c.Agent.Alpha)
	assert.Equal(t, 0.2, c.Agent.Epsilon)
	assert.Equal(t, 500, c.Training.Episodes)
	assert.Equal(t, "debug", c.Log.Level)
	// Untouched keys keep their defaults
	assert.Equal(t, 1000, c.Training.ProgressInterval)
	assert.Equal(t, "console", c.Log.Format)
}

func TestInitWithDefaults(t *testing.T) {
	// Reset global state
	cfg = nil
	v = nil

	// Initialize with non-existent config (should use defaults)
	err := Init("/non/existent/path/config.yaml")
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, []int{1, 3, 5, 7}, c.Game.Piles)
	assert.Equal(t, 0.5, c.Agent.Alpha)
	assert.Equal(t, 0.1, c.Agent.Epsilon)
	assert.Equal(t, 10000, c.Training.Episodes)
	assert.Equal(t, 500, c.Play.MoveDelayMs)
}

func TestEnvironmentVariables(t *testing.T) {
	// Reset global state
	cfg = nil
	v = nil

	// Set environment variables
	os.Setenv("NIM_AGENT_EPSILON", "0.3")
	os.Setenv("NIM_TRAINING_EPISODES", "42")
	defer os.Unsetenv("NIM_AGENT_EPSILON")
	defer os.Unsetenv("NIM_TRAINING_EPISODES")

	// Initialize config
	err := Init("")
	require.NoError(t, err)

	// Environment variables should override
	c := Get()
	assert.Equal(t, 0.3, c.Agent.Epsilon)
	assert.Equal(t, 42, c.Training.Episodes)
}

func TestSet(t *testing.T) {
	// Reset global state
	cfg = nil
	v = nil

	err := Init("")
	require.NoError(t, err)

	Set("agent.alpha", 0.9)
	Set("training.progress_interval", 50)

	c := Get()
	assert.Equal(t, 0.9, c.Agent.Alpha)
	assert.Equal(t, 50, c.Training.ProgressInterval)
}

func TestSet_UndecodableValueKeepsStruct(t *testing.T) {
	// Reset global state
	cfg = nil
	v = nil

	err := Init("")
	require.NoError(t, err)

	// A value that cannot decode into the struct must not corrupt it.
	Set("training.episodes", "not-a-number")

	c := Get()
	assert.Equal(t, 10000, c.Training.Episodes)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Game:     GameConfig{Piles: []int{1, 3, 5, 7}},
			Agent:    AgentConfig{Alpha: 0.5, Epsilon: 0.1},
			Training: TrainingConfig{Episodes: 100, ProgressInterval: 10},
			Play:     PlayConfig{MoveDelayMs: 0},
			Log:      LogConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty piles", mutate: func(c *Config) { c.Game.Piles = nil }},
		{name: "negative pile", mutate: func(c *Config) { c.Game.Piles = []int{1, -3} }},
		{name: "all-zero piles", mutate: func(c *Config) { c.Game.Piles = []int{0, 0, 0} }},
		{name: "zero alpha", mutate: func(c *Config) { c.Agent.Alpha = 0 }},
		{name: "alpha above one", mutate: func(c *Config) { c.Agent.Alpha = 1.5 }},
		{name: "negative epsilon", mutate: func(c *Config) { c.Agent.Epsilon = -0.1 }},
		{name: "epsilon above one", mutate: func(c *Config) { c.Agent.Epsilon = 1.1 }},
		{name: "negative episodes", mutate: func(c *Config) { c.Training.Episodes = -1 }},
		{name: "negative delay", mutate: func(c *Config) { c.Play.MoveDelayMs = -5 }},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }},
	}

	assert.NoError(t, Validate(valid()))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, Validate(c))
		})
	}
}
