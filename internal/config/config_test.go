package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synapse-ml/synapse/internal/ffi"
	"github.com/synapse-ml/synapse/internal/optim"
	"github.com/synapse-ml/synapse/internal/tensor"
)

const sampleYAML = `
data: plane.csv
target: y
features: [x2, x1]
epochs: 500
batch_size: 1
early_stop: 10
learning_rate: 0.05
optimizer: adam
beta2: 0.99
seed: 7
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "plane.csv", cfg.Data)
	assert.Equal(t, "y", cfg.Target)
	assert.Equal(t, []string{"x2", "x1"}, cfg.Features)
	assert.Equal(t, 500, cfg.Epochs)
	assert.Equal(t, 1, cfg.BatchSize)
	assert.Equal(t, 10, cfg.EarlyStop)
	assert.Equal(t, 0.05, cfg.LearningRate)
	assert.Equal(t, uint64(7), cfg.Seed)

	// Unset keys keep their defaults.
	assert.Equal(t, 0.2, cfg.TestRatio)
	assert.Equal(t, 0.9, cfg.Beta1)
	assert.Equal(t, 0.99, cfg.Beta2)
	assert.Equal(t, "linear_regression", cfg.Model)

	assert.Equal(t, optim.Config{
		Kind:     optim.KindAdam,
		Momentum: 0.9,
		Betas:    [2]float64{0.9, 0.99},
		Eps:      1e-8,
	}, cfg.OptimizerConfig())
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, "data: a.csv\nlearning_rat: 0.1\n"))
	assert.ErrorContains(t, err, "learning_rat")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "open config")
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.Features, "no features means every non-target column")
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.Data = "a.csv"
	cfg.ApplyOverrides(Overrides{
		Data:         "b.csv",
		Epochs:       20,
		LearningRate: 0.5,
		Optimizer:    "momentum",
		Features:     []string{"a"},
	})

	assert.Equal(t, []string{"a"}, cfg.Features)

	assert.Equal(t, "b.csv", cfg.Data)
	assert.Equal(t, 20, cfg.Epochs)
	assert.Equal(t, 0.5, cfg.LearningRate)
	assert.Equal(t, "momentum", cfg.Optimizer)
	assert.Equal(t, 0, cfg.BatchSize, "zero overrides are ignored")
	assert.Equal(t, uint64(0), cfg.Seed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no data", func(c *Config) { c.Data = "" }},
		{"test ratio", func(c *Config) { c.TestRatio = 1 }},
		{"negative epochs", func(c *Config) { c.Epochs = -1 }},
		{"negative batch", func(c *Config) { c.BatchSize = -2 }},
		{"negative patience", func(c *Config) { c.EarlyStop = -1 }},
		{"zero learning rate", func(c *Config) { c.LearningRate = 0 }},
		{"unknown model", func(c *Config) { c.Model = "svm" }},
		{"unknown optimizer", func(c *Config) { c.Optimizer = "rmsprop" }},
		{"momentum", func(c *Config) { c.Momentum = 1 }},
		{"beta", func(c *Config) { c.Beta2 = 1.5 }},
		{"epsilon", func(c *Config) { c.Epsilon = -1 }},
		{"log every", func(c *Config) { c.LogEvery = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Data = "a.csv"
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())

	cfg := Default()
	cfg.Data = "a.csv"
	cfg.LogEvery = 0
	before := *cfg
	require.NoError(t, cfg.Validate())
	assert.Equal(t, before, *cfg, "Validate does not modify the config")
}

func TestRawInput(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML+"model: multi_linear\n"))
	require.NoError(t, err)

	var raw ffi.RawInput
	require.NoError(t, cfg.RawInput(&raw))
	assert.Equal(t, uint32(500), raw.Epochs)
	assert.Equal(t, uint32(1), raw.BatchSize)
	assert.Equal(t, uint32(10), raw.EarlyStop)
	assert.Equal(t, ffi.MultiLinearRegression, raw.ModelType)
	assert.Equal(t, optim.KindAdam, raw.Optimizer.Kind)
	assert.Equal(t, uint64(7), raw.Seed)
}

func TestZeroMomentumReachesOptimizer(t *testing.T) {
	cfg, err := Load(writeConfig(t, "data: a.csv\noptimizer: momentum\nmomentum: 0\n"))
	require.NoError(t, err)

	oc := cfg.OptimizerConfig()
	assert.Equal(t, 0.0, oc.Momentum)

	oc.LR = 1
	opt, err := optim.New(oc, 1)
	require.NoError(t, err)
	params := tensor.FromSlice([]tensor.Scalar{0})
	grad := tensor.FromSlice([]tensor.Scalar{1})
	require.NoError(t, opt.Update(params, grad))
	require.NoError(t, opt.Update(params, grad))
	assert.InDelta(t, -2.0, params.Data()[0], 1e-12)
}
