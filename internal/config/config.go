package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/synapse-ml/synapse/internal/ffi"
	"github.com/synapse-ml/synapse/internal/optim"
)

// Config captures the knobs for a training run.
type Config struct {
	Data      string   `yaml:"data"`
	Target    string   `yaml:"target"`
	Features  []string `yaml:"features"`
	TestRatio float64  `yaml:"test_ratio"`

	Epochs       int     `yaml:"epochs"`
	BatchSize    int     `yaml:"batch_size"`
	EarlyStop    int     `yaml:"early_stop"`
	LearningRate float64 `yaml:"learning_rate"`
	Model        string  `yaml:"model"`

	Optimizer string  `yaml:"optimizer"`
	Momentum  float64 `yaml:"momentum"`
	Beta1     float64 `yaml:"beta1"`
	Beta2     float64 `yaml:"beta2"`
	Epsilon   float64 `yaml:"epsilon"`

	Seed     uint64 `yaml:"seed"`
	LogEvery int    `yaml:"log_every"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Data         string
	Target       string
	Features     []string
	Epochs       int
	BatchSize    int
	EarlyStop    int
	LearningRate float64
	Optimizer    string
	Seed         uint64
	LogEvery     int
}

// Default returns the configuration used for keys a file leaves out.
func Default() *Config {
	return &Config{
		TestRatio:    0.2,
		Epochs:       1000,
		EarlyStop:    50,
		LearningRate: 0.01,
		Model:        ffi.LinearRegression.String(),
		Optimizer:    string(optim.KindSGD),
		Momentum:     0.9,
		Beta1:        0.9,
		Beta2:        0.999,
		Epsilon:      1e-8,
		LogEvery:     100,
	}
}

// Load reads and validates a Config from YAML.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML from r on top of Default. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Data != "" {
		c.Data = o.Data
	}
	if o.Target != "" {
		c.Target = o.Target
	}
	if len(o.Features) > 0 {
		c.Features = append([]string(nil), o.Features...)
	}
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.BatchSize > 0 {
		c.BatchSize = o.BatchSize
	}
	if o.EarlyStop > 0 {
		c.EarlyStop = o.EarlyStop
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.Optimizer != "" {
		c.Optimizer = o.Optimizer
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Data == "" {
		return errors.New("data must be set")
	}
	if c.TestRatio < 0 || c.TestRatio >= 1 {
		return fmt.Errorf("test_ratio must be in [0, 1) (got %g)", c.TestRatio)
	}
	if c.Epochs < 0 {
		return fmt.Errorf("epochs must be >= 0 (got %d)", c.Epochs)
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("batch_size must be >= 0 (got %d)", c.BatchSize)
	}
	if c.EarlyStop < 0 {
		return fmt.Errorf("early_stop must be >= 0 (got %d)", c.EarlyStop)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning_rate must be > 0 (got %g)", c.LearningRate)
	}
	if _, err := ffi.ParseModelType(c.Model); err != nil {
		return err
	}
	switch optim.Kind(c.Optimizer) {
	case optim.KindSGD, optim.KindMomentum, optim.KindAdam:
	default:
		return fmt.Errorf("optimizer must be one of sgd, momentum, adam (got %q)", c.Optimizer)
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return fmt.Errorf("momentum must be in [0, 1) (got %g)", c.Momentum)
	}
	if c.Beta1 < 0 || c.Beta1 >= 1 || c.Beta2 < 0 || c.Beta2 >= 1 {
		return fmt.Errorf("beta1 and beta2 must be in [0, 1) (got %g, %g)", c.Beta1, c.Beta2)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("epsilon must be >= 0 (got %g)", c.Epsilon)
	}
	if c.LogEvery < 0 {
		return fmt.Errorf("log_every must be >= 0 (got %d)", c.LogEvery)
	}
	return nil
}

// OptimizerConfig returns the optimizer settings. The learning rate is
// carried separately on the training input.
func (c *Config) OptimizerConfig() optim.Config {
	return optim.Config{
		Kind:     optim.Kind(c.Optimizer),
		Momentum: c.Momentum,
		Betas:    [2]float64{c.Beta1, c.Beta2},
		Eps:      c.Epsilon,
	}
}

// RawInput fills the hyperparameters of raw from c.
func (c *Config) RawInput(raw *ffi.RawInput) error {
	model, err := ffi.ParseModelType(c.Model)
	if err != nil {
		return err
	}
	raw.Epochs = uint32(c.Epochs)
	raw.BatchSize = uint32(c.BatchSize)
	raw.EarlyStop = uint32(c.EarlyStop)
	raw.LearningRate = c.LearningRate
	raw.ModelType = model
	raw.Optimizer = c.OptimizerConfig()
	raw.Seed = c.Seed
	return nil
}
