package config

import (
	"fmt"
	"os"

	"github.com/cyber-g/tswhist/algorithms/common"
	"github.com/cyber-g/tswhist/algorithms/histogram"
	"github.com/cyber-g/tswhist/logging"
	"gopkg.in/yaml.v3"
)

// HistogramConfig configures a sliding histogram run and its surroundings
type HistogramConfig struct {
	// Core parameters
	Bins         int `json:"bins" yaml:"bins"`
	WindowLength int `json:"window_length" yaml:"window_length"`
	Stride       int `json:"stride" yaml:"stride"`

	// Input preparation
	Normalization string `json:"normalization" yaml:"normalization"` // "none", "minmax", "clip"
	SelfNormalize bool   `json:"self_normalize" yaml:"self_normalize"`
	MaxSamples    int    `json:"max_samples,omitempty" yaml:"max_samples,omitempty"`

	// Output
	OneBasedLoci bool   `json:"one_based_loci" yaml:"one_based_loci"`
	Format       string `json:"format" yaml:"format"` // "json", "csv"
	Summary      bool   `json:"summary" yaml:"summary"`

	// Batch
	Workers int `json:"workers" yaml:"workers"`

	LogLevel string `json:"log_level" yaml:"log_level"`
}

// DefaultHistogramConfig returns sensible defaults
func DefaultHistogramConfig() *HistogramConfig {
	return &HistogramConfig{
		Bins:          32,
		WindowLength:  256,
		Stride:        1,
		Normalization: "none",
		Format:        "json",
		Workers:       0, // GOMAXPROCS
		LogLevel:      "info",
	}
}

// LoadFile reads a YAML (or JSON) file over the defaults
func LoadFile(path string) (*HistogramConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultHistogramConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	logging.Debug("Configuration loaded", logging.Fields{
		"path":          path,
		"bins":          cfg.Bins,
		"window_length": cfg.WindowLength,
		"stride":        cfg.Stride,
	})

	return cfg, nil
}

// Params returns the core run parameters
func (c *HistogramConfig) Params() histogram.Params {
	return histogram.Params{
		Bins:          c.Bins,
		WindowLength:  c.WindowLength,
		Stride:        c.Stride,
		SelfNormalize: c.SelfNormalize,
	}
}

// NormalizationType resolves the Normalization name
func (c *HistogramConfig) NormalizationType() (common.NormalizationType, error) {
	return common.ParseNormalizationType(c.Normalization)
}

// Validate checks everything that can be checked without a signal
func (c *HistogramConfig) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	method, err := c.NormalizationType()
	if err != nil {
		return err
	}
	if c.SelfNormalize && method != common.None {
		return fmt.Errorf("self_normalize and normalization %q are mutually exclusive", c.Normalization)
	}
	switch c.Format {
	case "json", "csv":
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if c.MaxSamples < 0 {
		return fmt.Errorf("max_samples must be >= 0, got %d", c.MaxSamples)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
