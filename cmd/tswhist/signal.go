package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cyber-g/tswhist/algorithms/common"
	"github.com/cyber-g/tswhist/config"
	"github.com/cyber-g/tswhist/transcode"
)

var errStdinRepeated = errors.New("stdin can be read only once")

// isStdin reports whether a path argument names standard input
func isStdin(path string) bool {
	return path == "" || path == "-"
}

// checkStdinOnce rejects argument lists naming stdin more than once
func checkStdinOnce(paths []string) error {
	first := -1
	for i, path := range paths {
		if !isStdin(path) {
			continue
		}
		if first >= 0 {
			return fmt.Errorf("%w: arguments %d and %d both name stdin", errStdinRepeated, first+1, i+1)
		}
		first = i
	}
	return nil
}

// loadSignal decodes path (stdin for "" or "-") and applies the configured normalization
func loadSignal(ctx context.Context, cfg *config.HistogramConfig, path string, stdin io.Reader) (*transcode.SignalData, error) {
	decCfg := transcode.DefaultDecoderConfig()
	decCfg.MaxSamples = cfg.MaxSamples
	decoder := transcode.NewDecoder(decCfg)

	var (
		data *transcode.SignalData
		err  error
	)
	if isStdin(path) {
		data, err = decoder.DecodeText(stdin)
		if err == nil {
			data.Source = "stdin"
		}
	} else {
		data, err = decoder.DecodeFile(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	method, err := cfg.NormalizationType()
	if err != nil {
		return nil, err
	}
	data.Samples = common.NewNormalizer(method).Normalize(data.Samples)
	return data, nil
}
