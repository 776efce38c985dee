// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/heaptree/maxheap"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// CommonFlags represents the flags shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'yaml file specifying the output format, sort strategy and logging configuration, its values override those of the corresponding flags'"`
	Format string `subcmd:"format,text,'output format: text, json or yaml'"`
}

type demoFlags struct {
	CommonFlags
	Strategy string `subcmd:"strategy,rebuild,'sort strategy: rebuild or in-place'"`
}

type displayFlags struct {
	CommonFlags
}

type heapifyFlags struct {
	CommonFlags
	Display bool `subcmd:"display,false,display the heapified tree as well as its array form"`
}

type sortFlags struct {
	CommonFlags
	Strategy string `subcmd:"strategy,rebuild,'sort strategy: rebuild or in-place'"`
}

// Config represents the configuration that may be supplied via the
// --config flag.
type Config struct {
	Format   string                `yaml:"format"`
	Strategy string                `yaml:"strategy"`
	Logging  cmdutil.LoggingConfig `yaml:"logging"`
}

func (cf *CommonFlags) config(strategy string) (Config, error) {
	cfg := Config{
		Format:   cf.Format,
		Strategy: strategy,
		Logging:  cf.LoggingConfig(),
	}
	if len(cf.Config) > 0 {
		if err := cmdyaml.ParseConfigFile(context.Background(), cf.Config, &cfg); err != nil {
			return Config{}, err
		}
	}
	switch cfg.Format {
	case "text", "json", "yaml":
	default:
		return Config{}, fmt.Errorf("unsupported output format %q: use text, json or yaml", cfg.Format)
	}
	return cfg, nil
}

func (c Config) strategy() (maxheap.Strategy, error) {
	if len(c.Strategy) == 0 {
		return maxheap.Rebuild, nil
	}
	return maxheap.ParseStrategy(c.Strategy)
}

// withLogger returns a context carrying the logger specified by the
// configuration and a function to be called when it is no longer needed.
func (c Config) withLogger(ctx context.Context) (context.Context, func() error, error) {
	logger, err := c.Logging.NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), logger.Close, nil
}

type result struct {
	Input  []float64 `json:"input" yaml:"input"`
	Heap   []float64 `json:"heap,omitempty" yaml:"heap,omitempty"`
	Sorted []float64 `json:"sorted,omitempty" yaml:"sorted,omitempty"`
}

// write writes r to out in the configured format, text is used for the
// text format.
func (c Config) write(out io.Writer, r result, text func(io.Writer) error) error {
	switch c.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return text(out)
}

func parseNumbers(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		values[i] = v
	}
	return values, nil
}
