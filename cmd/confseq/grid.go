// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// GridResult is one evaluated (v, alpha) cell. Err is set instead of Bound
// when the cell could not be evaluated (e.g. no crossing below v/g).
type GridResult struct {
	V     float64 `yaml:"v"`
	Alpha float64 `yaml:"alpha"`
	Bound float64 `yaml:"bound"`
	Err   string  `yaml:"error,omitempty"`
}

func newGridCmd(a *app) *cobra.Command {
	var (
		configPath string
		asYAML     bool
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Evaluate a boundary family over a v × alpha grid in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := DefaultGridConfig()
			if configPath != "" {
				var err error
				if cfg, err = LoadGridConfig(configPath); err != nil {
					return err
				}
				a.log.Info("config loaded", "path", configPath, "family", cfg.Family)
			} else if err := cfg.Validate(); err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}

			results, err := a.evaluateGrid(cmd, cfg)
			if err != nil {
				return err
			}
			if asYAML {
				return writeGridYAML(cmd.OutOrStdout(), results)
			}

			return writeGridTable(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML grid configuration (defaults when empty)")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print results as YAML")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent evaluations (0 = GOMAXPROCS)")

	return cmd
}

// evaluateGrid fills one GridResult per cell, row-major in (V, Alpha).
func (a *app) evaluateGrid(cmd *cobra.Command, cfg GridConfig) ([]GridResult, error) {
	b, err := cfg.Boundary()
	if err != nil {
		return nil, err
	}

	limit := cfg.Workers
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]GridResult, len(cfg.V)*len(cfg.Alpha))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(limit)
	for i, v := range cfg.V {
		for j, alpha := range cfg.Alpha {
			idx := i*len(cfg.Alpha) + j
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				res := GridResult{V: v, Alpha: alpha}
				if u, err := b(v, alpha); err != nil {
					res.Err = err.Error()
					a.log.Warn("grid cell failed", "v", v, "alpha", alpha, "err", err)
				} else {
					res.Bound = u
				}
				results[idx] = res

				return nil
			})
		}
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	a.log.Debug("grid evaluated", "family", cfg.Family, "cells", len(results), "workers", limit)

	return results, nil
}

func writeGridTable(w io.Writer, results []GridResult) error {
	if _, err := fmt.Fprintf(w, "%14s %10s %18s\n", "v", "alpha", "bound"); err != nil {
		return err
	}
	for _, r := range results {
		bound := fmt.Sprintf("%.10g", r.Bound)
		if r.Err != "" {
			bound = "error"
		}
		if _, err := fmt.Fprintf(w, "%14g %10g %18s\n", r.V, r.Alpha, bound); err != nil {
			return err
		}
	}

	return nil
}

func writeGridYAML(w io.Writer, results []GridResult) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(results); err != nil {
		return err
	}

	return enc.Close()
}
