package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/config"
	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridmap"
)

// app carries flag values and per-invocation state shared by subcommands.
type app struct {
	configPath  string
	logLevel    string
	noHeuristic bool
	noCompress  bool
	metrics     bool

	variant string
	minRun  int
	maxRun  int
	jobs    int

	cfg    config.Config
	logger *slog.Logger
	stats  *searchMetrics
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "crucible",
		Short:        "Cheapest grid route under run-length rules",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	pf.BoolVar(&a.noHeuristic, "no-heuristic", false, "order the search by cost alone (plain Dijkstra)")
	pf.BoolVar(&a.noCompress, "no-compress", false, "keep dominated frontier entries")
	pf.BoolVar(&a.metrics, "metrics", false, "print Prometheus metrics to stderr when done")

	root.AddCommand(a.newSolveCmd(), a.newAllCmd())
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.logLevel != "" {
		a.cfg.LogLevel = a.logLevel
	}
	if a.noHeuristic {
		a.cfg.Heuristic = crucible.HeuristicNone.String()
	}
	if a.noCompress {
		a.cfg.Compression = false
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: a.cfg.SlogLevel()}))
	a.stats = newSearchMetrics()
	return nil
}

func (a *app) newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve one run rule and print the answer",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.withMetrics(func(cmd *cobra.Command, args []string) error {
			m, err := a.readGrid(cmd, args)
			if err != nil {
				return err
			}
			name, rule, err := a.selectRule(cmd)
			if err != nil {
				return err
			}
			res, err := a.search(m, name, rule)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Answer: %d\n", res.Cost)
			return err
		}),
	}
	basic := crucible.BasicRule()
	cmd.Flags().StringVar(&a.variant, "variant", "basic", "named variant from the configuration")
	cmd.Flags().IntVar(&a.minRun, "min-run", basic.MinRun, "steps required before turning or stopping (overrides --variant)")
	cmd.Flags().IntVar(&a.maxRun, "max-run", basic.MaxRun, "longest straight run, 0 for no cap (overrides --variant)")
	return cmd
}

func (a *app) newAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all [file]",
		Short: "Solve every configured variant concurrently",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.withMetrics(func(cmd *cobra.Command, args []string) error {
			m, err := a.readGrid(cmd, args)
			if err != nil {
				return err
			}

			costs := make([]int64, len(a.cfg.Variants))
			var g errgroup.Group
			if a.jobs > 0 {
				g.SetLimit(a.jobs)
			}
			for i, v := range a.cfg.Variants {
				i, v := i, v
				g.Go(func() error {
					res, err := a.search(m, v.Name, v.Rule())
					if err != nil {
						return fmt.Errorf("variant %s: %w", v.Name, err)
					}
					costs[i] = res.Cost
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, v := range a.cfg.Variants {
				if _, err := fmt.Fprintf(out, "%s: %d\n", v.Name, costs[i]); err != nil {
					return err
				}
			}
			return nil
		}),
	}
	cmd.Flags().IntVar(&a.jobs, "jobs", runtime.NumCPU(), "maximum variants solved at once, 0 for no limit")
	return cmd
}

// withMetrics wraps a RunE so that --metrics prints the collected series even
// when the command fails. Cobra skips post-run hooks after a RunE error.
func (a *app) withMetrics(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if !a.metrics || a.stats == nil {
				return
			}
			if werr := a.stats.write(cmd.ErrOrStderr()); err == nil {
				err = werr
			}
		}()
		return run(cmd, args)
	}
}

// selectRule honors explicit --min-run/--max-run first, then --variant.
func (a *app) selectRule(cmd *cobra.Command) (string, crucible.Rule, error) {
	if cmd.Flags().Changed("min-run") || cmd.Flags().Changed("max-run") {
		v := config.Variant{Name: "custom", MinRun: a.minRun, MaxRun: a.maxRun}
		return v.Name, v.Rule(), nil
	}
	v, err := a.cfg.Variant(a.variant)
	if err != nil {
		return "", crucible.Rule{}, err
	}
	return v.Name, v.Rule(), nil
}

func (a *app) readGrid(cmd *cobra.Command, args []string) (*gridmap.Map, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return gridmap.Parse(r)
}

// search runs one variant and records its metrics.
func (a *app) search(m *gridmap.Map, name string, rule crucible.Rule) (crucible.Result, error) {
	opts, err := a.cfg.SearchOptions()
	if err != nil {
		return crucible.Result{}, err
	}
	opts = append(opts,
		crucible.WithRule(rule),
		crucible.WithLogger(a.logger.With("variant", name)),
	)

	start := time.Now()
	res, err := crucible.Search(m, opts...)
	a.stats.observe(name, res, time.Since(start), err)
	return res, err
}
