// Command life seeds a grid map, evolves it for a number of generations and
// prints the map drawing with the population after each one.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"openlife/internal/app"
	"openlife/internal/config"
	"openlife/internal/evolver"
	"openlife/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("life: %v", err)
	}
}

type options struct {
	cfg     config.Config
	quiet   bool
	metrics bool
}

// parseArgs loads the optional YAML file, then lets explicitly set flags
// override it.
func parseArgs(args []string) (options, error) {
	var path string
	var opts options
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "YAML config file (default $"+config.EnvPath+")")
	fs.BoolVar(&opts.quiet, "quiet", false, "print population only")
	fs.BoolVar(&opts.metrics, "metrics", false, "dump evolver metrics after the run")
	flagCfg := config.DefaultConfig()
	flagCfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return opts, err
	}
	overrides := flag.NewFlagSet("overrides", flag.ContinueOnError)
	cfg.Bind(overrides)
	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if overrides.Lookup(f.Name) == nil || setErr != nil {
			return
		}
		setErr = overrides.Set(f.Name, f.Value.String())
	})
	if setErr != nil {
		return opts, setErr
	}
	opts.cfg = cfg
	return opts, nil
}

func run(args []string, out io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}
	session, err := app.NewSession(opts.cfg, evolver.WithObserver(collector))
	if err != nil {
		return err
	}
	session.Seed(opts.cfg.Seed)
	log.Printf("rule %s: seeded %d positions, %d alive", session.Rule(), len(session.Positions()), session.Population())

	report(out, session, opts.quiet)
	for i := 0; i < opts.cfg.Generations; i++ {
		if err := session.Tick(); err != nil {
			return err
		}
		report(out, session, opts.quiet)
	}

	if opts.metrics {
		return dumpMetrics(out, reg)
	}
	return nil
}

func report(out io.Writer, s *app.Session, quiet bool) {
	fmt.Fprintf(out, "generation %d population %d\n", s.Generation(), s.Population())
	if !quiet {
		fmt.Fprintln(out, s.Render())
	}
}

func dumpMetrics(out io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}
	return nil
}
