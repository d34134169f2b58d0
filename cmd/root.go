package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/sampling-sim/sim"
	"github.com/inference-sim/sampling-sim/sim/interval"
	"github.com/inference-sim/sampling-sim/sim/trace"
)

var (
	runFlags   RunConfig // values bound to the run command's flags
	configPath string    // optional YAML run config
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sampling-sim",
	Short: "Discrete-event simulator for sampled event detection",
}

// runCmd executes the simulation using parameters from the config file, environment and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the detection simulation",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveRunConfig(cmd, configPath, runFlags)
		if err != nil {
			logrus.Fatalf("unable to read run config; %v", err)
		}

		// Set up logging
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", cfg.LogLevel)
		}
		logrus.SetLevel(level)

		if err := runSimulation(cfg, os.Stdout); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// familiesCmd lists the interval distribution families accepted by --*-dist.
var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List the supported interval distribution families",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(interval.Families(), "\n"))
	},
}

// runSimulation builds the engine, runs it, optionally writes the trace file,
// and prints the summary to out.
func runSimulation(cfg RunConfig, out io.Writer) error {
	simCfg := cfg.SimConfig()
	logrus.Infof("Starting simulation: sample %s/%v, event %s/%v, length %s/%v, run=%d, seed=%d",
		cfg.SampleDist, cfg.Interval, cfg.EventDist, cfg.Events, cfg.LengthDist, cfg.Length, cfg.Run, cfg.Seed)

	engine, err := sim.NewEngineFromConfig(simCfg, sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed)))
	if err != nil {
		return err
	}

	startTime := time.Now()
	state, err := engine.Run()
	if err != nil {
		return err
	}
	logrus.Infof("Simulated %d events in %v", state.EventCount, time.Since(startTime))

	if cfg.CSV {
		path := filepath.Join(cfg.OutputDir, trace.FileName(
			cfg.SampleDist, cfg.Interval, cfg.EventDist, cfg.Events, cfg.LengthDist, cfg.Length))
		if err := trace.ExportCSV(path, state.Records); err != nil {
			return err
		}
		logrus.Infof("Trace written to %s (%d records)", path, len(state.Records))
	}

	return sim.PrintReport(out, simCfg, state.Summary())
}

// resolveRunConfig layers defaults, the YAML file, the environment and
// explicitly set flags, in increasing precedence.
func resolveRunConfig(cmd *cobra.Command, path string, flagValues RunConfig) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if path != "" {
		var err error
		if cfg, err = LoadRunConfigFile(path, cfg); err != nil {
			return cfg, err
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	overrides := map[string]func(){
		"interval":    func() { cfg.Interval = flagValues.Interval },
		"sample-dist": func() { cfg.SampleDist = flagValues.SampleDist },
		"sample-cv":   func() { cfg.SampleCV = flagValues.SampleCV },
		"events":      func() { cfg.Events = flagValues.Events },
		"event-dist":  func() { cfg.EventDist = flagValues.EventDist },
		"event-cv":    func() { cfg.EventCV = flagValues.EventCV },
		"length":      func() { cfg.Length = flagValues.Length },
		"length-dist": func() { cfg.LengthDist = flagValues.LengthDist },
		"length-cv":   func() { cfg.LengthCV = flagValues.LengthCV },
		"run":         func() { cfg.Run = flagValues.Run },
		"csv":         func() { cfg.CSV = flagValues.CSV },
		"output-dir":  func() { cfg.OutputDir = flagValues.OutputDir },
		"seed":        func() { cfg.Seed = flagValues.Seed },
		"log":         func() { cfg.LogLevel = flagValues.LogLevel },
	}
	for name, apply := range overrides {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	return cfg, nil
}

// registerRunFlags binds the run options to cmd's flags, with built-in defaults.
func registerRunFlags(cmd *cobra.Command, values *RunConfig, path *string) {
	d := DefaultRunConfig()
	cmd.Flags().StringVar(path, "config", "", "YAML run config file (flags and SAMPLING_SIM_* env override it)")

	cmd.Flags().Float64Var(&values.Interval, "interval", d.Interval, "Sample interval")
	cmd.Flags().StringVar(&values.SampleDist, "sample-dist", d.SampleDist, "Sample distribution")
	cmd.Flags().Float64Var(&values.SampleCV, "sample-cv", d.SampleCV, "Sample interval coefficient of variation (gamma, weibull, lognormal)")
	cmd.Flags().Float64Var(&values.Events, "events", d.Events, "Event interval")
	cmd.Flags().StringVar(&values.EventDist, "event-dist", d.EventDist, "Event distribution")
	cmd.Flags().Float64Var(&values.EventCV, "event-cv", d.EventCV, "Event interval coefficient of variation (gamma, weibull, lognormal)")
	cmd.Flags().Float64Var(&values.Length, "length", d.Length, "Event length")
	cmd.Flags().StringVar(&values.LengthDist, "length-dist", d.LengthDist, "Event length distribution")
	cmd.Flags().Float64Var(&values.LengthCV, "length-cv", d.LengthCV, "Event length coefficient of variation (gamma, weibull, lognormal)")
	cmd.Flags().IntVar(&values.Run, "run", d.Run, "Run events")
	cmd.Flags().BoolVar(&values.CSV, "csv", d.CSV, "CSV file output")
	cmd.Flags().StringVar(&values.OutputDir, "output-dir", d.OutputDir, "Directory for the CSV trace file")
	cmd.Flags().Int64Var(&values.Seed, "seed", d.Seed, "Seed for the interval sources")
	cmd.Flags().StringVar(&values.LogLevel, "log", d.LogLevel, "Log level (trace, debug, info, warn, error, fatal, panic)")
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	registerRunFlags(runCmd, &runFlags, &configPath)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(familiesCmd)
}
