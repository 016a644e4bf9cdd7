package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wfpath/config"
	"github.com/katalvlaran/wfpath/logging"
	"github.com/katalvlaran/wfpath/measure"
	"github.com/katalvlaran/wfpath/metrics"
	"github.com/katalvlaran/wfpath/path"
	"github.com/katalvlaran/wfpath/popsize"
	"github.com/katalvlaran/wfpath/report"
	"github.com/katalvlaran/wfpath/sample"
	"github.com/katalvlaran/wfpath/samplepath"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Build the initial sample path from an input file",
		Long: `Reads "count sampleSize lowTime highTime" rows, stitches one bridge per
pair of consecutive observations and writes the trajectory.

Every flag can also be set in the configuration file or as WFPATH_<KEY>,
e.g. WFPATH_GRID_STEP.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			return runInit(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringP("input", "i", "", "observation file")
	f.StringP("popsize", "P", "", `population size history file, or "constant"`)
	f.String("popsize-units", config.UnitsRelative, "sizes in the history file: relative or absolute")
	f.Int64("seed", 0, "random seed (0 selects a fixed default)")
	f.Bool("flip", false, "write the complementary allele trajectory")
	f.Float64("dt", path.DefaultStep, "target grid step")
	f.Int("min-grid", path.DefaultMinSteps, "minimum grid steps between break points")
	f.Float64("generation-time", sample.DefaultGenerationTime, "generation time")
	f.Float64("n0", sample.DefaultN0, "reference population size")
	f.StringP("format", "f", config.FormatTSV, "output format: tsv, plain, json or yaml")
	f.StringP("output", "o", "-", `output file ("-" for stdout)`)
	f.String("plot", "", "write an HTML trajectory chart to this file")
	f.Bool("summary", false, "print an observation summary table to stderr")
	f.String("log-level", "info", "log level: debug, info, warn or error")
	f.String("log-format", logging.FormatText, "log format: text, json or auto")
	f.String("log-output", logging.OutputStderr, "log destination: stderr, stdout or a file")

	return cmd
}

func runInit(cfg *config.Config, stdout, stderr io.Writer) error {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Close()

	report.Warn(stderr, cfg.UnitsNote())

	history, err := loadHistory(cfg)
	if err != nil {
		return err
	}
	obs, err := sample.ParseFile(cfg.Input, cfg.Scale.Sample(), sample.WithLogger(logger.Logger))
	if err != nil {
		return err
	}
	logger.Info("observations loaded", slog.String("input", cfg.Input), slog.Int("count", len(obs)))

	rec := metrics.New()
	proposer := measure.New(measure.WithSeed(cfg.Seed), measure.WithHistory(history))
	sp, err := samplepath.Build(obs, history, proposer,
		samplepath.WithStep(cfg.Grid.Step),
		samplepath.WithMinSteps(cfg.Grid.MinSteps),
		samplepath.WithRecorder(rec),
		samplepath.WithLogger(logger.Logger))
	if err != nil {
		return err
	}
	logger.Info("sample path built",
		slog.Int("points", sp.Len()),
		slog.Float64("logLikelihood", sp.TotalLogLikelihood()))

	traj := sp.Path()
	if cfg.Flip {
		traj.Flip()
	}
	if err := writeOutput(cfg, stdout, traj, sp.Snapshot()); err != nil {
		return err
	}

	if cfg.Output.Plot != "" {
		if err := writePlot(cfg.Output.Plot, sp); err != nil {
			return err
		}
		logger.Info("plot written", slog.String("file", cfg.Output.Plot))
	}
	if cfg.Output.Summary {
		report.Summary(stderr, sp)
		samples, err := rec.Gather()
		if err != nil {
			return err
		}
		report.Counters(stderr, samples)
	}

	return nil
}

func loadHistory(cfg *config.Config) (*popsize.History, error) {
	if cfg.Popsize == config.PopsizeConstant {
		return popsize.Constant(), nil
	}
	tf, sf := cfg.PopsizeFactors()

	return popsize.ParseFile(cfg.Popsize, tf, sf)
}

func writeOutput(cfg *config.Config, stdout io.Writer, traj *path.Path, snap *samplepath.Snapshot) error {
	w := stdout
	if cfg.Output.Path != "" && cfg.Output.Path != "-" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return fmt.Errorf("output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if cfg.Flip {
		snap.Path = traj.Dump()
	}

	return report.Write(w, cfg.Output.Format, traj.Times(), traj.Values(), snap)
}

func writePlot(name string, sp *samplepath.SamplePath) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	if err := report.Plot(f, sp, "Allele frequency trajectory"); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
