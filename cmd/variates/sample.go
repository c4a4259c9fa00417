// Copyright 2025 ScyllaDB
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/scylladb/variates/pkg/distributions"
	"github.com/scylladb/variates/pkg/metrics"
	"github.com/scylladb/variates/pkg/output"
	"github.com/scylladb/variates/pkg/random"
	"github.com/scylladb/variates/pkg/status"
	"github.com/scylladb/variates/pkg/stop"
	"github.com/scylladb/variates/pkg/utils"
)

const samplesChanSize = 1024

var ErrHardStop = errors.New("sampling stopped before all samples were written")

func newSampleCmd() *cobra.Command {
	cfg := defaultConfig()
	var configFile string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw samples from a distribution and write them out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadConfig(cmd, cfg, configFile)
			if err != nil {
				return err
			}

			return runSample(cmd.Context(), loaded, cmd.ErrOrStderr())
		},
	}

	setupSampleFlags(cmd, &cfg, &configFile)

	return cmd
}

func runSample(ctx context.Context, cfg Config, setupOut io.Writer) error {
	logger, err := createLogger(level, logFile)
	if err != nil {
		return err
	}
	defer utils.IgnoreError(logger.Sync)

	stopFlag := stop.NewFlag("sample")
	stopFlag.SetLogger(logger)
	stop.StartOsSignalsTransmitter(logger, stopFlag)

	var job *sampleJob
	err = metrics.ExecutionTimeWithError("setup", func() error {
		var setupErr error
		job, setupErr = newSampleJob(cfg)
		return setupErr
	})
	if err != nil {
		return err
	}

	if !job.kind.Reproducible() && cfg.Seed != "random" {
		logger.Warn("seed is ignored by this source, samples will not repeat",
			zap.String("source", job.kind.String()),
			zap.String("seed", cfg.Seed),
		)
	}

	if err = metrics.RegisterSourceDraws(cfg.Source, job.gen.Draws); err != nil {
		logger.Warn("source draws are not exported", zap.Error(err))
	}

	printSetup(setupOut, cfg, job.seed)

	written, err := job.run(ctx, stopFlag)
	job.status.Draws.Store(job.gen.Draws())
	if printErr := job.status.PrintResultAsJSON(setupOut, version, job.seed, cfg); printErr != nil {
		logger.Warn("failed to print run result", zap.Error(printErr))
	}

	if err != nil {
		logger.Error("sampling failed",
			zap.Error(err),
			zap.NamedError("cause", utils.UnwrapErr(err)),
			zap.String("distribution", cfg.Distribution),
			zap.Uint64("seed", job.seed),
			zap.Uint64("written", written),
		)
		return err
	}

	logger.Info("sampling finished",
		zap.String("distribution", cfg.Distribution),
		zap.Uint64("seed", job.seed),
		zap.Uint64("written", written),
		zap.Uint64("draws", job.gen.Draws()),
		zap.Bool("stopped", stopFlag.IsHardOrSoft()),
	)

	return nil
}

type sampleJob struct {
	sampler     distributions.Sampler
	gen         *random.Generator
	kind        random.Kind
	cfg         Config
	seed        uint64
	format      output.Format
	compression output.Compression
	status      status.RunStatus
}

func newSampleJob(cfg Config) (*sampleJob, error) {
	kind, err := random.ParseKind(cfg.Source)
	if err != nil {
		return nil, err
	}

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	compression, err := output.ParseCompression(cfg.Compression)
	if err != nil {
		return nil, err
	}

	seed := random.SeedFromString(cfg.Seed)

	gen, err := random.NewSeeded(kind, seed)
	if err != nil {
		return nil, err
	}

	sampler, err := distributions.New(cfg.Distribution, cfg.Params(), gen)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sampler")
	}

	return &sampleJob{
		sampler:     sampler,
		gen:         gen,
		kind:        kind,
		cfg:         cfg,
		seed:        seed,
		format:      format,
		compression: compression,
	}, nil
}

// run draws up to cfg.Count samples on one goroutine and writes them on
// another. A soft stop ends drawing and flushes what was drawn; a hard stop
// abandons the rest.
func (j *sampleJob) run(ctx context.Context, stopFlag *stop.Flag) (uint64, error) {
	defer metrics.ExecutionTimeStart("sample").Record()

	w, err := output.Open(j.cfg.Output, j.format, j.compression)
	if err != nil {
		return 0, err
	}

	ctx = stopFlag.CancelContextOnSignal(ctx, stop.SignalHardStop)
	drawn := metrics.SamplesDrawn.WithLabelValues(j.cfg.Distribution)
	failed := metrics.SampleErrors.WithLabelValues(j.cfg.Distribution)
	writtenCounter := metrics.SamplesWritten.WithLabelValues(j.format.String(), j.compression.String())

	ch := make(chan float64, samplesChanSize)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(ch)

		for i := uint64(0); i < j.cfg.Count; i++ {
			if stopFlag.IsHardOrSoft() {
				return nil
			}

			v, sampleErr := j.sampler.Next()
			if sampleErr != nil {
				failed.Inc()
				j.status.DrawErrors.Add(1)
				return errors.Wrapf(sampleErr, "failed to draw sample %d", i)
			}
			drawn.Inc()
			j.status.Drawn.Add(1)

			select {
			case ch <- v:
			case <-gCtx.Done():
				return gCtx.Err()
			}
		}

		return nil
	})

	g.Go(func() error {
		for {
			select {
			case v, ok := <-ch:
				if !ok {
					return nil
				}
				if writeErr := w.Write(v); writeErr != nil {
					return writeErr
				}
				writtenCounter.Inc()
				j.status.Written.Add(1)
			case <-gCtx.Done():
				return gCtx.Err()
			}
		}
	})

	err = g.Wait()
	if stopFlag.IsHard() {
		err = multierr.Append(ErrHardStop, err)
	}

	err = multierr.Append(err, errors.Wrap(w.Close(), "failed to close output"))

	return w.Written(), err
}

func printSetup(out io.Writer, cfg Config, seed uint64) {
	tw := new(tabwriter.Writer)
	tw.Init(out, 0, 8, 2, '\t', tabwriter.AlignRight)
	_, _ = fmt.Fprintf(tw, "Distribution:\t%s\n", cfg.Distribution)
	_, _ = fmt.Fprintf(tw, "Seed:\t%d\n", seed)
	_, _ = fmt.Fprintf(tw, "Source:\t%s\n", cfg.Source)
	_, _ = fmt.Fprintf(tw, "Samples:\t%d\n", cfg.Count)
	if cfg.Output == "" {
		_, _ = fmt.Fprintf(tw, "Output file:\t%s\n", "<stdout>")
	} else {
		_, _ = fmt.Fprintf(tw, "Output file:\t%s\n", cfg.Output)
	}
	_ = tw.Flush()

	jsonConfig, _ := json.MarshalIndent(cfg, "", "    ")
	_, _ = fmt.Fprintf(out, "Config: %s\n", jsonConfig)
}
