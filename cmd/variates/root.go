// Copyright 2019 ScyllaDB
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/scylladb/variates/pkg/distributions"
	"github.com/scylladb/variates/pkg/metrics"
	"github.com/scylladb/variates/pkg/utils"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:              "variates",
		Short:            "Variates draws reproducible samples from the Burr family and friends.",
		PersistentPreRun: preRun,
		SilenceUsage:     true,
	}

	setupFlags(rootCmd)

	rootCmd.AddCommand(newSampleCmd(), newListCmd(), newVersionCmd())

	return rootCmd
}

func preRun(cmd *cobra.Command, _ []string) {
	metrics.StartMetricsServer(cmd.Context(), metricsPort)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the distributions that can be sampled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range distributions.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// createLogger logs JSON to stderr, since stdout may carry samples, and
// optionally appends to file.
func createLogger(level, file string) (*zap.Logger, error) {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl.SetLevel(zap.InfoLevel)
	}

	sinks := []zapcore.WriteSyncer{zapcore.Lock(os.Stderr)}
	if file != "" {
		w, err := utils.CreateFile(file, true, nil)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, zapcore.Lock(zapcore.AddSync(w)))
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	encoderCfg.EncodeDuration = zapcore.StringDurationEncoder
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encoderCfg.EncodeCaller = nil

	logger := zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.NewMultiWriteSyncer(sinks...),
		lvl,
	))
	return logger, nil
}
