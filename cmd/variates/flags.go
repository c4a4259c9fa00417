// Copyright 2019 ScyllaDB
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
	"strings"

	"github.com/spf13/cobra"

	"github.com/scylladb/variates/pkg/distributions"
)

var (
	level       string
	logFile     string
	metricsPort string
)

func setupFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&level, "level", "", "info", "Specify the logging level, debug|info|warn|error|dpanic|panic|fatal")
	cmd.PersistentFlags().StringVarP(&logFile, "log-file", "", "", "Also append logs to this file")
	cmd.PersistentFlags().StringVarP(&metricsPort, "metrics-port", "", "", "Bind address of the Prometheus endpoint, e.g. 0.0.0.0:2112; empty disables it")
}

func setupSampleFlags(cmd *cobra.Command, cfg *Config, configFile *string) {
	cmd.Flags().StringVarP(configFile, "config", "c", "", "JSON file with sample settings; explicit flags take precedence")
	cmd.Flags().StringVarP(&cfg.Distribution, "distribution", "d", cfg.Distribution,
		"Distribution to sample: "+strings.Join(distributions.Names(), "|"))
	cmd.Flags().Float64Var(&cfg.R, "r", cfg.R, "Shape r of Burr distributions; rate, scale or alpha of the others")
	cmd.Flags().Float64("k", 0, "Second shape k of two parameter Burr distributions and of weibull")
	cmd.Flags().Float64Var(&cfg.Mu, "mu", cfg.Mu, "Mean of normal and lognormal")
	cmd.Flags().Float64Var(&cfg.Sigma, "sigma", cfg.Sigma, "Standard deviation of normal and lognormal")
	cmd.Flags().Float64Var(&cfg.Min, "min", cfg.Min, "Lower bound of uniform, scale of pareto")
	cmd.Flags().Float64Var(&cfg.Max, "max", cfg.Max, "Upper bound of uniform")
	cmd.Flags().StringVarP(&cfg.Seed, "seed", "s", cfg.Seed, "Seed: a number, any text, or 'random'")
	cmd.Flags().StringVarP(&cfg.Source, "source", "", cfg.Source, "Random source, pcg|chacha8|mt19937|crypto|time")
	cmd.Flags().Uint64VarP(&cfg.Count, "count", "n", cfg.Count, "Number of samples to draw")
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "File to write samples to; stdout when empty")
	cmd.Flags().StringVarP(&cfg.Format, "format", "", cfg.Format, "Output format, text|json")
	cmd.Flags().StringVarP(&cfg.Compression, "compression", "", cfg.Compression, "Output compression, none|zstd|gzip")
}
