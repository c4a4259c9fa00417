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
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/scylladb/variates/pkg/distributions"
)

// Config keys match the sample command's flag names.
type Config struct {
	K            *float64 `mapstructure:"k"            json:"k,omitempty"`
	Distribution string   `mapstructure:"distribution" json:"distribution"`
	Seed         string   `mapstructure:"seed"         json:"seed"`
	Source       string   `mapstructure:"source"       json:"source"`
	Output       string   `mapstructure:"output"       json:"output"`
	Format       string   `mapstructure:"format"       json:"format"`
	Compression  string   `mapstructure:"compression"  json:"compression"`
	R            float64  `mapstructure:"r"            json:"r"`
	Mu           float64  `mapstructure:"mu"           json:"mu"`
	Sigma        float64  `mapstructure:"sigma"        json:"sigma"`
	Min          float64  `mapstructure:"min"          json:"min"`
	Max          float64  `mapstructure:"max"          json:"max"`
	Count        uint64   `mapstructure:"count"        json:"count"`
}

func defaultConfig() Config {
	return Config{
		Distribution: "burr7",
		R:            1,
		Sigma:        1,
		Max:          1,
		Seed:         "random",
		Source:       "pcg",
		Count:        1000,
		Format:       "text",
		Compression:  "none",
	}
}

func (c Config) Params() distributions.Params {
	k := mo.None[float64]()
	if c.K != nil {
		k = mo.Some(*c.K)
	}

	return distributions.Params{
		R:     c.R,
		K:     k,
		Mu:    c.Mu,
		Sigma: c.Sigma,
		Min:   c.Min,
		Max:   c.Max,
	}
}

// loadConfig layers the config file, if any, over cfg and then the flags the
// user set explicitly over both.
func loadConfig(cmd *cobra.Command, cfg Config, path string) (Config, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "failed to read config %s", path)
		}

		var raw map[string]any
		if err = json.Unmarshal(data, &raw); err != nil {
			return cfg, errors.Wrapf(err, "failed to parse config %s", path)
		}

		if err = decode(raw, &cfg, true); err != nil {
			return cfg, errors.Wrapf(err, "invalid config %s", path)
		}
	}

	explicit := make(map[string]any)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		explicit[f.Name] = f.Value.String()
	})

	if err := decode(explicit, &cfg, false); err != nil {
		return cfg, errors.Wrap(err, "invalid flags")
	}

	return cfg, nil
}

func decode(input map[string]any, cfg *Config, strict bool) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      strict,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
