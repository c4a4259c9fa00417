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
	"fmt"
	"runtime/debug"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const gonumPackage = "gonum.org/v1/gonum"

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type (
	ComponentInfo struct {
		Version    string `json:"version"`
		CommitDate string `json:"commit_date,omitempty"`
		CommitSHA  string `json:"commit_sha,omitempty"`
	}

	VersionInfo struct {
		Variates ComponentInfo `json:"variates"`
		Gonum    ComponentInfo `json:"gonum"`
	}
)

func NewVersionInfo() VersionInfo {
	info := VersionInfo{
		Variates: ComponentInfo{
			Version:    version,
			CommitDate: date,
			CommitSHA:  commit,
		},
		Gonum: ComponentInfo{Version: "unknown"},
	}

	if build, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range build.Deps {
			if dep.Path == gonumPackage {
				info.Gonum.Version = dep.Version
				if dep.Replace != nil {
					info.Gonum.Version = dep.Replace.Version
				}
			}
		}
	}

	return info
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("variates version: %s\n  commit: %s\n  date: %s\ngonum version: %s",
		v.Variates.Version, v.Variates.CommitSHA, v.Variates.CommitDate, v.Gonum.Version)
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := NewVersionInfo()

			if !asJSON {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return err
			}

			data, err := json.Marshal(info)
			if err != nil {
				return errors.Wrap(err, "failed to encode version")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version information as JSON")

	return cmd
}
