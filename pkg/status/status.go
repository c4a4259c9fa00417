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

package status

import (
	"encoding/json"
	"io"
	"sync/atomic"

	"github.com/pkg/errors"
)

type Uint64 struct {
	atomic.Uint64
}

func (u *Uint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Load())
}

// RunStatus counts what a sampling run did. Producer and writer goroutines
// update it concurrently.
type RunStatus struct {
	Drawn      Uint64 `json:"drawn"`
	Written    Uint64 `json:"written"`
	DrawErrors Uint64 `json:"draw_errors"`
	Draws      Uint64 `json:"source_draws"`
}

func (rs *RunStatus) HasErrors() bool {
	return rs.DrawErrors.Load() > 0
}

func (rs *RunStatus) PrintResultAsJSON(w io.Writer, version string, seed uint64, settings any) error {
	result := map[string]any{
		"result":           rs,
		"variates_version": version,
		"seed":             seed,
		"settings":         settings,
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent(" ", "    ")
	if err := encoder.Encode(result); err != nil {
		return errors.Wrap(err, "unable to create json from result")
	}

	return nil
}
