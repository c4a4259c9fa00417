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

package distributions

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Zipf draws integers in [0, Max] with P(k) proportional to (v+k)^(-s),
// where s is R and v is K (1 when unset).
type Zipf struct {
	zipf *rand.Zipf
}

func (z *Zipf) Next() (float64, error) {
	return float64(z.zipf.Uint64()), nil
}

func newZipf(p Params, src Source) (*Zipf, error) {
	if math.IsNaN(p.R) || math.IsInf(p.R, 0) || p.R <= 1 {
		return nil, errors.Wrapf(ErrInvalidShape, "zipf requires r > 1, got r=%v", p.R)
	}

	v := p.K.OrElse(1)
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 1 {
		return nil, errors.Wrapf(ErrInvalidShape, "zipf requires k >= 1, got k=%v", v)
	}

	if math.IsNaN(p.Max) || p.Max < 1 || p.Max > math.MaxInt64 {
		return nil, errors.Wrapf(ErrInvalidShape, "zipf requires max >= 1, got max=%v", p.Max)
	}

	return &Zipf{zipf: rand.NewZipf(rand.New(src), p.R, v, uint64(p.Max))}, nil
}
