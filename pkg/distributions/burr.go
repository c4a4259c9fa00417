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

package distributions

import (
	"math"

	"github.com/pkg/errors"
)

// NextBurr1 draws one value from the Burr II, VII, VIII or X distribution
// with shape r > 0, selected by nr, using inversion (Devroye, Non-Uniform
// Random Variate Generation, 1986). It consumes exactly one value of src.
//
// Parameters are checked before drawing, so a failed call leaves src
// untouched.
func NextBurr1(r float64, nr int, src RandomSource) (float64, error) {
	if err := positive("r", r); err != nil {
		return 0, err
	}

	switch nr {
	case 2, 7, 8, 10:
	default:
		return 0, errors.Wrapf(ErrUnknownFamilyMember, "burr%d with one shape parameter", nr)
	}

	// y = u^(1/r)
	y := math.Pow(src.Raw(), 1/r)

	switch nr {
	case 2:
		return -math.Log(1/y - 1), nil
	case 7:
		return math.Log(2*y/(2-2*y)) / 2, nil
	case 8:
		return math.Log(math.Tan(y * math.Pi / 2)), nil
	default:
		return math.Sqrt(-math.Log(1 - y)), nil
	}
}

// NextBurr2 draws one value from the Burr III, IV, V, VI, IX or XII
// distribution with shapes r > 0 and k > 0, selected by nr. Like NextBurr1
// it consumes exactly one value of src and validates before drawing.
func NextBurr2(r, k float64, nr int, src RandomSource) (float64, error) {
	if err := positive("r", r); err != nil {
		return 0, err
	}
	if err := positive("k", k); err != nil {
		return 0, err
	}

	switch nr {
	case 3, 4, 5, 6, 9, 12:
	default:
		return 0, errors.Wrapf(ErrUnknownFamilyMember, "burr%d with two shape parameters", nr)
	}

	u := src.Raw()
	// y = u^(-1/r) - 1
	y := math.Pow(u, -1/r) - 1

	switch nr {
	case 3:
		return math.Pow(y, -1/k), nil
	case 4:
		return k / (math.Pow(y, k) + 1), nil
	case 5:
		return math.Atan(-math.Log(y / k)), nil
	case 6:
		return math.Asinh(-math.Log(y/k) / r), nil
	case 9:
		v := 1 + 2*u/(k*(1-u))
		return math.Log(math.Pow(v, 1/r) - 1), nil
	default:
		return math.Pow(y, 1/k), nil
	}
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return errors.Wrapf(ErrInvalidShape, "%s=%v", name, v)
	}
	return nil
}
