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

type burr1Func func(r float64, nr int, src RandomSource) (float64, error)

// Burr7 samples the Burr Type VII distribution with shape r.
// It does not own src; concurrent use of a shared src is the caller's
// responsibility.
type Burr7 struct {
	src  RandomSource
	next burr1Func
	r    float64
}

// NewBurr7 stores r and src as given. r is checked on every Next call.
func NewBurr7(r float64, src RandomSource) *Burr7 {
	return &Burr7{
		r:    r,
		src:  src,
		next: NextBurr1,
	}
}

func (b *Burr7) R() float64 {
	return b.r
}

// Next returns NextBurr1(r, 7, src) unchanged, error included.
func (b *Burr7) Next() (float64, error) {
	// Burr VII belongs to the one shape parameter family.
	return b.next(b.r, 7, b.src)
}
