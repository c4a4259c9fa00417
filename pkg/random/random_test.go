// Copyright 2025 ScyllaDB
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

package random_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scylladb/variates/pkg/random"
)

type sequenceSource struct {
	values []uint64
	idx    int
}

func (s *sequenceSource) Uint64() uint64 {
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v
}

func TestGeneratorRawIsOpenInterval(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	gen, err := random.NewSeeded(random.KindPCG, 7)
	assert.NoError(err)

	for range 100_000 {
		v := gen.Raw()
		assert.Greater(v, 0.0)
		assert.Less(v, 1.0)
	}
}

func TestGeneratorRawRejectsZero(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	gen := random.New(&sequenceSource{values: []uint64{0, 1 << 63}})

	assert.Equal(0.5, gen.Raw())
	assert.Equal(uint64(2), gen.Draws())
}

func TestGeneratorCountsDraws(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	gen, err := random.NewSeeded(random.KindChaCha8, 1)
	assert.NoError(err)

	for range 10 {
		gen.Raw()
	}
	gen.Float64()
	gen.Uint64()

	assert.Equal(uint64(12), gen.Draws())
}

func TestGeneratorDeterminism(t *testing.T) {
	t.Parallel()

	for _, kind := range []random.Kind{random.KindPCG, random.KindChaCha8, random.KindMT19937} {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()
			assert := require.New(t)
			assert.True(kind.Reproducible())

			first, err := random.NewSeeded(kind, 12345)
			assert.NoError(err)
			second, err := random.NewSeeded(kind, 12345)
			assert.NoError(err)
			other, err := random.NewSeeded(kind, 54321)
			assert.NoError(err)

			same := 0
			for range 1000 {
				v := first.Raw()
				assert.Equal(v, second.Raw())
				if v == other.Raw() {
					same++
				}
			}
			assert.Less(same, 10)
		})
	}
}

func TestLockedConcurrentDraws(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	gen, err := random.NewSeeded(random.KindPCG, 99)
	assert.NoError(err)
	locked := random.NewLocked(gen)

	const (
		workers = 8
		draws   = 1000
	)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for range draws {
				locked.Raw()
			}
		}()
	}
	wg.Wait()

	assert.Equal(uint64(workers*draws), locked.Draws())
}
