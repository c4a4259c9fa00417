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

// Package random provides the seedable generators samplers draw from.
//
// A Generator is not safe for concurrent use. Callers that share one
// generator between goroutines wrap it with NewLocked.
package random

import (
	"math/rand/v2"
	"sync"

	"go.uber.org/atomic"
)

const float53 = 1 << 53

type Generator struct {
	src   rand.Source
	draws atomic.Uint64
}

func New(src rand.Source) *Generator {
	return &Generator{src: src}
}

// NewSeeded is a shorthand for NewSource followed by New.
func NewSeeded(kind Kind, seed uint64) (*Generator, error) {
	src, err := NewSource(kind, seed)
	if err != nil {
		return nil, err
	}

	return New(src), nil
}

// Uint64 makes the generator usable as a rand.Source itself.
func (g *Generator) Uint64() uint64 {
	g.draws.Inc()
	return g.src.Uint64()
}

// Float64 returns a value in [0, 1).
func (g *Generator) Float64() float64 {
	return float64(g.Uint64()>>11) / float53
}

// Raw returns a value in the open interval (0, 1).
func (g *Generator) Raw() float64 {
	for {
		if v := g.Float64(); v != 0 {
			return v
		}
	}
}

// Draws is the number of values taken from the underlying source so far.
func (g *Generator) Draws() uint64 {
	return g.draws.Load()
}

type Locked struct {
	gen *Generator
	mu  sync.Mutex
}

func NewLocked(gen *Generator) *Locked {
	return &Locked{gen: gen}
}

func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.Uint64()
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.Float64()
}

func (l *Locked) Raw() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.Raw()
}

func (l *Locked) Draws() uint64 {
	return l.gen.Draws()
}
