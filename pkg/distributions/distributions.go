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

// Package distributions holds samplers for the Burr family of continuous
// distributions and a registry that builds them, alongside a few gonum
// backed distributions, from a name and a parameter set.
//
// Samplers never own their random source. Building a sampler stores its
// parameters as given; out of domain parameters are reported by Next.
package distributions

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/mo"
)

var (
	ErrInvalidShape            = errors.New("shape parameter out of domain")
	ErrUnknownFamilyMember     = errors.New("unknown burr family member")
	ErrMissingParameter        = errors.New("missing distribution parameter")
	ErrUnsupportedDistribution = errors.New("unsupported distribution")
)

type (
	// RandomSource yields uniform values in the open interval (0, 1).
	RandomSource interface {
		Raw() float64
	}

	// Source is what the registry needs: Burr samplers read Raw, gonum
	// distributions read Uint64.
	Source interface {
		RandomSource
		rand.Source
	}

	Sampler interface {
		Next() (float64, error)
	}

	// Params is the union of every registry entry's parameters.
	// Exponential uses R as the rate, Weibull uses R as the scale and K as
	// the shape, Pareto uses R as alpha and Min as the scale. Zipf uses R as
	// s, K as v and Max as the largest value.
	Params struct {
		K     mo.Option[float64]
		R     float64
		Mu    float64
		Sigma float64
		Min   float64
		Max   float64
	}
)

func (p Params) shapeK(distribution string) (float64, error) {
	k, ok := p.K.Get()
	if !ok {
		return 0, errors.Wrapf(ErrMissingParameter, "%s requires k", distribution)
	}
	return k, nil
}

type constructor func(p Params, src Source) (Sampler, error)

func burrOne(build func(r float64, src RandomSource) Sampler) constructor {
	return func(p Params, src Source) (Sampler, error) {
		return build(p.R, src), nil
	}
}

func burrTwo(name string, build func(r, k float64, src RandomSource) Sampler) constructor {
	return func(p Params, src Source) (Sampler, error) {
		k, err := p.shapeK(name)
		if err != nil {
			return nil, err
		}
		return build(p.R, k, src), nil
	}
}

func continuous(build func(p Params, src Source) (*Continuous, error)) constructor {
	return func(p Params, src Source) (Sampler, error) {
		c, err := build(p, src)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

var registry = map[string]constructor{
	"burr2":  burrOne(func(r float64, src RandomSource) Sampler { return NewBurr2(r, src) }),
	"burr7":  burrOne(func(r float64, src RandomSource) Sampler { return NewBurr7(r, src) }),
	"burr8":  burrOne(func(r float64, src RandomSource) Sampler { return NewBurr8(r, src) }),
	"burr10": burrOne(func(r float64, src RandomSource) Sampler { return NewBurr10(r, src) }),
	"burr3":  burrTwo("burr3", func(r, k float64, src RandomSource) Sampler { return NewBurr3(r, k, src) }),
	"burr4":  burrTwo("burr4", func(r, k float64, src RandomSource) Sampler { return NewBurr4(r, k, src) }),
	"burr5":  burrTwo("burr5", func(r, k float64, src RandomSource) Sampler { return NewBurr5(r, k, src) }),
	"burr6":  burrTwo("burr6", func(r, k float64, src RandomSource) Sampler { return NewBurr6(r, k, src) }),
	"burr9":  burrTwo("burr9", func(r, k float64, src RandomSource) Sampler { return NewBurr9(r, k, src) }),
	"burr12": burrTwo("burr12", func(r, k float64, src RandomSource) Sampler { return NewBurr12(r, k, src) }),

	"normal":      continuous(newNormal),
	"lognormal":   continuous(newLogNormal),
	"uniform":     continuous(newUniform),
	"exponential": continuous(newExponential),
	"weibull":     continuous(newWeibull),
	"pareto":      continuous(newPareto),
	"zipf": func(p Params, src Source) (Sampler, error) {
		z, err := newZipf(p, src)
		if err != nil {
			return nil, err
		}
		return z, nil
	},
}

// New builds the sampler registered under distribution (case insensitive).
// Burr samplers are built without checking r or k; gonum backed ones are
// checked here since they would silently return NaN.
func New(distribution string, p Params, src Source) (Sampler, error) {
	build, ok := registry[strings.ToLower(strings.TrimSpace(distribution))]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedDistribution, "%q", distribution)
	}

	return build(p, src)
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
