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
	"gonum.org/v1/gonum/stat/distuv"
)

type rander interface {
	Rand() float64
}

// Continuous adapts a gonum distribution to Sampler. The gonum
// distribution must read from the same Source the registry was given.
type Continuous struct {
	dist rander
}

func (c *Continuous) Next() (float64, error) {
	return c.dist.Rand(), nil
}

func newNormal(p Params, src Source) (*Continuous, error) {
	if err := positive("sigma", p.Sigma); err != nil {
		return nil, err
	}

	return &Continuous{dist: distuv.Normal{Mu: p.Mu, Sigma: p.Sigma, Src: src}}, nil
}

func newLogNormal(p Params, src Source) (*Continuous, error) {
	if err := positive("sigma", p.Sigma); err != nil {
		return nil, err
	}

	return &Continuous{dist: distuv.LogNormal{Mu: p.Mu, Sigma: p.Sigma, Src: src}}, nil
}

func newUniform(p Params, src Source) (*Continuous, error) {
	if err := positive("max-min", p.Max-p.Min); err != nil {
		return nil, err
	}

	return &Continuous{dist: distuv.Uniform{Min: p.Min, Max: p.Max, Src: src}}, nil
}

func newExponential(p Params, src Source) (*Continuous, error) {
	if err := positive("r", p.R); err != nil {
		return nil, err
	}

	return &Continuous{dist: distuv.Exponential{Rate: p.R, Src: src}}, nil
}

func newWeibull(p Params, src Source) (*Continuous, error) {
	k, err := p.shapeK("weibull")
	if err != nil {
		return nil, err
	}
	if err = positive("r", p.R); err != nil {
		return nil, err
	}
	if err = positive("k", k); err != nil {
		return nil, err
	}

	return &Continuous{dist: distuv.Weibull{K: k, Lambda: p.R, Src: src}}, nil
}

func newPareto(p Params, src Source) (*Continuous, error) {
	if err := positive("r", p.R); err != nil {
		return nil, err
	}
	if err := positive("min", p.Min); err != nil {
		return nil, err
	}

	return &Continuous{dist: distuv.Pareto{Xm: p.Min, Alpha: p.R, Src: src}}, nil
}
