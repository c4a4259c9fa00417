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

package random

import (
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"math/bits"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/seehuhn/mt19937"
	"github.com/twmb/murmur3"
)

type Kind int

const (
	KindPCG Kind = iota
	KindChaCha8
	KindMT19937
	KindCrypto
	KindTime
)

var ErrUnknownKind = errors.New("unknown random source")

func (k Kind) String() string {
	switch k {
	case KindPCG:
		return "pcg"
	case KindChaCha8:
		return "chacha8"
	case KindMT19937:
		return "mt19937"
	case KindCrypto:
		return "crypto"
	case KindTime:
		return "time"
	default:
		panic("unknown random source kind")
	}
}

// Reproducible reports whether two sources of this kind built from the same
// seed produce the same stream.
func (k Kind) Reproducible() bool {
	return k != KindCrypto && k != KindTime
}

func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "pcg", "":
		return KindPCG, nil
	case "chacha8":
		return KindChaCha8, nil
	case "mt19937", "mt":
		return KindMT19937, nil
	case "crypto":
		return KindCrypto, nil
	case "time":
		return KindTime, nil
	default:
		return KindPCG, errors.Wrapf(ErrUnknownKind, "%q", value)
	}
}

// NewSource builds a source of the given kind. Crypto and time sources
// ignore the seed.
func NewSource(kind Kind, seed uint64) (rand.Source, error) {
	switch kind {
	case KindPCG:
		return rand.NewPCG(seed, seed), nil
	case KindChaCha8:
		return rand.NewChaCha8(sha256.Sum256([]byte(strconv.FormatUint(seed, 10)))), nil
	case KindMT19937:
		mt := mt19937.New()
		mt.Seed(int64(seed))
		return mt, nil
	case KindCrypto:
		return &crandSource{}, nil
	case KindTime:
		return NewTimeSource(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "kind %d", int(kind))
	}
}

// SeedFromString turns a user supplied seed into a number: "random" draws
// one from the OS, decimal strings are parsed, anything else is hashed.
func SeedFromString(seed string) uint64 {
	seed = strings.TrimSpace(seed)
	if seed == "random" {
		var out [8]byte
		if _, err := crand.Read(out[:]); err != nil {
			return NewTimeSource().Uint64()
		}
		return binary.LittleEndian.Uint64(out[:])
	}

	if val, err := strconv.ParseUint(seed, 10, 64); err == nil {
		return val
	}

	return murmur3.Sum64([]byte(seed))
}

type crandSource struct{}

func (c *crandSource) Uint64() uint64 {
	var out [8]byte
	_, _ = crand.Read(out[:])
	return binary.LittleEndian.Uint64(out[:])
}

type TimeSource struct {
	source rand.Source
}

func NewTimeSource() *TimeSource {
	now := time.Now()
	val := uint64(now.Nanosecond() * now.Second())

	return &TimeSource{
		source: rand.NewPCG(val, val),
	}
}

func (c *TimeSource) Uint64() uint64 {
	now := time.Now()
	val := c.source.Uint64()
	return bits.RotateLeft64(val^uint64(now.Nanosecond()*now.Second()), -int(val>>58))
}
