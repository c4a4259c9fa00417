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

package stop

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"go.uber.org/zap"
)

const (
	SignalNoop uint32 = iota
	SignalSoftStop
	SignalHardStop
)

type logger interface {
	Debug(msg string, fields ...zap.Field)
}

// Flag records a stop request. A soft stop asks producers to finish what
// they hold; a hard stop asks them to drop it. Hard overrides soft.
type Flag struct {
	log      logger
	ch       chan struct{}
	name     string
	handlers []func(signal uint32)
	mu       sync.Mutex
	val      atomic.Uint32
}

func NewFlag(name string) *Flag {
	return &Flag{
		name: name,
		log:  zap.NewNop(),
		ch:   make(chan struct{}),
	}
}

func (s *Flag) Name() string {
	return s.name
}

func (s *Flag) SetLogger(log logger) {
	s.log = log
}

func (s *Flag) sendSignal(signal uint32) bool {
	s.log.Debug(fmt.Sprintf("flag %s received signal %s", s.name, GetStateName(signal)))

	for {
		current := s.val.Load()
		if current >= signal {
			return false
		}
		if s.val.CompareAndSwap(current, signal) {
			break
		}
	}

	s.mu.Lock()
	select {
	case <-s.ch:
	default:
		close(s.ch)
	}
	handlers := s.handlers
	s.mu.Unlock()

	for _, handler := range handlers {
		handler(signal)
	}

	return true
}

func (s *Flag) SetHard() bool {
	return s.sendSignal(SignalHardStop)
}

func (s *Flag) SetSoft() bool {
	return s.sendSignal(SignalSoftStop)
}

// SignalChannel is closed on the first stop request of any kind.
func (s *Flag) SignalChannel() <-chan struct{} {
	return s.ch
}

func (s *Flag) IsSoft() bool {
	return s.val.Load() == SignalSoftStop
}

func (s *Flag) IsHard() bool {
	return s.val.Load() == SignalHardStop
}

func (s *Flag) IsHardOrSoft() bool {
	return s.val.Load() != SignalNoop
}

// AddHandler runs handler on every future signal, and right away if the
// flag is already set.
func (s *Flag) AddHandler(handler func(signal uint32)) {
	s.mu.Lock()
	s.handlers = append(s.handlers, handler)
	s.mu.Unlock()

	if val := s.val.Load(); val != SignalNoop {
		handler(val)
	}
}

func (s *Flag) CancelContextOnSignal(ctx context.Context, expectedSignal uint32) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	s.AddHandler(func(signal uint32) {
		if expectedSignal == SignalNoop || signal == expectedSignal {
			cancel()
		}
	})
	return ctx
}

// StartOsSignalsTransmitter turns SIGINT into a soft stop and SIGTERM, or
// any signal after the first, into a hard stop.
func StartOsSignalsTransmitter(logger *zap.Logger, flags ...*Flag) {
	names := make([]string, 0, len(flags))
	for i := range flags {
		names = append(names, flags[i].Name())
	}

	graceful := make(chan os.Signal, 2)
	signal.Notify(graceful, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for sig := range graceful {
			hard := sig == syscall.SIGTERM
			for i := range flags {
				if flags[i].IsHardOrSoft() {
					hard = true
				}
			}

			if hard {
				for i := range flags {
					flags[i].SetHard()
				}
				logger.Info("Get signal, begin hard stop.", zap.Stringer("signal", sig), zap.Strings("flags", names))
				signal.Stop(graceful)
				return
			}

			for i := range flags {
				flags[i].SetSoft()
			}
			logger.Info("Get SIGINT signal, begin soft stop.", zap.Strings("flags", names))
		}
	}()
}

func GetStateName(state uint32) string {
	switch state {
	case SignalSoftStop:
		return "soft"
	case SignalHardStop:
		return "hard"
	case SignalNoop:
		return "no-signal"
	default:
		panic(fmt.Sprintf("unexpected signal %d", state))
	}
}
