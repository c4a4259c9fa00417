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

package stop_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/scylladb/variates/pkg/stop"
)

func TestHardStop(t *testing.T) {
	t.Parallel()
	testFlag, ctx, workersDone := initVars()
	workers := 30

	testSignals(t, workersDone, workers, testFlag.IsHard, testFlag.SetHard)
	if ctx.Err() == nil {
		t.Error("Error:SetHard function does not apply hardStopHandler")
	}
}

func TestSoftStop(t *testing.T) {
	t.Parallel()
	testFlag, ctx, workersDone := initVars()
	workers := 30

	testSignals(t, workersDone, workers, testFlag.IsSoft, testFlag.SetSoft)
	if ctx.Err() != nil {
		t.Error("Error:SetSoft function apply hardStopHandler")
	}
}

func TestSoftThenHard(t *testing.T) {
	t.Parallel()
	testFlag, ctx, _ := initVars()

	if !testFlag.SetSoft() {
		t.Fatal("first soft stop was not applied")
	}
	if testFlag.SetSoft() {
		t.Error("repeated soft stop was applied")
	}
	if ctx.Err() != nil {
		t.Error("soft stop cancelled hard stop context")
	}

	if !testFlag.SetHard() {
		t.Fatal("hard stop after soft stop was not applied")
	}
	if ctx.Err() == nil {
		t.Error("hard stop did not cancel context")
	}
	if testFlag.SetSoft() {
		t.Error("soft stop downgraded a hard stop")
	}
	if !testFlag.IsHard() {
		t.Error("flag is not hard")
	}
}

func TestSignalChannel(t *testing.T) {
	t.Parallel()
	testFlag := stop.NewFlag("channel_test")
	if testFlag.Name() != "channel_test" {
		t.Errorf("unexpected flag name %q", testFlag.Name())
	}

	select {
	case <-testFlag.SignalChannel():
		t.Fatal("channel closed before any signal")
	default:
	}

	testFlag.SetSoft()
	testFlag.SetHard()

	select {
	case <-testFlag.SignalChannel():
	case <-time.After(time.Second):
		t.Fatal("channel not closed after signal")
	}
}

func TestLateHandler(t *testing.T) {
	t.Parallel()
	testFlag := stop.NewFlag("late_test")
	testFlag.SetHard()

	var got atomic.Uint32
	testFlag.AddHandler(func(signal uint32) { got.Store(signal) })

	if got.Load() != stop.SignalHardStop {
		t.Errorf("late handler got %s", stop.GetStateName(got.Load()))
	}
}

func initVars() (testFlag *stop.Flag, ctx context.Context, workersDone *atomic.Uint32) {
	testFlagOut := stop.NewFlag("main_test")
	ctx = testFlagOut.CancelContextOnSignal(context.Background(), stop.SignalHardStop)
	workersDone = &atomic.Uint32{}
	return testFlagOut, ctx, workersDone
}

func testSignals(
	t *testing.T,
	workersDone *atomic.Uint32,
	workers int,
	checkFunc func() bool,
	setFunc func() bool,
) {
	t.Helper()
	for i := 0; i != workers; i++ {
		go func() {
			for {
				if checkFunc() {
					workersDone.Add(1)
					return
				}
				time.Sleep(10 * time.Millisecond)
			}
		}()
	}
	time.Sleep(200 * time.Millisecond)
	setFunc()

	for i := 0; i != 10; i++ {
		time.Sleep(100 * time.Millisecond)
		if workersDone.Load() == uint32(workers) {
			break
		}
	}

	if workersDone.Load() != uint32(workers) {
		t.Errorf("Error: %d of %d workers observed the stop", workersDone.Load(), workers)
	}
}
