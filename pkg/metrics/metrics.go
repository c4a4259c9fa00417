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

package metrics

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registerer = prometheus.NewRegistry()

var prefixed = prometheus.WrapRegistererWithPrefix("variates_", registerer)

var (
	ExecutionTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "execution_time",
			Help:    "Time taken to execute a task.",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000, 30000},
		},
		[]string{"task"},
	)

	SamplesDrawn = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "samples_drawn",
			Help: "Number of samples drawn successfully.",
		},
		[]string{"distribution"},
	)

	SampleErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sample_errors",
			Help: "Number of failed draws.",
		},
		[]string{"distribution"},
	)

	SamplesWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "samples_written",
		},
		[]string{"format", "compression"},
	)
)

func init() {
	prefixed.MustRegister(ExecutionTime, SamplesDrawn, SampleErrors, SamplesWritten)

	prefixed.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
			ReportErrors: true,
			PidFn: func() (int, error) {
				return os.Getpid(), nil
			},
		}),
		collectors.NewBuildInfoCollector(),
	)
}

// RegisterSourceDraws exports the number of values taken from a random
// source. Registering the same source twice is an error.
func RegisterSourceDraws(source string, draws func() uint64) error {
	gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "source_draws",
		Help:        "Values taken from the random source.",
		ConstLabels: prometheus.Labels{"source": source},
	}, func() float64 {
		return float64(draws())
	})

	return errors.Wrapf(prefixed.Register(gauge), "failed to register draws of %s", source)
}

// StartMetricsServer serves /metrics on bind until ctx is done. An empty
// bind disables the server.
func StartMetricsServer(ctx context.Context, bind string) {
	if bind == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	server := &http.Server{
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      1 * time.Minute,
		Handler:           mux,
		Addr:              bind,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(errors.Wrapf(err, "failed to start metrics server on %s", bind))
		}
	}()

	go func() {
		<-ctx.Done()
		if err := server.Shutdown(context.Background()); err != nil {
			log.Println(err)
		}
	}()
}

func Handler() http.Handler {
	return promhttp.InstrumentMetricHandler(
		registerer, promhttp.HandlerFor(registerer, promhttp.HandlerOpts{
			EnableOpenMetrics: true,
			Registry:          registerer,
			OfferedCompressions: []promhttp.Compression{
				promhttp.Zstd,
				promhttp.Gzip,
				promhttp.Identity,
			},
		}),
	)
}

type RunningTime struct {
	start    time.Time
	observer prometheus.Observer
}

func ExecutionTimeStart(task string) RunningTime {
	return RunningTime{
		start:    time.Now(),
		observer: ExecutionTime.WithLabelValues(task),
	}
}

// Record observes the elapsed time in microseconds.
func (r RunningTime) Record() {
	r.observer.Observe(float64(time.Since(r.start).Microseconds()))
}

func ExecutionTimeWithError(task string, callback func() error) error {
	start := time.Now()
	err := callback()
	ExecutionTime.
		WithLabelValues(task).
		Observe(float64(time.Since(start).Nanoseconds()) / 1e3)

	return err
}
