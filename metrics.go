// Copyright 2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package tokenfa

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Pipeline stages, as reported in the stage label of build metrics.
//
const (
	StageNFA      = "nfa"
	StageDFA      = "dfa"
	StageMinimize = "minimize"
	StageCombine  = "combine"
)

type metrics struct {
	builds *prometheus.CounterVec
	stage  *prometheus.HistogramVec
	states *prometheus.GaugeVec
	cache  *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		builds: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tokenfa",
			Name:      "builds_total",
			Help:      "Number of automata pipeline runs.",
		}, []string{"result"})),
		stage: register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tokenfa",
			Name:      "stage_seconds",
			Help:      "Time spent in each construction stage.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"stage"})),
		states: register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "tokenfa",
			Name:      "states",
			Help:      "Number of states of the last built automaton.",
		}, []string{"automaton", "stage"})),
		cache: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tokenfa",
			Name:      "cache_requests_total",
			Help:      "Compiler cache lookups.",
		}, []string{"result"})),
	}
}

// register registers c with reg. If an identical collector is already
// registered, that one is returned instead.
//
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if reg == nil {
		return c
	}
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}
