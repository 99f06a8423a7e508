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
	"log/slog"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/db47h/tokenfa/dfa"
	"github.com/db47h/tokenfa/nfa"
	"github.com/db47h/tokenfa/token"
)

type options struct {
	alphabet    dfa.Alphabet
	priority    []string
	builders    map[string]func() *nfa.NFA
	logger      *slog.Logger
	parallelism int
	registerer  prometheus.Registerer
}

// An Option is a configuration option for Build and NewCompiler.
//
type Option func(*options)

// WithAlphabet sets the input alphabet of the DFAs. Defaults to
// dfa.PrintableASCII().
//
func WithAlphabet(a dfa.Alphabet) Option {
	return func(o *options) {
		o.alphabet = dfa.NewAlphabet(a...)
	}
}

// WithPriority selects the token classes to build and their merge order in
// the combined automaton. Defaults to token.Priority().
//
func WithPriority(names ...string) Option {
	return func(o *options) {
		o.priority = append([]string(nil), names...)
	}
}

// WithClass registers a custom token class, or replaces the recipe of a
// built-in one. The class must still be listed in the priority order to be
// built.
//
func WithClass(name string, build func() *nfa.NFA) Option {
	return func(o *options) {
		o.builders[name] = build
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
//
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithParallelism bounds the number of token classes built concurrently.
// Values < 1 select runtime.GOMAXPROCS(0).
//
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithRegisterer sets the Prometheus registerer for build metrics. A nil
// registerer disables registration. Defaults to prometheus.DefaultRegisterer.
//
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = r
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		alphabet:   dfa.PrintableASCII(),
		priority:   token.Priority(),
		builders:   make(map[string]func() *nfa.NFA),
		logger:     slog.Default(),
		registerer: prometheus.DefaultRegisterer,
	}
	for _, c := range token.Classes() {
		o.builders[c.Name] = c.Build
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.parallelism < 1 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}
	if o.logger == nil {
		o.logger = slog.New(discardHandler{})
	}
	return o
}
