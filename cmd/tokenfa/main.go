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

// Command tokenfa builds the token class automata, writes them as Graphviz
// graphs and transition tables, and checks them against reference samples.
//
//	tokenfa build -o out --render-png
//	tokenfa test
//	tokenfa match "Count_2" "+99"
//
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/db47h/tokenfa"
	"github.com/db47h/tokenfa/dfa"
	"github.com/db47h/tokenfa/token"
)

type cli struct {
	Config      string   `help:"YAML configuration file." type:"existingfile" placeholder:"PATH"`
	LogLevel    string   `help:"Log level: debug, info, warn or error (default info)." placeholder:"LEVEL"`
	Alphabet    string   `help:"Input alphabet: \"printable\" or a literal string of symbols." placeholder:"SYMBOLS"`
	Only        []string `help:"Only build token classes matching these glob patterns." placeholder:"GLOB"`
	MetricsFile string   `help:"Write Prometheus metrics to this file on exit." placeholder:"PATH"`

	Build buildCmd `cmd:"" help:"Write DOT graphs and transition tables of every automaton."`
	Test  testCmd  `cmd:"" help:"Run the sample acceptance tests on every automaton."`
	Match matchCmd `cmd:"" help:"Print the token classes accepting each text."`
}

// env is bound to the Run methods of commands.
//
type env struct {
	out      io.Writer
	log      *slog.Logger
	compiler *tokenfa.Compiler
	alphabet dfa.Alphabet
	priority []string
}

// result builds the automata for the selected classes.
//
func (e *env) result() (*tokenfa.Result, error) {
	return e.compiler.Compile(e.alphabet, e.priority...)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("tokenfa"),
		kong.Description("Token class NFA, DFA and minimal DFA builder."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError())
	if err != nil {
		fmt.Fprintf(stderr, "tokenfa: %v\n", err)
		return 2
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%v", err)
		return 2
	}

	e, reg, err := c.setup(stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "tokenfa: %v\n", err)
		return 1
	}
	err = ctx.Run(e)
	if c.MetricsFile != "" {
		if merr := prometheus.WriteToTextfile(c.MetricsFile, reg); merr != nil {
			e.log.Error("write metrics", "path", c.MetricsFile, "err", merr)
		}
	}
	if err != nil {
		e.log.Error("command failed", "command", ctx.Command(), "err", err)
		return 1
	}
	return 0
}

// setup merges the configuration file with command line flags, the latter
// taking precedence, and prepares the command environment.
//
func (c *cli) setup(stdout, stderr io.Writer) (*env, *prometheus.Registry, error) {
	cfg := &config{}
	if c.Config != "" {
		var err error
		if cfg, err = loadConfig(c.Config); err != nil {
			return nil, nil, err
		}
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	if c.Alphabet != "" {
		cfg.Alphabet = c.Alphabet
	}
	if len(c.Only) > 0 {
		cfg.Only = c.Only
	}

	var lvl slog.Level
	if cfg.LogLevel != "" {
		if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, nil, errors.Wrap(err, "log level")
		}
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	// default build parallelism follows GOMAXPROCS
	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		log.Debug(fmt.Sprintf(format, args...))
	})); err != nil {
		log.Warn("set GOMAXPROCS", "err", err)
	}

	priority := cfg.Priority
	if len(priority) == 0 {
		priority = token.Priority()
	}
	priority, err := selectClasses(priority, cfg.Only)
	if err != nil {
		return nil, nil, err
	}

	reg := prometheus.NewRegistry()
	comp, err := tokenfa.NewCompiler(4,
		tokenfa.WithLogger(log),
		tokenfa.WithRegisterer(reg),
		tokenfa.WithParallelism(cfg.Parallelism))
	if err != nil {
		return nil, nil, err
	}
	return &env{
		out:      stdout,
		log:      log,
		compiler: comp,
		alphabet: parseAlphabet(cfg.Alphabet),
		priority: priority,
	}, reg, nil
}

// parseAlphabet returns the printable ASCII alphabet for "" and "printable",
// or the symbols of s in order.
//
func parseAlphabet(s string) dfa.Alphabet {
	if s == "" || s == "printable" {
		return dfa.PrintableASCII()
	}
	return dfa.NewAlphabet([]rune(s)...)
}

// selectClasses filters names by the given glob patterns, keeping order. All
// names are kept if there are no patterns.
//
func selectClasses(names, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return names, nil
	}
	gs := make([]glob.Glob, len(patterns))
	for i, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "class pattern %q", p)
		}
		gs[i] = g
	}
	var sel []string
	for _, n := range names {
		for _, g := range gs {
			if g.Match(n) {
				sel = append(sel, n)
				break
			}
		}
	}
	if len(sel) == 0 {
		return nil, errors.Wrapf(tokenfa.ErrNoClass, "patterns %q", patterns)
	}
	return sel, nil
}
