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
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/db47h/tokenfa/dfa"
)

// A Compiler builds token automata for varying alphabets and class
// selections and caches the results. It is safe for concurrent use.
//
type Compiler struct {
	opts  *options
	m     *metrics
	cache *lru.Cache[string, *Result]
}

// NewCompiler returns a Compiler caching up to size results. The options
// apply to every build; the alphabet and priority options act as defaults for
// Compile.
//
func NewCompiler(size int, opts ...Option) (*Compiler, error) {
	c, err := lru.New[string, *Result](size)
	if err != nil {
		return nil, err
	}
	o := newOptions(opts)
	return &Compiler{opts: o, m: newMetrics(o.registerer), cache: c}, nil
}

// Compile returns the automata for the given alphabet and priority order. A
// nil alphabet or empty priority selects the Compiler defaults. Results are
// shared between callers and must not be modified.
//
func (c *Compiler) Compile(alphabet dfa.Alphabet, priority ...string) (*Result, error) {
	o := *c.opts
	if alphabet != nil {
		o.alphabet = dfa.NewAlphabet(alphabet...)
	}
	if len(priority) > 0 {
		o.priority = priority
	}
	key := cacheKey(o.alphabet, o.priority)
	if r, ok := c.cache.Get(key); ok {
		c.m.cache.WithLabelValues("hit").Inc()
		return r, nil
	}
	c.m.cache.WithLabelValues("miss").Inc()
	r, err := build(&o, c.m)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, r)
	return r, nil
}

// Len returns the number of cached results.
//
func (c *Compiler) Len() int {
	return c.cache.Len()
}

func cacheKey(alphabet dfa.Alphabet, priority []string) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(alphabet)))
	b.WriteByte(':')
	b.WriteString(string(alphabet))
	for _, p := range priority {
		b.WriteByte(0)
		b.WriteString(p)
	}
	return b.String()
}
