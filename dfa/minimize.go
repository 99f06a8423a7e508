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

package dfa

import (
	"fmt"
	"strconv"
	"strings"
)

// Minimize returns the minimal DFA equivalent to d, where states carrying
// different label sets are never merged.
//
// Unreachable states are dropped first. If some reachable state lacks a
// transition, a non-accepting dead state looping on every symbol is added and
// all missing transitions are routed to it, so the result is always complete.
// The partition of states by label set is then refined with Hopcroft's
// algorithm until stable. Blocks are finally numbered breadth-first from the
// block holding the start state, following symbols in alphabet order; the
// start state of the result is therefore always 0.
//
// Minimize panics with ErrEmptyAlphabet if d has no input symbol.
//
func Minimize(d *DFA) *DFA {
	k := len(d.alphabet)
	if k == 0 {
		panic(fmt.Errorf("dfa %s: %w", d.name, ErrEmptyAlphabet))
	}

	trans, labels := completeReachable(d)
	blocks, blockOf := refine(trans, labels, k)

	// number blocks breadth-first from the start block (state 0)
	num := make([]int, len(blocks))
	for i := range num {
		num[i] = -1
	}
	order := []int{blockOf[0]}
	num[blockOf[0]] = 0
	for h := 0; h < len(order); h++ {
		rep := blocks[order[h]][0]
		for c := 0; c < k; c++ {
			if b := blockOf[trans[rep][c]]; num[b] < 0 {
				num[b] = len(order)
				order = append(order, b)
			}
		}
	}
	for b := range blocks {
		if num[b] < 0 {
			num[b] = len(order)
			order = append(order, b)
		}
	}

	m := newDFA(d.name, d.alphabet)
	for _, b := range order {
		m.addState(copyLabels(labels[blocks[b][0]]))
	}
	for i, b := range order {
		rep := blocks[b][0]
		for c := 0; c < k; c++ {
			m.trans[i][c] = State(num[blockOf[trans[rep][c]]])
		}
	}
	m.start = 0
	return m
}

// completeReachable returns the transition function and labels of the states
// of d reachable from its start state, renumbered in breadth-first order, and
// completed with a dead state if needed.
func completeReachable(d *DFA) ([][]int, [][]string) {
	id := make([]int, len(d.trans))
	for i := range id {
		id[i] = -1
	}
	reach := []State{d.start}
	id[d.start] = 0
	for h := 0; h < len(reach); h++ {
		for _, t := range d.trans[reach[h]] {
			if t != None && id[t] < 0 {
				id[t] = len(reach)
				reach = append(reach, t)
			}
		}
	}

	n, k := len(reach), len(d.alphabet)
	trans := make([][]int, n, n+1)
	labels := make([][]string, n, n+1)
	dead := -1
	for i, s := range reach {
		row := make([]int, k)
		for c, t := range d.trans[s] {
			if t == None {
				if dead < 0 {
					dead = n
				}
				row[c] = dead
				continue
			}
			row[c] = id[t]
		}
		trans[i] = row
		labels[i] = d.labels[s]
	}
	if dead >= 0 {
		row := make([]int, k)
		for c := range row {
			row[c] = dead
		}
		trans = append(trans, row)
		labels = append(labels, nil)
	}
	return trans, labels
}

// refine computes the coarsest partition of states compatible with labels and
// stable under trans. Blocks are identified by their index, which never
// changes: a split keeps one half under the original index and appends the
// other. Members of a block are kept in ascending order.
func refine(trans [][]int, labels [][]string, k int) (blocks [][]int, blockOf []int) {
	n := len(trans)
	blockOf = make([]int, n)
	sig := make(map[string]int)
	for s := 0; s < n; s++ {
		key := signature(labels[s])
		b, ok := sig[key]
		if !ok {
			b = len(blocks)
			sig[key] = b
			blocks = append(blocks, nil)
		}
		blocks[b] = append(blocks[b], s)
		blockOf[s] = b
	}

	// inv[c][t] lists the states with a transition to t on symbol c
	inv := make([][][]int, k)
	for c := range inv {
		inv[c] = make([][]int, n)
	}
	for s, row := range trans {
		for c, t := range row {
			inv[c][t] = append(inv[c][t], s)
		}
	}

	queue := make([]int, 0, n)
	pending := make([]bool, len(blocks), n)
	for b := range blocks {
		queue = append(queue, b)
		pending[b] = true
	}
	marked := make([]bool, n)
	count := make([]int, n)

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		pending[a] = false
		splitter := append([]int(nil), blocks[a]...)

		for c := 0; c < k; c++ {
			var pre, touched []int
			for _, t := range splitter {
				for _, s := range inv[c][t] {
					if marked[s] {
						continue
					}
					marked[s] = true
					pre = append(pre, s)
					b := blockOf[s]
					if count[b] == 0 {
						touched = append(touched, b)
					}
					count[b]++
				}
			}
			for _, b := range touched {
				if count[b] < len(blocks[b]) {
					var in, out []int
					for _, s := range blocks[b] {
						if marked[s] {
							in = append(in, s)
						} else {
							out = append(out, s)
						}
					}
					nb := len(blocks)
					blocks[b] = in
					blocks = append(blocks, out)
					for _, s := range out {
						blockOf[s] = nb
					}
					pending = append(pending, false)
					switch {
					case pending[b]:
						pending[nb] = true
						queue = append(queue, nb)
					case len(in) <= len(out):
						pending[b] = true
						queue = append(queue, b)
					default:
						pending[nb] = true
						queue = append(queue, nb)
					}
				}
				count[b] = 0
			}
			for _, s := range pre {
				marked[s] = false
			}
		}
	}
	return blocks, blockOf
}

// signature identifies a sorted label set. Distinct sets never share a
// signature, including the empty set.
func signature(labels []string) string {
	return strconv.Itoa(len(labels)) + "\x00" + strings.Join(labels, "\x00")
}

func copyLabels(l []string) []string {
	if len(l) == 0 {
		return nil
	}
	c := make([]string, len(l))
	copy(c, l)
	return c
}
