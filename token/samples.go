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

package token

import (
	"fmt"
	"strings"
)

// Sample holds strings that a class must accept (Valid) and reject (Invalid).
//
type Sample struct {
	Valid   []string
	Invalid []string
}

// Case is a combined-automaton test case: the label set Text must yield.
//
type Case struct {
	Text string
	Want []string
}

// Samples returns the reference samples of every class.
//
func Samples() map[string]Sample {
	return map[string]Sample{
		SingleLineComment: {
			Valid:   []string{"##", "## hello", "##x123!?"},
			Invalid: []string{"#", " #", ""},
		},
		BooleanLiteral: {
			Valid:   []string{"true", "false"},
			Invalid: []string{"True", "FALSE", "truth", "falsey"},
		},
		Identifier: {
			Valid:   []string{"A", "Count", "X1", "Z_9", "A" + strings.Repeat("a", 30)},
			Invalid: []string{"count", "2Count", "A" + strings.Repeat("a", 31), "A-B"},
		},
		FloatingPointLiteral: {
			Valid:   []string{"3.14", "+2.5", "-0.123456", "1.5e10", "2.0E-3"},
			Invalid: []string{"3.", ".14", "1.2345678", "1e10", "+.5", "12"},
		},
		IntegerLiteral: {
			Valid:   []string{"42", "+100", "-567", "0"},
			Invalid: []string{"", "+", "-", "12.34", "1,000"},
		},
		Punctuator: {
			Valid:   []string{"(", ")", "{", "}", "[", "]", ",", ";", ":"},
			Invalid: []string{"::", "a", ""},
		},
		SingleCharOperator: {
			Valid:   []string{"+", "-", "*", "/", "%", "<", ">", "=", "!"},
			Invalid: []string{"++", "==", "**", "a", ""},
		},
	}
}

// CombinedCases returns the reference cases of the combined automaton.
//
func CombinedCases() []Case {
	return []Case{
		{"## hello", []string{SingleLineComment}},
		{"true", []string{BooleanLiteral}},
		{"Count_2", []string{Identifier}},
		{"-0.125e3", []string{FloatingPointLiteral}},
		{"+99", []string{IntegerLiteral}},
		{"+", []string{SingleCharOperator}},
		{";", []string{Punctuator}},
		{"1.2345678", []string{}},
		{"count", []string{}},
	}
}

// A Failure describes a sample that was not classified as expected.
//
type Failure struct {
	Class string
	Text  string
	Valid bool // true if Text should have been accepted
}

func (f Failure) Error() string {
	if f.Valid {
		return fmt.Sprintf("%s: %q rejected", f.Class, f.Text)
	}
	return fmt.Sprintf("%s: %q accepted", f.Class, f.Text)
}

// Check runs the samples of class name against accepts and returns the
// failures, if any.
//
func Check(name string, accepts func(string) bool) []Failure {
	s, ok := Samples()[name]
	if !ok {
		return nil
	}
	var fs []Failure
	for _, txt := range s.Valid {
		if !accepts(txt) {
			fs = append(fs, Failure{name, txt, true})
		}
	}
	for _, txt := range s.Invalid {
		if accepts(txt) {
			fs = append(fs, Failure{name, txt, false})
		}
	}
	return fs
}
