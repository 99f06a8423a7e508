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

package main

import (
	"os"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// config is the content of a configuration file:
//
//	alphabet: printable
//	priority: [single_line_comment, identifier, integer_literal]
//	only: ["*_literal"]
//	logLevel: debug
//	parallelism: 2
//
type config struct {
	Alphabet    string   `json:"alphabet,omitempty"`
	Priority    []string `json:"priority,omitempty"`
	Only        []string `json:"only,omitempty"`
	LogLevel    string   `json:"logLevel,omitempty"`
	Parallelism int      `json:"parallelism,omitempty"`
}

func loadConfig(name string) (*config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	var cfg config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", name)
	}
	return &cfg, nil
}
