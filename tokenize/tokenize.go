// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package tokenize splits text into the comparison units used by [znkr.io/levenshtein].
//
// [Runes] is the tokenizer used by levenshtein.Compute. The other tokenizers are meant to be used
// with levenshtein.ComputeTokens for grapheme or line level comparisons.
package tokenize

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// ErrInvalidUTF8 is returned for input that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Runes splits s into code points.
//
// Note that a single user perceived character can consist of multiple code points, e.g., a letter
// followed by a combining mark. Those are split into several tokens, see [Graphemes] for an
// alternative.
func Runes(s string) ([]string, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidUTF8
	}
	out := make([]string, 0, utf8.RuneCountInString(s))
	for len(s) > 0 {
		_, n := utf8.DecodeRuneInString(s)
		out = append(out, s[:n])
		s = s[n:]
	}
	return out, nil
}

// Graphemes splits s into extended grapheme clusters as defined by Unicode Standard Annex #29.
func Graphemes(s string) ([]string, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidUTF8
	}
	var out []string
	iter := graphemes.FromString(s)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out, nil
}

// Lines splits s into lines. Every line includes its terminating newline character, except for
// the last line if s doesn't end in a newline.
func Lines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	// SplitAfter adds an empty element after the last '\n', it doesn't count as a line.
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}
