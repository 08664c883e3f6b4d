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

package levenshtein

import (
	"fmt"

	"znkr.io/levenshtein/internal/config"
	"znkr.io/levenshtein/internal/edits"
	"znkr.io/levenshtein/internal/matrix"
)

// Detail controls how much information [Summarize] returns.
type Detail int

const (
	DetailNone   Detail = iota // Only the distance
	DetailSimple               // The distance and the operations
	DetailFull                 // The distance, the operations and their positions
)

// Edit describes a single edit as returned by [Summarize].
//
//   - For Copy and Replace, X and Y are the positions in old and new respectively.
//   - For Delete, X is the position of the deleted element in old and Y is -1.
//   - For Insert, Y is the position of the inserted element in new and X is -1.
//
// With [DetailSimple], X and Y are always -1.
type Edit struct {
	Op   Op
	X, Y int
}

// Summary is the result of [Summarize].
type Summary struct {
	Distance float64
	Edits    []Edit // One edit per element, ordered from the end of the inputs to their start.
}

// Summarize compares old and new code point by code point and returns their edit distance and,
// depending on detail, one edit for every element.
//
// The following options are supported: [Cost], [Costs], [MaxSize]
func Summarize(old, new string, detail Detail, opts ...Option) (Summary, error) {
	cfg := config.FromOptions(opts, config.Cost|config.MaxSize)
	x, y, err := split(old, new)
	if err != nil {
		return Summary{}, err
	}
	d, err := matrix.Build(x, y, cfg.Costs, cfg.MaxSize)
	if err != nil {
		return Summary{}, fmt.Errorf("levenshtein: %w", err)
	}
	sum := Summary{Distance: d.Distance()}
	switch detail {
	case DetailNone:
		return sum, nil
	case DetailSimple, DetailFull:
		// handled below
	default:
		panic(fmt.Sprintf("invalid detail: %d", detail))
	}

	steps := edits.Resolve(matrix.Backtrace(d))
	sum.Edits = make([]Edit, len(steps))
	for i, s := range steps {
		e := Edit{Op: s.Op, X: -1, Y: -1}
		if detail == DetailFull {
			switch s.Op {
			case Copy, Replace:
				e.X, e.Y = s.OldIndex, s.NewIndex
			case Delete:
				e.X = s.OldIndex
			case Insert:
				e.Y = s.NewIndex
			default:
				panic("never reached")
			}
		}
		sum.Edits[i] = e
	}
	return sum, nil
}
