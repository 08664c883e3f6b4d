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
	"errors"
	"fmt"

	"znkr.io/levenshtein/internal/config"
	"znkr.io/levenshtein/internal/edits"
	"znkr.io/levenshtein/internal/matrix"
	"znkr.io/levenshtein/internal/pipeline"
	"znkr.io/levenshtein/tokenize"
)

// Op describes an edit operation.
type Op = edits.Op

const (
	Copy    = edits.Copy    // An element of old is kept
	Delete  = edits.Delete  // An element of old is removed
	Insert  = edits.Insert  // An element of new is added
	Replace = edits.Replace // An element of old is exchanged for an element of new
)

// Step describes a run of Length consecutive edits with the same operation.
//
//   - For Copy and Replace, OldIndex and NewIndex are the positions of the first element of the
//     run in old and new respectively.
//   - For Delete, OldIndex is the position of the first deleted element in old. NewIndex is the
//     position in new where the deletion happens; it's not meaningful on its own.
//   - For Insert, NewIndex is the position of the first inserted element in new. OldIndex is the
//     position in old the elements are inserted before.
//
// Label is only set with [OpAsString] and Text only with [PatchMode].
type Step = edits.Step

// CostModel holds the cost for every operation, indexed by [Op].
type CostModel [edits.NumOps]float64

// DefaultCosts returns the default cost model: 0 for Copy and 1 for Delete, Insert and Replace.
func DefaultCosts() CostModel { return config.Default.Costs }

// Of returns the cost of op.
func (c CostModel) Of(op Op) float64 { return c[op] }

// Result is the result of a comparison.
type Result struct {
	// Distance is the minimal total cost to transform old into new.
	Distance float64

	// Steps is the edit script, ordered from the end of the inputs to their start. It's nil unless
	// requested with [Steps] or one of the post-processing options.
	Steps []Step
}

var (
	// ErrResourceLimit is returned if the distance matrix would exceed the limit set by
	// [MaxSize].
	ErrResourceLimit = matrix.ErrTooLarge

	// ErrInvalidInput is returned for strings that are not valid UTF-8 and for malformed edit
	// scripts.
	ErrInvalidInput = errors.New("invalid input")
)

// Compute compares old and new code point by code point and returns their edit distance and, if
// requested, an edit script.
//
// The following options are supported: [Cost], [Costs], [MaxSize], [Steps], [MergeNeighbor],
// [PatchMode], [NoCopy], [OpAsString]
func Compute(old, new string, opts ...Option) (Result, error) {
	cfg := config.FromOptions(opts, config.All)
	x, y, err := split(old, new)
	if err != nil {
		return Result{}, err
	}
	return compute(x, y, cfg)
}

// ComputeTokens compares the token sequences old and new and returns their edit distance and, if
// requested, an edit script. With [PatchMode], the text of a step is the concatenation of its
// tokens.
//
// The following options are supported: [Cost], [Costs], [MaxSize], [Steps], [MergeNeighbor],
// [PatchMode], [NoCopy], [OpAsString]
func ComputeTokens(old, new []string, opts ...Option) (Result, error) {
	cfg := config.FromOptions(opts, config.All)
	return compute(old, new, cfg)
}

// Distance returns the edit distance between old and new, compared code point by code point.
//
// The following options are supported: [Cost], [Costs], [MaxSize]
func Distance(old, new string, opts ...Option) (float64, error) {
	cfg := config.FromOptions(opts, config.Cost|config.MaxSize)
	x, y, err := split(old, new)
	if err != nil {
		return 0, err
	}
	d, err := matrix.Build(x, y, cfg.Costs, cfg.MaxSize)
	if err != nil {
		return 0, fmt.Errorf("levenshtein: %w", err)
	}
	return d.Distance(), nil
}

func compute(x, y []string, cfg config.Config) (Result, error) {
	d, err := matrix.Build(x, y, cfg.Costs, cfg.MaxSize)
	if err != nil {
		return Result{}, fmt.Errorf("levenshtein: %w", err)
	}
	res := Result{Distance: d.Distance()}
	if !cfg.Steps {
		return res, nil
	}
	steps := edits.Resolve(matrix.Backtrace(d))
	res.Steps = pipeline.Run(steps, x, y, cfg)
	return res, nil
}

func split(old, new string) (x, y []string, err error) {
	x, err = tokenize.Runes(old)
	if err != nil {
		return nil, nil, fmt.Errorf("levenshtein: %w: old: %w", ErrInvalidInput, err)
	}
	y, err = tokenize.Runes(new)
	if err != nil {
		return nil, nil, fmt.Errorf("levenshtein: %w: new: %w", ErrInvalidInput, err)
	}
	return x, y, nil
}
