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
	"math"

	"znkr.io/levenshtein/internal/config"
)

// Option configures the behavior of comparison functions.
type Option = config.Option

// Cost sets the cost of a single operation, all other operations keep their current cost. The
// default costs are 0 for [Copy] and 1 for everything else.
//
// A cost of math.Inf(1) forbids an operation. Negative costs and NaN are not allowed.
func Cost(op Op, cost float64) Option {
	if op < Copy || op > Replace {
		panic(fmt.Sprintf("invalid operation %v", op))
	}
	checkCost(op, cost)
	return func(cfg *config.Config) config.Flag {
		cfg.Costs[op] = cost
		return config.Cost
	}
}

// Costs sets the cost of all operations at once.
func Costs(costs CostModel) Option {
	for op, cost := range costs {
		checkCost(Op(op), cost)
	}
	return func(cfg *config.Config) config.Flag {
		cfg.Costs = costs
		return config.Cost
	}
}

func checkCost(op Op, cost float64) {
	if cost < 0 || math.IsNaN(cost) {
		panic(fmt.Sprintf("invalid cost for %v: %v", op, cost))
	}
}

// MaxSize limits the size of the distance matrix. If len(old)*len(new) > n, computations fail
// with [ErrResourceLimit] before allocating any memory for the matrix. A negative n disables the
// limit. The default is 360000 (600*600).
func MaxSize(n float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxSize = n
		return config.MaxSize
	}
}

// Steps requests an edit script in addition to the distance.
func Steps() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Steps = true
		return config.Steps
	}
}

// The following options post-process the edit script, they imply [Steps]. Independent of the
// order in which they are passed, they are applied as MergeNeighbor, PatchMode, NoCopy and finally
// OpAsString.

// MergeNeighbor combines adjacent steps with the same operation into a single step. The merged
// step starts at the positions of the run element closest to the start of the inputs.
func MergeNeighbor() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MergeNeighbor = true
		return config.MergeNeighbor
	}
}

// PatchMode sets [Step.Text] to the tokens a step consumes from old (Copy and Delete) or produces
// from new (Insert and Replace).
func PatchMode() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.PatchMode = true
		return config.PatchMode
	}
}

// NoCopy removes all [Copy] steps from the edit script.
func NoCopy() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.NoCopy = true
		return config.NoCopy
	}
}

// OpAsString sets [Step.Label] to the three letter label of the operation: "cpy", "del", "ins" or
// "rep".
func OpAsString() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.OpAsString = true
		return config.OpAsString
	}
}
