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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// levenshtein.Option.
package config

import "znkr.io/levenshtein/internal/edits"

// DefaultMaxSize is the default limit for the number of cells in the distance matrix (600x600).
const DefaultMaxSize = 600 * 600

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Costs of every operation, indexed by edits.Op.
	Costs [edits.NumOps]float64

	// MaxSize is the maximum number of matrix cells m*n, a negative value disables the limit.
	MaxSize float64

	// If set, an edit script is computed in addition to the distance.
	Steps bool

	// Post-processing stages, always applied in this order: MergeNeighbor, PatchMode, NoCopy,
	// OpAsString.
	MergeNeighbor bool
	PatchMode     bool
	NoCopy        bool
	OpAsString    bool
}

// Default is the default configuration.
var Default = Config{
	Costs: [edits.NumOps]float64{
		edits.Copy:    0,
		edits.Delete:  1,
		edits.Insert:  1,
		edits.Replace: 1,
	},
	MaxSize:       DefaultMaxSize,
	Steps:         false,
	MergeNeighbor: false,
	PatchMode:     false,
	NoCopy:        false,
	OpAsString:    false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Cost Flag = 1 << iota
	MaxSize
	Steps
	MergeNeighbor
	PatchMode
	NoCopy
	OpAsString
)

// All is the set of all flags.
const All = Cost | MaxSize | Steps | MergeNeighbor | PatchMode | NoCopy | OpAsString

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	// Asking for any post-processing is asking for an edit script.
	if cfg.MergeNeighbor || cfg.PatchMode || cfg.NoCopy || cfg.OpAsString {
		cfg.Steps = true
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Cost:
		return "levenshtein.Cost"
	case MaxSize:
		return "levenshtein.MaxSize"
	case Steps:
		return "levenshtein.Steps"
	case MergeNeighbor:
		return "levenshtein.MergeNeighbor"
	case PatchMode:
		return "levenshtein.PatchMode"
	case NoCopy:
		return "levenshtein.NoCopy"
	case OpAsString:
		return "levenshtein.OpAsString"
	default:
		panic("never reached")
	}
}
