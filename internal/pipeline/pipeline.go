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

// Package pipeline implements the optional post-processing stages for edit scripts.
//
// The stages always run in the same order, independent of which of them are enabled:
//
//  1. MergeNeighbor combines runs of the same operation.
//  2. PatchMode materializes the text every step consumes or produces.
//  3. NoCopy removes copy steps.
//  4. OpAsString labels every step with its three letter operation name.
//
// Patching operates on merged runs.
package pipeline

import (
	"strings"

	"znkr.io/levenshtein/internal/config"
	"znkr.io/levenshtein/internal/edits"
)

// Run applies all stages enabled in cfg to steps. The input slice may be modified.
func Run(steps []edits.Step, x, y []string, cfg config.Config) []edits.Step {
	if cfg.MergeNeighbor {
		steps = Merge(steps)
	}
	if cfg.PatchMode {
		steps = Patch(steps, x, y)
	}
	if cfg.NoCopy {
		steps = RemoveCopies(steps)
	}
	if cfg.OpAsString {
		steps = Label(steps)
	}
	return steps
}

// Merge combines adjacent steps with the same operation. A merged step covers the sum of the
// lengths of its run and takes its positions from the last step of the run, which is the one
// closest to the start of the inputs.
func Merge(steps []edits.Step) []edits.Step {
	if len(steps) == 0 {
		return steps
	}
	merged := steps[:0]
	last := steps[0]
	for _, s := range steps[1:] {
		if s.Op == last.Op {
			s.Length += last.Length
		} else {
			merged = append(merged, last)
		}
		last = s
	}
	return append(merged, last)
}

// Patch sets the text of every step: the elements of x for Copy and Delete and the elements of y
// for Insert and Replace.
func Patch(steps []edits.Step, x, y []string) []edits.Step {
	for i, s := range steps {
		switch s.Op {
		case edits.Copy, edits.Delete:
			steps[i].Text = strings.Join(x[s.OldIndex:s.OldIndex+s.Length], "")
		case edits.Insert, edits.Replace:
			steps[i].Text = strings.Join(y[s.NewIndex:s.NewIndex+s.Length], "")
		default:
			panic("never reached")
		}
	}
	return steps
}

// RemoveCopies drops all Copy steps.
func RemoveCopies(steps []edits.Step) []edits.Step {
	out := steps[:0]
	for _, s := range steps {
		if s.Op != edits.Copy {
			out = append(out, s)
		}
	}
	return out
}

// Label sets the label of every step.
func Label(steps []edits.Step) []edits.Step {
	for i := range steps {
		steps[i].Label = steps[i].Op.Label()
	}
	return steps
}
