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

// Package edits contains the internal edit step representation that's produced by the backtrace
// of the distance matrix and is then post-processed and handed out through the user facing API.
package edits

import "fmt"

// Op is an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Copy    Op = iota // An element of x is kept as is
	Delete            // An element of x is removed
	Insert            // An element of y is added
	Replace           // An element of x is exchanged for an element of y
)

// NumOps is the number of operations, used to size per-operation tables.
const NumOps = 4

// Label returns the canonical three letter label of op.
func (op Op) Label() string {
	switch op {
	case Copy:
		return "cpy"
	case Delete:
		return "del"
	case Insert:
		return "ins"
	case Replace:
		return "rep"
	default:
		return fmt.Sprint(int(op))
	}
}

// Transition is a single raw backtrace transition. X and Y are the matrix coordinates the
// transition starts from, i.e., after consuming x[:X] and y[:Y].
type Transition struct {
	X, Y int
	Op   Op
}

// Step describes a run of Length edits of the same operation.
//
// OldIndex and NewIndex point to the first element of the run in x and y respectively. For
// Delete, NewIndex is the position in y the deletion happens at; for Insert, OldIndex is the
// position in x the insertion happens at.
type Step struct {
	Op       Op
	Label    string // Set by the labeling stage only.
	OldIndex int
	NewIndex int
	Length   int
	Text     string // Set by the patch stage only.
}

// Resolve translates raw transitions into steps of length 1, preserving their order.
func Resolve(trace []Transition) []Step {
	steps := make([]Step, len(trace))
	for i, tr := range trace {
		s := Step{Op: tr.Op, Length: 1}
		switch tr.Op {
		case Copy, Replace:
			s.OldIndex, s.NewIndex = tr.X-1, tr.Y-1
		case Delete:
			s.OldIndex, s.NewIndex = tr.X-1, tr.Y
		case Insert:
			s.OldIndex, s.NewIndex = tr.X, tr.Y-1
		default:
			panic("never reached")
		}
		steps[i] = s
	}
	return steps
}
