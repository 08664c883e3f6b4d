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

// Package matrix contains the dynamic programming part of the edit distance computation: the
// construction of the distance matrix and the backtrace through it.
//
// For x = "ab" and y = "ba" under unit costs the matrix looks like this:
//
//	      ε  b  a
//	   ε  0  1  2
//	   a  1  1  1
//	   b  2  1  2
//
// Cell (i, j) holds the minimal cost to transform x[:i] into y[:j]. The bottom right cell is the
// edit distance. A backtrace starting in the bottom right cell recovers one of the cheapest edit
// scripts.
package matrix

import (
	"errors"
	"fmt"

	"znkr.io/levenshtein/internal/edits"
)

// ErrTooLarge is returned by [Build] if the matrix would exceed the configured size.
var ErrTooLarge = errors.New("matrix too large")

// Matrix is the distance matrix for two sequences of length M and N.
type Matrix struct {
	M, N  int
	costs [edits.NumOps]float64
	dist  []float64 // (M+1)*(N+1) cells, row major
}

// At returns the minimal cost to transform the first x elements of the old sequence into the
// first y elements of the new sequence.
func (d *Matrix) At(x, y int) float64 { return d.dist[x*(d.N+1)+y] }

// Distance returns the edit distance.
func (d *Matrix) Distance() float64 { return d.At(d.M, d.N) }

// Build computes the distance matrix for x and y.
//
// If maxSize is non-negative and len(x)*len(y) > maxSize, Build returns an error wrapping
// [ErrTooLarge] without allocating the matrix.
func Build[T comparable](x, y []T, costs [edits.NumOps]float64, maxSize float64) (*Matrix, error) {
	m, n := len(x), len(y)
	if maxSize >= 0 && n > 0 && float64(m) > maxSize/float64(n) {
		return nil, fmt.Errorf("%w: max allowed size is %v but got %d * %d", ErrTooLarge, maxSize, m, n)
	}

	cp, del, ins, rep := costs[edits.Copy], costs[edits.Delete], costs[edits.Insert], costs[edits.Replace]
	stride := n + 1
	dist := make([]float64, (m+1)*stride)
	for s := 1; s <= m; s++ {
		dist[s*stride] = float64(s) * del
	}
	for t := 1; t <= n; t++ {
		dist[t] = float64(t) * ins
	}
	for s := 1; s <= m; s++ {
		row, prev := dist[s*stride:(s+1)*stride], dist[(s-1)*stride:s*stride]
		for t := 1; t <= n; t++ {
			if x[s-1] == y[t-1] {
				row[t] = prev[t-1] + cp
				continue
			}
			row[t] = min(prev[t]+del, row[t-1]+ins, prev[t-1]+rep)
		}
	}
	return &Matrix{M: m, N: n, costs: costs, dist: dist}, nil
}

// Backtrace walks the matrix from the bottom right to the top left and returns the transitions
// of one minimal edit script, last transition first.
//
// Ties are broken by checking Delete, Insert and Replace in that order; if none of them explains
// a cell it must have been reached by Copy.
func Backtrace(d *Matrix) []edits.Transition {
	del, ins, rep := d.costs[edits.Delete], d.costs[edits.Insert], d.costs[edits.Replace]

	// Every transition consumes at least one element, diagonal ones consume two.
	trace := make([]edits.Transition, 0, max(d.M, d.N))
	x, y := d.M, d.N
	for x != 0 && y != 0 {
		v := d.At(x, y)
		var op edits.Op
		var nx, ny int
		switch v {
		case d.At(x-1, y) + del:
			op, nx, ny = edits.Delete, x-1, y
		case d.At(x, y-1) + ins:
			op, nx, ny = edits.Insert, x, y-1
		case d.At(x-1, y-1) + rep:
			op, nx, ny = edits.Replace, x-1, y-1
		default:
			op, nx, ny = edits.Copy, x-1, y-1
		}
		trace = append(trace, edits.Transition{X: x, Y: y, Op: op})
		x, y = nx, ny
	}
	for ; x > 0; x-- {
		trace = append(trace, edits.Transition{X: x, Y: 0, Op: edits.Delete})
	}
	for ; y > 0; y-- {
		trace = append(trace, edits.Transition{X: 0, Y: y, Op: edits.Insert})
	}
	return trace
}
