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

package matrix

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/levenshtein/internal/edits"
)

var unitCosts = [edits.NumOps]float64{0, 1, 1, 1}

func cells(d *Matrix) [][]float64 {
	var out [][]float64
	for s := 0; s <= d.M; s++ {
		row := make([]float64, d.N+1)
		for t := range row {
			row[t] = d.At(s, t)
		}
		out = append(out, row)
	}
	return out
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		x, y  string
		costs [edits.NumOps]float64
		want  [][]float64
	}{
		{
			name:  "empty",
			costs: unitCosts,
			want:  [][]float64{{0}},
		},
		{
			name:  "ab_to_ba",
			x:     "ab",
			y:     "ba",
			costs: unitCosts,
			want: [][]float64{
				{0, 1, 2},
				{1, 1, 1},
				{2, 1, 2},
			},
		},
		{
			name:  "custom-boundary",
			x:     "ab",
			y:     "c",
			costs: [edits.NumOps]float64{0, 2, 3, 1},
			want: [][]float64{
				{0, 3},
				{2, 1},
				{4, 3},
			},
		},
		{
			name:  "copy-cost",
			x:     "aa",
			y:     "aa",
			costs: [edits.NumOps]float64{0.5, 1, 1, 1},
			want: [][]float64{
				{0, 1, 2},
				{1, 0.5, 1.5},
				{2, 1.5, 1},
			},
		},
		{
			name:  "replace-forbidden",
			x:     "a",
			y:     "b",
			costs: [edits.NumOps]float64{0, 1, 1, math.Inf(1)},
			want: [][]float64{
				{0, 1},
				{1, 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Build(strings.Split(tt.x, ""), strings.Split(tt.y, ""), tt.costs, -1)
			if err != nil {
				t.Fatalf("Build(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, cells(d)); diff != "" {
				t.Errorf("Build(...) matrix is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestBuildMaxSize(t *testing.T) {
	tests := []struct {
		name    string
		m, n    int
		maxSize float64
		wantErr bool
	}{
		{"below", 3, 3, 10, false},
		{"exact", 2, 5, 10, false},
		{"above", 11, 1, 10, true},
		{"above-by-one-cell", 3, 4, 11, true},
		{"empty-y", 100, 0, 10, false},
		{"empty-x", 0, 100, 10, false},
		{"unlimited", 50, 50, -1, false},
		{"zero", 1, 1, 0, true},
		{"default", 600, 600, 600 * 600, false},
		{"default-exceeded", 601, 600, 600 * 600, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := make([]int, tt.m), make([]int, tt.n)
			d, err := Build(x, y, unitCosts, tt.maxSize)
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Fatalf("Build(%d elements, %d elements, maxSize=%v) error = %v, want error: %v", tt.m, tt.n, tt.maxSize, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrTooLarge) {
					t.Errorf("Build(...) error = %v, want %v", err, ErrTooLarge)
				}
				if d != nil {
					t.Errorf("Build(...) returned a matrix on error")
				}
				return
			}
			// All elements are identical, only the length difference counts.
			if got, want := d.Distance(), math.Abs(float64(tt.m-tt.n)); got != want {
				t.Errorf("Distance() = %v, want %v", got, want)
			}
		})
	}
}

func TestBacktrace(t *testing.T) {
	tests := []struct {
		name  string
		x, y  []string
		costs [edits.NumOps]float64
		want  []edits.Transition
	}{
		{
			name:  "empty",
			costs: unitCosts,
			want:  []edits.Transition{},
		},
		{
			name:  "delete-before-insert",
			x:     []string{"a", "b"},
			y:     []string{"b", "a"},
			costs: unitCosts,
			want: []edits.Transition{
				{X: 2, Y: 2, Op: edits.Delete},
				{X: 1, Y: 2, Op: edits.Copy},
				{X: 0, Y: 1, Op: edits.Insert},
			},
		},
		{
			name:  "replace",
			x:     []string{"a", "b", "c"},
			y:     []string{"a", "b", "d"},
			costs: unitCosts,
			want: []edits.Transition{
				{X: 3, Y: 3, Op: edits.Replace},
				{X: 2, Y: 2, Op: edits.Copy},
				{X: 1, Y: 1, Op: edits.Copy},
			},
		},
		{
			name:  "replace-forbidden",
			x:     []string{"a", "b", "c"},
			y:     []string{"a", "b", "d"},
			costs: [edits.NumOps]float64{0, 1, 1, math.Inf(1)},
			want: []edits.Transition{
				{X: 3, Y: 3, Op: edits.Delete},
				{X: 2, Y: 3, Op: edits.Insert},
				{X: 2, Y: 2, Op: edits.Copy},
				{X: 1, Y: 1, Op: edits.Copy},
			},
		},
		{
			name:  "cheap-replace",
			x:     []string{"a", "b"},
			y:     []string{"b", "a"},
			costs: [edits.NumOps]float64{0, 2, 2, 1},
			want: []edits.Transition{
				{X: 2, Y: 2, Op: edits.Replace},
				{X: 1, Y: 1, Op: edits.Replace},
			},
		},
		{
			name:  "drain-deletes",
			x:     []string{"x", "a", "b"},
			y:     []string{"b"},
			costs: unitCosts,
			want: []edits.Transition{
				{X: 3, Y: 1, Op: edits.Copy},
				{X: 2, Y: 0, Op: edits.Delete},
				{X: 1, Y: 0, Op: edits.Delete},
			},
		},
		{
			name:  "drain-inserts",
			y:     []string{"a", "b"},
			costs: unitCosts,
			want: []edits.Transition{
				{X: 0, Y: 2, Op: edits.Insert},
				{X: 0, Y: 1, Op: edits.Insert},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Build(tt.x, tt.y, tt.costs, -1)
			if err != nil {
				t.Fatalf("Build(...) failed: %v", err)
			}
			got := Backtrace(d)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Backtrace(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func BenchmarkBuild(b *testing.B) {
	params := []struct {
		N, M int // Length of x and y respectively
	}{
		{10, 10},
		{100, 100},
		{600, 600},
		{1000, 100},
	}

	for _, p := range params {
		name := fmt.Sprintf("N=%d_M=%d", p.N, p.M)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()

			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
			x := make([]int, p.N)
			for i := range x {
				x[i] = rng.IntN(26)
			}
			y := make([]int, p.M)
			for i := range y {
				y[i] = rng.IntN(26)
			}

			for b.Loop() {
				d, err := Build(x, y, unitCosts, -1)
				if err != nil {
					b.Fatal(err)
				}
				_ = Backtrace(d)
			}
		})
	}
}
