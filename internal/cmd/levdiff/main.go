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

// levdiff computes the edit distance and the edit script between two inputs.
//
// It's a development tool to inspect edit scripts, e.g.
//
//	levdiff --merge --patch --no-copy "this is a book" "he has some books"
//
// prints the distance followed by one step per line, last step of the inputs first.
package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/spf13/cobra"
	"znkr.io/levenshtein"
	"znkr.io/levenshtein/internal/config"
	"znkr.io/levenshtein/tokenize"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	files        bool
	tokens       string
	distanceOnly bool
	verbose      bool

	merge, patch, noCopy, opAsString bool

	maxSize float64
	costs   levenshtein.CostModel
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:          "levdiff [flags] OLD NEW",
		Short:        "Print the edit distance and edit script between OLD and NEW",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args[0], args[1])
		},
	}

	fs := cmd.Flags()
	fs.BoolVarP(&f.files, "files", "f", false, "treat OLD and NEW as file names")
	fs.StringVarP(&f.tokens, "tokens", "t", "runes", "tokenization: runes, graphemes or lines")
	fs.BoolVarP(&f.distanceOnly, "distance-only", "d", false, "only print the distance")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log input sizes")
	fs.BoolVar(&f.merge, "merge", false, "merge neighboring steps with the same operation")
	fs.BoolVar(&f.patch, "patch", false, "include the text of every step")
	fs.BoolVar(&f.noCopy, "no-copy", false, "omit copy steps")
	fs.BoolVar(&f.opAsString, "op-as-string", false, "print three letter operation labels")
	fs.Float64Var(&f.maxSize, "max-size", config.DefaultMaxSize, "maximum number of matrix cells, negative for no limit")

	def := levenshtein.DefaultCosts()
	fs.Float64Var(&f.costs[levenshtein.Copy], "cost-copy", def.Of(levenshtein.Copy), "cost of a copy")
	fs.Float64Var(&f.costs[levenshtein.Delete], "cost-delete", def.Of(levenshtein.Delete), "cost of a deletion")
	fs.Float64Var(&f.costs[levenshtein.Insert], "cost-insert", def.Of(levenshtein.Insert), "cost of an insertion")
	fs.Float64Var(&f.costs[levenshtein.Replace], "cost-replace", def.Of(levenshtein.Replace), "cost of a replacement, inf forbids replacements")

	return cmd
}

func run(cmd *cobra.Command, f flags, oldArg, newArg string) error {
	old, new := oldArg, newArg
	if f.files {
		b, err := os.ReadFile(oldArg)
		if err != nil {
			return fmt.Errorf("reading old file: %v", err)
		}
		old = string(b)
		b, err = os.ReadFile(newArg)
		if err != nil {
			return fmt.Errorf("reading new file: %v", err)
		}
		new = string(b)
	}

	x, err := split(old, f.tokens)
	if err != nil {
		return fmt.Errorf("tokenizing old: %v", err)
	}
	y, err := split(new, f.tokens)
	if err != nil {
		return fmt.Errorf("tokenizing new: %v", err)
	}
	if f.verbose {
		log.Printf("old: %d tokens, new: %d tokens", len(x), len(y))
	}

	for op, c := range f.costs {
		if c < 0 || math.IsNaN(c) {
			return fmt.Errorf("invalid cost for %v: %v", levenshtein.Op(op), c)
		}
	}

	opts := []levenshtein.Option{levenshtein.Costs(f.costs), levenshtein.MaxSize(f.maxSize)}
	if !f.distanceOnly {
		opts = append(opts, levenshtein.Steps())
	}
	if f.merge {
		opts = append(opts, levenshtein.MergeNeighbor())
	}
	if f.patch {
		opts = append(opts, levenshtein.PatchMode())
	}
	if f.noCopy {
		opts = append(opts, levenshtein.NoCopy())
	}
	if f.opAsString {
		opts = append(opts, levenshtein.OpAsString())
	}

	res, err := levenshtein.ComputeTokens(x, y, opts...)
	if err != nil {
		return err
	}
	write(cmd.OutOrStdout(), res)
	return nil
}

func split(s, tokens string) ([]string, error) {
	switch tokens {
	case "runes":
		return tokenize.Runes(s)
	case "graphemes":
		return tokenize.Graphemes(s)
	case "lines":
		return tokenize.Lines(s), nil
	default:
		return nil, fmt.Errorf("unknown tokenization %q", tokens)
	}
}

func write(w io.Writer, res levenshtein.Result) {
	fmt.Fprintf(w, "distance: %v\n", res.Distance)
	for _, s := range res.Steps {
		op := s.Label
		if op == "" {
			op = s.Op.String()
		}
		fmt.Fprintf(w, "%s %d %d %d", op, s.OldIndex, s.NewIndex, s.Length)
		if s.Text != "" {
			fmt.Fprintf(w, " %q", s.Text)
		}
		fmt.Fprintln(w)
	}
}
