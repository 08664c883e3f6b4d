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
	"slices"
	"strings"

	"znkr.io/levenshtein/tokenize"
)

// Apply applies an edit script to old and returns the result. The old string is split into code
// points, the same way [Compute] does.
//
// See [ApplyTokens] for the requirements on steps.
func Apply(old string, steps []Step) (string, error) {
	x, err := tokenize.Runes(old)
	if err != nil {
		return "", fmt.Errorf("levenshtein: %w: old: %w", ErrInvalidInput, err)
	}
	return ApplyTokens(x, steps)
}

// ApplyTokens applies an edit script to the tokens in old and returns the concatenated result.
//
// The steps must be ordered from the end to the start of old, like the edit scripts returned by
// [Compute] and [ComputeTokens]. Insert and Replace steps contribute their Text, which is only
// set with [PatchMode]; without it, the caller has to fill in Text from new. Copy steps may be
// missing (see [NoCopy]).
func ApplyTokens(old []string, steps []Step) (string, error) {
	// Positions in steps refer to old. Since the steps are ordered back to front, applying a step
	// only moves elements that no later step refers to.
	chunks := slices.Clone(old)
	for i, s := range steps {
		if s.Length < 1 {
			return "", fmt.Errorf("levenshtein: %w: step %d: invalid length %d", ErrInvalidInput, i, s.Length)
		}
		switch s.Op {
		case Copy:
			// nothing to do
		case Delete:
			if s.OldIndex < 0 || s.OldIndex+s.Length > len(chunks) {
				return "", fmt.Errorf("levenshtein: %w: step %d: delete [%d, %d) out of range", ErrInvalidInput, i, s.OldIndex, s.OldIndex+s.Length)
			}
			chunks = slices.Delete(chunks, s.OldIndex, s.OldIndex+s.Length)
		case Insert:
			if s.OldIndex < 0 || s.OldIndex > len(chunks) {
				return "", fmt.Errorf("levenshtein: %w: step %d: insert at %d out of range", ErrInvalidInput, i, s.OldIndex)
			}
			chunks = slices.Insert(chunks, s.OldIndex, s.Text)
		case Replace:
			if s.OldIndex < 0 || s.OldIndex+s.Length > len(chunks) {
				return "", fmt.Errorf("levenshtein: %w: step %d: replace [%d, %d) out of range", ErrInvalidInput, i, s.OldIndex, s.OldIndex+s.Length)
			}
			chunks = slices.Replace(chunks, s.OldIndex, s.OldIndex+s.Length, s.Text)
		default:
			return "", fmt.Errorf("levenshtein: %w: step %d: unknown operation %v", ErrInvalidInput, i, s.Op)
		}
	}
	return strings.Join(chunks, ""), nil
}
