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

// Package levenshtein computes the edit distance between two sequences and an edit script to
// transform one into the other.
//
// The main functions are [Compute], which compares two strings code point by code point, and
// [ComputeTokens], which compares two sequences of arbitrary tokens, e.g., words or lines (see
// [znkr.io/levenshtein/tokenize]). Both compute a distance matrix of size O(N*M) where N and M are
// the lengths of the inputs. To keep memory bounded, the size of the matrix is limited, see
// [MaxSize].
//
// Edit scripts are ordered from the end of the inputs to their start. This allows to apply an edit
// script to the old input front to back without having to adjust positions, see [Apply].
//
// If there are several edit scripts with minimal cost, the one preferring deletions over
// insertions over replacements is returned. The result is deterministic and doesn't change
// between calls.
//
// Performance: Time and space complexity are O(N*M).
package levenshtein
