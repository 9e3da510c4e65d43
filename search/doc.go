// Copyright 2025 Poiesic Systems
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


// Package search provides retrieval over an inverted index.
//
// Boolean evaluates AND/OR/NOT expressions with parentheses: queries are
// converted to postfix with the shunting-yard algorithm and evaluated
// over a stack of posting lists using two-pointer merges. Ranker scores
// free-form term queries with smoothed TF-IDF and returns the top-k
// documents by descending score.
//
// Both are pure readers over the index; results over a fixed index state
// are deterministic, including tie-break ordering.
package search
