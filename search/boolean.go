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


package search

import (
	"github.com/poiesic/searchdb/analysis"
	"github.com/poiesic/searchdb/index"
)

// Boolean evaluates set algebra over posting lists. It reads the index
// and pipeline but never mutates them.
type Boolean struct {
	ix       *index.Index
	pipeline *analysis.Pipeline
}

// NewBoolean returns a Boolean evaluator over ix. Literal terms in
// queries are normalized through pipeline before lookup.
func NewBoolean(ix *index.Index, pipeline *analysis.Pipeline) *Boolean {
	return &Boolean{ix: ix, pipeline: pipeline}
}

// Term returns a copy of the posting list for a single normalized term.
func (b *Boolean) Term(term string) index.PostingList {
	pl := b.ix.PostingList(term)
	if len(pl) == 0 {
		return nil
	}
	out := make(index.PostingList, len(pl))
	copy(out, pl)
	return out
}

// And normalizes each term and intersects their posting lists. An empty
// term slice yields an empty result.
func (b *Boolean) And(terms []string) index.PostingList {
	if len(terms) == 0 {
		return nil
	}
	result := b.Term(b.pipeline.NormalizeTerm(terms[0]))
	for _, term := range terms[1:] {
		if len(result) == 0 {
			break
		}
		result = intersect(result, b.ix.PostingList(b.pipeline.NormalizeTerm(term)))
	}
	return result
}

// Or normalizes each term and unions their posting lists.
func (b *Boolean) Or(terms []string) index.PostingList {
	var result index.PostingList
	for _, term := range terms {
		result = union(result, b.ix.PostingList(b.pipeline.NormalizeTerm(term)))
	}
	return result
}

// AndNot intersects the include terms, then removes every document that
// contains any exclude term.
func (b *Boolean) AndNot(include, exclude []string) index.PostingList {
	result := b.And(include)
	if len(result) == 0 {
		return result
	}

	excluded := make(map[index.DocID]struct{})
	for _, term := range exclude {
		for _, id := range b.ix.PostingList(b.pipeline.NormalizeTerm(term)) {
			excluded[id] = struct{}{}
		}
	}

	filtered := result[:0]
	for _, id := range result {
		if _, ok := excluded[id]; !ok {
			filtered = append(filtered, id)
		}
	}
	return filtered
}

// intersect merges two ascending lists, emitting common elements.
func intersect(a, b index.PostingList) index.PostingList {
	var out index.PostingList
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// union merges two ascending lists, keeping the result ascending and
// duplicate-free.
func union(a, b index.PostingList) index.PostingList {
	out := make(index.PostingList, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// complement emits every DocID in 0..docCount absent from the ascending
// list a.
func complement(a index.PostingList, docCount int) index.PostingList {
	var out index.PostingList
	i := 0
	for doc := index.DocID(0); doc < index.DocID(docCount); doc++ {
		if i < len(a) && a[i] == doc {
			i++
			continue
		}
		out = append(out, doc)
	}
	return out
}
