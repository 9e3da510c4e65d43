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
	"math"
	"sort"

	"github.com/poiesic/searchdb/index"
)

// Result is a ranked document.
type Result struct {
	DocID index.DocID
	Score float64
}

// Ranker scores documents against term queries by TF-IDF. It reads the
// index and never mutates it.
type Ranker struct {
	ix *index.Index
}

// NewRanker returns a ranker over ix.
func NewRanker(ix *index.Index) *Ranker {
	return &Ranker{ix: ix}
}

// TF returns the normalized term frequency count(d,t) / len(d), 0 when
// the document is unknown or empty.
func (r *Ranker) TF(docID index.DocID, term string) float64 {
	docLen := r.ix.DocLen(docID)
	if docLen == 0 {
		return 0
	}
	return float64(r.ix.TermFreq(docID, term)) / float64(docLen)
}

// RawTF returns the unnormalized occurrence count.
func (r *Ranker) RawTF(docID index.DocID, term string) float64 {
	return float64(r.ix.TermFreq(docID, term))
}

// IDF returns the smoothed inverse document frequency
// ln((N+1)/(df+1)) + 1, or 0 when the corpus is empty or the term is
// unknown. A term occurring in every document scores exactly 1.
func (r *Ranker) IDF(term string) float64 {
	n := r.ix.DocCount()
	df := r.ix.DocFreq(term)
	if n == 0 || df == 0 {
		return 0
	}
	return math.Log(float64(n+1)/float64(df+1)) + 1
}

// TFIDF returns TF(d,t) * IDF(t).
func (r *Ranker) TFIDF(docID index.DocID, term string) float64 {
	return r.TF(docID, term) * r.IDF(term)
}

// Score sums TFIDF over the query terms. Duplicate query terms
// contribute repeatedly.
func (r *Ranker) Score(docID index.DocID, queryTerms []string) float64 {
	score := 0.0
	for _, term := range queryTerms {
		score += r.TFIDF(docID, term)
	}
	return score
}

// TermWeights returns the IDF of each term in order.
func (r *Ranker) TermWeights(terms []string) []float64 {
	weights := make([]float64, len(terms))
	for i, term := range terms {
		weights[i] = r.IDF(term)
	}
	return weights
}

// Search ranks the union of the query terms' posting lists, discards
// non-positive scores, and returns at most topK results ordered by
// descending score with ascending DocID as the tiebreak.
func (r *Ranker) Search(queryTerms []string, topK int) []Result {
	candidates := make(map[index.DocID]struct{})
	for _, term := range queryTerms {
		for _, id := range r.ix.PostingList(term) {
			candidates[id] = struct{}{}
		}
	}

	results := make([]Result, 0, len(candidates))
	for id := range candidates {
		if score := r.Score(id, queryTerms); score > 0 {
			results = append(results, Result{DocID: id, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DocID < results[j].DocID
	})

	if topK >= 0 && len(results) > topK {
		results = results[:topK]
	}
	return results
}
