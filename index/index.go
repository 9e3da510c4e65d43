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


// Package index implements the in-memory inverted index: per-term ordered
// posting lists plus per-document term-frequency tables and lengths.
//
// The index is append-only during ingestion. DocIDs are assigned
// sequentially from 0 and never reused, which keeps every posting list
// strictly ascending without any post-hoc sorting. All read operations
// are total: unknown terms and documents yield empty or zero results.
package index

// DocID identifies an indexed document. IDs are assigned sequentially
// starting at 0 and are never reordered.
type DocID uint64

// PostingList is the strictly ascending, duplicate-free sequence of
// DocIDs in which a term occurs.
type PostingList []DocID

// Index maps terms to posting lists and tracks per-(doc, term) frequency
// and per-document length. A single writer mutates it via AddDocument and
// Clear; every other method is a pure reader.
type Index struct {
	postings  map[string]PostingList
	termFreqs map[DocID]map[string]int
	docLens   map[DocID]int
	nextDocID DocID
}

// New returns an empty index.
func New() *Index {
	return &Index{
		postings:  make(map[string]PostingList),
		termFreqs: make(map[DocID]map[string]int),
		docLens:   make(map[DocID]int),
	}
}

// AddDocument indexes a document's terms and returns its new DocID.
// Posting lists stay ascending because the new DocID is greater than
// every previously assigned one; a term repeated within the document is
// appended only once.
func (ix *Index) AddDocument(terms []string) DocID {
	docID := ix.nextDocID
	ix.nextDocID++

	count := 0
	for _, term := range terms {
		list := ix.postings[term]
		if len(list) == 0 || list[len(list)-1] != docID {
			ix.postings[term] = append(list, docID)
		}

		freqs := ix.termFreqs[docID]
		if freqs == nil {
			freqs = make(map[string]int)
			ix.termFreqs[docID] = freqs
		}
		freqs[term]++
		count++
	}

	ix.docLens[docID] = count
	return docID
}

// PostingList returns the posting list for term. The returned slice is
// shared with the index and must not be modified; it is empty for an
// unknown term.
func (ix *Index) PostingList(term string) PostingList {
	return ix.postings[term]
}

// ContainsTerm reports whether term occurs in any document.
func (ix *Index) ContainsTerm(term string) bool {
	_, ok := ix.postings[term]
	return ok
}

// DocFreq returns the number of documents containing term.
func (ix *Index) DocFreq(term string) int {
	return len(ix.postings[term])
}

// TermFreq returns the number of occurrences of term in docID, 0 if
// either is unknown.
func (ix *Index) TermFreq(docID DocID, term string) int {
	return ix.termFreqs[docID][term]
}

// DocLen returns the total number of terms emitted for docID at
// ingestion, including repetitions.
func (ix *Index) DocLen(docID DocID) int {
	return ix.docLens[docID]
}

// DocCount returns the number of indexed documents.
func (ix *Index) DocCount() int {
	return int(ix.nextDocID)
}

// TermCount returns the number of distinct terms.
func (ix *Index) TermCount() int {
	return len(ix.postings)
}

// AvgDocLen returns the arithmetic mean document length, 0 when empty.
func (ix *Index) AvgDocLen() float64 {
	if ix.nextDocID == 0 {
		return 0
	}
	total := 0
	for _, n := range ix.docLens {
		total += n
	}
	return float64(total) / float64(ix.nextDocID)
}

// AllTerms returns the distinct indexed terms in unspecified order.
func (ix *Index) AllTerms() []string {
	terms := make([]string, 0, len(ix.postings))
	for term := range ix.postings {
		terms = append(terms, term)
	}
	return terms
}

// AllDocIDs returns 0..DocCount-1 in order.
func (ix *Index) AllDocIDs() []DocID {
	ids := make([]DocID, ix.nextDocID)
	for i := range ids {
		ids[i] = DocID(i)
	}
	return ids
}

// Clear resets the index to empty. DocID assignment restarts at 0.
func (ix *Index) Clear() {
	ix.postings = make(map[string]PostingList)
	ix.termFreqs = make(map[DocID]map[string]int)
	ix.docLens = make(map[DocID]int)
	ix.nextDocID = 0
}
