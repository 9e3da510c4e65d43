package search

import (
	"math"
	"testing"

	"github.com/poiesic/searchdb/analysis"
	"github.com/poiesic/searchdb/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRankerFixture(docs ...string) (*Ranker, *analysis.Pipeline) {
	pipeline := analysis.NewPipeline(analysis.DefaultOptions())
	ix := index.New()
	for _, doc := range docs {
		ix.AddDocument(pipeline.Process(doc))
	}
	return NewRanker(ix), pipeline
}

func TestSearchRanksByTermFrequencySkew(t *testing.T) {
	r, p := newRankerFixture(
		"python python python",
		"python java cpp",
		"cooking italian recipes",
	)

	results := r.Search(p.Process("python"), 10)
	require.Len(t, results, 2)
	assert.Equal(t, index.DocID(0), results[0].DocID)
	assert.Equal(t, index.DocID(1), results[1].DocID)
	assert.Greater(t, results[0].Score, results[1].Score)
	assert.Greater(t, results[1].Score, 0.0)
}

func TestSearchEqualScoresTieBreakAndMatch(t *testing.T) {
	r, p := newRankerFixture(
		"machine learning with python",
		"deep learning neural networks",
		"cooking italian recipes",
	)

	results := r.Search(p.Process("learning"), 10)
	require.Len(t, results, 2)
	// Same normalized TF and the same document frequency: identical
	// scores, ascending DocID tiebreak.
	assert.Equal(t, index.DocID(0), results[0].DocID)
	assert.Equal(t, index.DocID(1), results[1].DocID)
	assert.InDelta(t, results[0].Score, results[1].Score, 1e-12)
	assert.Greater(t, results[0].Score, 0.0)
}

func TestSearchTopK(t *testing.T) {
	r, p := newRankerFixture(
		"apple apple apple",
		"apple apple banana",
		"apple banana banana",
		"banana banana banana",
	)

	results := r.Search(p.Process("apple"), 2)
	require.Len(t, results, 2)
	assert.Equal(t, index.DocID(0), results[0].DocID)
	assert.Equal(t, index.DocID(1), results[1].DocID)
}

func TestSearchEmptyInputs(t *testing.T) {
	r, _ := newRankerFixture()
	assert.Empty(t, r.Search([]string{"anything"}, 10))

	r2, _ := newRankerFixture("some document")
	assert.Empty(t, r2.Search(nil, 10))
}

func TestIDFSmoothing(t *testing.T) {
	r, _ := newRankerFixture(
		"alpha beta",
		"alpha gamma",
	)

	// A term in every document scores exactly 1.
	assert.InDelta(t, 1.0, r.IDF("alpha"), 1e-12)
	// Rarer terms score higher.
	want := math.Log(3.0/2.0) + 1
	assert.InDelta(t, want, r.IDF("beta"), 1e-12)
	// Unknown terms and empty corpora score zero.
	assert.Zero(t, r.IDF("missing"))

	empty, _ := newRankerFixture()
	assert.Zero(t, empty.IDF("alpha"))
}

func TestTF(t *testing.T) {
	r, p := newRankerFixture("go go go rust")

	terms := p.Process("go")
	require.Len(t, terms, 1)
	assert.InDelta(t, 0.75, r.TF(0, terms[0]), 1e-12)
	assert.InDelta(t, 3.0, r.RawTF(0, terms[0]), 1e-12)
	assert.Zero(t, r.TF(99, terms[0]))
}

func TestScoreDuplicateQueryTerms(t *testing.T) {
	r, _ := newRankerFixture("alpha beta", "beta gamma")

	single := r.Score(0, []string{"alpha"})
	double := r.Score(0, []string{"alpha", "alpha"})
	assert.InDelta(t, 2*single, double, 1e-12)
}

func TestTermWeights(t *testing.T) {
	r, _ := newRankerFixture("alpha beta", "alpha gamma")

	weights := r.TermWeights([]string{"alpha", "beta", "missing"})
	require.Len(t, weights, 3)
	assert.InDelta(t, 1.0, weights[0], 1e-12)
	assert.Greater(t, weights[1], weights[0])
	assert.Zero(t, weights[2])
}

func TestSearchWithMonitor(t *testing.T) {
	r, p := newRankerFixture("python python python", "python java")

	m := &recordingMonitor{}
	results := r.SearchWithMonitor(p.Process("python"), 10, m)
	require.Len(t, results, 2)
	assert.True(t, m.started)
	assert.Len(t, m.candidates, 2)
	assert.Len(t, m.results, 2)

	t.Run("nil monitor", func(t *testing.T) {
		assert.NotPanics(t, func() {
			r.SearchWithMonitor(p.Process("python"), 10, nil)
		})
	})
}

type recordingMonitor struct {
	started    bool
	candidates []index.DocID
	results    []Result
}

func (m *recordingMonitor) Start(_ []string)                        { m.started = true }
func (m *recordingMonitor) AfterCandidateGathering(ids []index.DocID) { m.candidates = ids }
func (m *recordingMonitor) Finish(results []Result)                 { m.results = results }
