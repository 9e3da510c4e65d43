package search

import (
	"testing"

	"github.com/poiesic/searchdb/analysis"
	"github.com/poiesic/searchdb/index"
	"github.com/stretchr/testify/assert"
)

func newBooleanFixture(docs ...string) (*Boolean, *index.Index) {
	pipeline := analysis.NewPipeline(analysis.DefaultOptions())
	ix := index.New()
	for _, doc := range docs {
		ix.AddDocument(pipeline.Process(doc))
	}
	return NewBoolean(ix, pipeline), ix
}

func TestAnd(t *testing.T) {
	b, _ := newBooleanFixture(
		"red apple",
		"green apple",
		"red banana",
	)

	assert.Equal(t, index.PostingList{0}, b.And([]string{"red", "apple"}))
	assert.Empty(t, b.And([]string{"green", "banana"}))
	assert.Empty(t, b.And(nil))
}

func TestOr(t *testing.T) {
	b, _ := newBooleanFixture(
		"red apple",
		"green apple",
		"red banana",
	)

	assert.Equal(t, index.PostingList{0, 1, 2}, b.Or([]string{"red", "green"}))
	assert.Empty(t, b.Or([]string{"kiwi"}))
}

func TestAndNot(t *testing.T) {
	b, _ := newBooleanFixture(
		"red apple",
		"green apple",
		"red banana",
	)

	assert.Equal(t, index.PostingList{0}, b.AndNot([]string{"red"}, []string{"banana"}))
	assert.Equal(t, index.PostingList{0, 1}, b.AndNot([]string{"apple"}, nil))
}

func TestTermsAreNormalized(t *testing.T) {
	b, _ := newBooleanFixture("running dogs", "sleeping cats")

	// Query terms go through the same stemming path as ingestion.
	assert.Equal(t, index.PostingList{0}, b.And([]string{"Dogs"}))
	assert.Equal(t, index.PostingList{1}, b.Or([]string{"CATS"}))
}

func TestQueryGroupingAndNot(t *testing.T) {
	b, _ := newBooleanFixture(
		"red apple",
		"green apple",
		"red banana",
	)

	got := b.Query("(red OR green) AND NOT banana")
	assert.Equal(t, index.PostingList{0, 1}, got)
}

func TestQueryPrecedence(t *testing.T) {
	b, _ := newBooleanFixture(
		"aa bb",
		"aa cc",
		"bb cc",
	)

	// AND binds tighter than OR: aa OR bb AND cc == aa OR (bb AND cc).
	assert.Equal(t, index.PostingList{0, 1, 2}, b.Query("aa OR bb AND cc"))
	assert.Equal(t, index.PostingList{1, 2}, b.Query("(aa OR bb) AND cc"))
}

func TestQueryOperatorCase(t *testing.T) {
	b, _ := newBooleanFixture("xx yy", "xx zz")

	want := b.Query("xx AND yy")
	assert.NotEmpty(t, want)
	assert.Equal(t, want, b.Query("xx and yy"))
	assert.Equal(t, want, b.Query("xx And yy"))
}

func TestQueryAndSubsetLaw(t *testing.T) {
	b, _ := newBooleanFixture(
		"go concurrency patterns",
		"go standard library",
		"python concurrency",
	)

	both := b.Query("go AND concurrency")
	left := b.Query("go")
	right := b.Query("concurrency")
	assert.Equal(t, intersect(left, right), both)
}

func TestQueryToleratesMalformedInput(t *testing.T) {
	b, _ := newBooleanFixture("alpha beta")

	assert.Empty(t, b.Query(""))
	assert.Empty(t, b.Query("AND"))
	assert.Empty(t, b.Query("alpha AND"))
	assert.Empty(t, b.Query("NOT"))
	// Unbalanced parentheses still evaluate what they can.
	assert.Equal(t, index.PostingList{0}, b.Query("(alpha"))
	assert.Equal(t, index.PostingList{0}, b.Query("alpha)"))
}

func TestQueryUnknownTermDegradesToEmpty(t *testing.T) {
	b, _ := newBooleanFixture("alpha beta")

	assert.Empty(t, b.Query("alpha AND missing"))
	assert.Equal(t, index.PostingList{0}, b.Query("alpha OR missing"))
}

func TestNotOnEmptyUniverse(t *testing.T) {
	pipeline := analysis.NewPipeline(analysis.DefaultOptions())
	b := NewBoolean(index.New(), pipeline)

	assert.Empty(t, b.Query("NOT anything"))
}

func TestNotAgainstUniverse(t *testing.T) {
	b, _ := newBooleanFixture("cats", "dogs", "cats dogs")

	assert.Equal(t, index.PostingList{1}, b.Query("NOT cats"))
	assert.Empty(t, b.Query("NOT cats AND NOT dogs"))
}

func TestMergeHelpers(t *testing.T) {
	a := index.PostingList{1, 3, 5, 7}
	c := index.PostingList{3, 4, 5, 9}

	assert.Equal(t, index.PostingList{3, 5}, intersect(a, c))
	assert.Equal(t, index.PostingList{1, 3, 4, 5, 7, 9}, union(a, c))
	assert.Equal(t, index.PostingList{0, 2, 4, 6, 8, 9}, complement(a, 10))
	assert.Empty(t, complement(nil, 0))
}
