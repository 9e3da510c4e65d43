package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipelineDefaults(t *testing.T) {
	p := NewPipeline(DefaultOptions())

	got := p.Process("The Runners were running, quickly!")
	assert.Equal(t, []string{"the", "runner", "were", "run", "quickli"}, got)
}

func TestPipelineMinLength(t *testing.T) {
	p := NewPipeline(DefaultOptions())

	// Single-letter words fall below the default minimum of 2.
	got := p.Process("a big cat")
	assert.Equal(t, []string{"big", "cat"}, got)
}

func TestPipelineLemmatization(t *testing.T) {
	opts := DefaultOptions()
	opts.UseLemmatization = true
	p := NewPipeline(opts)

	got := p.Process("the children were running")
	assert.Equal(t, []string{"the", "child", "be", "run"}, got)
}

func TestPipelineNoStemming(t *testing.T) {
	opts := DefaultOptions()
	opts.UseStemming = false
	p := NewPipeline(opts)

	got := p.Process("Running easily")
	assert.Equal(t, []string{"running", "easily"}, got)
}

func TestPipelineStopwords(t *testing.T) {
	opts := DefaultOptions()
	opts.FilterStopwords = true
	opts.UseStemming = false
	p := NewPipeline(opts)

	got := p.Process("the cat sat on the mat")
	assert.Equal(t, []string{"cat", "sat", "mat"}, got)
}

func TestPipelineEmptyInput(t *testing.T) {
	p := NewPipeline(DefaultOptions())
	assert.Empty(t, p.Process(""))
	assert.Empty(t, p.Process(" ... 123 !"))
}

func TestNormalizeTermIdempotent(t *testing.T) {
	p := NewPipeline(DefaultOptions())

	for _, s := range []string{"Running", "RELATIONAL", "cats", "hoping", "x", ""} {
		once := p.NormalizeTerm(s)
		assert.Equal(t, once, p.NormalizeTerm(once), "normalize(normalize(%q))", s)
	}
}

func TestNormalizeTerms(t *testing.T) {
	p := NewPipeline(DefaultOptions())

	got := p.NormalizeTerms([]string{"Running", "Cats"})
	assert.Equal(t, []string{"run", "cat"}, got)
}

func TestPipelineTokenize(t *testing.T) {
	p := NewPipeline(DefaultOptions())

	tokens := p.Tokenize("Hello world")
	assert.Len(t, tokens, 2)
	assert.Equal(t, "hello", tokens[0].Text)
	assert.Equal(t, 6, tokens[1].Position)
}
