package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLemmatizeIrregularForms(t *testing.T) {
	cases := map[string]string{
		// verbs
		"were":      "be",
		"was":       "be",
		"went":      "go",
		"underwent": "undergo",
		"took":      "take",
		"said":      "say",
		"thought":   "think",
		"found":     "find",
		"left":      "leave",
		"wrote":     "write",
		"mistaken":  "mistake",
		"overrode":  "override",
		// nouns
		"children":  "child",
		"men":       "man",
		"mice":      "mouse",
		"data":      "datum",
		"criteria":  "criterion",
		"matrices":  "matrix",
		"indices":   "index",
		// adjectives win over adverbs for shared forms
		"better": "good",
		"best":   "good",
		"worse":  "bad",
		"elder":  "old",
		// adverb-only forms
		"further": "far",
		"least":   "little",
	}

	for form, want := range cases {
		assert.Equal(t, want, Lemmatize(form), "lemma(%q)", form)
	}
}

func TestLemmatizeCaseInsensitive(t *testing.T) {
	assert.Equal(t, "child", Lemmatize("Children"))
	assert.Equal(t, "be", Lemmatize("WERE"))
}

func TestLemmatizeFallsThroughToStemmer(t *testing.T) {
	// "running" is in the dictionary; "jumping" is not.
	assert.Equal(t, "run", Lemmatize("running"))
	assert.Equal(t, "jump", Lemmatize("jumping"))
	assert.Equal(t, "relat", Lemmatize("relational"))
}

func TestLemmatizeAll(t *testing.T) {
	got := LemmatizeAll([]string{"children", "were", "running", "cooking"})
	assert.Equal(t, []string{"child", "be", "run", "cook"}, got)
}
