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


package analysis

// Options configures the text pipeline.
type Options struct {
	// LowerCase maps A-Z to a-z.
	LowerCase bool
	// SkipPunctuation drops punctuation tokens.
	SkipPunctuation bool
	// SkipNumbers drops tokens whose first byte is a digit.
	SkipNumbers bool
	// MinTokenLength discards word tokens shorter than this.
	MinTokenLength int
	// MaxTokenLength discards word tokens longer than this.
	MaxTokenLength int
	// UseStemming runs the Porter stemmer over kept tokens.
	UseStemming bool
	// UseLemmatization runs the irregular-forms lemmatizer with stemmer
	// fallback. Wins over UseStemming when both are set.
	UseLemmatization bool
	// FilterStopwords drops common English function words before
	// stemming. Off by default.
	FilterStopwords bool
}

// DefaultOptions returns the pipeline defaults: lower-cased, punctuation
// and numbers skipped, token length in [2, 100], Porter stemming on.
func DefaultOptions() Options {
	return Options{
		LowerCase:       true,
		SkipPunctuation: true,
		SkipNumbers:     true,
		MinTokenLength:  2,
		MaxTokenLength:  100,
		UseStemming:     true,
	}
}

// Pipeline is the deterministic text -> terms transformation used for both
// ingestion and query normalization. It never fails; unusable input
// produces an empty term list.
type Pipeline struct {
	opts Options
}

// NewPipeline returns a pipeline with the given options.
func NewPipeline(opts Options) *Pipeline {
	return &Pipeline{opts: opts}
}

// Options returns the pipeline configuration.
func (p *Pipeline) Options() Options {
	return p.opts
}

func (p *Pipeline) tokenizer() *Tokenizer {
	return NewTokenizer(TokenizerOptions{
		LowerCase:       p.opts.LowerCase,
		SkipWhitespace:  true,
		SkipPunctuation: p.opts.SkipPunctuation,
		SkipNumbers:     p.opts.SkipNumbers,
		MinTokenLength:  p.opts.MinTokenLength,
		MaxTokenLength:  p.opts.MaxTokenLength,
	})
}

// Process transforms text into the sequence of index terms.
func (p *Pipeline) Process(text string) []string {
	tokens := p.tokenizer().TokenizeToStrings(text)

	if p.opts.FilterStopwords {
		kept := tokens[:0]
		for _, tok := range tokens {
			if !stopwords[tok] {
				kept = append(kept, tok)
			}
		}
		tokens = kept
	}

	if p.opts.UseLemmatization {
		return LemmatizeAll(tokens)
	}
	if p.opts.UseStemming {
		return StemAll(tokens)
	}
	return tokens
}

// Tokenize returns tokens with position metadata, without the
// stemming/lemmatization stage.
func (p *Pipeline) Tokenize(text string) []Token {
	return p.tokenizer().Tokenize(text)
}

// NormalizeTerm applies the case/stem path used at ingestion to a single
// already-tokenized term. Normalization is idempotent.
func (p *Pipeline) NormalizeTerm(term string) string {
	result := term
	if p.opts.LowerCase {
		result = ToLower(result)
	}
	if p.opts.UseLemmatization {
		return Lemmatize(result)
	}
	if p.opts.UseStemming {
		return Stem(result)
	}
	return result
}

// NormalizeTerms normalizes each term in order.
func (p *Pipeline) NormalizeTerms(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = p.NormalizeTerm(t)
	}
	return out
}

// stopwords is the optional function-word filter set.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true,
}
