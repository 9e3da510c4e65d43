package analysis

// TokenType classifies a token by its first byte.
type TokenType int

const (
	// TokenWord starts with an ASCII letter and continues with letters,
	// digits, underscore, or hyphen.
	TokenWord TokenType = iota
	// TokenNumber starts with a digit and continues with digits, '.', ','.
	TokenNumber
	// TokenPunctuation is any other single byte.
	TokenPunctuation
	// TokenWhitespace is a run of space, tab, CR, LF.
	TokenWhitespace
)

// Token is a lexical unit with its position and length in the source text.
// Position and length refer to the original bytes, before case folding.
type Token struct {
	Text     string
	Position int
	Length   int
}

// TokenizerOptions controls token emission.
type TokenizerOptions struct {
	LowerCase       bool
	SkipWhitespace  bool
	SkipPunctuation bool
	SkipNumbers     bool
	MinTokenLength  int
	MaxTokenLength  int
}

// DefaultTokenizerOptions returns the standalone tokenizer defaults.
// The text pipeline overrides the length bounds with its own.
func DefaultTokenizerOptions() TokenizerOptions {
	return TokenizerOptions{
		LowerCase:       true,
		SkipWhitespace:  true,
		SkipPunctuation: true,
		SkipNumbers:     true,
		MinTokenLength:  1,
		MaxTokenLength:  1000,
	}
}

// Tokenizer splits a byte string into word, number, punctuation, and
// whitespace tokens. It operates on raw bytes; anything outside ASCII is
// treated as opaque single-byte punctuation.
type Tokenizer struct {
	opts TokenizerOptions
}

// NewTokenizer returns a tokenizer with the given options.
func NewTokenizer(opts TokenizerOptions) *Tokenizer {
	return &Tokenizer{opts: opts}
}

// Tokenize scans text into tokens according to the configured options.
// The length filters apply to word tokens only.
func (t *Tokenizer) Tokenize(text string) []Token {
	var tokens []Token
	pos := 0
	n := len(text)

	for pos < n {
		for pos < n && isWhitespace(text[pos]) {
			if !t.opts.SkipWhitespace {
				start := pos
				for pos < n && isWhitespace(text[pos]) {
					pos++
				}
				tokens = append(tokens, Token{Text: text[start:pos], Position: start, Length: pos - start})
			} else {
				pos++
			}
		}
		if pos >= n {
			break
		}

		start := pos
		switch charType(text[pos]) {
		case TokenWord:
			for pos < n && (isAlpha(text[pos]) || isDigit(text[pos]) || text[pos] == '_' || text[pos] == '-') {
				pos++
			}
			word := text[start:pos]
			if t.opts.LowerCase {
				word = ToLower(word)
			}
			if len(word) >= t.opts.MinTokenLength && len(word) <= t.opts.MaxTokenLength {
				tokens = append(tokens, Token{Text: word, Position: start, Length: pos - start})
			}
		case TokenNumber:
			for pos < n && (isDigit(text[pos]) || text[pos] == '.' || text[pos] == ',') {
				pos++
			}
			if !t.opts.SkipNumbers {
				tokens = append(tokens, Token{Text: text[start:pos], Position: start, Length: pos - start})
			}
		default:
			pos++
			if !t.opts.SkipPunctuation {
				tokens = append(tokens, Token{Text: text[start:pos], Position: start, Length: 1})
			}
		}
	}

	return tokens
}

// TokenizeToStrings returns just the token texts.
func (t *Tokenizer) TokenizeToStrings(text string) []string {
	tokens := t.Tokenize(text)
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

// ToLower folds ASCII A-Z to a-z, leaving every other byte untouched.
func ToLower(s string) string {
	i := 0
	for i < len(s) && !(s[i] >= 'A' && s[i] <= 'Z') {
		i++
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// Normalize strips a string down to its lowered alphanumeric bytes.
func Normalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAlpha(c) || isDigit(c) {
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			out = append(out, c)
		}
	}
	return string(out)
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func charType(c byte) TokenType {
	switch {
	case isAlpha(c):
		return TokenWord
	case isDigit(c):
		return TokenNumber
	case isWhitespace(c):
		return TokenWhitespace
	default:
		return TokenPunctuation
	}
}
