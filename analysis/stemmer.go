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

import "strings"

// Stem applies the Porter 1980 algorithm to a single English word.
// Input is expected to be ASCII; it is case-folded first. Words shorter
// than three bytes are returned unchanged. The function is pure.
func Stem(word string) string {
	if len(word) < 3 {
		return word
	}

	w := ToLower(word)
	w = step1a(w)
	w = step1b(w)
	w = step1c(w)
	w = step2(w)
	w = step3(w)
	w = step4(w)
	w = step5a(w)
	w = step5b(w)
	return w
}

// StemAll stems each word in order.
func StemAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = Stem(w)
	}
	return out
}

// isConsonant reports whether w[i] acts as a consonant. 'y' is a
// consonant at position 0 and after a vowel.
func isConsonant(w string, i int) bool {
	switch w[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == 0 {
			return true
		}
		return !isConsonant(w, i-1)
	}
	return true
}

// measure computes Porter's m: the number of VC groups in [C](VC)^m[V].
func measure(w string) int {
	m := 0
	i := 0
	n := len(w)

	for i < n && !isConsonant(w, i) {
		i++
	}
	for i < n {
		for i < n && isConsonant(w, i) {
			i++
		}
		if i >= n {
			break
		}
		m++
		for i < n && !isConsonant(w, i) {
			i++
		}
	}
	return m
}

func hasVowel(w string) bool {
	for i := range w {
		if !isConsonant(w, i) {
			return true
		}
	}
	return false
}

func endsDoubleConsonant(w string) bool {
	n := len(w)
	if n < 2 || w[n-1] != w[n-2] {
		return false
	}
	return isConsonant(w, n-1)
}

// endsCVC reports consonant-vowel-consonant at the end of w, where the
// final consonant is not w, x, or y.
func endsCVC(w string) bool {
	n := len(w)
	if n < 3 {
		return false
	}
	if !isConsonant(w, n-1) || isConsonant(w, n-2) || !isConsonant(w, n-3) {
		return false
	}
	c := w[n-1]
	return c != 'w' && c != 'x' && c != 'y'
}

func step1a(w string) string {
	switch {
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-4] + "ss"
	case strings.HasSuffix(w, "ies"):
		return w[:len(w)-3] + "i"
	case strings.HasSuffix(w, "ss"):
		return w
	case strings.HasSuffix(w, "s"):
		return w[:len(w)-1]
	}
	return w
}

func step1b(w string) string {
	if strings.HasSuffix(w, "eed") {
		if measure(w[:len(w)-3]) > 0 {
			return w[:len(w)-3] + "ee"
		}
		return w
	}

	result := w
	stripped := false
	if strings.HasSuffix(w, "ed") {
		if stem := w[:len(w)-2]; hasVowel(stem) {
			result = stem
			stripped = true
		}
	} else if strings.HasSuffix(w, "ing") {
		if stem := w[:len(w)-3]; hasVowel(stem) {
			result = stem
			stripped = true
		}
	}

	if stripped {
		switch {
		case strings.HasSuffix(result, "at"):
			return result + "e"
		case strings.HasSuffix(result, "bl"):
			return result + "e"
		case strings.HasSuffix(result, "iz"):
			return result + "e"
		}
		if endsDoubleConsonant(result) {
			if c := result[len(result)-1]; c != 'l' && c != 's' && c != 'z' {
				return result[:len(result)-1]
			}
		}
		if measure(result) == 1 && endsCVC(result) {
			result += "e"
		}
	}
	return result
}

func step1c(w string) string {
	if strings.HasSuffix(w, "y") && hasVowel(w[:len(w)-1]) {
		return w[:len(w)-1] + "i"
	}
	return w
}

func step2(w string) string {
	for _, rule := range step2Rules {
		if strings.HasSuffix(w, rule.from) {
			stem := w[:len(w)-len(rule.from)]
			if measure(stem) > 0 {
				return stem + rule.to
			}
			return w
		}
	}
	return w
}

func step3(w string) string {
	for _, rule := range step3Rules {
		if strings.HasSuffix(w, rule.from) {
			stem := w[:len(w)-len(rule.from)]
			if measure(stem) > 0 {
				return stem + rule.to
			}
			return w
		}
	}
	return w
}

func step4(w string) string {
	for _, suffix := range step4Suffixes {
		if !strings.HasSuffix(w, suffix) {
			continue
		}
		stem := w[:len(w)-len(suffix)]
		if suffix == "ion" {
			if len(stem) > 0 {
				if c := stem[len(stem)-1]; (c == 's' || c == 't') && measure(stem) > 1 {
					return stem
				}
			}
		} else if measure(stem) > 1 {
			return stem
		}
	}
	return w
}

func step5a(w string) string {
	if strings.HasSuffix(w, "e") {
		stem := w[:len(w)-1]
		if m := measure(stem); m > 1 || (m == 1 && !endsCVC(stem)) {
			return stem
		}
	}
	return w
}

func step5b(w string) string {
	if measure(w) > 1 && endsDoubleConsonant(w) && strings.HasSuffix(w, "l") {
		return w[:len(w)-1]
	}
	return w
}
