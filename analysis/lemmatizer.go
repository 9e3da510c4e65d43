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

import "sync"

var (
	lemmaOnce sync.Once
	lemmaDict map[string]string
)

// lemmaDictionary lazily builds the process-wide form -> base table.
// Insertion order matters: adjectives are loaded after adverbs, so a form
// present in both (e.g. "better") resolves to the adjective base.
func lemmaDictionary() map[string]string {
	lemmaOnce.Do(func() {
		dict := make(map[string]string, 1024)
		for _, table := range [][][2]string{
			irregularVerbs,
			irregularAdverbs,
			irregularNouns,
			irregularAdjectives,
		} {
			for _, pair := range table {
				dict[pair[0]] = pair[1]
			}
		}
		lemmaDict = dict
	})
	return lemmaDict
}

// Lemmatize maps an English word to its dictionary base form. The lookup
// is case-insensitive; words without an irregular form fall through to
// the Porter stemmer.
func Lemmatize(word string) string {
	lower := ToLower(word)
	if base, ok := lemmaDictionary()[lower]; ok {
		return base
	}
	return Stem(lower)
}

// LemmatizeAll lemmatizes each word in order.
func LemmatizeAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = Lemmatize(w)
	}
	return out
}
