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


// Package analysis turns raw text into index terms.
//
// The pipeline runs tokenization, case folding, filtering, and then either
// Porter stemming or dictionary lemmatization:
//   - The tokenizer classifies bytes into word, number, punctuation, and
//     whitespace tokens, carrying position metadata.
//   - Stem implements the classical Porter 1980 algorithm for ASCII
//     English.
//   - Lemmatize resolves irregular verb, noun, adverb, and adjective forms
//     against a compiled-in dictionary and falls back to the stemmer.
//
// Every function in this package is total: malformed input yields empty
// output, never an error.
package analysis
