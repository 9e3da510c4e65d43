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


// Package searchdb is an embeddable in-memory text search engine.
//
// A Database ingests textual documents through a configurable analysis
// pipeline (tokenization, case folding, Porter stemming or
// lemmatization), maintains an inverted index over the resulting terms,
// and answers two kinds of queries: Boolean expressions (AND/OR/NOT with
// parentheses) evaluated over posting lists, and free-form queries
// ranked by smoothed TF-IDF. Document bodies can optionally be retained
// — LZW-compressed or raw — and retrieved by document id.
//
//	db, _ := searchdb.New(searchdb.DefaultOptions())
//	defer db.Close()
//
//	db.AddDocumentWithTitle("machine learning with python", "ml")
//	db.AddDocument("cooking italian recipes")
//
//	hits := db.Search("learning", 10)
//	ids := db.BooleanQuery("(machine OR cooking) AND NOT recipes")
//
// Everything is synchronous and in-process. The engine never returns
// errors from indexing or querying: unknown terms, unknown ids, and
// malformed queries degrade to empty results.
package searchdb
