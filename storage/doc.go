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


// Package storage defines the document store used by the search database
// to retain document bodies and titles.
//
// Two implementations ship with the module: MemoryStore, a map-backed
// store, and the badger subpackage's in-memory BadgerDB store. Stored
// entries carry a BLAKE2b checksum; an entry that fails verification is
// reported as absent rather than returned corrupted.
package storage
