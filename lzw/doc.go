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


// Package lzw implements the LZW frame format used for stored documents.
//
// Frames carry 12-bit codes by default, packed least-significant-bit
// first, with code 4095 reserved as the frame terminator. The dictionary
// holds at most 4096 entries and is local to each call; compression is
// infallible and decompression degrades to an empty result on malformed
// input rather than reporting an error.
package lzw
