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


package storage

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// StoredDocMUS serializes StoredDoc in the MUS format for storage
// backends that hold raw bytes.
var StoredDocMUS = storedDocMUS{}

type storedDocMUS struct{}

func (storedDocMUS) Marshal(v StoredDoc, bs []byte) (n int) {
	n = ord.String.Marshal(v.Title, bs)
	n += ord.String.Marshal(string(v.Body), bs[n:])
	n += ord.Bool.Marshal(v.Compressed, bs[n:])
	n += varint.Uint64.Marshal(v.Checksum, bs[n:])
	return n
}

func (storedDocMUS) Unmarshal(bs []byte) (v StoredDoc, n int, err error) {
	v.Title, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var body string
	var n1 int
	body, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Body = []byte(body)
	v.Compressed, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Checksum, n1, err = varint.Uint64.Unmarshal(bs[n:])
	n += n1
	return
}

func (storedDocMUS) Size(v StoredDoc) (size int) {
	size = ord.String.Size(v.Title)
	size += ord.String.Size(string(v.Body))
	size += ord.Bool.Size(v.Compressed)
	size += varint.Uint64.Size(v.Checksum)
	return size
}

// MarshalStoredDoc serializes a StoredDoc to bytes.
func MarshalStoredDoc(doc StoredDoc) []byte {
	buf := make([]byte, StoredDocMUS.Size(doc))
	StoredDocMUS.Marshal(doc, buf)
	return buf
}

// UnmarshalStoredDoc deserializes a StoredDoc from bytes.
func UnmarshalStoredDoc(data []byte) (StoredDoc, error) {
	doc, _, err := StoredDocMUS.Unmarshal(data)
	return doc, err
}
