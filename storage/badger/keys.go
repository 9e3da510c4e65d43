package badger

import (
	"encoding/binary"

	"github.com/poiesic/searchdb/index"
)

// Key prefix for stored documents.
const docPrefix = "doc"

// makeDocKey generates the key for a document body.
// Format: prefix:id, id in BigEndian so iteration follows DocID order.
func makeDocKey(id index.DocID) []byte {
	prefix := docPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}
