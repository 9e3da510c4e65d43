package lzw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	codec := New()

	inputs := []string{
		"",
		"a",
		"hello world",
		"TOBEORNOTTOBEORTOBEORNOT",
		"the quick brown fox jumps over the lazy dog",
		strings.Repeat("ab", 5000),
		"\x00\x01\x02\xff\xfe\xfd",
	}

	for _, in := range inputs {
		frame := codec.Compress([]byte(in))
		got := codec.Decompress(frame)
		assert.Equal(t, []byte(in), append([]byte(nil), got...), "input %q", in)
	}
}

func TestEmptyInput(t *testing.T) {
	codec := New()

	frame := codec.Compress(nil)
	// Just the packed end code: 12 bits rounded up to 2 bytes.
	assert.Len(t, frame, 2)
	assert.Empty(t, codec.Decompress(frame))
}

func TestEmptyFrame(t *testing.T) {
	codec := New()
	assert.Empty(t, codec.Decompress(nil))
}

func TestKwKwK(t *testing.T) {
	codec := New()

	// Repeating pairs force the decoder through the code==nextCode path.
	in := []byte(strings.Repeat("ab", 200) + strings.Repeat("aa", 200))
	got := codec.Decompress(codec.Compress(in))
	assert.True(t, bytes.Equal(in, got))
}

func TestCompressionGain(t *testing.T) {
	codec := New()

	in := []byte(strings.Repeat("a", 20000))
	frame := codec.Compress(in)
	require.Less(t, len(frame), len(in))
	assert.Equal(t, in, codec.Decompress(frame))
}

func TestMalformedFrame(t *testing.T) {
	codec := New()

	t.Run("out of range code", func(t *testing.T) {
		// Code 300 with an empty dictionary beyond the byte alphabet.
		frame := codec.packCodes([]uint16{300, codec.opts.EndCode})
		assert.Empty(t, codec.Decompress(frame))
	})

	t.Run("invalid kwkwk reference", func(t *testing.T) {
		// Second code skips past nextCode.
		frame := codec.packCodes([]uint16{'a', 400, codec.opts.EndCode})
		assert.Empty(t, codec.Decompress(frame))
	})

	t.Run("truncated before any code", func(t *testing.T) {
		assert.Empty(t, codec.Decompress([]byte{0x41}))
	})
}

func TestDictionaryFull(t *testing.T) {
	codec := New()

	// Enough distinct digrams to exhaust the 4096-entry dictionary.
	var sb strings.Builder
	for i := 0; i < 70; i++ {
		for j := 0; j < 70; j++ {
			sb.WriteByte(byte('0' + i%10))
			sb.WriteByte(byte('a' + j%26))
			sb.WriteByte(byte('A' + (i+j)%26))
		}
	}
	in := []byte(sb.String())
	got := codec.Decompress(codec.Compress(in))
	assert.True(t, bytes.Equal(in, got))
}

func TestHex(t *testing.T) {
	codec := New()

	frame := codec.Compress([]byte("hello hello hello"))
	enc := EncodeHex(frame)
	assert.Equal(t, strings.ToLower(enc), enc)

	t.Run("lowercase decodes", func(t *testing.T) {
		assert.Equal(t, frame, DecodeHex(enc))
	})
	t.Run("uppercase decodes", func(t *testing.T) {
		assert.Equal(t, frame, DecodeHex(strings.ToUpper(enc)))
	})
	t.Run("odd length", func(t *testing.T) {
		assert.Nil(t, DecodeHex(enc[:len(enc)-1]))
	})
	t.Run("non-hex character", func(t *testing.T) {
		assert.Nil(t, DecodeHex("zz"))
	})
}
