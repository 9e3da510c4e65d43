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


package lzw

// Options controls the code width and dictionary layout of a codec.
// The defaults produce the classic 12-bit variable-dictionary variant.
type Options struct {
	// CodeBits is the width of each code in the packed stream.
	CodeBits uint
	// FirstFreeCode is the first dictionary slot past the byte alphabet.
	FirstFreeCode uint16
	// EndCode terminates every frame. No dictionary entry is ever
	// assigned at or above it.
	EndCode uint16
	// MaxCode is the highest representable code.
	MaxCode uint16
}

// DefaultOptions returns the 12-bit configuration used for document storage.
func DefaultOptions() Options {
	return Options{
		CodeBits:      12,
		FirstFreeCode: 256,
		EndCode:       4095,
		MaxCode:       4095,
	}
}

// Codec is a stateless LZW compressor/decompressor. Dictionaries are
// built per call and never shared.
type Codec struct {
	opts Options
}

// New returns a codec with the default 12-bit options.
func New() *Codec {
	return &Codec{opts: DefaultOptions()}
}

// NewWithOptions returns a codec with custom parameters.
func NewWithOptions(opts Options) *Codec {
	return &Codec{opts: opts}
}

// Compress encodes input as a packed LZW frame terminated by the end code.
// The empty input compresses to just the packed end code.
func (c *Codec) Compress(input []byte) []byte {
	dict := make(map[string]uint16, 4096)
	for i := 0; i < 256; i++ {
		dict[string([]byte{byte(i)})] = uint16(i)
	}

	nextCode := c.opts.FirstFreeCode
	var w []byte
	codes := make([]uint16, 0, len(input)/2+1)

	for _, b := range input {
		if len(w) == 0 {
			w = append(w, b)
			continue
		}

		wc := append(append(make([]byte, 0, len(w)+1), w...), b)
		if _, ok := dict[string(wc)]; ok {
			w = wc
			continue
		}

		codes = append(codes, dict[string(w)])
		if nextCode < c.opts.EndCode {
			dict[string(wc)] = nextCode
			nextCode++
		}
		w = []byte{b}
	}

	if len(w) > 0 {
		codes = append(codes, dict[string(w)])
	}
	codes = append(codes, c.opts.EndCode)

	return c.packCodes(codes)
}

// Decompress decodes a packed LZW frame. Malformed input (a code outside
// the dictionary, an invalid KwKwK reference) yields nil.
func (c *Codec) Decompress(data []byte) []byte {
	codes := c.unpackCodes(data)
	if len(codes) == 0 {
		return nil
	}

	dict := make([][]byte, 256, 4096)
	for i := 0; i < 256; i++ {
		dict[i] = []byte{byte(i)}
	}

	nextCode := c.opts.FirstFreeCode

	idx := 0
	first := codes[idx]
	idx++
	if first == c.opts.EndCode {
		return nil
	}
	if int(first) >= len(dict) {
		return nil
	}

	w := dict[first]
	out := append([]byte(nil), w...)

	for idx < len(codes) {
		k := codes[idx]
		idx++
		if k == c.opts.EndCode {
			break
		}

		var entry []byte
		switch {
		case int(k) < len(dict):
			entry = dict[k]
		case k == nextCode && len(w) > 0:
			// KwKwK: the code refers to the entry being built.
			entry = append(append(make([]byte, 0, len(w)+1), w...), w[0])
		default:
			return nil
		}

		out = append(out, entry...)

		if nextCode < c.opts.EndCode && len(w) > 0 && len(entry) > 0 {
			grown := append(append(make([]byte, 0, len(w)+1), w...), entry[0])
			dict = append(dict, grown)
			nextCode++
		}

		w = entry
	}

	return out
}

// packCodes packs codes least-significant-bit first at CodeBits per code.
func (c *Codec) packCodes(codes []uint16) []byte {
	out := make([]byte, 0, (len(codes)*int(c.opts.CodeBits)+7)/8)
	var buffer uint32
	var bits uint

	mask := uint32(1)<<c.opts.CodeBits - 1
	for _, code := range codes {
		buffer |= (uint32(code) & mask) << bits
		bits += c.opts.CodeBits
		for bits >= 8 {
			out = append(out, byte(buffer&0xFF))
			buffer >>= 8
			bits -= 8
		}
	}
	if bits > 0 {
		out = append(out, byte(buffer&0xFF))
	}
	return out
}

func (c *Codec) unpackCodes(data []byte) []uint16 {
	codes := make([]uint16, 0, len(data)*8/int(c.opts.CodeBits)+1)
	var buffer uint32
	var bits uint

	mask := uint32(1)<<c.opts.CodeBits - 1
	for _, b := range data {
		buffer |= uint32(b) << bits
		bits += 8
		for bits >= c.opts.CodeBits {
			codes = append(codes, uint16(buffer&mask))
			buffer >>= c.opts.CodeBits
			bits -= c.opts.CodeBits
		}
	}
	return codes
}
