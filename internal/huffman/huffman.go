// Copyright 2017 Hajime Hoshi
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

// Package huffman decodes the Layer III big_values and count1
// Huffman-coded frequency lines against the ISO/IEC 11172-3 Annex B
// code books (see tables.go): 32 big_values table numbers sharing 15
// distinct pair code books plus per-table linbits escape widths, and
// the two count1 quadruple tables.
package huffman

import (
	"fmt"

	"github.com/swarnimarun/Symphonia/internal/bits"
)

// node is one entry of a canonical Huffman code table: a bit pattern
// of the given length decodes to the pair (x, y).
type node struct {
	len  int
	code uint32
	x    int
	y    int
}

type table struct {
	linbits int
	entries []node
}

// Decode reads one Huffman codeword for the given table number. For the
// big_values tables (table numbers 0..31) it returns the (x, y) value
// pair, also duplicated into v, w; for the two count1 tables (table
// numbers 32 and 33) it returns the four quadruple values, so that
// callers of the quadruple-valued count1 tables and callers of the
// pair-valued big_values tables can share the same signature.
func Decode(m *bits.Bits, tableNum int) (x, y, v, w int, err error) {
	if tableNum < 0 || tableNum >= len(tables) {
		return 0, 0, 0, 0, fmt.Errorf("mp3: invalid huffman table number: %d", tableNum)
	}
	t := tables[tableNum]
	if t == nil {
		return 0, 0, 0, 0, fmt.Errorf("mp3: huffman table %d is not assigned", tableNum)
	}
	if tableNum >= 32 {
		return decodeQuad(m, t)
	}
	return decodePair(m, t)
}

func decodePair(m *bits.Bits, t *table) (x, y, v, w int, err error) {
	if len(t.entries) == 0 {
		return 0, 0, 0, 0, nil
	}
	n, ok := walk(m, t)
	if !ok {
		return 0, 0, 0, 0, fmt.Errorf("mp3: huffman decode: no matching code")
	}
	// The escape extension and sign are interleaved per value: the x
	// linbits (if any) and x sign are read before y's.
	x, y = n.x, n.y
	if t.linbits > 0 && x == 15 {
		x += m.Bits(t.linbits)
	}
	if x > 0 {
		if m.Bit() != 0 {
			x = -x
		}
	}
	if t.linbits > 0 && y == 15 {
		y += m.Bits(t.linbits)
	}
	if y > 0 {
		if m.Bit() != 0 {
			y = -y
		}
	}
	return x, y, x, y, nil
}

// decodeQuad decodes one of the count1 quadruple tables. Its entries
// store the 4-bit quadruple value (v,w,x,y) packed into x (bit3..bit0)
// with y unused, matching the single nibble-keyed ISO table for
// count1.
func decodeQuad(m *bits.Bits, t *table) (x, y, v, w int, err error) {
	n, ok := walk(m, t)
	if !ok {
		return 0, 0, 0, 0, fmt.Errorf("mp3: huffman decode: no matching count1 code")
	}
	nibble := n.x
	v = (nibble >> 3) & 1
	w = (nibble >> 2) & 1
	x = (nibble >> 1) & 1
	y = nibble & 1
	if v > 0 && m.Bit() != 0 {
		v = -v
	}
	if w > 0 && m.Bit() != 0 {
		w = -w
	}
	if x > 0 && m.Bit() != 0 {
		x = -x
	}
	if y > 0 && m.Bit() != 0 {
		y = -y
	}
	return x, y, v, w, nil
}

// walk reads one bit at a time and matches the accumulated bit pattern
// against the canonical code table. MP3 Huffman tables are prefix-free
// so the first exact length/code match is unambiguous.
func walk(m *bits.Bits, t *table) (node, bool) {
	var code uint32
	for length := 1; length <= 31; length++ {
		code = (code << 1) | uint32(m.Bit())
		for _, n := range t.entries {
			if n.len == length && n.code == code {
				return n, true
			}
		}
	}
	return node{}, false
}
