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

package huffman_test

import (
	"testing"

	"github.com/swarnimarun/Symphonia/internal/bits"
	"github.com/swarnimarun/Symphonia/internal/huffman"
)

func TestDecodeTable0IsEmpty(t *testing.T) {
	b := bits.New([]byte{0xff, 0xff, 0xff, 0xff})
	x, y, _, _, err := huffman.Decode(b, 0)
	if err != nil {
		t.Fatalf("Decode(table 0): %v", err)
	}
	if x != 0 || y != 0 {
		t.Errorf("Decode(table 0) = (%d, %d), want (0, 0)", x, y)
	}
	if b.Pos() != 0 {
		t.Errorf("Decode(table 0) consumed %d bits, want 0", b.Pos())
	}
}

func TestDecodeInvalidTableNumber(t *testing.T) {
	b := bits.New([]byte{0, 0, 0, 0})
	if _, _, _, _, err := huffman.Decode(b, 99); err == nil {
		t.Errorf("Decode(table 99) succeeded, want error")
	}
}

// TestDecodeKnownCodewords feeds literal codewords from the ISO/IEC
// 11172-3 Annex B code books, so a transposed table entry fails loudly
// rather than decoding plausible-but-wrong values.
func TestDecodeKnownCodewords(t *testing.T) {
	cases := []struct {
		name  string
		table int
		in    []byte
		x, y  int
		bits  int // total bits consumed, codeword + sign bits
	}{
		// Table 1: (0,0) is the single bit "1".
		{"t1 (0,0)", 1, []byte{0b1000_0000}, 0, 0, 1},
		// Table 1: (1,0) is "01", then one sign bit (0 = positive).
		{"t1 (1,0)", 1, []byte{0b0100_0000}, 1, 0, 3},
		// Table 2: (0,1) is "010", then y's sign bit 1 flips it.
		{"t2 (0,-1)", 2, []byte{0b0101_0000}, 0, -1, 4},
		// Table 7: (1,2) is "000111"; sign bits 1,0.
		{"t7 (-1,2)", 7, []byte{0b0001_1110}, -1, 2, 8},
		// Table 13: (0,1) is "0101"; sign bit 0.
		{"t13 (0,1)", 13, []byte{0b0101_0000}, 0, 1, 5},
		// Table 13: (1,0) is "011"; sign bit 1.
		{"t13 (-1,0)", 13, []byte{0b0111_0000}, -1, 0, 4},
	}
	for _, c := range cases {
		b := bits.New(c.in)
		x, y, _, _, err := huffman.Decode(b, c.table)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if x != c.x || y != c.y {
			t.Errorf("%s = (%d, %d), want (%d, %d)", c.name, x, y, c.x, c.y)
		}
		if b.Pos() != c.bits {
			t.Errorf("%s consumed %d bits, want %d", c.name, b.Pos(), c.bits)
		}
	}
}

// TestDecodeLinbitsEscape exercises the escape extension on table 26
// (code book 24, linbits 6): the codeword for (1,15), x's sign bit,
// then six linbits extending y to 15+3, then y's sign bit.
func TestDecodeLinbitsEscape(t *testing.T) {
	// "00101010" (1,15) + "0" + "000011" + "1"
	b := bits.New([]byte{0b0010_1010, 0b0000_0111})
	x, y, _, _, err := huffman.Decode(b, 26)
	if err != nil {
		t.Fatalf("Decode(table 26): %v", err)
	}
	if x != 1 || y != -18 {
		t.Errorf("Decode(table 26) = (%d, %d), want (1, -18)", x, y)
	}
	if b.Pos() != 16 {
		t.Errorf("consumed %d bits, want 16", b.Pos())
	}
}

func TestDecodeQuadTableA(t *testing.T) {
	// Count1 table A codes the all-zero quadruple as the single bit
	// "1", with no sign bits following.
	b := bits.New([]byte{0b1000_0000})
	x, y, v, w, err := huffman.Decode(b, 32)
	if err != nil {
		t.Fatalf("Decode(table 32): %v", err)
	}
	if v != 0 || w != 0 || x != 0 || y != 0 {
		t.Errorf("Decode(table 32) = (%d,%d,%d,%d), want all zero", v, w, x, y)
	}
	if b.Pos() != 1 {
		t.Errorf("consumed %d bits, want 1", b.Pos())
	}
}

func TestDecodeQuadTableBIsComplementNibble(t *testing.T) {
	// Count1 table B codes every nibble n as the 4-bit value 15-n, so
	// "0100" decodes to nibble 11 = (v,w,x,y) = (1,0,1,1); the three
	// sign bits 1,0,1 then flip v and y.
	b := bits.New([]byte{0b0100_1010})
	x, y, v, w, err := huffman.Decode(b, 33)
	if err != nil {
		t.Fatalf("Decode(table 33): %v", err)
	}
	if v != -1 || w != 0 || x != 1 || y != -1 {
		t.Errorf("Decode(table 33) = (%d,%d,%d,%d), want (-1,0,1,-1)", v, w, x, y)
	}
}

// Exhausted input reads as an endless run of zero bits (see
// internal/bits's documented tradeoff); every code book is a complete
// prefix code and so has an all-zeros codeword, so decoding terminates
// deterministically instead of hanging, and the caller's
// part2_3_length budget stops the region loop.
func TestDecodeDoesNotHangOnExhaustedInput(t *testing.T) {
	b := bits.New([]byte{})
	x, y, _, _, err := huffman.Decode(b, 1)
	if err != nil {
		t.Fatalf("Decode with no data: %v", err)
	}
	// Table 1's all-zeros codeword "000" is (1,1); the phantom sign
	// bits read as 0, leaving both values positive.
	if x != 1 || y != 1 {
		t.Errorf("Decode with no data = (%d, %d), want (1, 1)", x, y)
	}
}
