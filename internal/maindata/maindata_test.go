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

package maindata

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/swarnimarun/Symphonia/internal/bits"
	"github.com/swarnimarun/Symphonia/internal/consts"
	"github.com/swarnimarun/Symphonia/internal/frameheader"
	"github.com/swarnimarun/Symphonia/internal/sideinfo"
)

type fakeReader struct {
	buf []byte
}

func (f *fakeReader) ReadFull(buf []byte) (int, error) {
	n := copy(buf, f.buf)
	if n < len(buf) {
		return n, io.EOF
	}
	return n, nil
}

func TestReservoirWithoutPreviousFrame(t *testing.T) {
	src := &fakeReader{buf: []byte{1, 2, 3, 4}}
	m, err := reservoir(src, nil, 4, 0)
	if err != nil {
		t.Fatalf("reservoir: %v", err)
	}
	if got, want := len(m.Vec), 4; got != want {
		t.Fatalf("len(Vec) = %d, want %d", got, want)
	}
}

func TestReservoirAppendsPreviousFrameTail(t *testing.T) {
	prev := &bits.Bits{Vec: []byte{0xAA, 0xBB, 0xCC, 0xDD}}
	src := &fakeReader{buf: []byte{0x11, 0x22}}
	m, err := reservoir(src, prev, 2, 2)
	if err != nil {
		t.Fatalf("reservoir: %v", err)
	}
	want := []byte{0xCC, 0xDD, 0x11, 0x22}
	if len(m.Vec) != len(want) {
		t.Fatalf("len(Vec) = %d, want %d", len(m.Vec), len(want))
	}
	for i := range want {
		if m.Vec[i] != want[i] {
			t.Errorf("Vec[%d] = %#x, want %#x", i, m.Vec[i], want[i])
		}
	}
}

func TestReservoirRejectsOversizedMainDataBegin(t *testing.T) {
	prev := &bits.Bits{Vec: make([]byte, 50)}
	src := &fakeReader{buf: make([]byte, 16)}
	_, err := reservoir(src, prev, 16, 100)
	var de *consts.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("reservoir = %v, want *consts.DecodeError", err)
	}
	if !strings.Contains(de.Msg, "main_data_begin") {
		t.Errorf("error %q does not name main_data_begin", de.Msg)
	}
}

func TestReservoirReportsUnexpectedEOF(t *testing.T) {
	src := &fakeReader{buf: []byte{1}}
	if _, err := reservoir(src, nil, 4, 0); err == nil {
		t.Errorf("reservoir with truncated stream succeeded, want error")
	}
}

// TestReadHuffmanDecodesBigValuesRegion hand-assembles a big_values
// region coded with Huffman table 1 and checks the decoded frequency
// lines: codeword "000" is the (1,1) pair, whose sign bits 0,1 yield
// (+1,-1), and codeword "1" is (0,0). part2_3_length of 6 bits ends
// the granule right there, so the count1 partition is empty and rzero
// lands at 4.
func TestReadHuffmanDecodesBigValuesRegion(t *testing.T) {
	h := frameheader.FrameHeader(0xFFFB90C0) // MPEG1 Layer III mono, 44.1kHz
	si := &sideinfo.SideInfo{}
	si.BigValues[0][0] = 2
	si.TableSelect[0][0][0] = 1
	si.Part2_3Length[0][0] = 6

	md := &MainData{}
	m := bits.New([]byte{0b0000_1100})
	if err := readHuffman(m, h, si, md, 0, 0, 0); err != nil {
		t.Fatalf("readHuffman: %v", err)
	}
	want := []float32{1, -1, 0, 0}
	for i, w := range want {
		if got := md.Is[0][0][i]; got != w {
			t.Errorf("Is[%d] = %v, want %v", i, got, w)
		}
	}
	if got, want := si.Count1[0][0], 4; got != want {
		t.Errorf("rzero = %d, want %d", got, want)
	}
	for i := 4; i < 576; i++ {
		if md.Is[0][0][i] != 0 {
			t.Fatalf("Is[%d] = %v, want 0 past rzero", i, md.Is[0][0][i])
		}
	}
}

// TestScalefacCompressMpeg2RangeGrouping locks in the three-range
// decomposition (sfc < 400, < 500, otherwise) that selects which nsfb
// row group a granule's scale factors are read from.
func TestScalefacCompressMpeg2RangeGrouping(t *testing.T) {
	if _, group := scalefacCompressMpeg2(0, false); group != 0 {
		t.Errorf("group(0) = %d, want 0", group)
	}
	if _, group := scalefacCompressMpeg2(450, false); group != 1 {
		t.Errorf("group(450) = %d, want 1", group)
	}
	if _, group := scalefacCompressMpeg2(600, false); group != 2 {
		t.Errorf("group(600) = %d, want 2", group)
	}
}

func TestScalefacCompressMpeg2IntensityHalves(t *testing.T) {
	slenPlain, _ := scalefacCompressMpeg2(256, false)
	slenIntensity, _ := scalefacCompressMpeg2(512, true)
	if slenPlain != slenIntensity {
		t.Errorf("scalefacCompressMpeg2(256, false) = %v, scalefacCompressMpeg2(512, true) = %v, want equal (intensity halves sfc first)", slenPlain, slenIntensity)
	}
}
