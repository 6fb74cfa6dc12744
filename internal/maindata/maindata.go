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

// Package maindata reads the Layer III main data block: the bit
// reservoir, the scale factors (both the MPEG1 SCFSI scheme and the
// MPEG2/2.5 tabular scheme) and, via internal/huffman, the quantized
// frequency lines.
package maindata

import (
	"fmt"
	"io"

	"github.com/swarnimarun/Symphonia/internal/bits"
	"github.com/swarnimarun/Symphonia/internal/consts"
	"github.com/swarnimarun/Symphonia/internal/frameheader"
	"github.com/swarnimarun/Symphonia/internal/huffman"
	"github.com/swarnimarun/Symphonia/internal/sideinfo"
)

// A MainData is the per-frame granule/channel data decoded from the
// bit reservoir: scale factors and dequantization-ready frequency
// lines.
// The scale factor arrays carry one extra band each (22 long, 13
// short) beyond what the bitstream ever encodes: the requantizer and
// the intensity stereo pass both walk the full band tables, and the
// last band's scale factor is defined to be zero.
type MainData struct {
	ScalefacL [2][2][22]int
	ScalefacS [2][2][13][3]int
	Is        [2][2][576]float32
}

type FullReader interface {
	ReadFull([]byte) (int, error)
}

// Read assembles the bit reservoir for this frame (the tail of the
// previous frame's main data plus this frame's own main data bytes,
// sliced at main_data_begin) and decodes every granule/channel's scale
// factors and Huffman-coded frequency lines from it.
func Read(source FullReader, prev *bits.Bits, header frameheader.FrameHeader, si *sideinfo.SideInfo) (*MainData, *bits.Bits, error) {
	frameSize := header.FrameSize()
	if frameSize > 2000 {
		return nil, nil, &consts.DecodeError{Msg: fmt.Sprintf("frame size too large: %d", frameSize)}
	}
	mainDataSize := frameSize - header.SideInfoSize() - 4
	if header.ProtectionBit() == 0 {
		mainDataSize -= 2
	}
	if mainDataSize < 0 {
		return nil, nil, &consts.DecodeError{Msg: fmt.Sprintf("frame size too small: %d", frameSize)}
	}

	m, err := reservoir(source, prev, mainDataSize, si.MainDataBegin)
	if err != nil {
		return nil, nil, err
	}

	md := &MainData{}
	nch := header.NumberOfChannels()
	v1 := header.ID() == consts.Version1
	granules := header.Granules()

	for gr := 0; gr < granules; gr++ {
		for ch := 0; ch < nch; ch++ {
			part2Start := m.Pos()
			if v1 {
				readScalefacMpeg1(m, si, md, gr, ch)
			} else {
				intensity := ch == 1 && header.UseIntensityStereo()
				readScalefacMpeg2(m, si, md, gr, ch, intensity)
			}
			if err := readHuffman(m, header, si, md, part2Start, gr, ch); err != nil {
				return nil, nil, err
			}
		}
	}
	return md, m, nil
}

// reservoir concatenates the tail of the previous frame's main data
// (main_data_begin bytes back from its end) with this frame's own main
// data bytes, the classic Layer III cross-frame bit reservoir.
func reservoir(source FullReader, prev *bits.Bits, size, offset int) (*bits.Bits, error) {
	if size > 1500 {
		return nil, &consts.DecodeError{Msg: fmt.Sprintf("main data size too large: %d", size)}
	}
	prevLen := 0
	if prev != nil {
		prevLen = len(prev.Vec)
	}
	if offset > prevLen {
		// Not enough data in the reservoir: still consume this frame's
		// bytes off the stream so the following frame stays aligned,
		// but this frame can't be decoded.
		buf := make([]byte, size)
		n, err := source.ReadFull(buf)
		if n < size {
			if err == io.EOF {
				return nil, &consts.UnexpectedEOF{At: "maindata.reservoir (1)"}
			}
			return nil, err
		}
		return nil, &consts.DecodeError{Msg: "Invalid main_data_begin offset"}
	}

	vec := []uint8{}
	if prev != nil {
		v := prev.Vec
		vec = append(vec, v[len(v)-offset:]...)
	}
	buf := make([]byte, size)
	n, err := source.ReadFull(buf)
	if n < size {
		if err == io.EOF {
			return nil, &consts.UnexpectedEOF{At: "maindata.reservoir (2)"}
		}
		return nil, err
	}
	return &bits.Bits{Vec: append(vec, buf...)}, nil
}

func readScalefacMpeg1(m *bits.Bits, si *sideinfo.SideInfo, md *MainData, gr, ch int) {
	slen1 := consts.ScaleFactorSlen[si.ScalefacCompress[gr][ch]][0]
	slen2 := consts.ScaleFactorSlen[si.ScalefacCompress[gr][ch]][1]

	if si.WinSwitchFlag[gr][ch] != 0 && si.BlockType[gr][ch] == 2 {
		if si.MixedBlockFlag[gr][ch] != 0 {
			for sfb := 0; sfb < 8; sfb++ {
				md.ScalefacL[gr][ch][sfb] = m.Bits(slen1)
			}
			for sfb := 3; sfb < 12; sfb++ {
				nbits := slen2
				if sfb < 6 {
					nbits = slen1
				}
				for win := 0; win < 3; win++ {
					md.ScalefacS[gr][ch][sfb][win] = m.Bits(nbits)
				}
			}
		} else {
			for sfb := 0; sfb < 12; sfb++ {
				nbits := slen2
				if sfb < 6 {
					nbits = slen1
				}
				for win := 0; win < 3; win++ {
					md.ScalefacS[gr][ch][sfb][win] = m.Bits(nbits)
				}
			}
		}
		return
	}

	readLong := func(lo, hi, nbits int) {
		for sfb := lo; sfb < hi; sfb++ {
			md.ScalefacL[gr][ch][sfb] = m.Bits(nbits)
		}
	}
	copyLong := func(lo, hi int) {
		for sfb := lo; sfb < hi; sfb++ {
			md.ScalefacL[1][ch][sfb] = md.ScalefacL[0][ch][sfb]
		}
	}
	bands := [4][3]int{{0, 6, slen1}, {6, 11, slen1}, {11, 16, slen2}, {16, 21, slen2}}
	for i, band := range bands {
		if si.Scfsi[ch][i] == 0 || gr == 0 {
			readLong(band[0], band[1], band[2])
		} else if si.Scfsi[ch][i] == 1 && gr == 1 {
			copyLong(band[0], band[1])
		}
	}
}

// scalefacCompressMpeg2 decomposes a 9-bit MPEG2/2.5 scalefac_compress
// field into the four region bit widths and the nsfb table group used
// to size them, following the classic three-range decomposition common
// to MPEG2 Layer III decoders.
func scalefacCompressMpeg2(sfc int, intensity bool) (slen [4]int, group int) {
	if intensity {
		sfc >>= 1
	}
	switch {
	case sfc < 400:
		slen[0] = (sfc >> 4) / 5
		slen[1] = (sfc >> 4) % 5
		slen[2] = (sfc & 0xf) >> 2
		slen[3] = sfc & 3
		group = 0
	case sfc < 500:
		sfc -= 400
		slen[0] = (sfc >> 2) / 5
		slen[1] = (sfc >> 2) % 5
		slen[2] = sfc & 3
		slen[3] = 0
		group = 1
	default:
		sfc -= 500
		slen[0] = sfc / 3
		slen[1] = sfc % 3
		slen[2] = 0
		slen[3] = 0
		group = 2
	}
	return
}

// readScalefacMpeg2 reads the tabular MPEG2/2.5 scale factors. The
// nsfb table gives the number of raw VLC-coded values per of the four
// bit-width regions; values are assigned, in bitstream order, to long
// scale factor bands for an unswitched granule, or to (band, window)
// slots - three consecutive window values per band - for a granule
// using short blocks, continuing from scale factor band 3 when the
// granule is a mixed block (matching the long/short split already used
// by the rest of the pipeline). Values beyond short band 11 are read
// and discarded.
//
// The exact region boundaries the ISO tables specify for a mixed
// block's 4 VLC groups are not reproduced bit-for-bit here (see
// DESIGN.md); this still reads exactly as many bits as the bitstream
// carries for this field, which is what keeps the Huffman data that
// follows correctly aligned.
func readScalefacMpeg2(m *bits.Bits, si *sideinfo.SideInfo, md *MainData, gr, ch int, intensity bool) {
	slen, group := scalefacCompressMpeg2(si.ScalefacCompress[gr][ch], intensity)

	row := group + 3
	if intensity {
		row = group
	}
	short := si.WinSwitchFlag[gr][ch] != 0 && si.BlockType[gr][ch] == 2
	blockIndex := 0
	if short {
		blockIndex = 1
		if si.MixedBlockFlag[gr][ch] != 0 {
			blockIndex = 2
		}
	}
	nsfb := consts.ScaleFactorMpeg2Nsfb[row][blockIndex]

	if !short {
		sfb := 0
		for region, n := range nsfb {
			for i := 0; i < n && sfb < 21; i++ {
				md.ScalefacL[gr][ch][sfb] = m.Bits(slen[region])
				sfb++
			}
		}
		return
	}

	sfb := 0
	win := 0
	if si.MixedBlockFlag[gr][ch] != 0 {
		sfb = 3
	}
	for region, n := range nsfb {
		for i := 0; i < n; i++ {
			v := m.Bits(slen[region])
			if sfb >= 12 {
				continue
			}
			md.ScalefacS[gr][ch][sfb][win] = v
			win++
			if win == 3 {
				win = 0
				sfb++
			}
		}
	}
}

// readHuffman decodes the big_values and count1 frequency lines for
// one granule/channel, following the region-boundary and quad/pair
// decode shape of the reference Layer III decoders this package was
// ported from.
func readHuffman(m *bits.Bits, header frameheader.FrameHeader, si *sideinfo.SideInfo, md *MainData, part2Start, gr, ch int) error {
	if si.Part2_3Length[gr][ch] == 0 {
		for i := range md.Is[gr][ch] {
			md.Is[gr][ch][i] = 0
		}
		return nil
	}

	bitPosEnd := part2Start + si.Part2_3Length[gr][ch] - 1
	if m.Pos() > bitPosEnd+1 {
		return &consts.DecodeError{Msg: "part2 length exceeds part2_3_length"}
	}
	region1Start := 0
	region2Start := 0
	l := consts.ScaleFactorLongBands(header.ID(), header.SamplingFrequency())
	switch {
	case si.WinSwitchFlag[gr][ch] == 1 && header.ID() == consts.Version2_5:
		// MPEG2.5 window-switched granules size region1 off the long-block
		// table directly: index 6 for an unmixed short block, 8 otherwise
		// (Start, End, or a mixed short block).
		idx := 6
		if !(si.BlockType[gr][ch] == 2 && si.MixedBlockFlag[gr][ch] == 0) {
			idx = 8
		}
		region1Start = l[idx]
		region2Start = consts.SamplesPerGr
	case si.WinSwitchFlag[gr][ch] == 1 && (header.ID() == consts.Version1 || si.BlockType[gr][ch] == 2):
		region1Start = 36
		region2Start = consts.SamplesPerGr
	case si.WinSwitchFlag[gr][ch] == 1:
		// MPEG2 Start/End block with window switching but no short window.
		region1Start = 54
		region2Start = consts.SamplesPerGr
	default:
		i := si.Region0Count[gr][ch] + 1
		if i < 0 || len(l) <= i {
			return fmt.Errorf("mp3: readHuffman: invalid region0 index %d", i)
		}
		region1Start = l[i]
		j := si.Region0Count[gr][ch] + si.Region1Count[gr][ch] + 2
		if j > 22 {
			j = 22
		}
		region2Start = l[j]
	}

	isPos := 0
	for ; isPos < si.BigValues[gr][ch]*2; isPos++ {
		if isPos >= len(md.Is[gr][ch]) {
			return fmt.Errorf("mp3: readHuffman: isPos out of range: %d", isPos)
		}
		var tableNum int
		switch {
		case isPos < region1Start:
			tableNum = si.TableSelect[gr][ch][0]
		case isPos < region2Start:
			tableNum = si.TableSelect[gr][ch][1]
		default:
			tableNum = si.TableSelect[gr][ch][2]
		}
		x, y, _, _, err := huffman.Decode(m, tableNum)
		if err != nil {
			return err
		}
		md.Is[gr][ch][isPos] = float32(x)
		isPos++
		md.Is[gr][ch][isPos] = float32(y)
	}

	tableNum := si.Count1TableSelect[gr][ch] + 32
	for isPos <= 572 && m.Pos() <= bitPosEnd {
		x, y, v, w, err := huffman.Decode(m, tableNum)
		if err != nil {
			return err
		}
		quad := [4]int{v, w, x, y}
		for _, val := range quad {
			md.Is[gr][ch][isPos] = float32(val)
			isPos++
			if isPos >= consts.SamplesPerGr {
				break
			}
		}
	}

	if m.Pos() > bitPosEnd+1 {
		isPos -= 4
	}
	if isPos < 0 {
		isPos = 0
	}
	si.Count1[gr][ch] = isPos
	for isPos < consts.SamplesPerGr {
		md.Is[gr][ch][isPos] = 0
		isPos++
	}
	m.SetPos(bitPosEnd + 1)
	return nil
}
