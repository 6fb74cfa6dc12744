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

// Package sideinfo reads the Layer III side information block that
// precedes the (reservoir-backed) main data of every frame.
package sideinfo

import (
	"github.com/swarnimarun/Symphonia/internal/bits"
	"github.com/swarnimarun/Symphonia/internal/consts"
	"github.com/swarnimarun/Symphonia/internal/frameheader"
)

// A SideInfo is the Layer III side information for one frame.
// [2][2] means [gr][ch]; Version 2/2.5 frames only use gr index 0.
type SideInfo struct {
	MainDataBegin    int       // 9 bits (V1), 8 bits (V2/2.5)
	PrivateBits      int       // 5 bits mono / 3 bits stereo (V1), 1/2 bits (V2/2.5)
	Scfsi            [2][4]int // 1 bit, V1 only

	Part2_3Length    [2][2]int // 12 bits
	BigValues        [2][2]int // 9 bits
	GlobalGain       [2][2]int // 8 bits
	ScalefacCompress [2][2]int // 4 bits (V1) / 9 bits (V2/2.5)
	WinSwitchFlag    [2][2]int // 1 bit

	BlockType      [2][2]int    // 2 bits
	MixedBlockFlag [2][2]int    // 1 bit
	TableSelect    [2][2][3]int // 5 bits
	SubblockGain   [2][2][3]int // 3 bits

	Region0Count [2][2]int // 4 bits
	Region1Count [2][2]int // 3 bits

	Preflag           [2][2]int // 1 bit (V1); implied by scalefac_compress >= 500 (V2/2.5)
	ScalefacScale     [2][2]int // 1 bit
	Count1TableSelect [2][2]int // 1 bit
	Count1            [2][2]int // not read from the bitstream: set by huffman decode
}

type FullReader interface {
	ReadFull([]byte) (int, error)
}

// Read parses the side information that sits right after the frame
// header (and optional CRC) for the given header's version and
// channel mode.
func Read(source FullReader, header frameheader.FrameHeader) (*SideInfo, error) {
	size := header.SideInfoSize()
	buf := make([]byte, size)
	if n, err := source.ReadFull(buf); n < size {
		if err != nil {
			return nil, &consts.UnexpectedEOF{At: "sideinfo.Read"}
		}
	}
	b := &bits.Bits{Vec: buf}

	si := &SideInfo{}
	nch := header.NumberOfChannels()
	v1 := header.ID() == consts.Version1

	if v1 {
		si.MainDataBegin = b.Bits(9)
		if nch == 1 {
			si.PrivateBits = b.Bits(5)
		} else {
			si.PrivateBits = b.Bits(3)
		}
		for ch := 0; ch < nch; ch++ {
			for scfsiBand := 0; scfsiBand < 4; scfsiBand++ {
				si.Scfsi[ch][scfsiBand] = b.Bit()
			}
		}
	} else {
		si.MainDataBegin = b.Bits(8)
		if nch == 1 {
			si.PrivateBits = b.Bits(1)
		} else {
			si.PrivateBits = b.Bits(2)
		}
	}

	granules := header.Granules()
	for gr := 0; gr < granules; gr++ {
		for ch := 0; ch < nch; ch++ {
			si.Part2_3Length[gr][ch] = b.Bits(12)
			si.BigValues[gr][ch] = b.Bits(9)
			if si.BigValues[gr][ch] > 288 {
				return nil, &consts.DecodeError{Msg: "Granule big_values > 288"}
			}
			si.GlobalGain[gr][ch] = b.Bits(8)
			if v1 {
				si.ScalefacCompress[gr][ch] = b.Bits(4)
			} else {
				si.ScalefacCompress[gr][ch] = b.Bits(9)
			}
			si.WinSwitchFlag[gr][ch] = b.Bit()

			if si.WinSwitchFlag[gr][ch] != 0 {
				si.BlockType[gr][ch] = b.Bits(2)
				if si.BlockType[gr][ch] == 0 {
					return nil, &consts.DecodeError{Msg: "block_type 0 with window switching"}
				}
				si.MixedBlockFlag[gr][ch] = b.Bit()
				for region := 0; region < 2; region++ {
					si.TableSelect[gr][ch][region] = b.Bits(5)
				}
				for window := 0; window < 3; window++ {
					si.SubblockGain[gr][ch][window] = b.Bits(3)
				}
				// No region count fields: they're implied by the
				// block type, see maindata's region boundary logic.
				if si.BlockType[gr][ch] == 2 && si.MixedBlockFlag[gr][ch] == 0 {
					si.Region0Count[gr][ch] = 8
				} else {
					si.Region0Count[gr][ch] = 7
				}
				si.Region1Count[gr][ch] = 20 - si.Region0Count[gr][ch]
			} else {
				for region := 0; region < 3; region++ {
					si.TableSelect[gr][ch][region] = b.Bits(5)
				}
				si.Region0Count[gr][ch] = b.Bits(4)
				si.Region1Count[gr][ch] = b.Bits(3)
				si.BlockType[gr][ch] = 0
			}

			if v1 {
				si.Preflag[gr][ch] = b.Bit()
			} else if si.ScalefacCompress[gr][ch] >= 500 {
				// ISO/IEC 13818-3 2.4.3.4: the pre-emphasis flag is
				// implied by the scalefac_compress range.
				si.Preflag[gr][ch] = 1
			}
			si.ScalefacScale[gr][ch] = b.Bit()
			si.Count1TableSelect[gr][ch] = b.Bit()
		}
	}

	return si, nil
}
