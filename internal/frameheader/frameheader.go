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

package frameheader

import (
	"io"

	"github.com/swarnimarun/Symphonia/internal/consts"
)

type FullReader interface {
	ReadFull([]byte) (int, error)
}

// A FrameHeader is the 32-bit MPEG Audio frame header (sync word
// included), covering Version 1, Version 2 and Version 2.5.
type FrameHeader uint32

// ID returns this header's version stored in position 20,19.
func (m FrameHeader) ID() consts.Version {
	return consts.Version((m & 0x00180000) >> 19)
}

// Layer returns the mpeg layer of this frame stored in position 18,17.
func (m FrameHeader) Layer() consts.Layer {
	return consts.Layer((m & 0x00060000) >> 17)
}

// ProtectionBit returns the protection bit stored in position 16.
func (m FrameHeader) ProtectionBit() int {
	return int(m&0x00010000) >> 16
}

// BitrateIndex returns the bitrate index stored in position 15,12.
func (m FrameHeader) BitrateIndex() int {
	return int(m&0x0000f000) >> 12
}

// SamplingFrequency returns the sampling frequency index stored in
// position 11,10.
func (m FrameHeader) SamplingFrequency() consts.SamplingFrequency {
	return consts.SamplingFrequency(int(m&0x00000c00) >> 10)
}

// SamplingFrequencyValue returns the sampling frequency in Hz.
func (m FrameHeader) SamplingFrequencyValue() int {
	return consts.SampleRate(m.ID(), m.SamplingFrequency())
}

// PaddingBit returns the padding bit stored in position 9.
func (m FrameHeader) PaddingBit() int {
	return int(m&0x00000200) >> 9
}

// PrivateBit returns the private bit stored in position 8.
func (m FrameHeader) PrivateBit() int {
	return int(m&0x00000100) >> 8
}

// Mode returns the channel mode, stored in position 7,6.
func (m FrameHeader) Mode() consts.Mode {
	return consts.Mode((m & 0x000000c0) >> 6)
}

// ModeExtension returns the mode_extension - for use with Joint Stereo
// - stored in position 5,4.
func (m FrameHeader) ModeExtension() int {
	return int(m&0x00000030) >> 4
}

// Copyright returns whether or not this recording is copyrighted,
// stored in position 3.
func (m FrameHeader) Copyright() int {
	return int(m&0x00000008) >> 3
}

// OriginalOrCopy returns whether or not this is an original recording
// or a copy of one, stored in position 2.
func (m FrameHeader) OriginalOrCopy() int {
	return int(m&0x00000004) >> 2
}

// Emphasis returns the de-emphasis indication, stored in position 1,0.
func (m FrameHeader) Emphasis() int {
	return int(m&0x00000003) >> 0
}

const syncMask = 0xffe00000

// HasSync reports whether the top 11 bits of the header are all ones.
func (m FrameHeader) HasSync() bool {
	return (m & syncMask) == syncMask
}

// Validate checks every field of a sync-bearing header against the
// reserved encodings the wire format forbids.
func (m FrameHeader) Validate() error {
	if m.ID() == consts.VersionReserved {
		return &consts.DecodeError{Msg: "Invalid MPEG version"}
	}
	if m.Layer() == consts.LayerReserved {
		return &consts.DecodeError{Msg: "Invalid MPEG layer"}
	}
	if m.BitrateIndex() == 15 {
		return &consts.DecodeError{Msg: "Invalid bitrate index"}
	}
	if m.SamplingFrequency() == consts.SampleFlagReserved {
		return &consts.DecodeError{Msg: "Invalid sample rate index"}
	}
	if m.Emphasis() == 2 {
		return &consts.DecodeError{Msg: "Invalid emphasis"}
	}
	return nil
}

// IsValid reports whether the header carries a valid sync word and no
// reserved field value.
func (m FrameHeader) IsValid() bool {
	return m.HasSync() && m.Validate() == nil
}

// FrameSize returns the size of the frame in bytes, CRC and header
// included. The per-slot coefficient is 144 for Version 1 and 72 for
// Version 2/2.5, since Version 2/2.5 halves the number of granules
// without halving the slot rate.
func (h FrameHeader) FrameSize() int {
	coeff := 144
	if h.ID() != consts.Version1 {
		coeff = 72
	}
	return (coeff*consts.Bitrate(h.ID(), h.Layer(), h.BitrateIndex()))/
		h.SamplingFrequencyValue() +
		h.PaddingBit()
}

// NumberOfChannels returns the number of audio channels encoded in
// this frame.
func (h FrameHeader) NumberOfChannels() int {
	if h.Mode() == consts.ModeSingleChannel {
		return 1
	}
	return 2
}

// Granules returns the number of granules per frame: 2 for Version 1,
// 1 for Version 2 and Version 2.5.
func (h FrameHeader) Granules() int {
	if h.ID() == consts.Version1 {
		return 2
	}
	return 1
}

// UseMSStereo reports whether this is a joint stereo frame using
// mid/side coding.
func (h FrameHeader) UseMSStereo() bool {
	return h.Mode() == consts.ModeJointStereo && h.ModeExtension()&0x2 != 0
}

// UseIntensityStereo reports whether this is a joint stereo frame
// using intensity coding.
func (h FrameHeader) UseIntensityStereo() bool {
	return h.Mode() == consts.ModeJointStereo && h.ModeExtension()&0x1 != 0
}

// SideInfoSize returns the size of the side information in bytes: 32
// (stereo) or 17 (mono) for Version 1, 17 or 9 for Version 2/2.5.
func (h FrameHeader) SideInfoSize() int {
	mono := h.NumberOfChannels() == 1
	if h.ID() == consts.Version1 {
		if mono {
			return 17
		}
		return 32
	}
	if mono {
		return 9
	}
	return 17
}

// Read scans source byte by byte until the 32-bit register it shifts
// bytes into carries the 11-bit sync word, starting at the given
// stream position. Once sync is found, the remaining header fields are
// validated: a reserved version, layer, bitrate, sample-rate index or
// emphasis value is a decode error, not a reason to keep scanning. It
// returns the header and the position at which its sync word began.
func Read(source FullReader, position int64) (h FrameHeader, startPosition int64, err error) {
	pos := position
	buf := make([]byte, 4)
	if n, err := source.ReadFull(buf); n < 4 {
		if err == io.EOF {
			if n == 0 {
				return 0, 0, io.EOF
			}
			return 0, 0, &consts.UnexpectedEOF{At: "frameheader.Read (1)"}
		}
		return 0, 0, err
	}

	b1 := uint32(buf[0])
	b2 := uint32(buf[1])
	b3 := uint32(buf[2])
	b4 := uint32(buf[3])
	header := FrameHeader((b1 << 24) | (b2 << 16) | (b3 << 8) | (b4 << 0))
	for !header.HasSync() {
		b1 = b2
		b2 = b3
		b3 = b4

		buf := make([]byte, 1)
		if _, err := source.ReadFull(buf); err != nil {
			if err == io.EOF {
				return 0, 0, &consts.UnexpectedEOF{At: "frameheader.Read (2)"}
			}
			return 0, 0, err
		}
		b4 = uint32(buf[0])
		header = FrameHeader((b1 << 24) | (b2 << 16) | (b3 << 8) | (b4 << 0))
		pos++
	}
	if err := header.Validate(); err != nil {
		return 0, 0, err
	}
	return header, pos, nil
}
