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

// Package frame is the per-frame driver: it reads one frame's header,
// side info and main data, then sequences requantization, joint
// stereo, reorder, antialiasing, hybrid synthesis, frequency inversion
// and polyphase synthesis to produce one frame's PCM samples.
package frame

import (
	"fmt"
	"io"
	"math"

	"github.com/swarnimarun/Symphonia/internal/bits"
	"github.com/swarnimarun/Symphonia/internal/consts"
	"github.com/swarnimarun/Symphonia/internal/frameheader"
	"github.com/swarnimarun/Symphonia/internal/imdct"
	"github.com/swarnimarun/Symphonia/internal/maindata"
	"github.com/swarnimarun/Symphonia/internal/sideinfo"
	"github.com/swarnimarun/Symphonia/internal/synthesis"
)

var powtab34 = make([]float64, 8208)

func init() {
	for i := range powtab34 {
		powtab34[i] = math.Pow(float64(i), 4.0/3.0)
	}
}

// A Frame is one decoded Layer III frame plus the DSP state (overlap
// store and polyphase filterbanks) it carries forward to the next.
type Frame struct {
	header   frameheader.FrameHeader
	sideInfo *sideinfo.SideInfo
	mainData *maindata.MainData

	mainDataBits *bits.Bits
	store        [2][32][18]float32
	banks        [2]*synthesis.Bank
}

type FullReader interface {
	ReadFull([]byte) (int, error)
}

func readCRC(source FullReader) error {
	buf := make([]byte, 2)
	if n, err := source.ReadFull(buf); n < 2 {
		if err == io.EOF {
			return &consts.UnexpectedEOF{At: "readCRC"}
		}
		return fmt.Errorf("mp3: error at readCRC: %v", err)
	}
	return nil
}

// classify maps a syntactically well-formed but unsupported header
// field combination to the unsupported-vs-decode error split the mp3
// package surfaces to its caller.
func classify(h frameheader.FrameHeader) error {
	if h.BitrateIndex() == 0 {
		return &consts.UnsupportedError{Msg: "free bitrate is not supported"}
	}
	switch h.Layer() {
	case consts.Layer1:
		return &consts.UnsupportedError{Msg: "Layer I is not supported"}
	case consts.Layer2:
		return &consts.UnsupportedError{Msg: "Layer II is not supported"}
	}
	return nil
}

// Read parses the next frame (header, optional CRC, side info, main
// data) from source. prev, if non-nil, supplies the bit reservoir tail
// and the cross-frame overlap/polyphase state; pass nil for the first
// frame of a stream.
func Read(source FullReader, position int64, prev *Frame) (frame *Frame, startPosition int64, err error) {
	h, pos, err := frameheader.Read(source, position)
	if err != nil {
		return nil, 0, err
	}

	if h.ProtectionBit() == 0 {
		if err := readCRC(source); err != nil {
			return nil, 0, err
		}
	}

	if err := classify(h); err != nil {
		return nil, 0, err
	}
	if h.Layer() != consts.Layer3 {
		return nil, 0, &consts.DecodeError{Msg: fmt.Sprintf("unexpected layer %d", h.Layer())}
	}

	si, err := sideinfo.Read(source, h)
	if err != nil {
		return nil, 0, err
	}

	// If there's not enough main data in the bit reservoir,
	// signal to calling function so that decoding isn't done!
	// Get main data (scalefactors and Huffman coded frequency data)
	var prevM *bits.Bits
	if prev != nil {
		prevM = prev.mainDataBits
	}
	md, mdb, err := maindata.Read(source, prevM, h, si)
	if err != nil {
		return nil, 0, err
	}
	nf := &Frame{
		header:       h,
		sideInfo:     si,
		mainData:     md,
		mainDataBits: mdb,
	}
	if prev != nil {
		nf.store = prev.store
		nf.banks = prev.banks
	} else {
		for ch := range nf.banks {
			nf.banks[ch] = synthesis.NewBank()
		}
	}
	return nf, pos, nil
}

// SamplingFrequency returns this frame's sample rate in Hz.
func (f *Frame) SamplingFrequency() int {
	return f.header.SamplingFrequencyValue()
}

// NumberOfChannels returns 1 for mono, 2 otherwise.
func (f *Frame) NumberOfChannels() int {
	return f.header.NumberOfChannels()
}

// SamplesPerChannel returns how many PCM samples this frame produces
// per channel: 1152 for Version 1 (two granules), 576 for Version 2
// and 2.5 (one granule).
func (f *Frame) SamplesPerChannel() int {
	return f.header.Granules() * consts.SamplesPerGr
}

// Decode runs the full per-granule pipeline (requantize, stereo,
// reorder, antialias, hybrid synthesis, frequency inversion, polyphase
// synthesis) and returns one slice of PCM samples per channel.
func (f *Frame) Decode() ([][]float32, error) {
	nch := f.header.NumberOfChannels()
	out := make([][]float32, nch)
	for ch := range out {
		out[ch] = make([]float32, 0, f.SamplesPerChannel())
	}

	for gr := 0; gr < f.header.Granules(); gr++ {
		for ch := 0; ch < nch; ch++ {
			f.requantize(gr, ch)
		}
		if nch == 2 {
			if err := f.stereo(gr); err != nil {
				return nil, err
			}
		}
		for ch := 0; ch < nch; ch++ {
			f.reorder(gr, ch)
			f.antialias(gr, ch)
			f.hybridSynthesis(gr, ch)
			f.frequencyInversion(gr, ch)
			out[ch] = f.banks[ch].Synthesize(f.mainData.Is[gr][ch][:], out[ch])
		}
	}
	return out, nil
}

func (f *Frame) requantizeProcessLong(gr, ch, isPos, sfb int) {
	sfMult := 0.5
	if f.sideInfo.ScalefacScale[gr][ch] != 0 {
		sfMult = 1.0
	}
	pfXPt := float64(f.sideInfo.Preflag[gr][ch]) * consts.Pretab[sfb]
	idx := -(sfMult*(float64(f.mainData.ScalefacL[gr][ch][sfb])+pfXPt)) +
		0.25*(float64(f.sideInfo.GlobalGain[gr][ch])-210)
	f.applyGain(gr, ch, isPos, idx)
}

func (f *Frame) requantizeProcessShort(gr, ch, isPos, sfb, win int) {
	sfMult := 0.5
	if f.sideInfo.ScalefacScale[gr][ch] != 0 {
		sfMult = 1.0
	}
	idx := -(sfMult*float64(f.mainData.ScalefacS[gr][ch][sfb][win])) +
		0.25*(float64(f.sideInfo.GlobalGain[gr][ch])-210.0-
			8.0*float64(f.sideInfo.SubblockGain[gr][ch][win]))
	f.applyGain(gr, ch, isPos, idx)
}

func (f *Frame) applyGain(gr, ch, isPos int, idx float64) {
	gain := math.Pow(2.0, idx)
	v := f.mainData.Is[gr][ch][isPos]
	var p float64
	if v < 0 {
		p = -powtab34[int(-v)]
	} else {
		p = powtab34[int(v)]
	}
	f.mainData.Is[gr][ch][isPos] = float32(gain * p)
}

func (f *Frame) sfBandIndices() ([]int, []int) {
	long := consts.ScaleFactorLongBands(f.header.ID(), f.header.SamplingFrequency())
	short := consts.ScaleFactorShortBands(f.header.ID(), f.header.SamplingFrequency())
	return long, short
}

// requantize turns the Huffman-decoded integers s(i) in
// f.mainData.Is[gr][ch] into dequantized spectral samples xr(i),
// choosing the long or short band table per scale factor band and
// honoring the mixed-block long/short split.
func (f *Frame) requantize(gr int, ch int) {
	longBands, shortBands := f.sfBandIndices()
	rzero := f.sideInfo.Count1[gr][ch]

	if f.sideInfo.WinSwitchFlag[gr][ch] == 1 && f.sideInfo.BlockType[gr][ch] == 2 {
		if f.sideInfo.MixedBlockFlag[gr][ch] != 0 {
			sfb := 0
			nextSfb := longBands[sfb+1]
			for i := 0; i < 36; i++ {
				if i == nextSfb {
					sfb++
					nextSfb = longBands[sfb+1]
				}
				f.requantizeProcessLong(gr, ch, i, sfb)
			}
			sfb = 3
			nextSfb = shortBands[sfb+1] * 3
			winLen := shortBands[sfb+1] - shortBands[sfb]
			for i := 36; i < rzero; {
				if i == nextSfb {
					sfb++
					nextSfb = shortBands[sfb+1] * 3
					winLen = shortBands[sfb+1] - shortBands[sfb]
				}
				for win := 0; win < 3; win++ {
					for j := 0; j < winLen; j++ {
						f.requantizeProcessShort(gr, ch, i, sfb, win)
						i++
					}
				}
			}
		} else {
			sfb := 0
			nextSfb := shortBands[sfb+1] * 3
			winLen := shortBands[sfb+1] - shortBands[sfb]
			for i := 0; i < rzero; {
				if i == nextSfb {
					sfb++
					nextSfb = shortBands[sfb+1] * 3
					winLen = shortBands[sfb+1] - shortBands[sfb]
				}
				for win := 0; win < 3; win++ {
					for j := 0; j < winLen; j++ {
						f.requantizeProcessShort(gr, ch, i, sfb, win)
						i++
					}
				}
			}
		}
		return
	}

	sfb := 0
	nextSfb := longBands[sfb+1]
	for i := 0; i < rzero; i++ {
		if i == nextSfb {
			sfb++
			nextSfb = longBands[sfb+1]
		}
		f.requantizeProcessLong(gr, ch, i, sfb)
	}
}

// reorder interleaves the three windows of each short scale factor
// band (line k of each window becomes three consecutive samples, in
// window order); long blocks and the long portion of a mixed block are
// left untouched.
func (f *Frame) reorder(gr int, ch int) {
	if !(f.sideInfo.WinSwitchFlag[gr][ch] == 1 && f.sideInfo.BlockType[gr][ch] == 2) {
		return
	}

	_, shortBands := f.sfBandIndices()
	re := make([]float32, consts.SamplesPerGr)

	sfb := 0
	i := 0
	if f.sideInfo.MixedBlockFlag[gr][ch] != 0 {
		sfb = 3
		i = 36
	}
	nextSfb := shortBands[sfb+1] * 3
	winLen := shortBands[sfb+1] - shortBands[sfb]
	for i < consts.SamplesPerGr {
		if i == nextSfb {
			j := 3 * shortBands[sfb]
			copy(f.mainData.Is[gr][ch][j:j+3*winLen], re[0:3*winLen])
			if i >= f.sideInfo.Count1[gr][ch] {
				return
			}
			sfb++
			nextSfb = shortBands[sfb+1] * 3
			winLen = shortBands[sfb+1] - shortBands[sfb]
		}
		for win := 0; win < 3; win++ {
			for j := 0; j < winLen; j++ {
				re[j*3+win] = f.mainData.Is[gr][ch][i]
				i++
			}
		}
	}
	j := 3 * shortBands[12]
	copy(f.mainData.Is[gr][ch][j:j+3*winLen], re[0:3*winLen])
}

// isRatiosMpeg1 are the tan(is_pos*pi/12) intensity ratios for
// is_pos in [0,6); index 6 (pi/2) is handled as a special case below
// since tan is singular there.
var isRatiosMpeg1 = []float32{0.000000, 0.267949, 0.577350, 1.000000, 1.732051, 3.732051}

// intensityRatioMpeg1 returns the (left, right) intensity-stereo gain
// pair for the given ch1 scale factor value, or ok=false when isPos
// disables intensity coding for this band (isPos >= 7).
func intensityRatioMpeg1(isPos int) (kl, kr float32, ok bool) {
	if isPos >= 7 {
		return 0, 0, false
	}
	if isPos == 6 {
		return 1.0, 0.0, true
	}
	r := isRatiosMpeg1[isPos]
	return r / (1 + r), 1 / (1 + r), true
}

// intensityRatioMpeg2 implements the MPEG2/2.5 parity-indexed
// intensity ratio table: is_pos in [0,32), 7 disables the band, and
// i0 depends on the low bit of scalefac_compress.
func intensityRatioMpeg2(isPos, scalefacCompress int) (kl, kr float32, ok bool) {
	if isPos == 7 {
		return 0, 0, false
	}
	i0 := 1 / math.Sqrt(math.Sqrt2)
	if scalefacCompress&1 != 0 {
		i0 = 1 / math.Sqrt2
	}
	if isPos%2 == 0 {
		return 1, float32(math.Pow(i0, float64(isPos/2))), true
	}
	return float32(math.Pow(i0, float64((isPos+1)/2))), 1, true
}

// applyIntensity rewrites ch0[i]/ch1[i] for i in [lo, hi) with the
// (kl, kr) gains its callers derive from the ch1 scale factor: both
// channels are scaled from ch0's combined value.
func (f *Frame) applyIntensity(gr, lo, hi int, kl, kr float32) {
	for i := lo; i < hi; i++ {
		left := f.mainData.Is[gr][0][i]
		f.mainData.Is[gr][0][i] = left * kl
		f.mainData.Is[gr][1][i] = left * kr
	}
}

func (f *Frame) intensityRatio(gr, ch1SfbVal int) (kl, kr float32, ok bool) {
	if f.header.ID() == consts.Version1 {
		return intensityRatioMpeg1(ch1SfbVal)
	}
	return intensityRatioMpeg2(ch1SfbVal, f.sideInfo.ScalefacCompress[gr][1])
}

func (f *Frame) stereoProcessIntensityLong(gr, sfb int) {
	longBands, _ := f.sfBandIndices()
	isPos := f.mainData.ScalefacL[gr][1][sfb]
	if kl, kr, ok := f.intensityRatio(gr, isPos); ok {
		f.applyIntensity(gr, longBands[sfb], longBands[sfb+1], kl, kr)
	}
}

func (f *Frame) stereoProcessIntensityShort(gr, sfb int) {
	_, shortBands := f.sfBandIndices()
	winLen := shortBands[sfb+1] - shortBands[sfb]
	for win := 0; win < 3; win++ {
		isPos := f.mainData.ScalefacS[gr][1][sfb][win]
		if kl, kr, ok := f.intensityRatio(gr, isPos); ok {
			start := shortBands[sfb]*3 + winLen*win
			f.applyIntensity(gr, start, start+winLen, kl, kr)
		}
	}
}

// stereo applies mid/side and/or intensity joint stereo decoding for
// one granule, in that order (mid/side first, since intensity acts on
// the already-recombined ch0).
func (f *Frame) stereo(gr int) error {
	if f.sideInfo.BlockType[gr][0] != f.sideInfo.BlockType[gr][1] &&
		f.header.UseIntensityStereo() {
		return &consts.DecodeError{Msg: "stereo channel pair block_type mismatch"}
	}

	if f.header.UseMSStereo() {
		maxPos := f.sideInfo.Count1[gr][0]
		if f.sideInfo.Count1[gr][1] > maxPos {
			maxPos = f.sideInfo.Count1[gr][1]
		}
		const invSqrt2 = math.Sqrt2 / 2
		for i := 0; i < maxPos; i++ {
			l := f.mainData.Is[gr][0][i]
			s := f.mainData.Is[gr][1][i]
			f.mainData.Is[gr][0][i] = (l + s) * invSqrt2
			f.mainData.Is[gr][1][i] = (l - s) * invSqrt2
		}
	}

	if f.header.UseIntensityStereo() {
		// Intensity coding applies to the scale factor bands lying
		// entirely inside channel 1's rzero partition; band iteration
		// follows channel 1's block type.
		longBands, shortBands := f.sfBandIndices()
		rzero := f.sideInfo.Count1[gr][1]
		if f.sideInfo.WinSwitchFlag[gr][1] == 1 && f.sideInfo.BlockType[gr][1] == 2 {
			if f.sideInfo.MixedBlockFlag[gr][1] != 0 {
				// If rzero starts inside the long portion, every short
				// band is inside it too.
				crossed := false
				for sfb := 0; sfb < 8; sfb++ {
					if longBands[sfb] >= rzero {
						f.stereoProcessIntensityLong(gr, sfb)
						crossed = true
					}
				}
				for sfb := 3; sfb < 13; sfb++ {
					if crossed || shortBands[sfb]*3 >= rzero {
						f.stereoProcessIntensityShort(gr, sfb)
					}
				}
			} else {
				for sfb := 0; sfb < 13; sfb++ {
					if shortBands[sfb]*3 >= rzero {
						f.stereoProcessIntensityShort(gr, sfb)
					}
				}
			}
		} else {
			for sfb := 0; sfb < 22; sfb++ {
				if longBands[sfb] >= rzero {
					f.stereoProcessIntensityLong(gr, sfb)
				}
			}
		}
	}
	return nil
}

// antialiasCs, antialiasCa are the butterfly coefficients derived from
// c = [-0.6, -0.535, -0.33, -0.185, -0.095, -0.041, -0.0142, -0.0037]
// via (cs, ca) = (1, c) / sqrt(1+c^2).
var (
	antialiasCs = []float32{0.857493, 0.881742, 0.949629, 0.983315, 0.995518, 0.999161, 0.999899, 0.999993}
	antialiasCa = []float32{-0.514496, -0.471732, -0.313377, -0.181913, -0.094574, -0.040966, -0.014199, -0.003700}
)

// antialias runs the 8-point butterfly across every inter-subband
// boundary, except it is skipped entirely for a non-mixed short block
// and restricted to the first boundary for a mixed short block (only
// subbands 0 and 1 are long-windowed there).
func (f *Frame) antialias(gr int, ch int) {
	short := f.sideInfo.WinSwitchFlag[gr][ch] == 1 && f.sideInfo.BlockType[gr][ch] == 2
	mixed := f.sideInfo.MixedBlockFlag[gr][ch] != 0
	if short && !mixed {
		return
	}
	sblim := 32
	if short && mixed {
		sblim = 2
	}
	for sb := 1; sb < sblim; sb++ {
		for i := 0; i < 8; i++ {
			li := 18*sb - 1 - i
			ui := 18*sb + i
			l0 := f.mainData.Is[gr][ch][li]
			u0 := f.mainData.Is[gr][ch][ui]
			f.mainData.Is[gr][ch][li] = l0*antialiasCs[i] - u0*antialiasCa[i]
			f.mainData.Is[gr][ch][ui] = u0*antialiasCs[i] + l0*antialiasCa[i]
		}
	}
}

// hybridSynthesis runs the IMDCT (12- or 36-point, per subband block
// type) over each of the 32 subbands and overlap-adds the result with
// the stored tail of the previous frame's IMDCT output.
func (f *Frame) hybridSynthesis(gr int, ch int) {
	for sb := 0; sb < 32; sb++ {
		bt := f.sideInfo.BlockType[gr][ch]
		if f.sideInfo.WinSwitchFlag[gr][ch] == 1 && f.sideInfo.MixedBlockFlag[gr][ch] != 0 && sb < 2 {
			bt = 0
		}
		in := f.mainData.Is[gr][ch][sb*18 : sb*18+18]
		rawout := imdct.Win(in, bt)
		for i := 0; i < 18; i++ {
			f.mainData.Is[gr][ch][sb*18+i] = rawout[i] + f.store[ch][sb][i]
			f.store[ch][sb][i] = rawout[i+18]
		}
	}
}

// frequencyInversion negates every odd-indexed sample of every
// odd-numbered subband, compensating for the polyphase filterbank's
// frequency-domain mirroring.
func (f *Frame) frequencyInversion(gr int, ch int) {
	for sb := 1; sb < 32; sb += 2 {
		for i := 1; i < 18; i += 2 {
			f.mainData.Is[gr][ch][sb*18+i] = -f.mainData.Is[gr][ch][sb*18+i]
		}
	}
}
