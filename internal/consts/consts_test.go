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

package consts_test

import (
	"testing"

	"github.com/swarnimarun/Symphonia/internal/consts"
)

func TestSampleRateTable(t *testing.T) {
	cases := []struct {
		version consts.Version
		sf      consts.SamplingFrequency
		want    int
	}{
		{consts.Version1, consts.SampleFlag44100Or22050Or11025, 44100},
		{consts.Version2, consts.SampleFlag44100Or22050Or11025, 22050},
		{consts.Version2_5, consts.SampleFlag44100Or22050Or11025, 11025},
		{consts.Version1, consts.SampleFlag48000Or24000Or12000, 48000},
		{consts.Version2, consts.SampleFlag32000Or16000Or8000, 16000},
		{consts.Version2_5, consts.SampleFlag32000Or16000Or8000, 8000},
	}
	for _, c := range cases {
		if got := consts.SampleRate(c.version, c.sf); got != c.want {
			t.Errorf("SampleRate(%v, %v) = %d, want %d", c.version, c.sf, got, c.want)
		}
	}
}

func TestBitrateMpeg1Layer3Example(t *testing.T) {
	// Index 9 of the MPEG1 Layer III row is 128kbps, the most common
	// bitrate in the wild.
	if got, want := consts.Bitrate(consts.Version1, consts.Layer3, 9), 128000; got != want {
		t.Errorf("Bitrate(V1, Layer3, 9) = %d, want %d", got, want)
	}
	if got, want := consts.Bitrate(consts.Version1, consts.Layer3, 0), 0; got != want {
		t.Errorf("Bitrate(V1, Layer3, 0) = %d, want %d (free format)", got, want)
	}
	if got, want := consts.Bitrate(consts.Version1, consts.Layer3, 15), -1; got != want {
		t.Errorf("Bitrate(V1, Layer3, 15) = %d, want %d (reserved)", got, want)
	}
}

func TestScaleFactorLongBandsShape(t *testing.T) {
	for _, v := range []consts.Version{consts.Version1, consts.Version2, consts.Version2_5} {
		for _, sf := range []consts.SamplingFrequency{
			consts.SampleFlag44100Or22050Or11025,
			consts.SampleFlag48000Or24000Or12000,
			consts.SampleFlag32000Or16000Or8000,
		} {
			bands := consts.ScaleFactorLongBands(v, sf)
			if len(bands) != 23 {
				t.Fatalf("ScaleFactorLongBands(%v, %v) has %d entries, want 23", v, sf, len(bands))
			}
			if bands[0] != 0 {
				t.Errorf("ScaleFactorLongBands(%v, %v)[0] = %d, want 0", v, sf, bands[0])
			}
			if bands[22] != 576 {
				t.Errorf("ScaleFactorLongBands(%v, %v)[22] = %d, want 576", v, sf, bands[22])
			}
			for i := 1; i < len(bands); i++ {
				if bands[i] < bands[i-1] {
					t.Errorf("ScaleFactorLongBands(%v, %v) not monotonic at %d: %d < %d", v, sf, i, bands[i], bands[i-1])
				}
			}
		}
	}
}

// TestScaleFactor24kHzOpenQuestionValue locks in the documented Open
// Question decision: the 24kHz long-block table's 19th boundary stays
// at 330, not the 332 some published derivations use.
func TestScaleFactor24kHzOpenQuestionValue(t *testing.T) {
	bands := consts.ScaleFactorLongBands(consts.Version2, consts.SampleFlag48000Or24000Or12000)
	if got, want := bands[18], 330; got != want {
		t.Errorf("24kHz ScaleFactorLongBands[18] = %d, want %d", got, want)
	}
}

func TestScaleFactorShortBandsShape(t *testing.T) {
	bands := consts.ScaleFactorShortBands(consts.Version1, consts.SampleFlag44100Or22050Or11025)
	if len(bands) != 14 {
		t.Fatalf("len(bands) = %d, want 14", len(bands))
	}
	if bands[0] != 0 || bands[13] != 192 {
		t.Errorf("ScaleFactorShortBands bounds = [%d, ... %d], want [0, ... 192]", bands[0], bands[13])
	}
}
