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

package mp3

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/swarnimarun/Symphonia/internal/consts"
)

// silentFrameV1 is a minimal MPEG-1 Layer III mono frame at
// 128kbps/44.1kHz: part2_3_length is zero for both granules, so the
// whole main data region decodes to silence. The all-zero side info
// also sets main_data_begin to 0, so the frame is self-contained.
func silentFrameV1() []byte {
	header := []byte{0xFF, 0xFB, 0x90, 0xC0}
	// 144*128000/44100 = 417 bytes total; 413 follow the header.
	return append(header, make([]byte, 413)...)
}

// silentFrameV2Stereo is an MPEG-2 Layer III stereo frame at
// 64kbps/22.05kHz, silent for the same reason.
func silentFrameV2Stereo() []byte {
	header := []byte{0xFF, 0xF3, 0x80, 0x00}
	// 72*64000/22050 truncates to 208 bytes total; 204 follow the
	// header.
	return append(header, make([]byte, 204)...)
}

func TestDecodeSilentFramesV1(t *testing.T) {
	stream := append(silentFrameV1(), silentFrameV1()...)
	d, err := NewDecoder(&bytesReadCloser{bytes.NewReader(stream)})
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	if got, want := d.SampleRate(), 44100; got != want {
		t.Errorf("SampleRate() = %d, want %d", got, want)
	}
	if got, want := d.Channels(), 1; got != want {
		t.Errorf("Channels() = %d, want %d", got, want)
	}

	var out *AudioBuffer
	for {
		out, err = d.DecodeFrame(out)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("DecodeFrame: %v", err)
		}
	}
	if got, want := out.Frames(), 2*1152; got != want {
		t.Fatalf("Frames() = %d, want %d", got, want)
	}
	for i, s := range out.ChanMut(0) {
		if s != 0 {
			t.Fatalf("sample %d = %v, want 0 for a silent stream", i, s)
		}
	}
}

func TestDecodeSilentFrameV2Stereo(t *testing.T) {
	stream := silentFrameV2Stereo()
	d, err := NewDecoder(&bytesReadCloser{bytes.NewReader(stream)})
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	if got, want := d.SampleRate(), 22050; got != want {
		t.Errorf("SampleRate() = %d, want %d", got, want)
	}
	if got, want := d.Channels(), 2; got != want {
		t.Errorf("Channels() = %d, want %d", got, want)
	}

	out, err := d.DecodeFrame(nil)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if got, want := out.Frames(), 576; got != want {
		t.Errorf("Frames() = %d, want %d", got, want)
	}
	for ch := 0; ch < out.Channels(); ch++ {
		for i, s := range out.ChanMut(ch) {
			if s != 0 {
				t.Fatalf("ch%d sample %d = %v, want 0", ch, i, s)
			}
		}
	}
}

func TestFreeBitrateIsUnsupported(t *testing.T) {
	// bitrate_index = 0000 ("free").
	stream := []byte{0xFF, 0xFB, 0x00, 0xC0, 0, 0, 0, 0}
	_, err := NewDecoder(&bytesReadCloser{bytes.NewReader(stream)})
	var ue *consts.UnsupportedError
	if !errors.As(err, &ue) {
		t.Fatalf("NewDecoder = %v, want *consts.UnsupportedError", err)
	}
}

func TestLayerIIIsUnsupported(t *testing.T) {
	// layer bits = 10 (Layer II).
	stream := []byte{0xFF, 0xF5, 0x90, 0xC0, 0, 0, 0, 0}
	_, err := NewDecoder(&bytesReadCloser{bytes.NewReader(stream)})
	var ue *consts.UnsupportedError
	if !errors.As(err, &ue) {
		t.Fatalf("NewDecoder = %v, want *consts.UnsupportedError", err)
	}
}

func TestLayerIIsUnsupported(t *testing.T) {
	// layer bits = 11 (Layer I).
	stream := []byte{0xFF, 0xF7, 0x90, 0xC0, 0, 0, 0, 0}
	_, err := NewDecoder(&bytesReadCloser{bytes.NewReader(stream)})
	var ue *consts.UnsupportedError
	if !errors.As(err, &ue) {
		t.Fatalf("NewDecoder = %v, want *consts.UnsupportedError", err)
	}
}

func TestReservedVersionIsDecodeError(t *testing.T) {
	// version bits = 01 (reserved).
	stream := []byte{0xFF, 0xE9, 0x00, 0x00, 0, 0, 0, 0}
	_, err := NewDecoder(&bytesReadCloser{bytes.NewReader(stream)})
	var de *consts.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("NewDecoder = %v, want *consts.DecodeError", err)
	}
}
