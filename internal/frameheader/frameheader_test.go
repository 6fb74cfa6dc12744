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

package frameheader_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/swarnimarun/Symphonia/internal/consts"
	"github.com/swarnimarun/Symphonia/internal/frameheader"
)

type byteReader struct {
	r *bytes.Reader
}

func (b *byteReader) ReadFull(buf []byte) (int, error) {
	n, err := io.ReadFull(b.r, buf)
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	return n, err
}

// A minimal MPEG-1 Layer III mono frame at 128kbps/44.1kHz with no
// padding spans 144*128000/44100 = 417 bytes, header included.
func TestFrameSizeMpeg1Example(t *testing.T) {
	// sync=11111111111, version=11(v1), layer=01(III), protection=1,
	// bitrate_index=1001 (128kbps), sampling=00 (44100), padding=0,
	// private=0, mode=11 (mono), mode_ext=00, copyright=0, original=0,
	// emphasis=00.
	word := uint32(0xFFFB90C0)
	h := frameheader.FrameHeader(word)
	if !h.IsValid() {
		t.Fatalf("header 0x%08x should be valid", word)
	}
	if h.ID() != consts.Version1 {
		t.Errorf("ID() = %v, want Version1", h.ID())
	}
	if h.Layer() != consts.Layer3 {
		t.Errorf("Layer() = %v, want Layer3", h.Layer())
	}
	if got, want := h.SamplingFrequencyValue(), 44100; got != want {
		t.Errorf("SamplingFrequencyValue() = %d, want %d", got, want)
	}
	// FrameSize counts the whole frame, 4-byte header included; 413
	// bytes follow the header.
	if got, want := h.FrameSize(), 413+4; got != want {
		t.Errorf("FrameSize() = %d, want %d", got, want)
	}
	if got, want := h.NumberOfChannels(), 1; got != want {
		t.Errorf("NumberOfChannels() = %d, want %d", got, want)
	}
	if got, want := h.Granules(), 2; got != want {
		t.Errorf("Granules() = %d, want %d", got, want)
	}
}

func TestReadSkipsJunkToFindSync(t *testing.T) {
	word := []byte{0xFF, 0xFB, 0x90, 0x00}
	stream := append([]byte{0x00, 0x11, 0x22}, word...)
	src := &byteReader{r: bytes.NewReader(stream)}
	h, pos, err := frameheader.Read(src, 0)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if pos != 3 {
		t.Errorf("startPosition = %d, want 3", pos)
	}
	if !h.IsValid() {
		t.Errorf("header not valid")
	}
}

func TestReservedVersionIsInvalid(t *testing.T) {
	// version bits = 01 (reserved).
	h := frameheader.FrameHeader(0xFFE90000)
	if h.IsValid() {
		t.Errorf("reserved version header reported valid")
	}
}

func TestReadRejectsReservedVersion(t *testing.T) {
	// A sync-bearing header whose version bits are the reserved 01
	// pattern is a decode error, not something to scan past.
	src := &byteReader{r: bytes.NewReader([]byte{0xFF, 0xE9, 0x00, 0x00})}
	_, _, err := frameheader.Read(src, 0)
	var de *consts.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("Read = %v, want *consts.DecodeError", err)
	}
	if !strings.Contains(de.Msg, "Invalid MPEG version") {
		t.Errorf("error %q does not name the invalid version", de.Msg)
	}
}

func TestReadRejectsReservedBitrateIndex(t *testing.T) {
	// bitrate_index = 1111.
	src := &byteReader{r: bytes.NewReader([]byte{0xFF, 0xFB, 0xF0, 0x00})}
	_, _, err := frameheader.Read(src, 0)
	var de *consts.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("Read = %v, want *consts.DecodeError", err)
	}
}
