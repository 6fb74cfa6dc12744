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

// Package mp3 decodes an MPEG-1/2/2.5 Layer III audio stream into
// 32-bit floating-point PCM. It skips a leading ID3v2 tag or ID3v1
// "TAG" block without parsing it; APE tags and VBR headers are not
// recognised. It does not support seeking: every frame is decoded in
// stream order.
package mp3

import (
	"io"

	"github.com/swarnimarun/Symphonia/internal/consts"
	"github.com/swarnimarun/Symphonia/internal/frame"
)

// A Decoder pulls frames from an underlying MPEG Layer III stream and
// decodes them into float32 PCM, one frame at a time.
type Decoder struct {
	source     *source
	sampleRate int
	channels   int
	frame      *frame.Frame

	// pending marks that d.frame was read ahead (by NewDecoder) but its
	// samples have not been handed out yet.
	pending bool
}

// NewDecoder skips a leading ID3v2 tag or ID3v1 "TAG" block, reads the
// stream's first frame to learn its sample rate and channel count, and
// returns a
// Decoder ready to have DecodeFrame called on it.
func NewDecoder(r io.ReadCloser) (*Decoder, error) {
	s := &source{reader: r}
	if err := s.skipTags(); err != nil {
		return nil, err
	}
	d := &Decoder{source: s}
	if err := d.decodeNextFrame(); err != nil {
		return nil, err
	}
	d.pending = true
	d.sampleRate = d.frame.SamplingFrequency()
	d.channels = d.frame.NumberOfChannels()
	return d, nil
}

func (d *Decoder) decodeNextFrame() error {
	f, _, err := d.source.readNextFrame(d.frame)
	if err != nil {
		return err
	}
	d.frame = f
	return nil
}

// DecodeFrame decodes and appends the next frame's PCM samples to out,
// creating out if it is nil. It returns io.EOF once the stream is
// exhausted; a stream that ends mid-frame surfaces as io.EOF too,
// since a truncated trailing frame carries no usable samples.
func (d *Decoder) DecodeFrame(out *AudioBuffer) (*AudioBuffer, error) {
	if d.pending {
		d.pending = false
		return d.emit(out)
	}
	if err := d.decodeNextFrame(); err != nil {
		if err == io.EOF {
			return out, io.EOF
		}
		if _, ok := err.(*consts.UnexpectedEOF); ok {
			return out, io.EOF
		}
		return out, err
	}
	return d.emit(out)
}

// emit decodes the already-read d.frame into PCM and appends it to
// out.
func (d *Decoder) emit(out *AudioBuffer) (*AudioBuffer, error) {
	samples, err := d.frame.Decode()
	if err != nil {
		return out, err
	}

	if out == nil {
		out = NewAudioBuffer(len(samples))
	}
	out.ReserveFrames(len(samples[0]))
	for ch, s := range samples {
		out.SetChan(ch, append(out.ChanMut(ch), s...))
	}
	return out, nil
}

// Close releases the underlying reader.
func (d *Decoder) Close() error {
	return d.source.Close()
}

// SampleRate returns the sample rate in Hz, e.g. 44100.
//
// The sample rate is retrieved from the first frame; Layer III allows
// it to vary frame-to-frame, but that is not expected in practice and
// is not tracked here.
func (d *Decoder) SampleRate() int {
	return d.sampleRate
}

// Channels returns the number of audio channels, 1 or 2.
func (d *Decoder) Channels() int {
	return d.channels
}
