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

// AudioBuffer is a multichannel float32 PCM sink. It is the decoder's
// only output collaborator: DecodeFrame appends one frame's samples to it
// per call, growing each channel's slice as needed.
type AudioBuffer struct {
	channels [][]float32
}

// NewAudioBuffer returns an empty buffer sized for nch channels.
func NewAudioBuffer(nch int) *AudioBuffer {
	return &AudioBuffer{channels: make([][]float32, nch)}
}

// Clear empties every channel's samples without releasing their
// backing arrays.
func (a *AudioBuffer) Clear() {
	for i := range a.channels {
		a.channels[i] = a.channels[i][:0]
	}
}

// ReserveFrames grows every channel's capacity to hold at least n more
// frames without reallocating mid-append.
func (a *AudioBuffer) ReserveFrames(n int) {
	for i := range a.channels {
		if cap(a.channels[i])-len(a.channels[i]) < n {
			grown := make([]float32, len(a.channels[i]), len(a.channels[i])+n)
			copy(grown, a.channels[i])
			a.channels[i] = grown
		}
	}
}

// ChanMut returns channel i's sample slice for in-place append or
// mutation.
func (a *AudioBuffer) ChanMut(i int) []float32 {
	return a.channels[i]
}

// SetChan replaces channel i's sample slice, e.g. after appending to
// the slice returned by ChanMut.
func (a *AudioBuffer) SetChan(i int, samples []float32) {
	a.channels[i] = samples
}

// Channels returns the number of channels this buffer holds.
func (a *AudioBuffer) Channels() int {
	return len(a.channels)
}

// Frames returns the number of frames currently held in channel 0, or
// 0 if there are no channels.
func (a *AudioBuffer) Frames() int {
	if len(a.channels) == 0 {
		return 0
	}
	return len(a.channels[0])
}
