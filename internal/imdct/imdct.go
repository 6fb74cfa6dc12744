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

// Package imdct implements the hybrid synthesis inverse modified DCT:
// a fast 36-point IMDCT built from Szu-Wei Lee's decomposition into a
// pair of 9-point split-radix DCT-II transforms, used for long, start
// and end blocks, plus three windowed 12-point IMDCTs for short
// blocks.
package imdct

import "math"

// windows holds the four Layer III window shapes, indexed by block
// type (0 = long, 1 = start, 2 = short, 3 = end).
var windows [4][36]float32

func init() {
	for i := 0; i < 36; i++ {
		windows[0][i] = float32(math.Sin(math.Pi / 36 * (float64(i) + 0.5)))
	}
	for i := 0; i < 18; i++ {
		windows[1][i] = float32(math.Sin(math.Pi / 36 * (float64(i) + 0.5)))
	}
	for i := 18; i < 24; i++ {
		windows[1][i] = 1.0
	}
	for i := 24; i < 30; i++ {
		windows[1][i] = float32(math.Sin(math.Pi / 12 * (float64(i-18) + 0.5)))
	}
	for i := 30; i < 36; i++ {
		windows[1][i] = 0
	}
	for i := 0; i < 12; i++ {
		v := float32(math.Sin(math.Pi / 12 * (float64(i) + 0.5)))
		windows[2][i] = v
		windows[2][i+12] = v
		windows[2][i+24] = v
	}
	for i := 0; i < 6; i++ {
		windows[3][i] = 0
	}
	for i := 6; i < 12; i++ {
		windows[3][i] = float32(math.Sin(math.Pi / 12 * (float64(i-6) + 0.5)))
	}
	for i := 12; i < 18; i++ {
		windows[3][i] = 1.0
	}
	for i := 18; i < 36; i++ {
		windows[3][i] = float32(math.Sin(math.Pi / 36 * (float64(i) + 0.5)))
	}
}

// cos12 is the 6-point IMDCT's cosine table, cos12[i][k] = cos(pi/24 *
// (2i+1+6) * (2k+1)) for a 6-input, 12-output half-transform.
var cos12 [12][6]float32

func init() {
	for i := 0; i < 12; i++ {
		for k := 0; k < 6; k++ {
			cos12[i][k] = float32(math.Cos(math.Pi / 24 * float64(2*i+1+6) * float64(2*k+1)))
		}
	}
}

func imdct12(in []float32) [12]float32 {
	var out [12]float32
	for i := 0; i < 12; i++ {
		sum := float32(0)
		for k := 0; k < 6; k++ {
			sum += in[k] * cos12[i][k]
		}
		out[i] = sum
	}
	return out
}

// Win runs the IMDCT appropriate to blockType on the 18 frequency
// lines in in (for a short block, 3 windows of 6 lines interleaved as
// reorder leaves them: line k of window w at index 3k+w) and returns 36
// windowed, overlap-ready output samples.
func Win(in []float32, blockType int) []float32 {
	out := make([]float32, 36)
	if blockType == 2 {
		win := windows[2]
		for w := 0; w < 3; w++ {
			var lines [6]float32
			for k := 0; k < 6; k++ {
				lines[k] = in[w+3*k]
			}
			y := imdct12(lines[:])
			for i := 0; i < 12; i++ {
				out[6+6*w+i] += y[i] * win[i]
			}
		}
		return out
	}

	y := Imdct36(in)
	win := windows[blockType]
	for i := 0; i < 36; i++ {
		out[i] = y[i] * win[i]
	}
	return out
}

// Imdct36 computes the 36-point IMDCT of the 18 input coefficients via
// Szu-Wei Lee's fast decomposition: an 18-point DCT-IV built from a
// pair of 9-point split-radix DCT-II transforms, mirrored and negated
// into the final 36 values.
func Imdct36(x []float32) [36]float32 {
	var t [18]float32
	dctIV(x, &t)

	var y [36]float32
	for i := 0; i < 9; i++ {
		y[i] = t[9+i]
	}
	for i := 9; i < 27; i++ {
		y[i] = -t[27-i-1]
	}
	for i := 27; i < 36; i++ {
		y[i] = -t[i-27]
	}
	return y
}

var dctIVScale = [18]float32{
	1.9980964431637156, 1.9828897227476208, 1.9525920142398667, 1.9074339014964539,
	1.8477590650225735, 1.7740216663564434, 1.6867828916257714, 1.5867066805824706,
	1.4745546736202479, 1.3511804152313207, 1.2175228580174413, 1.0745992166936478,
	0.9234972264700677, 0.7653668647301797, 0.6014115990085461, 0.4328792278762058,
	0.2610523844401030, 0.0872387747306720,
}

func dctIV(x []float32, y *[18]float32) {
	var scaled [18]float32
	for i := 0; i < 18; i++ {
		scaled[i] = dctIVScale[i] * x[i]
	}
	sdctII18(&scaled, y)
	y[0] /= 2
	for i := 1; i < 18; i++ {
		y[i] = y[i]/2 - y[i-1]
	}
}

var sdct18Scale = [9]float32{
	1.9923893961834911, 1.9318516525781366, 1.8126155740732999, 1.6383040885779836,
	1.4142135623730951, 1.1471528727020923, 0.8452365234813989, 0.5176380902050419,
	0.1743114854953163,
}

func sdctII18(x *[18]float32, y *[18]float32) {
	var even [9]float32
	for i := 0; i < 9; i++ {
		even[i] = x[i] + x[17-i]
	}
	var evenOut [9]float32
	sdctII9(&even, &evenOut)
	for i := 0; i < 9; i++ {
		y[2*i] = evenOut[i]
	}

	var odd [9]float32
	for i := 0; i < 9; i++ {
		odd[i] = sdct18Scale[i] * (x[i] - x[17-i])
	}
	var oddOut [9]float32
	sdctII9(&odd, &oddOut)
	for i := 0; i < 9; i++ {
		y[2*i+1] = oddOut[i]
	}

	y[3] -= y[1]
	y[5] -= y[3]
	y[7] -= y[5]
	y[9] -= y[7]
	y[11] -= y[9]
	y[13] -= y[11]
	y[15] -= y[13]
	y[17] -= y[15]
}

var sdct9D = [7]float32{
	-1.7320508075688772, 1.8793852415718166, -0.3472963553338608, -1.5320888862379560,
	-0.6840402866513378, -1.9696155060244160, -1.2855752193730785,
}

// sdctII9 is the 9-point split-radix SDCT-II butterfly at the core of
// the fast 36-point IMDCT: sdctII18 runs it once for the nine
// even-indexed and once for the nine odd-indexed outputs of its
// 18-wide result and interleaves the two.
func sdctII9(x *[9]float32, y *[9]float32) {
	a01 := x[3] + x[5]
	a02 := x[3] - x[5]
	a03 := x[6] + x[2]
	a04 := x[6] - x[2]
	a05 := x[1] + x[7]
	a06 := x[1] - x[7]
	a07 := x[8] + x[0]
	a08 := x[8] - x[0]
	a09 := x[4] + a05
	a10 := a01 + a03
	a11 := a10 + a07
	a12 := a03 - a07
	a13 := a01 - a07
	a14 := a01 - a03
	a15 := a02 - a04
	a16 := a15 + a08
	a17 := a04 + a08
	a18 := a02 - a08
	a19 := a02 + a04
	a20 := 2*x[4] - a05

	m1 := sdct9D[0] * a06
	m2 := sdct9D[1] * a12
	m3 := sdct9D[2] * a13
	m4 := sdct9D[3] * a14
	m5 := sdct9D[0] * a16
	m6 := sdct9D[4] * a17
	m7 := sdct9D[5] * a18
	m8 := sdct9D[6] * a19

	a21 := a20 + m2
	a22 := a20 - m2
	a23 := a20 + m3
	a24 := m1 + m6
	a25 := m1 - m6
	a26 := m1 + m7

	y[0] = a09 + a11
	y[1] = m8 - a26
	y[2] = m4 - a21
	y[3] = m5
	y[4] = a22 - m3
	y[5] = a25 - m7
	y[6] = a11 - 2*a09
	y[7] = a24 + m8
	y[8] = a23 + m4
}
