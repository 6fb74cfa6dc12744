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

package synthesis_test

import (
	"testing"

	"github.com/swarnimarun/Symphonia/internal/synthesis"
)

func TestSynthesizeProducesOneGranuleOfPcm(t *testing.T) {
	b := synthesis.NewBank()
	samples := make([]float32, 32*18)
	out := b.Synthesize(samples, nil)
	if len(out) != 576 {
		t.Fatalf("len(out) = %d, want 576", len(out))
	}
}

func TestSynthesizeSilenceIsSilence(t *testing.T) {
	b := synthesis.NewBank()
	samples := make([]float32, 32*18)
	out := b.Synthesize(samples, nil)
	for i, s := range out {
		if s != 0 {
			t.Fatalf("out[%d] = %v, want 0 for all-zero input", i, s)
		}
	}
}

func TestSynthesizeAppendsToExistingSlice(t *testing.T) {
	b := synthesis.NewBank()
	samples := make([]float32, 32*18)
	prefix := []float32{1, 2, 3}
	out := b.Synthesize(samples, prefix)
	if len(out) != 3+576 {
		t.Fatalf("len(out) = %d, want %d", len(out), 3+576)
	}
	if out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Errorf("Synthesize overwrote the caller's prefix: %v", out[:3])
	}
}

// TestSynthesizeCarriesStateAcrossGranules confirms the filterbank's
// shift register (vVec) persists across calls on the same Bank: a
// second granule with a non-silent history produces different output
// than the same granule would on a freshly constructed Bank. The
// register holds the last 16 of each granule's 18 time slots, so the
// first granule's impulse sits in its last slot (subband 0, slot 17).
func TestSynthesizeCarriesStateAcrossGranules(t *testing.T) {
	first := make([]float32, 32*18)
	first[17] = 1

	warm := synthesis.NewBank()
	warm.Synthesize(first, nil)

	second := make([]float32, 32*18)
	second[5] = 1

	gotWarm := warm.Synthesize(second, nil)

	cold := synthesis.NewBank()
	gotCold := cold.Synthesize(second, nil)

	same := true
	for i := range gotWarm {
		if gotWarm[i] != gotCold[i] {
			same = false
			break
		}
	}
	if same {
		t.Errorf("Synthesize output identical with and without prior-granule history; expected the shift register to carry state forward")
	}
}
