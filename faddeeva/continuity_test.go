// Copyright 2025 go-faddeeva Authors
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

package faddeeva

import (
	stdmath "math"
	"math/cmplx"
	"testing"
)

// wPrime is the derivative w'(z) = -2z·w(z) + 2i/√π.
func wPrime(z complex128) complex128 {
	return -2*z*W(z) + complex(0, twoOverSqrtPi)
}

// TestBoundaryContinuity straddles each boundary between evaluators with a
// central difference and checks it against the analytic derivative. A jump
// between the two sides shows up directly as an error in the difference.
func TestBoundaryContinuity(t *testing.T) {
	const (
		step  = 1e-7
		bound = 5e-14
	)
	tests := []struct {
		name string
		b    complex128
		dir  complex128 // unit direction crossing the boundary
	}{
		{"cf/rational y=7", complex(0.5, 7), 1i},
		{"cf/rational y=7", complex(3, 7), 1i},
		{"cf/rational y=7", complex(6, 7), 1i},
		{"cf/rational y=-7", complex(3, -7), 1i},
		{"cf/rational x=6.5", complex(6.5, 0.5), 1},
		{"cf/rational x=6.5", complex(6.5, 3), 1},
		{"cf/rational x=-6.5", complex(-6.5, -0.5), 1},
		{"cf/rational y=0.1", complex(7, 0.1), 1i},
		{"cf/rational x=8", complex(8, 0.01), 1},
		{"cf/tail x=28", complex(28, 1e-11), 1},
		{"series/rational", complex(0.1/stdmath.Sqrt2, 0.1/stdmath.Sqrt2), complex(1/stdmath.Sqrt2, 1/stdmath.Sqrt2)},
		{"series/rational", complex(0.06, 0.08), complex(0.6, 0.8)},
		{"imag-axis/rational", complex(5e-4, 0.1), 1},
		{"imag-axis/rational", complex(5e-4, 0.5), 1},
		{"imag-axis/rational", complex(5e-4, 3), 1},
		{"rational/tail x=10", complex(10, 1e-12), 1},
		{"rational y=5", complex(2, 5), 1i},
		{"rational y=5", complex(0.001, 5), 1i},
		{"rational y=-6", complex(1, -6), 1i},
	}

	for _, tt := range tests {
		h := complex(step*max(1, cmplx.Abs(tt.b)), 0) * tt.dir
		diff := W(tt.b+h) - W(tt.b-h)
		err := cmplx.Abs(diff-2*h*wPrime(tt.b)) / cmplx.Abs(W(tt.b))
		if err > bound {
			t.Errorf("%s at %v: central difference off by %.3g (bound %.3g)", tt.name, tt.b, err, bound)
		}
	}
}

// TestNearAxisContinuity checks that stepping off an axis by a tiny amount
// does not change the result beyond rounding. The off-axis evaluators run
// here while the on-axis value comes from the real kernels.
func TestNearAxisContinuity(t *testing.T) {
	for _, x := range []float64{1e-8, 3e-4, 0.01, 0.5, 2, 6, 9, 15, 26, 40, 100, 1e4} {
		// Small enough that the true change of w stays below rounding.
		h := 1e-17 / max(1, x)
		for _, z := range []complex128{complex(x, 0), complex(-x, 0), complex(0, x), complex(0, -x)} {
			on := W(z)
			if cmplx.IsInf(on) {
				continue // erfcx(-x) overflows
			}
			off := z + complex(h, h)
			got := W(off)
			if d := cmplx.Abs(got-on) / cmplx.Abs(on); d > 5e-14 {
				t.Errorf("W(%v) = %v, W(%v) = %v: relative change %.3g", z, on, off, got, d)
			}
		}
	}
}
