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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// parts splits a complex value so that cmp can see both components.
type parts struct{ Re, Im float64 }

func partsOf(z complex128) parts { return parts{real(z), imag(z)} }

// exactFloat treats NaNs as equal and otherwise compares bit patterns, so
// +0 and -0 differ.
var exactFloat = cmp.Comparer(func(a, b float64) bool {
	if stdmath.IsNaN(a) || stdmath.IsNaN(b) {
		return stdmath.IsNaN(a) && stdmath.IsNaN(b)
	}
	return stdmath.Float64bits(a) == stdmath.Float64bits(b)
})

func TestSpecialValues(t *testing.T) {
	tests := []struct {
		name string
		fn   func(complex128) complex128
		z    complex128
		want complex128
	}{
		{"W", W, complex(0, 0), complex(1, 0)},
		{"W", W, complex(negZero, 0), complex(1, negZero)},
		{"W", W, complex(nan, 1), complex(nan, nan)},
		{"W", W, complex(nan, 0), complex(nan, nan)},
		{"W", W, complex(1, nan), complex(nan, nan)},
		{"W", W, complex(0, nan), complex(nan, 0)},
		{"W", W, complex(inf, 0), complex(0, 0)},
		{"W", W, complex(-inf, 0), complex(0, negZero)},
		{"W", W, complex(inf, 1), complex(0, 0)},
		{"W", W, complex(-inf, 1), complex(0, negZero)},
		{"W", W, complex(0, -inf), complex(inf, 0)},
		{"W", W, complex(3, inf), complex(0, 0)},
		{"W", W, complex(inf, inf), complex(0, 0)},
		{"W", W, complex(inf, -inf), complex(nan, nan)},

		{"Erf", Erf, complex(0, 0), complex(0, 0)},
		{"Erf", Erf, complex(negZero, 0), complex(negZero, 0)},
		{"Erf", Erf, complex(inf, 0), complex(1, 0)},
		{"Erf", Erf, complex(-inf, 0), complex(-1, 0)},
		{"Erf", Erf, complex(0, inf), complex(0, inf)},
		{"Erf", Erf, complex(0, -inf), complex(0, -inf)},
		{"Erf", Erf, complex(inf, inf), complex(nan, nan)},
		{"Erf", Erf, complex(nan, 0), complex(nan, 0)},
		{"Erf", Erf, complex(0, nan), complex(0, nan)},

		{"Erfc", Erfc, complex(0, 0), complex(1, negZero)},
		{"Erfc", Erfc, complex(inf, 0), complex(0, negZero)},
		{"Erfc", Erfc, complex(-inf, 0), complex(2, negZero)},
		{"Erfc", Erfc, complex(0, inf), complex(1, -inf)},
		{"Erfc", Erfc, complex(0, -inf), complex(1, inf)},

		// Erfcx(x + 0i) = W(-0 + ix) lands on the imaginary axis.
		{"Erfcx", Erfcx, complex(0, 0), complex(1, negZero)},
		{"Erfcx", Erfcx, complex(inf, 0), complex(0, negZero)},
		{"Erfcx", Erfcx, complex(-inf, 0), complex(inf, negZero)},

		{"Erfi", Erfi, complex(0, 0), complex(0, 0)},
		{"Erfi", Erfi, complex(inf, 0), complex(inf, 0)},
		{"Erfi", Erfi, complex(-inf, 0), complex(-inf, 0)},

		{"Dawson", Dawson, complex(0, 0), complex(0, negZero)},
		{"Dawson", Dawson, complex(inf, 0), complex(0, negZero)},
		{"Dawson", Dawson, complex(-inf, 0), complex(negZero, negZero)},
		{"Dawson", Dawson, complex(0, inf), complex(0, inf)},
		{"Dawson", Dawson, complex(0, -inf), complex(0, -inf)},
		{"Dawson", Dawson, complex(nan, 0), complex(nan, negZero)},
	}

	for _, tt := range tests {
		got := tt.fn(tt.z)
		if diff := cmp.Diff(partsOf(tt.want), partsOf(got), exactFloat); diff != "" {
			t.Errorf("%s(%v) mismatch (-want +got):\n%s", tt.name, tt.z, diff)
		}
	}
}

func TestRealSpecialValues(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		x    float64
		want float64
	}{
		{"ErfcxReal", ErfcxReal, inf, 0},
		{"ErfcxReal", ErfcxReal, -inf, inf},
		{"ErfcxReal", ErfcxReal, nan, nan},
		{"ErfcxReal", ErfcxReal, 0, 1},
		{"ImW", ImW, 0, 0},
		{"ImW", ImW, negZero, negZero},
		{"ImW", ImW, inf, 0},
		{"ImW", ImW, -inf, negZero},
		{"ImW", ImW, nan, nan},
		{"ErfReal", ErfReal, inf, 1},
		{"ErfReal", ErfReal, -inf, -1},
		{"ErfcReal", ErfcReal, inf, 0},
		{"ErfcReal", ErfcReal, -inf, 2},
		{"ErfcReal", ErfcReal, nan, nan},
		{"ErfiReal", ErfiReal, inf, inf},
		{"ErfiReal", ErfiReal, -inf, -inf},
		{"ErfiReal", ErfiReal, negZero, negZero},
		{"DawsonReal", DawsonReal, inf, 0},
		{"DawsonReal", DawsonReal, -inf, negZero},
		{"DawsonReal", DawsonReal, nan, nan},
	}

	for _, tt := range tests {
		got := tt.fn(tt.x)
		if !cmp.Equal(tt.want, got, exactFloat) {
			t.Errorf("%s(%v) = %v, want %v", tt.name, tt.x, got, tt.want)
		}
	}
}
