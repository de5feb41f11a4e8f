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

import stdmath "math"

// wSpecial resolves W for an argument with a NaN or infinite component off
// the coordinate axes. The axes themselves go through ErfcxReal and ImW,
// which carry their own limits.
func wSpecial(re, im float64) complex128 {
	switch {
	case stdmath.IsNaN(re) || stdmath.IsNaN(im):
		return complex(stdmath.NaN(), stdmath.NaN())
	case stdmath.IsInf(im, -1):
		return complex(stdmath.NaN(), stdmath.NaN())
	case stdmath.IsInf(im, 1):
		return 0
	default:
		// re is infinite, im finite and nonzero.
		return complex(0, stdmath.Copysign(0, re))
	}
}

// isFinite reports whether x is neither NaN nor infinite.
func isFinite(x float64) bool {
	return !stdmath.IsNaN(x) && !stdmath.IsInf(x, 0)
}

// mulReal multiplies both components of v by r, avoiding the 0·Inf terms of
// a full complex product.
func mulReal(r float64, v complex128) complex128 {
	return complex(r*real(v), r*imag(v))
}

// expTimes returns exp(re + i·im)·v. When exp(re) alone would overflow but
// the product is finite, the exponential is applied in two halves.
func expTimes(re, im float64, v complex128) complex128 {
	s, c := stdmath.Sincos(im)
	u := complex(c*real(v)-s*imag(v), c*imag(v)+s*real(v))
	if re < expSplit {
		return mulReal(stdmath.Exp(re), u)
	}
	h := stdmath.Exp(0.5 * re)
	return mulReal(h, mulReal(h, u))
}
