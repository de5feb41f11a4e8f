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

// W computes the Faddeeva function w(z) = exp(-z²)·erfc(-iz).
//
// Special cases are:
//
//	W(0) = 1
//	W(±Inf + 0i) = 0 ± 0i
//	W(0 - i·Inf) = +Inf
//	W(x + i·Inf) = 0
//	W(x - i·Inf) = NaN
//	W(0 + i·NaN) = NaN + 0i
//	W(NaN + iy) = NaN + i·NaN
func W(z complex128) complex128 {
	re, im := real(z), imag(z)
	switch Classify(z) {
	case RegionImagAxis:
		return complex(ErfcxReal(im), re)
	case RegionRealAxis:
		return complex(expNegSquare(re), ImW(re))
	case RegionSpecial:
		return wSpecial(re, im)
	case RegionSeries:
		w, _ := seriesTerms(re, im)
		return w
	case RegionContinuedFraction:
		return contFrac(re, im)
	default:
		return rational916(re, im)
	}
}
