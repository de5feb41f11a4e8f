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

// seriesMaxTerms bounds the number of (even, odd) term pairs. Inside
// RegionSeries convergence takes at most about 8 pairs.
const seriesMaxTerms = 16

// seriesTerms sums the Taylor series
//
//	w(z) = Σ (iz)ⁿ / Γ(n/2 + 1)
//
// as two interleaved recurrences in -z², one for even and one for odd n. It
// returns the sum and the number of term pairs added after the leading pair.
func seriesTerms(x, y float64) (complex128, int) {
	mz2 := complex((y-x)*(x+y), -2*x*y) // -z²
	even := complex(1, 0)
	odd := complex(-twoOverSqrtPi*y, twoOverSqrtPi*x) // (2/√π)·iz
	sum := even + odd

	for n := 1; n <= seriesMaxTerms; n++ {
		even = mulReal(1/float64(n), even*mz2)
		odd = mulReal(1/(float64(n)+0.5), odd*mz2)
		t := even + odd
		sum += t
		if norm1(t) <= eps*norm1(sum) {
			return sum, n
		}
	}
	return sum, seriesMaxTerms
}

func norm1(v complex128) float64 {
	re, im := real(v), imag(v)
	if re < 0 {
		re = -re
	}
	if im < 0 {
		im = -im
	}
	return re + im
}
