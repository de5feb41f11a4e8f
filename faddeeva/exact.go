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

// Squares above this bound feed only exp(x²) overflow or exp(-x²) underflow,
// so their rounding error is irrelevant. The bound also keeps the Dekker
// split from overflowing.
const squareExactMax = 1e300

// dekkerSplit is 2^27 + 1, the Veltkamp splitting factor for float64.
const dekkerSplit = 134217729.0

// squareSplit returns hi + lo = x² exactly, or (x², 0) when x² is huge or
// not finite.
func squareSplit(x float64) (hi, lo float64) {
	hi = x * x
	if !(hi <= squareExactMax) {
		return hi, 0
	}
	if currentLevel == DispatchFMA {
		return hi, squareLoFMA(x, hi)
	}
	return hi, squareLoDekker(x, hi)
}

func squareLoFMA(x, hi float64) float64 {
	return stdmath.FMA(x, x, -hi)
}

// squareLoDekker is the FMA-free error term of x². The float64 conversions
// round each product, which stops the compiler from fusing them.
func squareLoDekker(x, hi float64) float64 {
	t := float64(dekkerSplit * x)
	xh := t - (t - x)
	xl := x - xh
	return ((float64(xh*xh) - hi) + float64(2*xh*xl)) + float64(xl*xl)
}

// expSquare returns exp(x²) without the rounding error of forming x².
func expSquare(x float64) float64 {
	hi, lo := squareSplit(x)
	return stdmath.Exp(hi) * (1 + lo)
}

// expNegSquare returns exp(-x²) without the rounding error of forming x².
func expNegSquare(x float64) float64 {
	hi, lo := squareSplit(x)
	return stdmath.Exp(-hi) * (1 - lo)
}
