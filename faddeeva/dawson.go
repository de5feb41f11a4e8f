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
)

// Dawson thresholds.
const (
	dawsonSmall       = 5e-3   // |x|, |y| and |2xy| bound of the Taylor branches
	dawsonImagTaylor  = 2.5e-5 // y² bound of the imaginary-axis Taylor branch
	dawsonDirectRatio = 1e-3   // exp(-x²)/|y| below this: exp(-z²) - w(z) near the real axis
	dawsonRealAsymp   = 36.0   // x² above this: D'(x) from its asymptotic series
	dawsonRealCF      = 1600.0 // x² above this: continued-fraction closed form
	dawsonRealOneTerm = 25e14  // x² above this: 1-term closed form
)

// Dawson computes the Dawson function D(z) = (√π/2)·exp(-z²)·erfi(z).
//
// Special cases are:
//
//	Dawson(±Inf + 0i) = ±0 - 0i
//	Dawson(0 ± i·Inf) = 0 ± i·Inf
//	Dawson(NaN + 0i) = NaN - 0i
func Dawson(z complex128) complex128 {
	x, y := real(z), imag(z)

	if y == 0 {
		return complex(sqrtPiOver2*ImW(x), -y)
	}
	if x == 0 {
		y2 := y * y
		if y2 < dawsonImagTaylor {
			return complex(x, y*(1+y2*(0.6666666666666666666666666666666666666667+
				y2*0.26666666666666666666666666666666666667)))
		}
		if y >= 0 {
			return complex(x, sqrtPiOver2*(expSquare(y)-ErfcxReal(y)))
		}
		return complex(x, sqrtPiOver2*(ErfcxReal(-y)-expSquare(y)))
	}

	mRe := (y - x) * (x + y) // Re(-z²)
	mIm := -2 * x * y        // Im(-z²)
	mz2 := complex(mRe, mIm)

	// w(z) and exp(-z²) are combined on the half plane where neither is
	// exponentially large.
	if y >= 0 {
		if y < dawsonSmall {
			if stdmath.Abs(x) < dawsonSmall {
				return dawsonTaylor(z, mz2)
			}
			if stdmath.Abs(mIm) < dawsonSmall && useDawsonRealAxis(x, y) {
				return dawsonRealAxis(x, y)
			}
		}
		res := cmplx.Exp(mz2) - W(z)
		return mulReal(sqrtPiOver2, complex(-imag(res), real(res)))
	}

	if y > -dawsonSmall {
		if stdmath.Abs(x) < dawsonSmall {
			return dawsonTaylor(z, mz2)
		}
		if stdmath.Abs(mIm) < dawsonSmall && useDawsonRealAxis(x, y) {
			return dawsonRealAxis(x, y)
		}
	} else if stdmath.IsNaN(y) {
		return complex(stdmath.NaN(), stdmath.NaN())
	}
	res := W(-z) - cmplx.Exp(mz2)
	return mulReal(sqrtPiOver2, complex(-imag(res), real(res)))
}

// useDawsonRealAxis reports whether the expansion about the real axis is
// more accurate than exp(-z²) - w(z). The difference loses about
// exp(-x²)/|y| of Im, so it only wins once exp(-x²) is negligible next to y,
// where the error of D'(x) = 1 - 2x·D(x) in the expansion dominates.
func useDawsonRealAxis(x, y float64) bool {
	x2 := x * x
	return x2 > dawsonRealCF || stdmath.Exp(-x2) >= dawsonDirectRatio*stdmath.Abs(y)
}

// dawsonSlopeAsymp sums D'(x) = -Σ (2n-1)!!/(2x²)ⁿ, n ≥ 1, up to its
// smallest term. The truncation error is about exp(-x²), so x² must be large.
func dawsonSlopeAsymp(x2 float64) float64 {
	r := 0.5 / x2
	t, sum := 1.0, 0.0
	for n := 1.0; n <= x2; n++ {
		t *= (2*n - 1) * r
		sum += t
		if t < 1e-17*sum {
			break
		}
	}
	return -sum
}

// dawsonTaylor is D(z) = z - 2z³/3 + 4z⁵/15 near the origin.
func dawsonTaylor(z, mz2 complex128) complex128 {
	return z * (1 +
		mz2*(0.6666666666666666666666666666666666666667+
			mz2*0.2666666666666666666666666666666666666667))
}

// dawsonRealAxis expands D(x + iy) in y for small |y| and |xy|:
//
//	D(x+iy) = D + y²(D + x - 2Dx²) + y⁴(D/2 + 5x/6 - 2Dx² - x³/3 + 2Dx⁴/3)
//	        + iy[(1 - 2Dx) + 2/3·y²(1 - 3Dx - x² + 2Dx³)
//	        + y⁴/15·(4 - 15Dx - 9x² + 20Dx³ + 2x⁴ - 4Dx⁵)]
//
// with D = D(x). Above dawsonRealAsymp, D'(x) = 1 - 2Dx comes from its
// asymptotic series instead of cancelling. For large |x|, D(x) is replaced by
// its continued fraction
// 0.5/(x - 0.5/(x - 1/(x - 1.5/(x - ...)))) truncated after 6 terms, which
// removes the cancellation of 2Dx -> 1.
func dawsonRealAxis(x, y float64) complex128 {
	x2 := x * x
	if x2 > dawsonRealCF {
		y2 := y * y
		if x2 > dawsonRealOneTerm {
			xy2 := (x * y) * (x * y)
			return complex((0.5+y2*(0.5+0.25*y2-0.16666666666666666667*xy2))/x,
				y*(-1+y2*(-0.66666666666666666667+
					0.13333333333333333333*xy2-
					0.26666666666666666667*y2))/(2*x2-1))
		}
		return mulReal(1/(-15+x2*(90+x2*(-60+8*x2))),
			complex(x*(33+x2*(-28+4*x2)+y2*(18-4*x2+4*y2)),
				y*(-15+x2*(24-4*x2)+y2*(4*x2-10-4*y2))))
	}

	var d, slope float64
	if x2 > dawsonRealAsymp {
		slope = dawsonSlopeAsymp(x2)
		d = (1 - slope) / (2 * x)
	} else {
		d = sqrtPiOver2 * ImW(x)
		slope = 1 - 2*d*x
	}
	y2 := y * y
	return complex(
		d+y2*(d+x-2*d*x2)+
			y2*y2*(d*(0.5-x2*(2-0.66666666666666666667*x2))+
				x*(0.83333333333333333333-0.33333333333333333333*x2)),
		y*(slope+
			y2*0.66666666666666666667*(1-x2-d*x*(3-2*x2))+
			y2*y2*(0.26666666666666666667-
				x2*(0.6-0.13333333333333333333*x2)-
				d*x*(1-x2*(1.3333333333333333333-0.26666666666666666667*x2)))))
}
