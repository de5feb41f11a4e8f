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

// Underflow bound on Re(-z²): below it exp(-z²)·w is 0 to double precision.
const mz2Underflow = -750.0

// Erf computes the complex error function.
//
// Special cases are:
//
//	Erf(±Inf + 0i) = ±1 + 0i
//	Erf(0 ± i·Inf) = 0 ± i·Inf
//	Erf(Inf + i·Inf) = NaN + i·NaN
//	Erf(NaN + 0i) = NaN + 0i
//	Erf(0 + i·NaN) = 0 + i·NaN
func Erf(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y == 0 {
		return complex(stdmath.Erf(x), y)
	}
	if x == 0 {
		return complex(x, ErfiReal(y))
	}

	mRe := (y - x) * (x + y) // Re(-z²), without overflowing early
	mIm := -2 * x * y        // Im(-z²)
	if mRe < mz2Underflow {
		if x >= 0 {
			return 1
		}
		return -1
	}

	ax := stdmath.Abs(x)
	if ax < 8e-2 {
		if stdmath.Abs(y) < 1e-2 {
			return erfTaylor(z, complex(mRe, mIm))
		}
		if stdmath.Abs(mIm) < 5e-3 && ax < 5e-3 {
			return erfTaylorErfi(x, y)
		}
	}
	if stdmath.IsNaN(x) {
		return complex(stdmath.NaN(), stdmath.NaN())
	}

	// Fold through the half plane where w is evaluated on its accurate side:
	// erf(z) = 1 - exp(-z²)·w(iz) for x >= 0 and its mirror image for x < 0.
	if x >= 0 {
		return 1 - expTimes(mRe, mIm, W(complex(-y, x)))
	}
	return expTimes(mRe, mIm, W(complex(y, -x))) - 1
}

// erfTaylor is erf(z) = (2/√π)·z·(1 - z²/3 + z⁴/10 - z⁶/42 + z⁸/216), for
// small |z| where 1 - exp(-z²)·w(iz) cancels.
func erfTaylor(z, mz2 complex128) complex128 {
	return z * (1.1283791670955125739 +
		mz2*(0.37612638903183752464+
			mz2*(0.11283791670955125739+
				mz2*(0.026866170645131251760+
					mz2*0.0052239776254421878422))))
}

// erfTaylorErfi expands erf(x + iy) about the imaginary axis for small |x|
// and small |xy|:
//
//	erf(x+iy) = erf(iy) + 2·exp(y²)/√π·[x·(1 - x²(1+2y²)/3 + x⁴(3+12y²+4y⁴)/30)
//	            - i·x²y·(1 - x²(3+2y²)/6)]
//
// with erf(iy) = i·exp(y²)·Im w(y).
func erfTaylorErfi(x, y float64) complex128 {
	x2, y2 := x*x, y*y
	expy2 := expSquare(y)
	return complex(
		expy2*x*(1.1283791670955125739-
			x2*(0.37612638903183752464+0.75225277806367504925*y2)+
			x2*x2*(0.11283791670955125739+
				y2*(0.45135166683820502956+0.15045055561273500986*y2))),
		expy2*(ImW(y)-
			x2*y*(1.1283791670955125739-
				x2*(0.56418958354775628695+0.37612638903183752464*y2))))
}

// Erfc computes the complex complementary error function erfc(z) = 1 - erf(z),
// without the cancellation of forming 1 - erf(z).
//
// Special cases are:
//
//	Erfc(+Inf + 0i) = 0 - 0i
//	Erfc(-Inf + 0i) = 2 - 0i
//	Erfc(0 + i·Inf) = 1 - i·Inf
//	Erfc(0 - i·Inf) = 1 + i·Inf
func Erfc(z complex128) complex128 {
	x, y := real(z), imag(z)
	if x == 0 {
		return complex(1, -ErfiReal(y))
	}
	if y == 0 {
		return complex(ErfcReal(x), -y)
	}

	mRe := (y - x) * (x + y)
	mIm := -2 * x * y
	if mRe < mz2Underflow {
		if x >= 0 {
			return 0
		}
		return 2
	}

	if x >= 0 {
		return expTimes(mRe, mIm, W(complex(-y, x)))
	}
	return 2 - expTimes(mRe, mIm, W(complex(y, -x)))
}

// Erfcx computes the scaled complementary error function
// erfcx(z) = exp(z²)·erfc(z) = w(iz). The two factors never appear
// separately, so erfcx stays finite where exp(z²) overflows.
func Erfcx(z complex128) complex128 {
	return W(complex(-imag(z), real(z)))
}

// Erfi computes the imaginary error function erfi(z) = -i·erf(iz).
func Erfi(z complex128) complex128 {
	e := Erf(complex(-imag(z), real(z)))
	return complex(imag(e), -real(e))
}
