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

// Real-axis thresholds.
const (
	erfcxAsymptotic = 50.0  // erfcx(x), x above this: asymptotic rational form
	erfcxOneTerm    = 5e7   // erfcx(x) and ImW(x), x above this: 1/(√π·x)
	erfcxNegInf     = -26.7 // erfcx(x), x below this: exp(x²) overflows
	erfcxNegLarge   = -6.1  // erfcx(x), x below this: erfc(-x)·exp(x²) is negligible
	imwAsymptotic   = 45.0  // ImW(x), x above this: asymptotic rational form
	erfiOverflow    = 720.0 // erfi(x), x² above this: ±Inf
	erfcUnderflow   = 750.0 // erfc(x), x² above this: 0 or 2
	erfcSubnormal   = 26.0  // erfc(x), x above this: result nears the subnormal range
)

// ErfcxReal returns the scaled complementary error function
// erfcx(x) = exp(x²)·erfc(x) of a real argument.
//
// Special cases are:
//
//	ErfcxReal(+Inf) = 0
//	ErfcxReal(-Inf) = +Inf
//	ErfcxReal(NaN) = NaN
func ErfcxReal(x float64) float64 {
	if stdmath.IsNaN(x) {
		return x
	}
	if x >= 0 {
		switch {
		case x > erfcxOneTerm:
			return ispi / x
		case x > erfcxAsymptotic:
			// Continued fraction truncated after 5 levels, as a rational
			// function; 1/x² is below double precision here.
			x2 := x * x
			return ispi * (x2*(x2+4.5) + 2) / (x * (x2*(x2+5) + 3.75))
		case x > cfImagMin:
			return real(contFrac(0, x))
		default:
			// erfc has no cancellation for x >= 0, and exp(x²) is formed
			// from the exact square.
			return expSquare(x) * stdmath.Erfc(x)
		}
	}
	switch {
	case x < erfcxNegInf:
		return stdmath.Inf(1)
	case x < erfcxNegLarge:
		return 2 * expSquare(x)
	default:
		return 2*expSquare(x) - ErfcxReal(-x)
	}
}

// ImW returns Im w(x) for real x, where w is the Faddeeva function. The
// real part of w(x) is exp(-x²). ImW is odd, ImW(±0) = ±0 and ImW(±Inf) = ±0.
func ImW(x float64) float64 {
	switch {
	case stdmath.IsNaN(x), x == 0:
		return x
	case x < 0:
		return -imwPositive(-x)
	default:
		return imwPositive(x)
	}
}

func imwPositive(x float64) float64 {
	switch {
	case x > erfcxOneTerm:
		return ispi / x
	case x > imwAsymptotic:
		x2 := x * x
		return ispi * (x2*(x2-4.5) + 2) / (x * (x2*(x2-5) + 3.75))
	case x > cfRealAlways:
		return imag(contFrac(x, 0))
	default:
		return imag(rational916(x, 0))
	}
}

// ErfReal returns the error function of a real argument. It equals
// real(Erf(complex(x, 0))).
func ErfReal(x float64) float64 {
	return stdmath.Erf(x)
}

// ErfcReal returns the complementary error function of a real argument. It
// equals real(Erfc(complex(x, 0))).
func ErfcReal(x float64) float64 {
	if x*x > erfcUnderflow {
		if x >= 0 {
			return 0
		}
		return 2
	}
	if x > erfcSubnormal {
		// Same product as the complex path, so Erfc(x + iε) rounds
		// identically once the result leaves the normal range.
		return stdmath.Exp(-x*x) * ErfcxReal(x)
	}
	return stdmath.Erfc(x)
}

// ErfiReal returns the imaginary error function erfi(x) = -i·erf(ix) of a
// real argument.
func ErfiReal(x float64) float64 {
	if x*x > erfiOverflow {
		return stdmath.Copysign(stdmath.Inf(1), x)
	}
	hi, lo := squareSplit(x)
	if hi < expSplit {
		return stdmath.Exp(hi) * (1 + lo) * ImW(x)
	}
	// exp(x²) overflows a little before erfi(x) does.
	h := stdmath.Exp(0.5 * hi)
	return h * (h * (1 + lo) * ImW(x))
}

// DawsonReal returns the Dawson function
// D(x) = (√π/2)·exp(-x²)·erfi(x) of a real argument.
func DawsonReal(x float64) float64 {
	return sqrtPiOver2 * ImW(x)
}
