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

// rational916 evaluates w(z) with the weighted rational sums of Zaghloul and
// Ali, "Algorithm 916: Computing the Faddeyeva and Voigt functions", ACM
// TOMS 38(2), 15 (2011). With a the grid spacing below,
//
//	Re w ≈ exp(-x²)·erfcx(y)·cos 2xy + (2a/π)·[x·exp(-x²)·sin xy·sinc xy
//	       - y·(cos 2xy·S1 - S2/2 - S3/2)]
//	Im w ≈ -exp(-x²)·erfcx(y)·sin 2xy + (2a/π)·[x·exp(-x²)·sinc 2xy
//	       + y·sin 2xy·S1 + a·(S5 - S4)/2]
//
// where, for n = 1, 2, ...,
//
//	S1 = Σ exp(-a²n²) / (a²n² + y²)
//	S2 = Σ exp(-(an + x)²) / (a²n² + y²)
//	S3 = Σ exp(-(an - x)²) / (a²n² + y²)
//	S4 = Σ n·exp(-(an + x)²) / (a²n² + y²)
//	S5 = Σ n·exp(-(an - x)²) / (a²n² + y²)
//
// and exp(-(an ± x)²) is factored as exp(-a²n²)·exp(-x²)·exp(∓2anx) to reuse
// the expA2N2 table. Away from the imaginary axis the loop carries
// S2 + S3 in sum3 and a·(S5 - S4) in sum5. For x >= 10 only S3 and S5 matter and they are summed
// outward from their largest term instead.
func rational916(re, y float64) complex128 {
	x := stdmath.Abs(re)
	var ret complex128
	var sum1, sum2, sum3, sum4, sum5 float64

	if x < ratRealTail {
		var expx2 float64

		if x < ratImagAxis {
			// exp(±2anx) would lose accuracy next to the imaginary axis;
			// use Taylor polynomials of exp(-x²) and exp(±2ax) instead.
			x2 := x * x
			expx2 = 1 - x2*(1-0.5*x2)
			ax2 := twoA916 * x
			exp2ax := 1 + ax2*(1+ax2*(0.5+0.166666666666666666667*ax2))
			expm2ax := 1 - ax2*(1-ax2*(0.5-0.166666666666666666667*ax2))
			prod2ax, prodm2ax := 1.0, 1.0
			for n := 1; n <= nMax916; n++ {
				coef := expA2N2[n-1] * expx2 / (a916Sq*float64(n*n) + y*y)
				prod2ax *= exp2ax
				prodm2ax *= expm2ax
				sum1 += coef
				sum2 += coef * prodm2ax
				sum3 += coef * prod2ax

				// a·(S5 - S4) directly, as a sum of sinh terms.
				sum5 += coef * (twoA916 * float64(n)) * sinhTaylor(twoA916*float64(n)*x)

				if coef*prod2ax < eps*sum3 {
					break
				}
			}
		} else {
			expx2 = expNegSquare(x)
			// Track cosh and sinh of 2anx by the addition formulas so that
			// S2 + S3 and S5 - S4 come out without cancellation.
			sh, ch := stdmath.Sinh(twoA916*x), stdmath.Cosh(twoA916*x)
			sumExp, diffExp := 2.0, 0.0
			for n := 1; n <= nMax916; n++ {
				an := a916 * float64(n)
				coef := expA2N2[n-1] * expx2 / (a916Sq*float64(n*n) + y*y)
				sumExp, diffExp = sumExp*ch+diffExp*sh, diffExp*ch+sumExp*sh
				sum1 += coef
				sum3 += coef * sumExp
				sum5 += (coef * diffExp) * an

				// S5 is the slowest-converging sum.
				if (coef*sumExp)*an < eps*sum5 {
					break
				}
			}
		}

		// exp(-x²)·erfcx(y), avoiding overflow of erfcx for very negative y
		var expx2erfcxy float64
		if y > -6 {
			expx2erfcxy = expx2 * ErfcxReal(y)
		} else {
			expx2erfcxy = 2 * stdmath.Exp(y*y-x*x)
		}

		if y > 5 {
			// The imaginary terms are negligible here.
			sxy := stdmath.Sin(x * y)
			ret = complex((expx2erfcxy-c916*y*sum1)*stdmath.Cos(2*x*y)+
				(c916*x*expx2)*sxy*sinc(x*y, sxy), 0)
		} else {
			xs := re
			sxy := stdmath.Sin(xs * y)
			sin2xy, cos2xy := stdmath.Sincos(2 * xs * y)
			coef1 := expx2erfcxy - c916*y*sum1
			coef2 := c916 * xs * expx2
			ret = complex(coef1*cos2xy+coef2*sxy*sinc(xs*y, sxy),
				coef2*sinc(2*xs*y, sin2xy)-coef1*sin2xy)
		}
	} else {
		// Here |y| < 1e-10, so only exp(-x²) survives from the leading term
		// and only S3 and S5 contribute, peaked around n0 = x/a.
		ret = complex(expNegSquare(x), 0)
		n0 := stdmath.Floor(x/a916 + 0.5)
		dx := a916*n0 - x
		sum3 = stdmath.Exp(-dx*dx) / (a916Sq*(n0*n0) + y*y)
		sum5 = a916 * n0 * sum3
		exp1 := stdmath.Exp(fourA * dx)
		exp1dn := 1.0

		dn := 1.0
		for ; n0-dn > 0; dn++ {
			np := n0 + dn
			nm := n0 - dn
			tp := stdmath.Exp(-(a916*dn + dx) * (a916*dn + dx))
			exp1dn *= exp1
			tm := tp * exp1dn // exp(-(a·dn - dx)²)
			tp /= a916Sq*(np*np) + y*y
			tm /= a916Sq*(nm*nm) + y*y
			sum3 += tp + tm
			sum5 += a916 * (np*tp + nm*tm)
			if a916*(np*tp+nm*tm) < eps*sum5 {
				return finish916(ret, re, y, sum2, sum3, sum4, sum5)
			}
		}
		// The n0 - dn terms are exhausted; continue on the upper side.
		for {
			np := n0 + dn
			tp := stdmath.Exp(-(a916*dn+dx)*(a916*dn+dx)) / (a916Sq*(np*np) + y*y)
			sum3 += tp
			sum5 += a916 * np * tp
			if a916*np*tp < eps*sum5 {
				break
			}
			dn++
		}
	}
	return finish916(ret, re, y, sum2, sum3, sum4, sum5)
}

func finish916(ret complex128, re, y, sum2, sum3, sum4, sum5 float64) complex128 {
	return ret + complex(0.5*c916*y*(sum2+sum3),
		0.5*c916*stdmath.Copysign(sum5-sum4, re))
}

// sinc returns sin(x)/x given sx = sin(x), with the x = 0 limit.
func sinc(x, sx float64) float64 {
	if x == 0 {
		return 1
	}
	return sx / x
}

// sinhTaylor is sinh(x) for small x, to O(x⁷).
func sinhTaylor(x float64) float64 {
	return x * (1 + (x*x)*(0.1666666666666666666667+0.00833333333333333333333*(x*x)))
}
