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

// Region identifies the evaluator W uses for an argument.
type Region int

const (
	// RegionSpecial covers arguments with a NaN or infinite component off
	// the coordinate axes; results come from a fixed table of limits.
	RegionSpecial Region = iota

	// RegionRealAxis covers Im z == 0: w(x) = exp(-x²) + i·ImW(x).
	RegionRealAxis

	// RegionImagAxis covers Re z == 0: w(iy) = erfcx(y).
	RegionImagAxis

	// RegionSeries covers |z| < 0.1, where the Taylor series about the origin
	// converges in a few terms.
	RegionSeries

	// RegionContinuedFraction covers large |z| away from the real axis.
	RegionContinuedFraction

	// RegionRational is the generic Algorithm 916 body.
	RegionRational

	// RegionRationalImagAxis is the Algorithm 916 body for |Re z| < 5e-4,
	// which replaces exponentials of x by Taylor polynomials.
	RegionRationalImagAxis

	// RegionRationalRealTail is the Algorithm 916 body for |Re z| >= 10 close
	// to the real axis, summing outward from the dominant term.
	RegionRationalRealTail
)

// NumRegions is the number of Region values, for callers that tally them.
const NumRegions = int(RegionRationalRealTail) + 1

// Classifier thresholds, on x = |Re z| and y = |Im z|.
const (
	cfImagMin     = 7.0   // y above this always uses the continued fraction
	cfRealMin     = 6.5   // x above this may use the continued fraction
	cfImagNear    = 0.1   // ... when y exceeds this
	cfRealFar     = 8.0   // ... or x exceeds this and
	cfImagTiny    = 1e-10 // ... y exceeds this
	cfRealAlways  = 28.0  // ... or x exceeds this
	seriesRadius2 = 0.01  // |z|² below this uses the Taylor series
	ratImagAxis   = 5e-4  // x below this uses the imaginary-axis 916 body
	ratRealTail   = 10.0  // x at or above this uses the real-tail 916 body
)

// String returns a human-readable name for the region.
func (r Region) String() string {
	switch r {
	case RegionSpecial:
		return "special"
	case RegionRealAxis:
		return "real-axis"
	case RegionImagAxis:
		return "imag-axis"
	case RegionSeries:
		return "series"
	case RegionContinuedFraction:
		return "continued-fraction"
	case RegionRational:
		return "rational"
	case RegionRationalImagAxis:
		return "rational-imag-axis"
	case RegionRationalRealTail:
		return "rational-real-tail"
	default:
		return "unknown"
	}
}

// Classify returns the region W evaluates z in. It depends only on the
// magnitudes of the components of z (and their being zero, NaN or
// infinite), never on intermediate results.
func Classify(z complex128) Region {
	re, im := real(z), imag(z)
	switch {
	case re == 0:
		return RegionImagAxis
	case im == 0:
		return RegionRealAxis
	case !isFinite(re) || !isFinite(im):
		return RegionSpecial
	}

	x, y := stdmath.Abs(re), stdmath.Abs(im)
	switch {
	case y > cfImagMin,
		x > cfRealMin && (y > cfImagNear || (x > cfRealFar && y > cfImagTiny) || x > cfRealAlways):
		return RegionContinuedFraction
	case x*x+y*y < seriesRadius2:
		return RegionSeries
	case x < ratImagAxis:
		return RegionRationalImagAxis
	case x < ratRealTail:
		return RegionRational
	default:
		return RegionRationalRealTail
	}
}
