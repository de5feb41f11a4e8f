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

// Continued-fraction depth. The fit below gives the fewest levels that
// reach full precision for x = |Re z|, y = |Im z| in RegionContinuedFraction,
// where it never exceeds 19.
const cfMaxLevels = 28

func cfLevels(x, y float64) float64 {
	nu := stdmath.Floor(3.9 + 11.398/(0.08254*x+0.1421*y+0.2023))
	return min(nu, cfMaxLevels)
}

// contFrac evaluates w(z) from the Laplace continued fraction
//
//	w(z) = (i/√π) / (z - ½/(z - 1/(z - 3/2/(z - ...))))
//
// backward from the innermost level. It is valid for large |z| in the upper
// half plane; the lower half plane uses w(z) = 2·exp(-z²) - w(-z).
func contFrac(re, im float64) complex128 {
	x, ya := stdmath.Abs(re), stdmath.Abs(im)
	xs := re
	if im < 0 {
		xs = -re
	}

	var ret complex128
	switch {
	case x+ya > 1e7:
		// 1-term expansion, scaled to avoid overflow in xs² + ya².
		if x > ya {
			yax := ya / xs
			d := ispi / (xs + yax*ya)
			ret = complex(d*yax, d)
		} else {
			xya := xs / ya
			d := ispi / (xya*xs + ya)
			ret = complex(d, d*xya)
		}
	case x+ya > 4000:
		// 2-term expansion: (i/√π)·z / (z² - ½)
		dr := xs*xs - ya*ya - 0.5
		di := 2 * xs * ya
		d := ispi / (dr*dr + di*di)
		ret = complex(d*(xs*di-ya*dr), d*(xs*dr+ya*di))
	default:
		wr, wi := xs, ya
		for nu := 0.5 * (cfLevels(x, ya) - 1); nu > 0.4; nu -= 0.5 {
			d := nu / (wr*wr + wi*wi)
			wr = xs - wr*d
			wi = ya + wi*d
		}
		d := ispi / (wr*wr + wi*wi)
		ret = complex(d*wi, d*wr)
	}

	if im < 0 {
		// exp(-z²) evaluated on the reflected components.
		e := cmplx.Exp(complex((ya-xs)*(xs+ya), 2*xs*im))
		return mulReal(2, e) - ret
	}
	return ret
}
