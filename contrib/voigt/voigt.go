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

// Package voigt evaluates the Voigt line profile, the convolution of a
// Gaussian and a Lorentzian, through the Faddeeva function, and finds its
// half width at half maximum.
package voigt

import (
	stdmath "math"

	"github.com/ajroetker/go-faddeeva/faddeeva"
)

const (
	sqrt2   = 1.41421356237309504880168872420969808 // √2
	sqrt2Pi = 2.50662827463100050241576528481104525 // √(2π)
	ln2     = 0.69314718055994530941723212145817657 // ln 2
)

// Root finder settings for HWHM.
const (
	hwhmRelTol   = 2e-15
	hwhmMaxIter  = 300
	hwhmBracketL = 0.98
	hwhmBracketR = 1.02
)

// Voigt returns the Voigt profile at x for a Gaussian of standard deviation
// sigma and a Lorentzian of half width gamma, normalized to unit area:
//
//	V(x; σ, γ) = Re w((x + iγ)/(σ√2)) / (σ√(2π))
//
// The signs of sigma and gamma are ignored.
//
// Special cases are:
//
//	Voigt(0, 0, 0) = +Inf
//	Voigt(x, 0, 0) = 0 for x != 0
//	Voigt(x, 0, γ) = γ/(π(x² + γ²))
//	Voigt(x, σ, 0) = exp(-x²/(2σ²))/(σ√(2π))
func Voigt(x, sigma, gamma float64) float64 {
	sigma, gamma = stdmath.Abs(sigma), stdmath.Abs(gamma)
	switch {
	case sigma == 0 && gamma == 0:
		if x == 0 {
			return stdmath.Inf(1)
		}
		return 0
	case sigma == 0:
		return gamma / stdmath.Pi / (x*x + gamma*gamma)
	case gamma == 0:
		t := x / sigma
		return stdmath.Exp(-0.5*t*t) / (sigma * sqrt2Pi)
	}
	s := sigma * sqrt2
	return real(faddeeva.W(complex(x/s, gamma/s))) / (sigma * sqrt2Pi)
}

// OliveroWidth is the Olivero-Longbothum estimate of the Voigt half width,
// accurate to about 2e-4 relative.
func OliveroWidth(sigma, gamma float64) float64 {
	return 0.5 * (1.06868*gamma + stdmath.Sqrt(0.86743*gamma*gamma+8*ln2*sigma*sigma))
}

// HWHM returns the half width at half maximum of the Voigt profile with
// parameters sigma and gamma, to about 1e-14 relative accuracy. It returns
// NaN if either width is NaN or the root search fails to converge.
func HWHM(sigma, gamma float64) float64 {
	sigma, gamma = stdmath.Abs(sigma), stdmath.Abs(gamma)
	switch {
	case stdmath.IsNaN(sigma) || stdmath.IsNaN(gamma):
		return stdmath.NaN()
	case sigma == 0:
		return gamma
	case gamma == 0:
		return sigma * stdmath.Sqrt(2*ln2)
	case stdmath.IsInf(sigma, 0) || stdmath.IsInf(gamma, 0):
		return stdmath.Inf(1)
	}

	// The half width is homogeneous of degree one in (σ, γ).
	scale := max(sigma, gamma)
	sigma /= scale
	gamma /= scale

	half := 0.5 * Voigt(0, sigma, gamma)
	f := func(h float64) float64 { return Voigt(h, sigma, gamma) - half }

	h0 := OliveroWidth(sigma, gamma)
	a, b := hwhmBracketL*h0, hwhmBracketR*h0
	fa, fb := f(a), f(b)
	for fa < 0 {
		a *= 0.5
		fa = f(a)
	}
	for fb > 0 {
		b *= 2
		fb = f(b)
	}

	// Regula falsi with the Illinois modification: halve the retained
	// endpoint's value when the same side is replaced twice in a row.
	side := 0
	for range hwhmMaxIter {
		c := (a*fb - b*fa) / (fb - fa)
		fc := f(c)
		if fc == 0 || stdmath.Abs(b-a) <= hwhmRelTol*c {
			return c * scale
		}
		if fc*fb > 0 {
			b, fb = c, fc
			if side == -1 {
				fa *= 0.5
			}
			side = -1
		} else {
			a, fa = c, fc
			if side == 1 {
				fb *= 0.5
			}
			side = 1
		}
	}
	return stdmath.NaN()
}
