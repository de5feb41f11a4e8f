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
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		z    complex128
		want Region
	}{
		{complex(0, 3), RegionImagAxis},
		{complex(negZero, -inf), RegionImagAxis},
		{complex(0, nan), RegionImagAxis},
		{complex(2, 0), RegionRealAxis},
		{complex(nan, 0), RegionRealAxis},
		{complex(-inf, 0), RegionRealAxis},
		{complex(inf, 1), RegionSpecial},
		{complex(1, nan), RegionSpecial},
		{complex(nan, 1), RegionSpecial},
		{complex(1, -inf), RegionSpecial},
		{complex(0.05, 0.05), RegionSeries},
		{complex(-0.05, -0.08), RegionSeries},
		{complex(0.3, 7.5), RegionContinuedFraction},
		{complex(6.6, 0.2), RegionContinuedFraction},
		{complex(9, 1e-9), RegionContinuedFraction},
		{complex(30, 1e-12), RegionContinuedFraction},
		{complex(-1e10, -1e10), RegionContinuedFraction},
		{complex(6.6, 0.05), RegionRational},
		{complex(1, 2), RegionRational},
		{complex(-3, -6.9), RegionRational},
		{complex(1e-4, 0.5), RegionRationalImagAxis},
		{complex(-1e-20, 6.3), RegionRationalImagAxis},
		{complex(12, 1e-12), RegionRationalRealTail},
		{complex(-20, -1e-11), RegionRationalRealTail},
	}

	for _, tt := range tests {
		if got := Classify(tt.z); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.z, got, tt.want)
		}
	}
}

// Classify must only look at magnitudes, so all four reflections of z agree.
func TestClassifyReflections(t *testing.T) {
	for _, z := range []complex128{
		complex(0.05, 0.01), complex(6.6, 0.05), complex(6.6, 0.2),
		complex(3e-4, 2), complex(15, 3e-11), complex(29, 1e-11),
	} {
		want := Classify(z)
		for _, r := range []complex128{-z, complex(real(z), -imag(z)), complex(-real(z), imag(z))} {
			if got := Classify(r); got != want {
				t.Errorf("Classify(%v) = %v, Classify(%v) = %v", z, want, r, got)
			}
		}
	}
}

func TestRegionString(t *testing.T) {
	tests := []struct {
		r    Region
		want string
	}{
		{RegionSpecial, "special"},
		{RegionRealAxis, "real-axis"},
		{RegionImagAxis, "imag-axis"},
		{RegionSeries, "series"},
		{RegionContinuedFraction, "continued-fraction"},
		{RegionRational, "rational"},
		{RegionRationalImagAxis, "rational-imag-axis"},
		{RegionRationalRealTail, "rational-real-tail"},
		{Region(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Region(%d).String() = %q, want %q", int(tt.r), got, tt.want)
		}
	}
}

// Inside RegionSeries the Taylor sum must converge well before its cap.
func TestSeriesConvergesBeforeCap(t *testing.T) {
	const steps = 64
	r := stdmath.Sqrt(seriesRadius2)
	maxTerms := 0
	for i := 0; i < steps; i++ {
		for j := 0; j < steps; j++ {
			x := -r + 2*r*float64(i)/steps
			y := -r + 2*r*float64(j)/steps
			if x == 0 || y == 0 || Classify(complex(x, y)) != RegionSeries {
				continue
			}
			_, n := seriesTerms(x, y)
			maxTerms = max(maxTerms, n)
		}
	}
	if maxTerms >= seriesMaxTerms {
		t.Errorf("series used %d term pairs, cap is %d", maxTerms, seriesMaxTerms)
	}
	if maxTerms == 0 {
		t.Error("no points sampled in RegionSeries")
	}
}

func TestContinuedFractionLevels(t *testing.T) {
	tests := []struct {
		x, y float64
		want float64
	}{
		{0, 7, 13},
		{6.5, 0.1, 19},
		{28, 0, 8},
		{100, 100, 4},
		{0, 0, cfMaxLevels},
	}
	for _, tt := range tests {
		if got := cfLevels(tt.x, tt.y); got != tt.want {
			t.Errorf("cfLevels(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
