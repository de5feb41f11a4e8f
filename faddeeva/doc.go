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

// Package faddeeva computes the Faddeeva function w(z) = exp(-z²)·erfc(-iz)
// and the error functions derived from it, over the whole complex plane.
//
// # Complex Functions
//
//   - W(z) - Faddeeva function, the scaled complex complementary error function
//   - Erf(z) - error function
//   - Erfc(z) - complementary error function, 1 - erf(z)
//   - Erfcx(z) - scaled complementary error function, exp(z²)·erfc(z)
//   - Erfi(z) - imaginary error function, -i·erf(iz)
//   - Dawson(z) - Dawson function, (√π/2)·exp(-z²)·erfi(z)
//
// # Real Functions
//
// Each complex function has a real-axis restriction that takes and returns
// float64 and matches the real part of the complex result:
//
//   - ImW(x) - Im w(x); the real part is exp(-x²)
//   - ErfReal(x), ErfcReal(x), ErfcxReal(x), ErfiReal(x), DawsonReal(x)
//
// # Accuracy
//
// Every path is accurate to Tolerance (1e-13) relative error per component,
// usually a few ulp. Signed zeros, infinities and NaN are handled according
// to IEEE-754 and a fixed table of limiting values, so every float64 bit
// pattern is a valid input.
//
// # Algorithms
//
// W selects one evaluator per call with Classify:
//
//   - RegionSeries: Taylor series about the origin
//   - RegionContinuedFraction: Laplace continued fraction, backward recurrence
//   - RegionRational, RegionRationalImagAxis, RegionRationalRealTail:
//     the weighted rational sums of Zaghloul and Ali, ACM TOMS Algorithm 916
//   - RegionRealAxis, RegionImagAxis: dedicated real kernels
//
// All functions are pure and allocation free, and a given input always
// produces the same bits regardless of the CPU dispatch level.
package faddeeva
