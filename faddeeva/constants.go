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

// Tolerance is the relative error, per component, that every function in
// this package stays within.
const Tolerance = 1e-13

// =============================================================================
// Scale factors
// =============================================================================

const (
	ispi          = 0.56418958354775628694807945156077258584405062932900 // 1/√π
	twoOverSqrtPi = 1.12837916709551257389615890312154517168810125865800 // 2/√π
	sqrtPiOver2   = 0.88622692545275801364908374167057259139877472806119 // √π/2

	eps = 2.220446049250313e-16 // 2^-52

	// exp arguments from here on are applied as two half-size factors, as
	// exp(arg) may overflow while the scaled product does not.
	expSplit = 700.0
)

// =============================================================================
// Algorithm 916 constants
// =============================================================================

// The rational sums use a grid spacing a chosen so that the truncation error
// of the sums is below double precision; c = 2a/π.
const (
	a916    = 0.518321480430085929872
	c916    = 0.329973702884629072537
	a916Sq  = 0.268657157075235951582 // a²
	twoA916 = 1.036642960860171859744 // 2a
	fourA   = 2.073285921720343719488 // 4a

	// Terms beyond n = 52 are below the smallest subnormal for any x.
	nMax916 = 52
)

// expA2N2[n-1] = exp(-a²n²), rounded from an exact evaluation.
var expA2N2 = [nMax916]float64{
	0.7644052816712216, 0.3414245271665484, 0.08910726469294125,
	0.013588729905546009, 0.0012108545525343747, 6.304526139334493e-05,
	1.9180515657711467e-06, 3.409694477148324e-08, 3.541750890994694e-10,
	2.149650795832607e-12, 7.623689118337244e-15, 1.579827971106811e-17,
	1.9129418910358267e-20, 1.3534465676420535e-23, 5.595357124285887e-27,
	1.3516425797240177e-30, 1.9078458284350117e-34, 1.5735192029144294e-38,
	7.583124323280329e-43, 2.1353627543869708e-47, 3.513520637871958e-52,
	3.378008302663969e-57, 1.89769439468301e-62, 6.229299260726688e-68,
	1.1948117200693873e-73, 1.3390818113300596e-79, 8.769243034832239e-86,
	3.35555576166255e-92, 7.50264110688173e-99, 9.801922007454103e-106,
	7.482654128222689e-113, 3.337701225668094e-120, 8.699345981598611e-128,
	1.3248695148408885e-135, 1.1789814420131525e-143, 6.1303912023618e-152,
	1.862587859508221e-160, 3.3066840820143276e-169, 3.4301728088794625e-178,
	2.0791539777580822e-187, 7.36384545323985e-197, 1.5239476039408574e-206,
	1.842819350465321e-216, 1.3020955380299293e-226, 5.375889035210805e-237,
	1.2968958459976315e-247, 1.8281307802286657e-258, 1.5057635534868423e-269,
	7.246923207992942e-281, 2.037970513147268e-292, 3.3488021592787382e-304,
	3.2153514e-316,
}
