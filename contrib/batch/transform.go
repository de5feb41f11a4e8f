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

// Package batch applies the functions of package faddeeva to whole slices,
// either inline or spread over a worker pool with metrics and logging.
package batch

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ajroetker/go-faddeeva/faddeeva"
)

var (
	// ErrLengthMismatch is returned when an output slice is shorter than its
	// input.
	ErrLengthMismatch = errors.New("batch: output shorter than input")

	// ErrUnknownFunction is returned by Lookup for an unregistered name.
	ErrUnknownFunction = errors.New("batch: unknown function")
)

type (
	// ComplexFunc is an elementwise function of a complex argument.
	ComplexFunc func(complex128) complex128

	// RealFunc is an elementwise function of a real argument.
	RealFunc func(float64) float64
)

// Func describes one evaluable function.
type Func struct {
	Name    string
	Complex ComplexFunc

	// Real is the real-axis variant. For w it is Im w(x), since
	// Re w(x) = exp(-x²) is elementary.
	Real RealFunc

	// WArg maps the argument to the point where w itself is evaluated, for
	// region accounting. It is nil for functions that are not a plain
	// rotation of w.
	WArg func(complex128) complex128
}

var funcs = map[string]Func{
	"w": {
		Name: "w", Complex: faddeeva.W, Real: faddeeva.ImW,
		WArg: func(z complex128) complex128 { return z },
	},
	"erf":  {Name: "erf", Complex: faddeeva.Erf, Real: faddeeva.ErfReal},
	"erfc": {Name: "erfc", Complex: faddeeva.Erfc, Real: faddeeva.ErfcReal},
	"erfcx": {
		Name: "erfcx", Complex: faddeeva.Erfcx, Real: faddeeva.ErfcxReal,
		WArg: func(z complex128) complex128 { return complex(-imag(z), real(z)) },
	},
	"erfi":   {Name: "erfi", Complex: faddeeva.Erfi, Real: faddeeva.ErfiReal},
	"dawson": {Name: "dawson", Complex: faddeeva.Dawson, Real: faddeeva.DawsonReal},
}

// Lookup returns the function registered under name: one of w, erf, erfc,
// erfcx, erfi or dawson.
func Lookup(name string) (Func, error) {
	f, ok := funcs[name]
	if !ok {
		return Func{}, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	return f, nil
}

// Names returns the registered function names in sorted order.
func Names() []string {
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Transform stores fn(input[i]) in output[i] for every element of input.
func Transform(input, output []complex128, fn ComplexFunc) error {
	if len(output) < len(input) {
		return fmt.Errorf("%w: %d < %d", ErrLengthMismatch, len(output), len(input))
	}
	for i, z := range input {
		output[i] = fn(z)
	}
	return nil
}

// TransformReal stores fn(input[i]) in output[i] for every element of input.
func TransformReal(input, output []float64, fn RealFunc) error {
	if len(output) < len(input) {
		return fmt.Errorf("%w: %d < %d", ErrLengthMismatch, len(output), len(input))
	}
	for i, x := range input {
		output[i] = fn(x)
	}
	return nil
}

// WTransform applies the Faddeeva function to each element.
func WTransform(input, output []complex128) error {
	return Transform(input, output, faddeeva.W)
}

// ErfTransform applies erf to each element.
func ErfTransform(input, output []complex128) error {
	return Transform(input, output, faddeeva.Erf)
}

// ErfcTransform applies erfc to each element.
func ErfcTransform(input, output []complex128) error {
	return Transform(input, output, faddeeva.Erfc)
}

// ErfcxTransform applies erfcx to each element.
func ErfcxTransform(input, output []complex128) error {
	return Transform(input, output, faddeeva.Erfcx)
}

// ErfiTransform applies erfi to each element.
func ErfiTransform(input, output []complex128) error {
	return Transform(input, output, faddeeva.Erfi)
}

// DawsonTransform applies the Dawson function to each element.
func DawsonTransform(input, output []complex128) error {
	return Transform(input, output, faddeeva.Dawson)
}
