// SPDX-License-Identifier: MIT
// Package: symdiag/symmetry
//
// options.go — functional options for matrix, lookup and diagram constructors.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Algorithms never panic; they return sentinel errors.
//   • Zero options yield the documented defaults below.

package symmetry

// DefaultLayout is the layout used when no WithLayout option is given.
const DefaultLayout = Concatenated

// Option customizes BuildMatrix, Locate, PositionOf and NewDiagram.
type Option func(*options)

type options struct {
	layout Layout
}

// WithLayout selects how row and column codes are merged.
// Panics on a Layout value that is neither Concatenated nor Interleaved.
func WithLayout(l Layout) Option {
	if !l.valid() {
		panic("symmetry: WithLayout(unknown layout)")
	}

	return func(o *options) {
		o.layout = l
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{layout: DefaultLayout}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
