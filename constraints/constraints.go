// Package constraints holds the type-set constraints used by the generic
// helpers in this module.
package constraints

import "golang.org/x/exp/constraints"

type Signed = constraints.Signed

type Unsigned = constraints.Unsigned

type Integer = constraints.Integer

type Float = constraints.Float

type Ordered = constraints.Ordered

// Numeric permits any type that supports the built-in arithmetic operators.
type Numeric interface {
	Integer | Float
}
