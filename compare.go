// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Comparable is implemented by user defined types that carry their own
// ordering. A type implementing it should be stored with Methods, which
// makes the trees call these methods instead of the built-in operators.
type Comparable[T any] interface {
	// Equals reports whether the receiver and other are logically equal.
	Equals(other T) bool
	// GreaterThan reports whether the receiver sorts after other.
	GreaterThan(other T) bool
}

// Comparator is the pair of predicates a tree orders its values with.
// Anything that is neither greater nor equal is treated as less; the
// predicates must describe a total order.
type Comparator[T any] struct {
	Equal   func(a, b T) bool
	Greater func(a, b T) bool
}

// Natural returns the comparator for types with a built-in order.
func Natural[T constraints.Ordered]() Comparator[T] {
	return Comparator[T]{
		Equal:   func(a, b T) bool { return a == b },
		Greater: func(a, b T) bool { return a > b },
	}
}

// Methods returns the comparator that delegates to the Equals and
// GreaterThan methods of T.
func Methods[T Comparable[T]]() Comparator[T] {
	return Comparator[T]{
		Equal:   func(a, b T) bool { return a.Equals(b) },
		Greater: func(a, b T) bool { return a.GreaterThan(b) },
	}
}

// Func builds a comparator from two arbitrary predicates.
func Func[T any](equal, greater func(a, b T) bool) Comparator[T] {
	return Comparator[T]{Equal: equal, Greater: greater}
}

func (c Comparator[T]) mustValidate() {
	if c.Equal == nil || c.Greater == nil {
		panic(errors.AssertionFailedf("ordered: comparator is missing a predicate"))
	}
}

// compare folds the two predicates into the usual -1/0/1 result.
func (c Comparator[T]) compare(a, b T) int {
	if c.Greater(a, b) {
		return 1
	}
	if c.Equal(a, b) {
		return 0
	}
	return -1
}
