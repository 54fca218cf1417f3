/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Thu Mar 16 09:12:20 2023 mstenber
 * Last modified: Thu Mar 16 09:40:03 2023 mstenber
 * Edit time:     14 min
 *
 */

// comparator provides the three-way comparison functions the
// containers use for searching and equality.
package comparator

import "cmp"

// Comparator returns a negative number if a sorts before b, zero if
// they are equal, and a positive number if a sorts after b.
type Comparator[T any] func(a, b T) int

// Ordered compares values of ordered types with cmp.Compare.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Equality only distinguishes equal (0) from not equal (1). It is
// fine for searching and list equality, but not for sorting.
func Equality[T comparable]() Comparator[T] {
	return func(a, b T) int {
		if a == b {
			return 0
		}
		return 1
	}
}

// Reverse inverts the order of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Equal is shorthand for c(a, b) == 0.
func (c Comparator[T]) Equal(a, b T) bool {
	return c(a, b) == 0
}
