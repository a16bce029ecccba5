// SPDX-License-Identifier: MIT

// Package field: sentinel error set.
// Field operations themselves never fail; only constructors return errors.
package field

import "errors"

var (
	// ErrBadModulus is returned when a prime-field modulus is smaller than 2.
	ErrBadModulus = errors.New("field: modulus must be >= 2")
)
