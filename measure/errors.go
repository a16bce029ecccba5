// SPDX-License-Identifier: MIT

// Package measure: sentinel error set.
package measure

import (
	"errors"
	"fmt"
)

var (
	// ErrBadInterval is returned by Density when lo >= hi or either bound
	// is not finite.
	ErrBadInterval = errors.New("measure: invalid interval")

	// ErrBadNodes is returned by Density when the quadrature node count is < 1.
	ErrBadNodes = errors.New("measure: quadrature nodes must be >= 1")
)

const opDensity = "Density"

// measureErrorf wraps err with an operation tag.
func measureErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
