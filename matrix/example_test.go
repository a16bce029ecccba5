package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/matrix"
)

// ExampleFrom2D shows the validating constructor accepting and rejecting data.
func ExampleFrom2D() {
	m, err := matrix.From2D(2, 3, [][]int{{1, 2, 3}, {4, 5, 6}})
	fmt.Print(m)
	fmt.Println(err)

	_, err = matrix.From2D(2, 3, [][]int{{1, 2}, {4, 5, 6}})
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))
	// Output:
	// [1, 2, 3]
	// [4, 5, 6]
	// <nil>
	// true
}

// ExampleAlgebra_Mul computes a Gram matrix m·mᵀ.
func ExampleAlgebra_Mul() {
	m, _ := matrix.From2D(2, 3, [][]float64{{1, 2, 3}, {4, 5, 6}})
	alg := matrix.NewAlgebra[float64](field.Real{})

	gram, err := alg.Mul(m, matrix.Transpose(m))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(gram)
	// Output:
	// [14, 32]
	// [32, 77]
}
