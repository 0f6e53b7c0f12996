package vecops_test

import (
	"fmt"

	"github.com/cwbudde/algo-vector/vecops"
	"github.com/cwbudde/algo-vector/vector"
)

func ExampleMul() {
	a := vector.Of(1.0, 2.0, 3.0)
	b := vector.Of(2.0, 2.0, 2.0)
	out := vector.New(vector.WithSize[float64](3))

	_ = vecops.Mul(out, a, b)
	fmt.Println(out.Slice())

	// Output:
	// [2 4 6]
}

func ExampleSum() {
	v := vector.Of(1.0, 2.0, 3.0, 4.0)
	fmt.Println(vecops.Sum(v))

	// Output:
	// 10
}
