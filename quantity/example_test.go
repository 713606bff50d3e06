package quantity_test

import (
	"fmt"

	"github.com/katalvlaran/strongunit/quantity"
)

// ExampleQuantity_Div derives acceleration from length and time.
func ExampleQuantity_Div() {
	length := quantity.Of(quantity.Length, quantity.Int(1))
	time := quantity.Of(quantity.Time, quantity.Int(1))

	acc := length.Div(time.Pow(quantity.Int(2)))
	fmt.Println(acc)
	fmt.Println(acc.Mul(time).Mul(time) == length)

	// Output:
	// T^-2·L
	// true
}
