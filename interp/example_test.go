package interp_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/interp"
)

func ExampleInterpolator() {
	p, _ := interp.New([]float64{0, 1, 2}, []float64{0, 10, 20})
	v, _ := p.At(1.5)
	fmt.Println(v)
	// Output:
	// 15
}

func ExampleWithFill() {
	p, _ := interp.New([]float64{0, 1}, []float64{0, 10}, interp.WithFill(-1))
	out, _ := p.Eval([]float64{-2, 0.5, 3})
	fmt.Println(out)
	// Output:
	// [-1 5 -1]
}
