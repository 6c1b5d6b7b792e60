// Package oracle holds plain scalar implementations of the algorithms the
// bytecode corpus encodes. Every program must reproduce these bit for bit.
package oracle

import "github.com/reusee/regstack/dispatch"

// FibMax is the largest Fibonacci input in the checked domain.
const FibMax = 1000

func Fib(n float64) float64 {
	a, b := 0.0, 1.0
	for range dispatch.ToCounter(n) {
		a, b = b, a+b
	}
	return a
}

// Mandel returns the number of iterations before x0+y0i escapes the radius 2
// disk, capped at limit.
//
// The explicit float64 conversions round every product, which keeps the
// compiler from fusing multiply-adds the bytecode cannot express.
func Mandel(x0, y0, limit float64) float64 {
	var x, y float64
	n := dispatch.ToCounter(limit)
	var i uint32
	for float64(x*x)+float64(y*y) <= 4 && i < n {
		xtemp := float64(x*x) - float64(y*y) + x0
		y = float64(float64(x*y)*2) + y0
		x = xtemp
		i++
	}
	return float64(i)
}

// Sum adds values left to right.
func Sum(values []float64) float64 {
	var ret float64
	for _, v := range values {
		ret += v
	}
	return ret
}
