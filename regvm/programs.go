package regvm

// Fib takes n in r0 and returns the nth Fibonacci number.
var Fib = []OpCode{
	OpSetCounter.With(0),
	OpLoadInt.WithInt(1, 0),
	OpLoadInt.WithInt(2, 1),
	OpJump.With(7),

	// 4: loop body
	OpAdd.With(3, 1, 2),
	OpCopy.With(1, 2),
	OpCopy.With(2, 3),

	// 7
	OpLoop.With(4),
	OpReturn.With(1),
}

// Mandel takes x0, y0 and the iteration limit in r0..r2 and returns the
// escape-time iteration count.
var Mandel = func() []OpCode {
	const (
		x0 = iota
		y0
		n
		x
		y
		t0
		t1
	)
	return []OpCode{
		OpLoadInt.WithInt(x, 0),
		OpLoadInt.WithInt(y, 0),

		// 2
		OpSetCounter.With(n),
		OpJump.With(13),

		// 4: xtemp = x*x - y*y + x0
		OpMul.With(t0, x, x),
		OpMul.With(t1, y, y),
		OpSub.With(t0, t0, t1),
		OpAdd.With(t0, t0, x0),
		// y = x*y*2 + y0
		OpMul.With(y, x, y),
		OpLoadInt.WithInt(t1, 2),
		OpMul.With(y, y, t1),
		OpAdd.With(y, y, y0),
		// x = xtemp
		OpCopy.With(x, t0),

		// 13: x*x + y*y <= 4
		OpMul.With(t0, x, x),
		OpMul.With(t1, y, y),
		OpAdd.With(t0, t0, t1),
		OpLoadInt.WithInt(t1, 4),
		OpLoopLe.With(4, t0, t1),

		// 18
		OpGetCounter.With(t1),
		OpSub.With(t0, n, t1),
		OpReturn.With(t0),
	}
}()

// AddChain sums r0..r15 by accumulating into r0.
var AddChain = []OpCode{
	OpAdd.With(0, 0, 1),
	OpAdd.With(0, 0, 2),
	OpAdd.With(0, 0, 3),
	OpAdd.With(0, 0, 4),
	OpAdd.With(0, 0, 5),
	OpAdd.With(0, 0, 6),
	OpAdd.With(0, 0, 7),
	OpAdd.With(0, 0, 8),
	OpAdd.With(0, 0, 9),
	OpAdd.With(0, 0, 10),
	OpAdd.With(0, 0, 11),
	OpAdd.With(0, 0, 12),
	OpAdd.With(0, 0, 13),
	OpAdd.With(0, 0, 14),
	OpAdd.With(0, 0, 15),
	OpReturn.With(0),
}

// AddPairs sums r0..r15 as a pairwise tree, so independent adds can overlap.
var AddPairs = []OpCode{
	OpAdd.With(0, 0, 1),
	OpAdd.With(2, 2, 3),
	OpAdd.With(4, 4, 5),
	OpAdd.With(6, 6, 7),
	OpAdd.With(8, 8, 9),
	OpAdd.With(10, 10, 11),
	OpAdd.With(12, 12, 13),
	OpAdd.With(14, 14, 15),
	OpAdd.With(0, 0, 2),
	OpAdd.With(4, 4, 6),
	OpAdd.With(8, 8, 10),
	OpAdd.With(12, 12, 14),
	OpAdd.With(0, 0, 4),
	OpAdd.With(8, 8, 12),
	OpAdd.With(0, 0, 8),
	OpReturn.With(0),
}
