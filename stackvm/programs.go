package stackvm

// FibSmart takes n in slot 0 and returns the nth Fibonacci number. The pair is
// kept on the stack and advanced with Dup and Rot.
var FibSmart = []OpCode{
	OpSetCounter,
	OpLoadInt.WithInt(0),
	OpLoadInt.WithInt(1),
	OpJump.With(7),

	// 4: a b -> b a+b
	OpDup,
	OpRot,
	OpAdd,

	// 7
	OpLoop.With(4),
	OpPop,
	OpReturn,
}

// FibNaive round-trips every value through slots 0 and 1.
var FibNaive = []OpCode{
	OpSetCounter,
	OpLoadInt.WithInt(0),
	OpLoadInt.WithInt(1),
	OpJump.With(10),

	// 4
	OpLoad.With(0),
	OpLoad.With(1),
	OpAdd,
	OpLoad.With(1),
	OpStore.With(0),
	OpStore.With(1),

	// 10
	OpLoop.With(4),
	OpPop,
	OpReturn,
}

// mandelbrot slots: arguments x0, y0, n followed by locals x, y
const (
	slotX0 = iota
	slotY0
	slotN
	slotX
	slotY
	slotXTemp
)

// MandelSmart takes x0, y0 and the iteration limit and returns the
// escape-time iteration count. The new x is computed on the stack and
// rotated into place instead of being stored.
var MandelSmart = []OpCode{
	OpLoad.With(slotN),
	OpSetCounter,

	OpLoadInt.WithInt(0),
	OpLoadInt.WithInt(0),

	OpJump.With(21),

	// 5: xtemp = x*x - y*y + x0
	OpLoad.With(slotX),
	OpDup,
	OpMul,
	OpLoad.With(slotY),
	OpDup,
	OpMul,
	OpSub,
	OpLoad.With(slotX0),
	OpAdd,

	// 14: x0 y0 n x y xtemp
	OpSwap,
	// x0 y0 n x xtemp y
	OpRot,
	// x0 y0 n xtemp y x

	// 16: y = x*y*2 + y0
	OpMul,
	OpLoadInt.WithInt(2),
	OpMul,
	OpLoad.With(slotY0),
	OpAdd,

	// 21: x*x + y*y <= 4
	OpLoad.With(slotX),
	OpDup,
	OpMul,
	OpLoad.With(slotY),
	OpDup,
	OpMul,
	OpAdd,
	OpLoadInt.WithInt(4),
	OpLoopLe.With(5),

	// 30
	OpLoad.With(slotN),
	OpGetCounter,
	OpSub,
	OpReturn,
}

// MandelNaive keeps x, y and xtemp in slots and loads every operand.
var MandelNaive = []OpCode{
	OpLoad.With(slotN),
	OpSetCounter,

	OpLoadInt.WithInt(0),
	OpLoadInt.WithInt(0),
	OpLoadInt.WithInt(0),
	// x0 y0 n x y xtemp

	OpJump.With(26),

	// 6: xtemp = x*x - y*y + x0
	OpLoad.With(slotX),
	OpLoad.With(slotX),
	OpMul,
	OpLoad.With(slotY),
	OpLoad.With(slotY),
	OpMul,
	OpSub,
	OpLoad.With(slotX0),
	OpAdd,
	OpStore.With(slotXTemp),

	// 16: y = x*y*2 + y0
	OpLoad.With(slotX),
	OpLoad.With(slotY),
	OpMul,
	OpLoadInt.WithInt(2),
	OpMul,
	OpLoad.With(slotY0),
	OpAdd,
	OpStore.With(slotY),

	// 24: x = xtemp
	OpLoad.With(slotXTemp),
	OpStore.With(slotX),

	// 26: x*x + y*y <= 4
	OpLoad.With(slotX),
	OpLoad.With(slotX),
	OpMul,
	OpLoad.With(slotY),
	OpLoad.With(slotY),
	OpMul,
	OpAdd,
	OpLoadInt.WithInt(4),
	OpLoopLe.With(6),

	// 35
	OpLoad.With(slotN),
	OpGetCounter,
	OpSub,
	OpReturn,
}

// MandelSmartNopsSlow is MandelSmart with three no-ops inside the dependency
// chain of y*y.
var MandelSmartNopsSlow = []OpCode{
	OpLoad.With(slotN),
	OpSetCounter,

	OpLoadInt.WithInt(0),
	OpLoadInt.WithInt(0),

	OpJump.With(21 + 3),

	// 5
	OpLoad.With(slotX),
	OpDup,
	OpMul,
	OpLoad.With(slotY),
	OpNop, OpNop, OpNop,
	OpDup,
	OpMul,
	OpSub,
	OpLoad.With(slotX0),
	OpAdd,

	// 14 + 3
	OpSwap,
	OpRot,

	// 16 + 3
	OpMul,
	OpLoadInt.WithInt(2),
	OpMul,
	OpLoad.With(slotY0),
	OpAdd,

	// 21 + 3
	OpLoad.With(slotX),
	OpDup,
	OpMul,
	OpLoad.With(slotY),
	OpDup,
	OpMul,
	OpAdd,
	OpLoadInt.WithInt(4),
	OpLoopLe.With(5),

	// 30 + 3
	OpLoad.With(slotN),
	OpGetCounter,
	OpSub,
	OpReturn,
}

// MandelSmartNopsSame places the three no-ops after the rotation, off the
// critical path.
var MandelSmartNopsSame = []OpCode{
	OpLoad.With(slotN),
	OpSetCounter,

	OpLoadInt.WithInt(0),
	OpLoadInt.WithInt(0),

	OpJump.With(21 + 3),

	// 5
	OpLoad.With(slotX),
	OpDup,
	OpMul,
	OpLoad.With(slotY),
	OpDup,
	OpMul,
	OpSub,
	OpLoad.With(slotX0),
	OpAdd,

	// 14
	OpSwap,
	OpRot,
	OpNop, OpNop, OpNop,

	// 16 + 3
	OpMul,
	OpLoadInt.WithInt(2),
	OpMul,
	OpLoad.With(slotY0),
	OpAdd,

	// 21 + 3
	OpLoad.With(slotX),
	OpDup,
	OpMul,
	OpLoad.With(slotY),
	OpDup,
	OpMul,
	OpAdd,
	OpLoadInt.WithInt(4),
	OpLoopLe.With(5),

	// 30 + 3
	OpLoad.With(slotN),
	OpGetCounter,
	OpSub,
	OpReturn,
}

// MandelSmartNoDup is MandelSmart with every Dup replaced by a second Load.
var MandelSmartNoDup = []OpCode{
	OpLoad.With(slotN),
	OpSetCounter,

	OpLoadInt.WithInt(0),
	OpLoadInt.WithInt(0),

	OpJump.With(21),

	// 5
	OpLoad.With(slotX),
	OpLoad.With(slotX),
	OpMul,
	OpLoad.With(slotY),
	OpLoad.With(slotY),
	OpMul,
	OpSub,
	OpLoad.With(slotX0),
	OpAdd,

	// 14
	OpSwap,
	OpRot,

	// 16
	OpMul,
	OpLoadInt.WithInt(2),
	OpMul,
	OpLoad.With(slotY0),
	OpAdd,

	// 21
	OpLoad.With(slotX),
	OpLoad.With(slotX),
	OpMul,
	OpLoad.With(slotY),
	OpLoad.With(slotY),
	OpMul,
	OpAdd,
	OpLoadInt.WithInt(4),
	OpLoopLe.With(5),

	// 30
	OpLoad.With(slotN),
	OpGetCounter,
	OpSub,
	OpReturn,
}
