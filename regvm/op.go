package regvm

import "fmt"

// OpCode is a fixed-width instruction word. The low byte is the operation,
// the next three bytes are operands a, b and c. OpLoadInt keeps a signed
// 16-bit immediate in place of b and c.
type OpCode uint32

const (
	OpLoadInt    OpCode = iota + 1 // a = dst, imm16
	OpCopy                         // a = dst, b = src
	OpAdd                          // a = dst, b = src1, c = src2
	OpSub                          // a = dst, b = src1, c = src2
	OpMul                          // a = dst, b = src1, c = src2
	OpJump                         // a = target
	OpSetCounter                   // a = src
	OpGetCounter                   // a = dst
	OpLoop                         // a = target
	OpLoopLe                       // a = target, b = src1, c = src2
	OpReturn                       // a = src
)

func (o OpCode) With(args ...uint8) OpCode {
	if len(args) > 3 {
		panic(fmt.Errorf("too many operands: %d", len(args)))
	}
	for i, arg := range args {
		o |= OpCode(arg) << (8 * (i + 1))
	}
	return o
}

func (o OpCode) WithInt(dst uint8, value int16) OpCode {
	return o | OpCode(dst)<<8 | OpCode(uint16(value))<<16
}

func (o OpCode) Op() OpCode {
	return o & 0xff
}

func (o OpCode) A() uint8 {
	return uint8(o >> 8)
}

func (o OpCode) B() uint8 {
	return uint8(o >> 16)
}

func (o OpCode) C() uint8 {
	return uint8(o >> 24)
}

func (o OpCode) Int() int16 {
	return int16(o >> 16)
}
