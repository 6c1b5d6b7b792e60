package stackvm

// OpCode is a fixed-width instruction word: the operation in the low byte and
// one 8-bit operand (slot, target or signed immediate) in the high byte.
type OpCode uint16

const (
	OpLoad       OpCode = iota + 1 // push slot[arg]
	OpStore                        // slot[arg] = pop
	OpLoadInt                      // push int8(arg)
	OpAdd                          // a b -> a+b
	OpSub                          // a b -> a-b
	OpMul                          // a b -> a*b
	OpPop                          // a ->
	OpDup                          // a -> a a
	OpRot                          // a b c -> b c a
	OpSwap                         // a b -> b a
	OpJump                         // pc = arg
	OpSetCounter                   // a ->
	OpGetCounter                   // -> counter
	OpLoop                         // counter > 0: counter--, pc = arg
	OpLoopLe                       // a b -> ; a <= b && counter > 0: counter--, pc = arg
	OpReturn                       // a -> ; yields a
	OpNop
)

func (o OpCode) With(arg uint8) OpCode {
	return o | OpCode(arg)<<8
}

func (o OpCode) WithInt(value int8) OpCode {
	return o.With(uint8(value))
}

func (o OpCode) Op() OpCode {
	return o & 0xff
}

func (o OpCode) Arg() uint8 {
	return uint8(o >> 8)
}

func (o OpCode) Int() int8 {
	return int8(o >> 8)
}
