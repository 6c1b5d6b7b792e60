package stackvm

import (
	"fmt"
	"strings"
)

var opNames = map[OpCode]string{
	OpAdd:        "add",
	OpSub:        "sub",
	OpMul:        "mul",
	OpPop:        "pop",
	OpDup:        "dup",
	OpRot:        "rot",
	OpSwap:       "swap",
	OpSetCounter: "setcounter",
	OpGetCounter: "getcounter",
	OpReturn:     "return",
	OpNop:        "nop",
}

func (o OpCode) String() string {
	switch o.Op() {
	case OpLoad:
		return fmt.Sprintf("load s%d", o.Arg())
	case OpStore:
		return fmt.Sprintf("store s%d", o.Arg())
	case OpLoadInt:
		return fmt.Sprintf("loadint %d", o.Int())
	case OpJump:
		return fmt.Sprintf("jump @%d", o.Arg())
	case OpLoop:
		return fmt.Sprintf("loop @%d", o.Arg())
	case OpLoopLe:
		return fmt.Sprintf("loople @%d", o.Arg())
	}
	if name, ok := opNames[o.Op()]; ok {
		return name
	}
	return fmt.Sprintf("op(%#04x)", uint16(o))
}

func Disassemble(code []OpCode) string {
	buf := new(strings.Builder)
	for pc, inst := range code {
		fmt.Fprintf(buf, "%3d  %v\n", pc, inst)
	}
	return buf.String()
}
