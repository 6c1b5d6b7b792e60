package regvm

import (
	"fmt"
	"strings"
)

func (o OpCode) String() string {
	switch o.Op() {
	case OpLoadInt:
		return fmt.Sprintf("loadint r%d, %d", o.A(), o.Int())
	case OpCopy:
		return fmt.Sprintf("copy r%d, r%d", o.A(), o.B())
	case OpAdd:
		return fmt.Sprintf("add r%d, r%d, r%d", o.A(), o.B(), o.C())
	case OpSub:
		return fmt.Sprintf("sub r%d, r%d, r%d", o.A(), o.B(), o.C())
	case OpMul:
		return fmt.Sprintf("mul r%d, r%d, r%d", o.A(), o.B(), o.C())
	case OpJump:
		return fmt.Sprintf("jump @%d", o.A())
	case OpSetCounter:
		return fmt.Sprintf("setcounter r%d", o.A())
	case OpGetCounter:
		return fmt.Sprintf("getcounter r%d", o.A())
	case OpLoop:
		return fmt.Sprintf("loop @%d", o.A())
	case OpLoopLe:
		return fmt.Sprintf("loople @%d, r%d, r%d", o.A(), o.B(), o.C())
	case OpReturn:
		return fmt.Sprintf("return r%d", o.A())
	}
	return fmt.Sprintf("op(%#08x)", uint32(o))
}

func Disassemble(code []OpCode) string {
	buf := new(strings.Builder)
	for pc, inst := range code {
		fmt.Fprintf(buf, "%3d  %v\n", pc, inst)
	}
	return buf.String()
}
