package regvm

import (
	"fmt"

	"github.com/reusee/regstack/dispatch"
)

// state lives for one Run call.
type state[C dispatch.Cursor[OpCode], R dispatch.Registers] struct {
	cursor  C
	regs    R
	counter uint32
}

func (s *state[C, R]) run() float64 {
	for {
		inst := s.cursor.Next()

		switch inst & 0xff {
		case OpLoadInt:
			s.regs.Set(uint8(inst>>8), float64(int16(inst>>16)))

		case OpCopy:
			s.regs.Set(uint8(inst>>8), s.regs.Get(uint8(inst>>16)))

		case OpAdd:
			s.regs.Set(uint8(inst>>8), s.regs.Get(uint8(inst>>16))+s.regs.Get(uint8(inst>>24)))

		case OpSub:
			s.regs.Set(uint8(inst>>8), s.regs.Get(uint8(inst>>16))-s.regs.Get(uint8(inst>>24)))

		case OpMul:
			s.regs.Set(uint8(inst>>8), s.regs.Get(uint8(inst>>16))*s.regs.Get(uint8(inst>>24)))

		case OpJump:
			s.cursor.Jump(uint8(inst >> 8))

		case OpSetCounter:
			s.counter = dispatch.ToCounter(s.regs.Get(uint8(inst >> 8)))

		case OpGetCounter:
			s.regs.Set(uint8(inst>>8), float64(s.counter))

		case OpLoop:
			if s.counter > 0 {
				s.counter--
				s.cursor.Jump(uint8(inst >> 8))
			}

		case OpLoopLe:
			a := s.regs.Get(uint8(inst >> 16))
			b := s.regs.Get(uint8(inst >> 24))
			if a <= b && s.counter > 0 {
				s.counter--
				s.cursor.Jump(uint8(inst >> 8))
			}

		case OpReturn:
			return s.regs.Get(uint8(inst >> 8))

		default:
			panic(fmt.Errorf("%w: %d", ErrUnknownOp, inst&0xff))
		}
	}
}
