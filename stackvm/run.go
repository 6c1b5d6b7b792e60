package stackvm

import (
	"fmt"

	"github.com/reusee/regstack/dispatch"
)

// state lives for one Run call.
type state[C dispatch.Cursor[OpCode], S dispatch.Stack] struct {
	cursor  C
	stack   S
	counter uint32
}

func (s *state[C, S]) run(args []float64) float64 {
	for _, arg := range args {
		s.stack.Push(arg)
	}

	for {
		inst := s.cursor.Next()

		switch inst & 0xff {
		case OpLoad:
			s.stack.Push(s.stack.Slot(uint8(inst >> 8)))

		case OpStore:
			value := s.stack.Pop()
			s.stack.SetSlot(uint8(inst>>8), value)

		case OpLoadInt:
			s.stack.Push(float64(int8(inst >> 8)))

		// binary ops write into the second cell and drop the top
		case OpAdd:
			s.stack.SetTop(1, s.stack.Top(1)+s.stack.Top(0))
			s.stack.Drop()

		case OpSub:
			s.stack.SetTop(1, s.stack.Top(1)-s.stack.Top(0))
			s.stack.Drop()

		case OpMul:
			s.stack.SetTop(1, s.stack.Top(1)*s.stack.Top(0))
			s.stack.Drop()

		case OpPop:
			s.stack.Drop()

		case OpDup:
			s.stack.Push(s.stack.Top(0))

		case OpRot:
			a := s.stack.Top(2)
			s.stack.SetTop(2, s.stack.Top(1))
			s.stack.SetTop(1, s.stack.Top(0))
			s.stack.SetTop(0, a)

		case OpSwap:
			a := s.stack.Top(0)
			s.stack.SetTop(0, s.stack.Top(1))
			s.stack.SetTop(1, a)

		case OpJump:
			s.cursor.Jump(uint8(inst >> 8))

		case OpSetCounter:
			s.counter = dispatch.ToCounter(s.stack.Pop())

		case OpGetCounter:
			s.stack.Push(float64(s.counter))

		case OpLoop:
			if s.counter > 0 {
				s.counter--
				s.cursor.Jump(uint8(inst >> 8))
			}

		case OpLoopLe:
			b := s.stack.Pop()
			a := s.stack.Pop()
			if a <= b && s.counter > 0 {
				s.counter--
				s.cursor.Jump(uint8(inst >> 8))
			}

		case OpReturn:
			result := s.stack.Pop()
			s.stack.Clear()
			return result

		case OpNop:

		default:
			panic(fmt.Errorf("%w: %d", ErrUnknownOp, inst&0xff))
		}
	}
}
