package stackvm

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOp        = errors.New("unknown opcode")
	ErrTargetOutOfRange = errors.New("jump target out of range")
	ErrFallsOffEnd      = errors.New("control falls off the end")
	ErrNoReturn         = errors.New("no reachable return")
	ErrUnderflow        = errors.New("stack underflow")
	ErrOverflow         = errors.New("stack overflow")
	ErrSlotOutOfRange   = errors.New("slot above stack depth")
	ErrDepthMismatch    = errors.New("inconsistent stack depth")
)

type effect struct {
	pops   int
	pushes int
}

var effects = map[OpCode]effect{
	OpLoad:       {0, 1},
	OpStore:      {1, 0},
	OpLoadInt:    {0, 1},
	OpAdd:        {2, 1},
	OpSub:        {2, 1},
	OpMul:        {2, 1},
	OpPop:        {1, 0},
	OpDup:        {1, 2},
	OpRot:        {3, 3},
	OpSwap:       {2, 2},
	OpJump:       {0, 0},
	OpSetCounter: {1, 0},
	OpGetCounter: {0, 1},
	OpLoop:       {0, 0},
	OpLoopLe:     {2, 0},
	OpReturn:     {1, 0},
	OpNop:        {0, 0},
}

// Verify checks that code is well-formed when started with numArgs
// arguments: opcodes and targets are valid, control never falls off the end,
// a return is reachable, and every reachable instruction sees the same stack
// depth on all paths, enough operands, slots below the depth and no more than
// StackSize cells.
func Verify(code []OpCode, numArgs int) error {
	if len(code) == 0 {
		return fmt.Errorf("empty program: %w", ErrNoReturn)
	}
	if numArgs > StackSize {
		return fmt.Errorf("%d arguments: %w", numArgs, ErrOverflow)
	}

	var errs []error
	for pc, inst := range code {
		if _, ok := effects[inst.Op()]; !ok {
			errs = append(errs, fmt.Errorf("pc %d: %d: %w", pc, inst.Op(), ErrUnknownOp))
			continue
		}
		switch inst.Op() {
		case OpJump, OpLoop, OpLoopLe:
			if int(inst.Arg()) >= len(code) {
				errs = append(errs, fmt.Errorf("pc %d: %v: %w", pc, inst, ErrTargetOutOfRange))
			}
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	// depth before each instruction, -1 when not reached yet
	depths := make([]int, len(code))
	for i := range depths {
		depths[i] = -1
	}
	var work []int
	flow := func(from, to, depth int) {
		if to >= len(code) {
			errs = append(errs, fmt.Errorf("pc %d: %v: %w", from, code[from], ErrFallsOffEnd))
			return
		}
		switch d := depths[to]; {
		case d < 0:
			depths[to] = depth
			work = append(work, to)
		case d != depth:
			errs = append(errs, fmt.Errorf("pc %d: depth %d and %d: %w", to, d, depth, ErrDepthMismatch))
		}
	}

	depths[0] = numArgs
	work = append(work, 0)
	returns := false
	for len(work) > 0 {
		pc := work[len(work)-1]
		work = work[:len(work)-1]
		inst := code[pc]
		depth := depths[pc]
		eff := effects[inst.Op()]

		if depth < eff.pops {
			errs = append(errs, fmt.Errorf("pc %d: %v at depth %d: %w", pc, inst, depth, ErrUnderflow))
			continue
		}
		switch inst.Op() {
		case OpLoad:
			if int(inst.Arg()) >= depth {
				errs = append(errs, fmt.Errorf("pc %d: %v at depth %d: %w", pc, inst, depth, ErrSlotOutOfRange))
				continue
			}
		case OpStore:
			// the value is popped before the slot is written
			if int(inst.Arg()) >= depth-1 {
				errs = append(errs, fmt.Errorf("pc %d: %v at depth %d: %w", pc, inst, depth, ErrSlotOutOfRange))
				continue
			}
		}
		after := depth - eff.pops + eff.pushes
		if after > StackSize {
			errs = append(errs, fmt.Errorf("pc %d: %v at depth %d: %w", pc, inst, depth, ErrOverflow))
			continue
		}

		switch inst.Op() {
		case OpReturn:
			returns = true
		case OpJump:
			flow(pc, int(inst.Arg()), after)
		case OpLoop, OpLoopLe:
			flow(pc, int(inst.Arg()), after)
			flow(pc, pc+1, after)
		default:
			flow(pc, pc+1, after)
		}
	}
	if !returns {
		errs = append(errs, ErrNoReturn)
	}

	return errors.Join(errs...)
}
