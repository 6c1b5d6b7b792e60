package regvm

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOp        = errors.New("unknown opcode")
	ErrTargetOutOfRange = errors.New("jump target out of range")
	ErrFallsOffEnd      = errors.New("control falls off the end")
	ErrNoReturn         = errors.New("no reachable return")
)

// Verify checks that code is well-formed: every opcode is known, every
// target is inside the program, no instruction falls through past the last
// one, and a return is reachable from the entry. Register operands are 8-bit
// and always inside the 256-cell file.
func Verify(code []OpCode) error {
	if len(code) == 0 {
		return fmt.Errorf("empty program: %w", ErrNoReturn)
	}

	var errs []error
	for pc, inst := range code {
		switch inst.Op() {
		case OpLoadInt, OpCopy, OpAdd, OpSub, OpMul,
			OpSetCounter, OpGetCounter, OpReturn:
		case OpJump, OpLoop, OpLoopLe:
			if int(inst.A()) >= len(code) {
				errs = append(errs, fmt.Errorf("pc %d: %v: %w", pc, inst, ErrTargetOutOfRange))
			}
		default:
			errs = append(errs, fmt.Errorf("pc %d: %d: %w", pc, inst.Op(), ErrUnknownOp))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	seen := make([]bool, len(code))
	work := []int{0}
	returns := false
	for len(work) > 0 {
		pc := work[len(work)-1]
		work = work[:len(work)-1]
		if seen[pc] {
			continue
		}
		seen[pc] = true

		inst := code[pc]
		next := pc + 1
		switch inst.Op() {
		case OpReturn:
			returns = true
			continue
		case OpJump:
			work = append(work, int(inst.A()))
			continue
		case OpLoop, OpLoopLe:
			work = append(work, int(inst.A()))
		}
		if next >= len(code) {
			errs = append(errs, fmt.Errorf("pc %d: %v: %w", pc, inst, ErrFallsOffEnd))
			continue
		}
		work = append(work, next)
	}
	if !returns {
		errs = append(errs, ErrNoReturn)
	}

	return errors.Join(errs...)
}
