package regvm

import "github.com/reusee/regstack/dispatch"

const NumRegisters = 256

type VM struct {
	strategy  dispatch.Strategy
	registers []float64
}

func NewVM(strategy dispatch.Strategy) *VM {
	return &VM{
		strategy:  strategy,
		registers: make([]float64, NumRegisters),
	}
}

func (v *VM) Strategy() dispatch.Strategy {
	return v.strategy
}

// Run copies args into registers 0..len(args) and executes code from index 0
// until an OpReturn. The register file is zeroed before Run returns.
func (v *VM) Run(code []OpCode, args []float64) float64 {
	defer clear(v.registers)
	copy(v.registers[:len(args)], args)

	if v.strategy == dispatch.Unchecked {
		s := &state[*dispatch.UncheckedCursor[OpCode], dispatch.UncheckedRegisters]{
			cursor: dispatch.NewUncheckedCursor(code),
			regs:   dispatch.NewUncheckedRegisters(v.registers),
		}
		return s.run()
	}

	s := &state[*dispatch.CheckedCursor[OpCode], dispatch.CheckedRegisters]{
		cursor: dispatch.NewCheckedCursor(code),
		regs:   dispatch.CheckedRegisters(v.registers),
	}
	return s.run()
}
