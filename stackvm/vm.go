package stackvm

import (
	"fmt"

	"github.com/reusee/regstack/dispatch"
)

// StackSize is the number of cells shared by argument slots, locals and
// temporaries.
const StackSize = 256

type VM struct {
	strategy dispatch.Strategy
	cells    []float64
}

func NewVM(strategy dispatch.Strategy) *VM {
	return &VM{
		strategy: strategy,
		cells:    make([]float64, StackSize),
	}
}

func (v *VM) Strategy() dispatch.Strategy {
	return v.strategy
}

// Run pushes args, so slot i is args[i], and executes code from index 0
// until an OpReturn. The stack is emptied and zeroed before Run returns.
func (v *VM) Run(code []OpCode, args []float64) float64 {
	if len(args) > len(v.cells) {
		panic(fmt.Errorf("%d arguments exceed %d stack cells", len(args), len(v.cells)))
	}
	defer clear(v.cells)

	if v.strategy == dispatch.Unchecked {
		s := &state[*dispatch.UncheckedCursor[OpCode], *dispatch.UncheckedStack]{
			cursor: dispatch.NewUncheckedCursor(code),
			stack:  dispatch.NewUncheckedStack(v.cells),
		}
		return s.run(args)
	}

	s := &state[*dispatch.CheckedCursor[OpCode], *dispatch.CheckedStack]{
		cursor: dispatch.NewCheckedCursor(code),
		stack:  dispatch.NewCheckedStack(v.cells),
	}
	return s.run(args)
}
