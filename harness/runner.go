package harness

import (
	"github.com/reusee/regstack/dispatch"
	"github.com/reusee/regstack/regvm"
	"github.com/reusee/regstack/stackvm"
)

// Runner holds one machine of each kind for a strategy and reuses them across runs.
type Runner struct {
	register *regvm.VM
	stack    *stackvm.VM
}

func NewRunner(strategy dispatch.Strategy) *Runner {
	return &Runner{
		register: regvm.NewVM(strategy),
		stack:    stackvm.NewVM(strategy),
	}
}

func (r *Runner) Strategy() dispatch.Strategy {
	return r.register.Strategy()
}

// Run executes the variant on the machine of its kind. Arity is the caller's
// contract, see Variant.Verify.
func (r *Runner) Run(v Variant, args []float64) float64 {
	if v.Machine == MachineRegister {
		return r.register.Run(v.Register, args)
	}
	return r.stack.Run(v.Stack, args)
}
