package harness

import (
	"errors"
	"fmt"

	"github.com/reusee/regstack/dispatch"
	"github.com/reusee/regstack/logs"
)

var ErrArity = errors.New("wrong number of arguments")

// Run verifies and runs the named program once.
type Run func(name string, strategy dispatch.Strategy, args []float64) (float64, error)

func (Module) Run(
	logger logs.Logger,
) Run {
	return func(name string, strategy dispatch.Strategy, args []float64) (float64, error) {
		v, err := Lookup(name)
		if err != nil {
			return 0, err
		}
		if n := v.Algorithm.Arity(); len(args) != n {
			return 0, fmt.Errorf("%s takes %d arguments, got %d: %w", name, n, len(args), ErrArity)
		}
		if err := v.Verify(); err != nil {
			return 0, err
		}
		switch strategy {
		case 0:
			strategy = dispatch.Checked
		case dispatch.Checked, dispatch.Unchecked:
		default:
			return 0, fmt.Errorf("%v: %w", strategy, dispatch.ErrUnknownStrategy)
		}
		result := NewRunner(strategy).Run(v, args)
		logger.Debug("run",
			"program", name,
			"strategy", strategy,
			"args", args,
			"result", result,
		)
		return result, nil
	}
}
