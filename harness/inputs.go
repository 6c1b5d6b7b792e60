package harness

import (
	"github.com/reusee/regstack/vmconfigs"
)

// Inputs returns the argument lists an algorithm is checked on.
type Inputs func(algorithm Algorithm) [][]float64

func (Module) Inputs(
	fibMax vmconfigs.FibMax,
	limit vmconfigs.MandelLimit,
	corpus vmconfigs.MandelCorpus,
) Inputs {
	return func(algorithm Algorithm) (ret [][]float64) {
		switch algorithm {

		case AlgorithmFib:
			for n := range int(fibMax) + 1 {
				ret = append(ret, []float64{float64(n)})
			}

		case AlgorithmMandel:
			for _, c := range corpus {
				ret = append(ret, []float64{c[0], c[1], float64(limit)})
			}

		case AlgorithmSum:
			args := make([]float64, SumArity)
			for i := range args {
				args[i] = float64(i)
			}
			ret = append(ret, args)

		}
		return
	}
}
