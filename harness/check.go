package harness

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/reusee/regstack/dispatch"
	"github.com/reusee/regstack/logs"
	"github.com/reusee/regstack/vmconfigs"
)

var ErrMismatch = errors.New("result mismatch")

// Case is one variant run under one strategy.
type Case struct {
	Variant  Variant
	Strategy dispatch.Strategy
}

func (c Case) String() string {
	return c.Variant.Name + "@" + c.Strategy.String()
}

// Cases pairs every variant with every strategy, strategies varying fastest.
func Cases(strategies []dispatch.Strategy) []Case {
	var ret []Case
	for _, v := range variants {
		for _, strategy := range strategies {
			ret = append(ret, Case{
				Variant:  v,
				Strategy: strategy,
			})
		}
	}
	return ret
}

type Result struct {
	Case    Case
	Inputs  int
	Elapsed time.Duration
}

type Mismatch struct {
	Case     Case
	Args     []float64
	Got      float64
	Expected float64
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("%v%v: got %v, expected %v", m.Case, m.Args, m.Got, m.Expected)
}

type Report struct {
	Results    []Result
	Mismatches []Mismatch
}

func (r Report) OK() bool {
	return len(r.Mismatches) == 0
}

func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	errs := []error{ErrMismatch}
	for i, m := range r.Mismatches {
		if i == maxReportedMismatches {
			errs = append(errs, fmt.Errorf("and %d more", len(r.Mismatches)-i))
			break
		}
		errs = append(errs, m)
	}
	return errors.Join(errs...)
}

const maxReportedMismatches = 10

// Check runs every case against the reference and reports differences by bit pattern.
type Check func(ctx context.Context) (Report, error)

func (Module) Check(
	logger logs.Logger,
	newSpan logs.NewSpan,
	inputs Inputs,
	strategies vmconfigs.Strategies,
) Check {
	return func(ctx context.Context) (report Report, err error) {
		ctx, _ = newSpan(ctx, "", "check")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		// unchecked runs assume verified programs
		for _, v := range variants {
			if err := v.Verify(); err != nil {
				return report, err
			}
		}

		type expectation struct {
			args     [][]float64
			expected []float64
		}
		expectations := make(map[Algorithm]expectation)
		for _, v := range variants {
			if _, ok := expectations[v.Algorithm]; ok {
				continue
			}
			args := inputs(v.Algorithm)
			expected := make([]float64, len(args))
			for i, a := range args {
				expected[i] = v.Algorithm.Reference(a)
			}
			expectations[v.Algorithm] = expectation{
				args:     args,
				expected: expected,
			}
		}

		for _, c := range Cases(strategies) {
			if err := ctx.Err(); err != nil {
				return report, err
			}

			e := expectations[c.Variant.Algorithm]
			runner := NewRunner(c.Strategy)
			mismatches := 0
			start := time.Now()
			for i, args := range e.args {
				got := runner.Run(c.Variant, args)
				if math.Float64bits(got) != math.Float64bits(e.expected[i]) {
					mismatches++
					report.Mismatches = append(report.Mismatches, Mismatch{
						Case:     c,
						Args:     args,
						Got:      got,
						Expected: e.expected[i],
					})
				}
			}
			elapsed := time.Since(start)

			report.Results = append(report.Results, Result{
				Case:    c,
				Inputs:  len(e.args),
				Elapsed: elapsed,
			})
			if mismatches > 0 {
				logger.ErrorContext(ctx, "case",
					"program", c.Variant.Name,
					"strategy", c.Strategy,
					"inputs", len(e.args),
					"mismatches", mismatches,
					"elapsed", elapsed,
				)
			} else {
				logger.InfoContext(ctx, "case",
					"program", c.Variant.Name,
					"strategy", c.Strategy,
					"inputs", len(e.args),
					"elapsed", elapsed,
				)
			}
		}

		return report, report.Err()
	}
}
