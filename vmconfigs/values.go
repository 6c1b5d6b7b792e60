package vmconfigs

import (
	"math"

	"github.com/reusee/regstack/cmds"
	"github.com/reusee/regstack/configs"
	"github.com/reusee/regstack/dispatch"
	"github.com/reusee/regstack/oracle"
	"github.com/reusee/regstack/vars"
)

// FibMax is the largest n checked for fib.
type FibMax int

var fibMaxFlag = boundedIntFlag("-fib-max", "largest n checked for fib", math.MaxInt32)

func (Module) FibMax(
	loader configs.Loader,
) FibMax {
	return FibMax(intValue(loader, fibMaxFlag, "fib_max", oracle.FibMax))
}

// MandelLimit is the iteration limit of every mandel case. It is a whole
// number of at most math.MaxUint32 so that it survives the counter conversion.
type MandelLimit int

var mandelLimitFlag = boundedIntFlag("-mandel-limit", "iteration limit of mandel cases", math.MaxUint32)

func (Module) MandelLimit(
	loader configs.Loader,
) MandelLimit {
	return MandelLimit(intValue(loader, mandelLimitFlag, "mandel_limit", oracle.MandelLimit))
}

// intValue takes the flag if given, then the first config file setting path, then def.
func intValue(loader configs.Loader, flag *intFlag, path string, def int) int {
	if flag.set {
		return flag.value
	}
	n, ok, err := configs.Lookup[int](loader, path)
	if err != nil {
		panic(err)
	}
	if ok {
		return n
	}
	return def
}

// MandelCorpus holds the coordinate pairs of mandel cases.
type MandelCorpus [][2]float64

func (Module) MandelCorpus(
	loader configs.Loader,
) MandelCorpus {
	var fromConfig [][2]float64
	for _, pair := range configs.First[[][]float64](loader, "mandel_corpus") {
		// the schema fixes the length
		fromConfig = append(fromConfig, [2]float64{pair[0], pair[1]})
	}
	return vars.FirstNonEmpty(
		fromConfig,
		oracle.MandelCorpus,
	)
}

// Strategies lists the dispatch strategies to run, in order and without duplicates.
type Strategies []dispatch.Strategy

var strategiesFlag = cmds.Collect[dispatch.Strategy]("-strategy", "dispatch strategy to run, checked or unchecked, repeatable")

func (Module) Strategies(
	loader configs.Loader,
) Strategies {
	var fromConfig []dispatch.Strategy
	for _, name := range configs.First[[]string](loader, "strategies") {
		strategy, err := dispatch.ParseStrategy(name)
		if err != nil {
			// unreachable with the schema
			panic(err)
		}
		fromConfig = append(fromConfig, strategy)
	}

	var ret Strategies
	seen := make(map[dispatch.Strategy]bool)
	for _, strategy := range vars.FirstNonEmpty(
		*strategiesFlag,
		fromConfig,
		dispatch.Strategies(),
	) {
		if seen[strategy] {
			continue
		}
		seen[strategy] = true
		ret = append(ret, strategy)
	}
	return ret
}
