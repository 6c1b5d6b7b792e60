package regvm

import (
	"testing"

	"github.com/reusee/regstack/dispatch"
)

func benchmarkRun(b *testing.B, code []OpCode, args []float64) {
	for _, strategy := range dispatch.Strategies() {
		b.Run(strategy.String(), func(b *testing.B) {
			vm := NewVM(strategy)
			for b.Loop() {
				vm.Run(code, args)
			}
		})
	}
}

func BenchmarkVM_Fib(b *testing.B) {
	benchmarkRun(b, Fib, []float64{1000})
}

func BenchmarkVM_Mandel(b *testing.B) {
	// inside the set, runs to the limit
	benchmarkRun(b, Mandel, []float64{-0.1139783605452167, 0.0038380988757436008, 10000})
}

func BenchmarkVM_AddChain(b *testing.B) {
	args := make([]float64, 16)
	for i := range args {
		args[i] = float64(i)
	}
	benchmarkRun(b, AddChain, args)
}

func BenchmarkVM_AddPairs(b *testing.B) {
	args := make([]float64, 16)
	for i := range args {
		args[i] = float64(i)
	}
	benchmarkRun(b, AddPairs, args)
}
