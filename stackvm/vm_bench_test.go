package stackvm

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

func BenchmarkVM_FibSmart(b *testing.B) {
	benchmarkRun(b, FibSmart, []float64{1000})
}

func BenchmarkVM_FibNaive(b *testing.B) {
	benchmarkRun(b, FibNaive, []float64{1000})
}

func BenchmarkVM_Mandel(b *testing.B) {
	args := []float64{-0.1139783605452167, 0.0038380988757436008, 10000}
	for name, code := range mandelPrograms {
		b.Run(name, func(b *testing.B) {
			benchmarkRun(b, code, args)
		})
	}
}
