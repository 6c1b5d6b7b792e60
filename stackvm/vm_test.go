package stackvm

import (
	"math"
	"testing"

	"github.com/reusee/regstack/dispatch"
	"github.com/reusee/regstack/oracle"
)

var mandelPrograms = map[string][]OpCode{
	"smart":           MandelSmart,
	"naive":           MandelNaive,
	"smart nops slow": MandelSmartNopsSlow,
	"smart nops same": MandelSmartNopsSame,
	"smart no dup":    MandelSmartNoDup,
}

func TestVM_Fib(t *testing.T) {
	for _, strategy := range dispatch.Strategies() {
		vm := NewVM(strategy)
		for i := range oracle.FibMax + 1 {
			n := float64(i)
			want := oracle.Fib(n)
			if got := vm.Run(FibSmart, []float64{n}); got != want {
				t.Fatalf("%v: smart fib(%d): got %v, want %v", strategy, i, got, want)
			}
			if got := vm.Run(FibNaive, []float64{n}); got != want {
				t.Fatalf("%v: naive fib(%d): got %v, want %v", strategy, i, got, want)
			}
		}
	}
}

func TestVM_Mandel(t *testing.T) {
	for name, code := range mandelPrograms {
		for _, strategy := range dispatch.Strategies() {
			vm := NewVM(strategy)
			for _, c := range oracle.MandelCorpus {
				got := vm.Run(code, []float64{c[0], c[1], oracle.MandelLimit})
				if want := oracle.Mandel(c[0], c[1], oracle.MandelLimit); got != want {
					t.Fatalf("%s %v: mandel(%v, %v): got %v, want %v", name, strategy, c[0], c[1], got, want)
				}
			}
		}
	}
}

func TestVM_StrategyInvariance(t *testing.T) {
	checked := NewVM(dispatch.Checked)
	unchecked := NewVM(dispatch.Unchecked)
	for name, code := range mandelPrograms {
		for _, c := range oracle.MandelCorpus[:32] {
			args := []float64{c[0], c[1], 500}
			a := checked.Run(code, args)
			b := unchecked.Run(code, args)
			if math.Float64bits(a) != math.Float64bits(b) {
				t.Fatalf("%s: got %v and %v", name, a, b)
			}
		}
	}
}

func TestVM_StateIsolation(t *testing.T) {
	for _, strategy := range dispatch.Strategies() {
		vm := NewVM(strategy)
		vm.Run(FibSmart, []float64{5})
		got := vm.Run(FibSmart, []float64{3})
		want := NewVM(strategy).Run(FibSmart, []float64{3})
		if got != want {
			t.Fatalf("%v: got %v, want %v", strategy, got, want)
		}

		vm.Run(MandelNaive, []float64{0.1, 0.2, 10})
		for i, v := range vm.cells {
			if v != 0 {
				t.Fatalf("%v: cell %d = %v after run", strategy, i, v)
			}
		}
	}
}

func TestVM_StackOps(t *testing.T) {
	for _, c := range []struct {
		name string
		code []OpCode
		args []float64
		want float64
	}{
		{
			"rot brings third to top",
			[]OpCode{OpRot, OpReturn},
			[]float64{1, 2, 3},
			1,
		},
		{
			"rot keeps order below",
			[]OpCode{OpRot, OpPop, OpSub, OpReturn},
			[]float64{1, 2, 3},
			-1, // 2 - 3
		},
		{
			"swap",
			[]OpCode{OpSwap, OpSub, OpReturn},
			[]float64{10, 4},
			-6,
		},
		{
			"dup",
			[]OpCode{OpDup, OpMul, OpReturn},
			[]float64{7},
			49,
		},
		{
			"sub order",
			[]OpCode{OpSub, OpReturn},
			[]float64{10, 4},
			6,
		},
		{
			"store pops then writes",
			[]OpCode{OpLoadInt.WithInt(-5), OpStore.With(0), OpReturn},
			[]float64{1, 2},
			2,
		},
		{
			"load slot",
			[]OpCode{OpLoad.With(0), OpReturn},
			[]float64{1, 2},
			1,
		},
		{
			"nop",
			[]OpCode{OpNop, OpNop, OpLoadInt.WithInt(-128), OpReturn},
			nil,
			-128,
		},
		{
			"counter round trip",
			[]OpCode{OpSetCounter, OpGetCounter, OpReturn},
			[]float64{12.5},
			12,
		},
	} {
		for _, strategy := range dispatch.Strategies() {
			if got := NewVM(strategy).Run(c.code, c.args); got != c.want {
				t.Fatalf("%s %v: got %v, want %v", c.name, strategy, got, c.want)
			}
		}
	}
}

func TestVM_LoopWithZeroCounter(t *testing.T) {
	code := []OpCode{
		OpLoadInt.WithInt(0),
		OpSetCounter,
		OpLoadInt.WithInt(0),
		// 3: body
		OpLoadInt.WithInt(1),
		OpAdd,
		// 5
		OpLoop.With(3),
		OpLoadInt.WithInt(1),
		OpLoadInt.WithInt(1),
		OpLoopLe.With(3),
		OpReturn,
	}
	for _, strategy := range dispatch.Strategies() {
		if got := NewVM(strategy).Run(code, nil); got != 1 {
			t.Fatalf("%v: got %v", strategy, got)
		}
	}
}

func TestVM_CheckedUnderflow(t *testing.T) {
	vm := NewVM(dispatch.Checked)
	func() {
		defer func() {
			if p := recover(); p == nil {
				t.Fatal("should panic")
			}
		}()
		vm.Run([]OpCode{OpAdd, OpReturn}, []float64{1})
	}()
	for i, v := range vm.cells {
		if v != 0 {
			t.Fatalf("cell %d = %v", i, v)
		}
	}
	if got := vm.Run(FibSmart, []float64{10}); got != 55 {
		t.Fatalf("got %v", got)
	}
}

func TestVM_CheckedSlotAboveDepth(t *testing.T) {
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	NewVM(dispatch.Checked).Run([]OpCode{OpLoad.With(3), OpReturn}, []float64{1})
}

func TestVM_TooManyArgs(t *testing.T) {
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	NewVM(dispatch.Unchecked).Run(FibSmart, make([]float64, StackSize+1))
}

func TestVM_UnknownOp(t *testing.T) {
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	NewVM(dispatch.Checked).Run([]OpCode{0xfe}, nil)
}
