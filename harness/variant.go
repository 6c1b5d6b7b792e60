package harness

import (
	"errors"
	"fmt"
	"slices"

	"github.com/reusee/regstack/oracle"
	"github.com/reusee/regstack/regvm"
	"github.com/reusee/regstack/stackvm"
)

// Algorithm names what a program computes, and so which reference it is held to.
type Algorithm string

const (
	AlgorithmFib    Algorithm = "fib"
	AlgorithmMandel Algorithm = "mandel"
	AlgorithmSum    Algorithm = "sum"
)

// SumArity is the number of values summed by the sum programs.
const SumArity = 16

func (a Algorithm) Arity() int {
	switch a {
	case AlgorithmFib:
		return 1
	case AlgorithmMandel:
		return 3
	case AlgorithmSum:
		return SumArity
	}
	panic(fmt.Errorf("unknown algorithm: %s", string(a)))
}

// Reference computes the expected result with the scalar implementation.
func (a Algorithm) Reference(args []float64) float64 {
	switch a {
	case AlgorithmFib:
		return oracle.Fib(args[0])
	case AlgorithmMandel:
		return oracle.Mandel(args[0], args[1], args[2])
	case AlgorithmSum:
		return oracle.Sum(args)
	}
	panic(fmt.Errorf("unknown algorithm: %s", string(a)))
}

type Machine string

const (
	MachineRegister Machine = "register"
	MachineStack    Machine = "stack"
)

// Variant is one program of the corpus. Exactly one of Register and Stack is set, matching Machine.
type Variant struct {
	Name      string
	Algorithm Algorithm
	Machine   Machine
	Register  []regvm.OpCode
	Stack     []stackvm.OpCode
}

func (v Variant) String() string {
	return v.Name
}

// Verify runs the static verifier of the variant's machine.
func (v Variant) Verify() error {
	var err error
	switch v.Machine {
	case MachineRegister:
		err = regvm.Verify(v.Register)
	case MachineStack:
		err = stackvm.Verify(v.Stack, v.Algorithm.Arity())
	default:
		err = fmt.Errorf("unknown machine: %s", string(v.Machine))
	}
	if err != nil {
		return fmt.Errorf("verify %s: %w", v.Name, err)
	}
	return nil
}

func (v Variant) Disassemble() string {
	if v.Machine == MachineRegister {
		return regvm.Disassemble(v.Register)
	}
	return stackvm.Disassemble(v.Stack)
}

var ErrUnknownProgram = errors.New("unknown program")

var variants = []Variant{
	{Name: "register/fib", Algorithm: AlgorithmFib, Machine: MachineRegister, Register: regvm.Fib},
	{Name: "register/mandel", Algorithm: AlgorithmMandel, Machine: MachineRegister, Register: regvm.Mandel},
	{Name: "register/add-chain", Algorithm: AlgorithmSum, Machine: MachineRegister, Register: regvm.AddChain},
	{Name: "register/add-pairs", Algorithm: AlgorithmSum, Machine: MachineRegister, Register: regvm.AddPairs},
	{Name: "stack/fib-smart", Algorithm: AlgorithmFib, Machine: MachineStack, Stack: stackvm.FibSmart},
	{Name: "stack/fib-naive", Algorithm: AlgorithmFib, Machine: MachineStack, Stack: stackvm.FibNaive},
	{Name: "stack/mandel-smart", Algorithm: AlgorithmMandel, Machine: MachineStack, Stack: stackvm.MandelSmart},
	{Name: "stack/mandel-naive", Algorithm: AlgorithmMandel, Machine: MachineStack, Stack: stackvm.MandelNaive},
	{Name: "stack/mandel-smart-nops-slow", Algorithm: AlgorithmMandel, Machine: MachineStack, Stack: stackvm.MandelSmartNopsSlow},
	{Name: "stack/mandel-smart-nops-same", Algorithm: AlgorithmMandel, Machine: MachineStack, Stack: stackvm.MandelSmartNopsSame},
	{Name: "stack/mandel-smart-no-dup", Algorithm: AlgorithmMandel, Machine: MachineStack, Stack: stackvm.MandelSmartNoDup},
}

// Variants returns the whole program corpus.
func Variants() []Variant {
	return slices.Clone(variants)
}

func Lookup(name string) (Variant, error) {
	for _, v := range variants {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%s: %w", name, ErrUnknownProgram)
}
