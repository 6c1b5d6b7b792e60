package dispatch

import "testing"

func TestRegisters(t *testing.T) {
	for _, regs := range []func([]float64) Registers{
		func(cells []float64) Registers {
			return CheckedRegisters(cells)
		},
		func(cells []float64) Registers {
			return NewUncheckedRegisters(cells)
		},
	} {
		cells := make([]float64, 256)
		r := regs(cells)
		r.Set(0, 1.5)
		r.Set(255, -2)
		if r.Get(0) != 1.5 {
			t.Fatalf("got %v", r.Get(0))
		}
		if r.Get(255) != -2 {
			t.Fatalf("got %v", r.Get(255))
		}
		if cells[0] != 1.5 || cells[255] != -2 {
			t.Fatalf("%T does not write through", r)
		}
	}
}

func TestCheckedRegistersOutOfRange(t *testing.T) {
	r := CheckedRegisters(make([]float64, 128))
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	r.Set(200, 1)
}
