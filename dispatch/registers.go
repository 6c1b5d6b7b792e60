package dispatch

import "unsafe"

const cellSize = int(unsafe.Sizeof(float64(0)))

// Registers is a flat register file addressed by 8-bit index.
type Registers interface {
	Get(i uint8) float64
	Set(i uint8, v float64)
}

type CheckedRegisters []float64

var _ Registers = CheckedRegisters(nil)

func (r CheckedRegisters) Get(i uint8) float64 {
	return r[i]
}

func (r CheckedRegisters) Set(i uint8, v float64) {
	r[i] = v
}

// UncheckedRegisters addresses cells relative to the first one. The backing
// slice must not be resized while the view is in use.
type UncheckedRegisters struct {
	base unsafe.Pointer
}

var _ Registers = UncheckedRegisters{}

func NewUncheckedRegisters(cells []float64) UncheckedRegisters {
	return UncheckedRegisters{
		base: unsafe.Pointer(unsafe.SliceData(cells)),
	}
}

func (r UncheckedRegisters) Get(i uint8) float64 {
	return *(*float64)(unsafe.Add(r.base, int(i)*cellSize))
}

func (r UncheckedRegisters) Set(i uint8, v float64) {
	*(*float64)(unsafe.Add(r.base, int(i)*cellSize)) = v
}
