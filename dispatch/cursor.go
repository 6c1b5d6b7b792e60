package dispatch

import "unsafe"

// Cursor fetches instructions of type I from a program.
type Cursor[I any] interface {
	Next() I
	Jump(target uint8)
}

type CheckedCursor[I any] struct {
	code []I
	pc   int
}

var _ Cursor[uint32] = new(CheckedCursor[uint32])

func NewCheckedCursor[I any](code []I) *CheckedCursor[I] {
	return &CheckedCursor[I]{
		code: code,
	}
}

func (c *CheckedCursor[I]) Next() I {
	inst := c.code[c.pc]
	c.pc++
	return inst
}

func (c *CheckedCursor[I]) Jump(target uint8) {
	c.pc = int(target)
}

// UncheckedCursor reads instructions at base + pc*size without looking at the
// program length. The program must not be modified while the cursor is live.
type UncheckedCursor[I any] struct {
	base unsafe.Pointer
	size uintptr
	pc   uintptr
}

var _ Cursor[uint32] = new(UncheckedCursor[uint32])

func NewUncheckedCursor[I any](code []I) *UncheckedCursor[I] {
	var zero I
	return &UncheckedCursor[I]{
		base: unsafe.Pointer(unsafe.SliceData(code)),
		size: unsafe.Sizeof(zero),
	}
}

func (c *UncheckedCursor[I]) Next() I {
	inst := *(*I)(unsafe.Add(c.base, c.pc*c.size))
	c.pc++
	return inst
}

func (c *UncheckedCursor[I]) Jump(target uint8) {
	c.pc = uintptr(target)
}
