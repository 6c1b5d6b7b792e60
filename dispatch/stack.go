package dispatch

import "unsafe"

// Stack is an evaluation stack whose lower cells double as indexed slots.
// Top(0) is the top cell, Slot(0) the bottom one.
type Stack interface {
	Push(v float64)
	Pop() float64
	Drop()
	Top(i int) float64
	SetTop(i int, v float64)
	Slot(i uint8) float64
	SetSlot(i uint8, v float64)
	Depth() int
	Clear()
}

type CheckedStack struct {
	cells []float64
	top   int
}

var _ Stack = new(CheckedStack)

func NewCheckedStack(cells []float64) *CheckedStack {
	return &CheckedStack{
		cells: cells,
	}
}

func (s *CheckedStack) Push(v float64) {
	s.cells[s.top] = v
	s.top++
}

func (s *CheckedStack) Pop() float64 {
	v := s.cells[s.top-1]
	s.top--
	return v
}

func (s *CheckedStack) Drop() {
	s.Pop()
}

func (s *CheckedStack) Top(i int) float64 {
	return s.cells[:s.top][s.top-1-i]
}

func (s *CheckedStack) SetTop(i int, v float64) {
	s.cells[:s.top][s.top-1-i] = v
}

// slots above the current depth are out of range
func (s *CheckedStack) Slot(i uint8) float64 {
	return s.cells[:s.top][i]
}

func (s *CheckedStack) SetSlot(i uint8, v float64) {
	s.cells[:s.top][i] = v
}

func (s *CheckedStack) Depth() int {
	return s.top
}

func (s *CheckedStack) Clear() {
	s.top = 0
}

// UncheckedStack keeps a base pointer and a top index into storage it does
// not own. Nothing stops it from running past either end.
type UncheckedStack struct {
	base unsafe.Pointer
	top  int
}

var _ Stack = new(UncheckedStack)

func NewUncheckedStack(cells []float64) *UncheckedStack {
	return &UncheckedStack{
		base: unsafe.Pointer(unsafe.SliceData(cells)),
	}
}

func (s *UncheckedStack) at(i int) *float64 {
	return (*float64)(unsafe.Add(s.base, i*cellSize))
}

func (s *UncheckedStack) Push(v float64) {
	*s.at(s.top) = v
	s.top++
}

func (s *UncheckedStack) Pop() float64 {
	s.top--
	return *s.at(s.top)
}

func (s *UncheckedStack) Drop() {
	s.top--
}

func (s *UncheckedStack) Top(i int) float64 {
	return *s.at(s.top - 1 - i)
}

func (s *UncheckedStack) SetTop(i int, v float64) {
	*s.at(s.top - 1 - i) = v
}

func (s *UncheckedStack) Slot(i uint8) float64 {
	return *s.at(int(i))
}

func (s *UncheckedStack) SetSlot(i uint8, v float64) {
	*s.at(int(i)) = v
}

func (s *UncheckedStack) Depth() int {
	return s.top
}

func (s *UncheckedStack) Clear() {
	s.top = 0
}
