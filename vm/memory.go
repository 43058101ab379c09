package vm

import (
	"fmt"

	"github.com/knuth-mix/mixvm/mix"
)

// NumCells is the number of addressable memory cells, 0..3999, per the
// fixed-size MIX memory model (no paging, no segments).
const NumCells = 4000

// Memory is a flat array of MIX words, grounded on
// original_source/mix_simulator/memory.py's bounds-checked cell list.
type Memory struct {
	cells [NumCells]mix.Word
}

// NewMemory returns memory initialized to all +0 words.
func NewMemory() *Memory {
	return &Memory{}
}

// AddressError reports an out-of-range memory access.
type AddressError struct {
	Address int
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("mix: memory address %d out of range 0..%d", e.Address, NumCells-1)
}

// Load returns the word stored at cell, or an AddressError if out of range.
func (m *Memory) Load(cell int) (mix.Word, error) {
	if cell < 0 || cell >= NumCells {
		return mix.Word{}, &AddressError{Address: cell}
	}
	return m.cells[cell], nil
}

// Store writes w into cell, or returns an AddressError if out of range.
func (m *Memory) Store(cell int, w mix.Word) error {
	if cell < 0 || cell >= NumCells {
		return &AddressError{Address: cell}
	}
	m.cells[cell] = w
	return nil
}

// StoreFields writes only the data bytes selected by field (L:R) into cell,
// leaving the rest of the destination word untouched -- the memory-side half
// of every STx instruction's field-selected write.
func (m *Memory) StoreFields(cell int, l, r int, sign *bool, data []mix.Byte) error {
	if cell < 0 || cell >= NumCells {
		return &AddressError{Address: cell}
	}
	w := &m.cells[cell]
	if sign != nil {
		w.Sign = *sign
	}
	lo := l
	if lo < 1 {
		lo = 1
	}
	for i, b := range data {
		if err := w.Update(lo+i, b); err != nil {
			return err
		}
	}
	return nil
}
