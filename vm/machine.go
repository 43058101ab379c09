package vm

import (
	"bufio"
	"io"
	"os"

	"github.com/knuth-mix/mixvm/mix"
)

// Comparison is the machine's three-way comparison indicator.
type Comparison int

// CompareLess is the zero value: a MIX machine's comparison indicator
// starts out LESS, per original_source/mix_simulator/simulator.py, until
// the first CMPx instruction sets it.
const (
	CompareLess Comparison = iota
	CompareEqual
	CompareGreater
)

func (c Comparison) String() string {
	switch c {
	case CompareEqual:
		return "EQUAL"
	case CompareGreater:
		return "GREATER"
	default:
		return "LESS"
	}
}

// Machine is the complete MIX machine state: registers, memory, overflow
// toggle, comparison indicator, and program counter, plus the execution
// diagnostics a driver and debugger hang off it.
type Machine struct {
	A WordRegister
	X WordRegister
	I [6]IndexRegister
	J JumpRegister

	Overflow   bool
	Comparison Comparison
	PC         int

	Memory *Memory

	Halted bool

	// OutputWriter receives OUT's line-printer text; defaults to os.Stdout.
	OutputWriter io.Writer

	// stdin backs a future card-reader IN device; kept per-instance so
	// concurrent machines never share a reader.
	stdin *bufio.Reader

	Cycles uint64

	ExecutionTrace *ExecutionTrace
	RegisterTrace  *RegisterTrace
	Statistics     *PerformanceStatistics
	CodeCoverage   *CodeCoverage
}

// NewMachine returns a machine with zeroed registers and memory.
func NewMachine() *Machine {
	return &Machine{
		Memory:       NewMemory(),
		OutputWriter: os.Stdout,
		stdin:        bufio.NewReader(os.Stdin),
	}
}

// Reset clears registers, overflow, comparison and halts the machine without
// reallocating memory; PC is set to start.
func (m *Machine) Reset(start int) {
	m.A = WordRegister{}
	m.X = WordRegister{}
	for i := range m.I {
		m.I[i] = IndexRegister{}
	}
	m.J = JumpRegister{}
	m.Overflow = false
	m.Comparison = CompareLess
	m.PC = start
	m.Halted = false
	m.Cycles = 0
}

// EffectiveAddress computes M = address + rIindex, per the decoder's index
// field; index 0 means no indexing.
func (m *Machine) EffectiveAddress(in Instruction) (int, error) {
	if in.Index == 0 {
		return in.Address, nil
	}
	if in.Index < 1 || in.Index > 6 {
		return 0, &IndexRangeError{Value: int64(in.Index)}
	}
	return in.Address + int(m.I[in.Index-1].Int()), nil
}

// fieldOf splits an instruction's raw field byte into (L, R).
func fieldOf(in Instruction) (l, r int) {
	f := mix.DecodeField(mix.Byte(in.Field))
	return f.L, f.R
}
