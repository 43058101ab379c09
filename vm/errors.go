package vm

import (
	"fmt"

	"github.com/knuth-mix/mixvm/opcode"
)

// ExecutionError wraps a runtime fault with the program counter where it
// occurred, the way a debugger needs to report it without unwinding a stack
// trace MIX doesn't have.
type ExecutionError struct {
	PC   int
	Code opcode.Code
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("mix: at %04d: %s", e.PC, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// UndefinedInstructionError reports an opcode/field combination with no
// defined meaning.
type UndefinedInstructionError struct {
	Code  byte
	Field byte
}

func (e *UndefinedInstructionError) Error() string {
	return fmt.Sprintf("mix: undefined instruction (code=%d, field=%d)", e.Code, e.Field)
}

// DivideByZeroError reports DIV with a zero divisor.
type DivideByZeroError struct{}

func (e *DivideByZeroError) Error() string { return "mix: division by zero" }

// IndexRangeError reports an instruction index field outside 0..6.
type IndexRangeError struct {
	Value int64
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("mix: index field %d outside 0..6", e.Value)
}

// FieldRangeError reports a field spec with L > R or R > 5.
type FieldRangeError struct {
	L, R int
}

func (e *FieldRangeError) Error() string {
	return fmt.Sprintf("mix: invalid field (%d:%d)", e.L, e.R)
}

// HaltError is returned by Step to signal a normal HLT stop; callers such as
// Run treat it as termination rather than failure.
type HaltError struct{}

func (e *HaltError) Error() string { return "mix: halted" }

// IndexLoadWidthError reports an LDi/LDiN field wider than the 2 bytes an
// index register can hold.
type IndexLoadWidthError struct {
	L, R int
}

func (e *IndexLoadWidthError) Error() string {
	return fmt.Sprintf("mix: field (%d:%d) too wide to load into an index register", e.L, e.R)
}
