package encoder

import (
	"errors"
	"testing"

	"github.com/knuth-mix/mixvm/mix"
	"github.com/knuth-mix/mixvm/opcode"
)

func TestInstruction_PositiveAddress(t *testing.T) {
	w := Instruction(2000, 2, 3, opcode.LDA)
	gotSign, gotAddr := w.Sign, w.B[:2]
	if gotSign {
		t.Errorf("Sign = true, want false for positive address")
	}
	addr := mix.BytesToInt(gotAddr, false)
	if addr != 2000 {
		t.Errorf("address = %d, want 2000", addr)
	}
	if w.B[2] != 2 {
		t.Errorf("index byte = %d, want 2", w.B[2])
	}
	if w.B[3] != 3 {
		t.Errorf("field byte = %d, want 3", w.B[3])
	}
	if opcode.Code(w.B[4]) != opcode.LDA {
		t.Errorf("opcode byte = %d, want %d", w.B[4], opcode.LDA)
	}
}

func TestInstruction_NegativeAddress(t *testing.T) {
	w := Instruction(-2000, 0, 5, opcode.STA)
	if !w.Sign {
		t.Errorf("Sign = false, want true for negative address")
	}
	addr := mix.BytesToInt(w.B[:2], true)
	if addr != -2000 {
		t.Errorf("address = %d, want -2000", addr)
	}
}

func TestInstruction_ZeroAddress(t *testing.T) {
	w := Instruction(0, 0, 2, opcode.CONV)
	if w.Sign {
		t.Error("Sign = true, want false for zero address")
	}
	if w.B[0] != 0 || w.B[1] != 0 {
		t.Errorf("address bytes = %d,%d, want 0,0", w.B[0], w.B[1])
	}
}

func TestInstruction_SmallAddressFitsOneByte(t *testing.T) {
	w := Instruction(5, 1, 0, opcode.LDX)
	if w.B[0] != 0 {
		t.Errorf("high address byte = %d, want 0", w.B[0])
	}
	if w.B[1] != 5 {
		t.Errorf("low address byte = %d, want 5", w.B[1])
	}
	if w.B[2] != 1 {
		t.Errorf("index byte = %d, want 1", w.B[2])
	}
}

func TestInstruction_IndexAndField(t *testing.T) {
	w := Instruction(1000, 6, 45, opcode.ATA)
	if w.B[2] != 6 {
		t.Errorf("index byte = %d, want 6", w.B[2])
	}
	if w.B[3] != 45 {
		t.Errorf("field byte = %d, want 45", w.B[3])
	}
}

func TestConstant_Positive(t *testing.T) {
	w := Constant(12345)
	if w.Sign {
		t.Error("Sign = true, want false")
	}
	if w.Int() != 12345 {
		t.Errorf("Int() = %d, want 12345", w.Int())
	}
}

func TestConstant_Negative(t *testing.T) {
	w := Constant(-99)
	if !w.Sign {
		t.Error("Sign = false, want true")
	}
	if w.Int() != -99 {
		t.Errorf("Int() = %d, want -99", w.Int())
	}
}

func TestConstant_Zero(t *testing.T) {
	w := Constant(0)
	if w.Sign {
		t.Error("Sign = true, want false for zero")
	}
	if w.Int() != 0 {
		t.Errorf("Int() = %d, want 0", w.Int())
	}
}

func TestConstant_TruncatesOverflow(t *testing.T) {
	// mix.MaxWordMagnitude is the largest representable magnitude; one more
	// than that should truncate to fit in five bytes rather than panic.
	w := Constant(mix.MaxWordMagnitude + 1)
	if w.Int() > mix.MaxWordMagnitude {
		t.Errorf("Int() = %d, should be truncated to fit in 5 bytes", w.Int())
	}
}

func TestAlf_PacksBytesDirectly(t *testing.T) {
	bytes := [5]mix.Byte{
		mix.MustByte(1), mix.MustByte(2), mix.MustByte(3), mix.MustByte(4), mix.MustByte(5),
	}
	w := Alf(bytes)
	if w.Sign {
		t.Error("Sign = true, want false (Alf never sets a sign)")
	}
	for i, b := range bytes {
		if w.B[i] != b {
			t.Errorf("B[%d] = %d, want %d", i, w.B[i], b)
		}
	}
}

func TestEncodingError_Error(t *testing.T) {
	err := &EncodingError{Location: "test.mixal:3:1", Message: "bad operand"}
	got := err.Error()
	if got != "test.mixal:3:1: encoding error: bad operand" {
		t.Errorf("Error() = %q", got)
	}
}

func TestEncodingError_ErrorNoLocation(t *testing.T) {
	err := &EncodingError{Message: "bad operand"}
	got := err.Error()
	if got != "encoding error: bad operand" {
		t.Errorf("Error() = %q", got)
	}
}

func TestEncodingError_ErrorWrapped(t *testing.T) {
	wrapped := errors.New("underlying")
	err := &EncodingError{Message: "bad operand", Wrapped: wrapped}
	got := err.Error()
	if got != "encoding error: bad operand: underlying" {
		t.Errorf("Error() = %q", got)
	}
}

func TestEncodingError_Unwrap(t *testing.T) {
	wrapped := errors.New("underlying")
	err := &EncodingError{Message: "bad operand", Wrapped: wrapped}
	if !errors.Is(err, wrapped) {
		t.Error("expected errors.Is to find the wrapped error")
	}
}
