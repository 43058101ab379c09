package vm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/knuth-mix/mixvm/mix"
)

func TestExecIO_JBUS_NeverTaken(t *testing.T) {
	m := NewMachine()
	in := Instruction{Code: 34} // opcode.JBUS
	if err := m.execIO(in, 500, 1); err != nil {
		t.Fatalf("execIO failed: %v", err)
	}
	if m.PC == 500 {
		t.Error("JBUS should never jump: every modeled device is always ready")
	}
}

func TestExecIO_JRED_AlwaysTaken(t *testing.T) {
	m := NewMachine()
	in := Instruction{Code: 38} // opcode.JRED
	if err := m.execIO(in, 500, 1); err != nil {
		t.Fatalf("execIO failed: %v", err)
	}
	if m.PC != 500 {
		t.Error("JRED should always jump: every modeled device is always ready")
	}
	if m.J.Int() != 1 {
		t.Errorf("rJ = %d, want 1", m.J.Int())
	}
}

func TestExecOut_LinePrinter(t *testing.T) {
	m := NewMachine()
	var buf bytes.Buffer
	m.OutputWriter = &buf

	for i := 0; i < linePrinterWidth; i++ {
		w := mix.Word{}
		for j := range w.B {
			w.B[j] = mix.MustByte(1) // "A"
		}
		m.Memory.Store(1000+i, w)
	}

	if err := m.execOut(linePrinterDevice, 1000); err != nil {
		t.Fatalf("execOut failed: %v", err)
	}
	if !strings.Contains(buf.String(), "AAAAA") {
		t.Errorf("output = %q, expected a line of As", buf.String())
	}
}

func TestExecOut_UnsupportedDevice(t *testing.T) {
	m := NewMachine()
	if err := m.execOut(5, 1000); err == nil {
		t.Error("expected an error for an unsupported OUT device")
	}
}
