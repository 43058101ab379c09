package loader

import (
	"testing"

	"github.com/knuth-mix/mixvm/parser"
	"github.com/knuth-mix/mixvm/vm"
)

func assemble(t *testing.T, src string) *parser.Program {
	t.Helper()
	prog, err := parser.NewParser(src, "test.mixal").Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return prog
}

func TestLoad_SetsStartAddress(t *testing.T) {
	prog := assemble(t, "START LDA 1000\n HLT 0\n END START\n")
	m := vm.NewMachine()

	if err := Load(m, prog); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.PC != prog.StartAddress {
		t.Errorf("PC = %d, want %d", m.PC, prog.StartAddress)
	}
}

func TestLoad_StoresEveryWord(t *testing.T) {
	prog := assemble(t, "START LDA VALUE\n HLT 0\nVALUE CON 42\n END START\n")
	m := vm.NewMachine()

	if err := Load(m, prog); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for addr, want := range prog.Words {
		got, err := m.Memory.Load(addr)
		if err != nil {
			t.Fatalf("Memory.Load(%d) failed: %v", addr, err)
		}
		if got != want {
			t.Errorf("cell %d = %+v, want %+v", addr, got, want)
		}
	}
}

func TestLoad_ResetsMachineState(t *testing.T) {
	prog := assemble(t, "START LDA 1000\n HLT 0\n END START\n")
	m := vm.NewMachine()
	m.Halted = true
	m.Overflow = true
	m.Cycles = 500

	if err := Load(m, prog); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Halted {
		t.Error("expected Halted to be cleared by Load/Reset")
	}
	if m.Overflow {
		t.Error("expected Overflow to be cleared by Load/Reset")
	}
	if m.Cycles != 0 {
		t.Errorf("Cycles = %d, want 0", m.Cycles)
	}
}

func TestLoad_EmptyProgram(t *testing.T) {
	prog := assemble(t, "START HLT 0\n END START\n")
	m := vm.NewMachine()

	if err := Load(m, prog); err != nil {
		t.Fatalf("Load failed on minimal program: %v", err)
	}
	if len(prog.Words) == 0 {
		t.Fatal("expected at least the HLT word")
	}
}
