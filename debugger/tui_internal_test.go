package debugger

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/knuth-mix/mixvm/parser"
	"github.com/knuth-mix/mixvm/vm"
)

// TestExecuteCommandUpdatesOutput exercises the synchronous command path the
// real TUI drives from SetDoneFunc: ExecuteCommand followed by GetOutput.
func TestExecuteCommandUpdatesOutput(t *testing.T) {
	machine := vm.NewMachine()
	program := &parser.Program{StartAddress: 0, Symbols: parser.NewSymbolTable()}
	dbg := New(machine, program)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	defer screen.Fini()

	tui := NewTUI(dbg)
	tui.App.SetScreen(screen)

	tui.executeCommand("help")

	text := tui.OutputView.GetText(true)
	if !strings.Contains(text, "Execution Control") {
		t.Errorf("expected help output in OutputView, got: %q", text)
	}
}

// TestHandleCommandClearsInput verifies pressing Enter runs the typed
// command and clears the input field.
func TestHandleCommandClearsInput(t *testing.T) {
	machine := vm.NewMachine()
	program := &parser.Program{StartAddress: 0, Symbols: parser.NewSymbolTable()}
	dbg := New(machine, program)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	defer screen.Fini()

	tui := NewTUI(dbg)
	tui.App.SetScreen(screen)

	tui.CommandInput.SetText("help")
	tui.handleCommand(tcell.KeyEnter)

	if tui.CommandInput.GetText() != "" {
		t.Errorf("expected command input cleared, got %q", tui.CommandInput.GetText())
	}
}
