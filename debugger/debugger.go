package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knuth-mix/mixvm/parser"
	"github.com/knuth-mix/mixvm/vm"
)

// Debugger holds a live machine plus the breakpoint, watchpoint, and history
// state layered on top of it.
type Debugger struct {
	Machine *vm.Machine
	Program *parser.Program

	Breakpoints *BreakpointManager
	Watchpoints *WatchpointManager
	History     *CommandHistory

	Running           bool
	StepMode          StepMode
	StepOverCallDepth int
	StepOverPC        int

	// Symbols maps label/constant name to cell value, for command operands
	// like "break LOOP" and watch/print expressions.
	Symbols map[string]int

	LastCommand string

	Output strings.Builder
}

// StepMode is the debugger's current single-stepping mode.
type StepMode int

const (
	StepNone   StepMode = iota // Not stepping
	StepSingle                 // Step one instruction
	StepOver                   // Step over a JMP/ENT subroutine call
	StepOut                    // Step out of the current subroutine
)

// New creates a debugger over machine, seeded with program's symbol table.
func New(machine *vm.Machine, program *parser.Program) *Debugger {
	d := &Debugger{
		Machine:     machine,
		Program:     program,
		Breakpoints: NewBreakpointManager(),
		Watchpoints: NewWatchpointManager(),
		History:     NewCommandHistory(),
		Running:     false,
		StepMode:    StepNone,
		Symbols:     make(map[string]int),
	}
	if program != nil && program.Symbols != nil {
		for name, sym := range program.Symbols.All() {
			d.Symbols[name] = sym.Value
		}
	}
	return d
}

// ResolveAddress resolves a symbol name to its cell, or parses a numeric
// cell address.
func (d *Debugger) ResolveAddress(addrStr string) (int, error) {
	if addr, exists := d.Symbols[strings.ToUpper(addrStr)]; exists {
		return addr, nil
	}
	addr, err := strconv.Atoi(addrStr)
	if err != nil {
		return 0, fmt.Errorf("invalid address or unknown symbol: %s", addrStr)
	}
	return addr, nil
}

// ExecuteCommand processes and executes a single debugger command line.
func (d *Debugger) ExecuteCommand(cmdLine string) error {
	cmdLine = strings.TrimSpace(cmdLine)

	if cmdLine == "" {
		cmdLine = d.LastCommand
	}

	if cmdLine != "" {
		d.History.Add(cmdLine)
		d.LastCommand = cmdLine
	}

	parts := strings.Fields(cmdLine)
	if len(parts) == 0 {
		return nil
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	return d.handleCommand(cmd, args)
}

// handleCommand dispatches a command name to its handler.
func (d *Debugger) handleCommand(cmd string, args []string) error {
	switch cmd {
	case "run", "r":
		return d.cmdRun(args)
	case "continue", "c":
		return d.cmdContinue(args)
	case "step", "s", "si":
		return d.cmdStep(args)
	case "next", "n":
		return d.cmdNext(args)

	case "break", "b":
		return d.cmdBreak(args)
	case "tbreak", "tb":
		return d.cmdTBreak(args)
	case "delete", "d":
		return d.cmdDelete(args)
	case "enable":
		return d.cmdEnable(args)
	case "disable":
		return d.cmdDisable(args)

	case "watch", "w":
		return d.cmdWatch(args)

	case "print", "p":
		return d.cmdPrint(args)
	case "x":
		return d.cmdExamine(args)
	case "info", "i":
		return d.cmdInfo(args)
	case "list", "l":
		return d.cmdList(args)

	case "set":
		return d.cmdSet(args)

	case "reset":
		return d.cmdReset(args)

	case "help", "h", "?":
		return d.cmdHelp(args)

	default:
		return fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmd)
	}
}

// ShouldBreak reports whether execution should pause at the current PC, and
// why.
func (d *Debugger) ShouldBreak() (bool, string) {
	pc := d.Machine.PC

	switch d.StepMode {
	case StepSingle:
		d.StepMode = StepNone
		return true, "single step"

	case StepOver:
		if pc == d.StepOverPC {
			d.StepMode = StepNone
			return true, "step over complete"
		}

	case StepOut:
		// Simplified: MIX has no hardware call stack, only JMP-saved-J.
	}

	if bp := d.Breakpoints.GetBreakpoint(pc); bp != nil {
		if !bp.Enabled {
			return false, ""
		}

		if bp.Condition != "" {
			tokens := NewExprLexer(bp.Condition).TokenizeAll()
			result, err := NewExprParser(tokens, d.Machine, d.Symbols).Parse()
			if err != nil {
				return true, fmt.Sprintf("breakpoint %d (condition error: %v)", bp.ID, err)
			}
			if result == 0 {
				return false, ""
			}
		}

		bp.HitCount++
		if bp.Temporary {
			_ = d.Breakpoints.DeleteBreakpoint(bp.ID)
		}

		return true, fmt.Sprintf("breakpoint %d", bp.ID)
	}

	if wp, changed := d.Watchpoints.CheckWatchpoints(d.Machine); wp != nil && changed {
		return true, fmt.Sprintf("watchpoint %d: %s", wp.ID, wp.Expression)
	}

	return false, ""
}

// GetOutput returns and clears the debugger's output buffer.
func (d *Debugger) GetOutput() string {
	output := d.Output.String()
	d.Output.Reset()
	return output
}

// Printf writes formatted output to the output buffer.
func (d *Debugger) Printf(format string, args ...interface{}) {
	d.Output.WriteString(fmt.Sprintf(format, args...))
}

// Println writes a line to the output buffer.
func (d *Debugger) Println(args ...interface{}) {
	d.Output.WriteString(fmt.Sprintln(args...))
}

// SetStepOver configures the debugger to step over a subroutine call
// (JMP/JSJ landing on an ENT-prologued routine), stopping at the next cell.
func (d *Debugger) SetStepOver() {
	d.StepOverPC = d.Machine.PC + 1
	d.StepMode = StepOver
	d.Running = true
}

// SetStepOut configures the debugger to run until the subroutine returns.
func (d *Debugger) SetStepOut() {
	d.StepMode = StepOut
	d.Running = true
}
