package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knuth-mix/mixvm/mix"
	"github.com/knuth-mix/mixvm/opcode"
	"github.com/knuth-mix/mixvm/vm"
)

// Command handler implementations.

func (d *Debugger) cmdRun(args []string) error {
	d.Machine.Reset(d.Program.StartAddress)
	d.Machine.Halted = false
	d.Running = true
	d.StepMode = StepNone

	d.Println("Starting program execution...")
	return nil
}

func (d *Debugger) cmdContinue(args []string) error {
	if d.Machine.Halted {
		return fmt.Errorf("program is not running")
	}

	d.Running = true
	d.StepMode = StepNone

	d.Println("Continuing...")
	return nil
}

func (d *Debugger) cmdStep(args []string) error {
	d.StepMode = StepSingle
	d.Running = true
	return nil
}

// cmdNext steps over a subroutine call (JMP) rather than following into it.
func (d *Debugger) cmdNext(args []string) error {
	d.SetStepOver()
	return nil
}

func (d *Debugger) cmdBreak(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: break <address|label> [if <condition>]")
	}

	address, err := d.ResolveAddress(args[0])
	if err != nil {
		return err
	}

	var condition string
	if len(args) > 1 && strings.ToLower(args[1]) == "if" {
		condition = strings.Join(args[2:], " ")
	}

	bp := d.Breakpoints.AddBreakpoint(address, false, condition)

	if condition != "" {
		d.Printf("Breakpoint %d at %04d (condition: %s)\n", bp.ID, address, condition)
	} else {
		d.Printf("Breakpoint %d at %04d\n", bp.ID, address)
	}

	return nil
}

func (d *Debugger) cmdTBreak(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: tbreak <address|label>")
	}

	address, err := d.ResolveAddress(args[0])
	if err != nil {
		return err
	}

	bp := d.Breakpoints.AddBreakpoint(address, true, "")
	d.Printf("Temporary breakpoint %d at %04d\n", bp.ID, address)

	return nil
}

func (d *Debugger) cmdDelete(args []string) error {
	if len(args) == 0 {
		d.Breakpoints.Clear()
		d.Println("All breakpoints deleted")
		return nil
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint ID: %s", args[0])
	}

	if err := d.Breakpoints.DeleteBreakpoint(id); err != nil {
		return err
	}

	d.Printf("Breakpoint %d deleted\n", id)
	return nil
}

func (d *Debugger) cmdEnable(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: enable <breakpoint-id>")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint ID: %s", args[0])
	}

	if err := d.Breakpoints.EnableBreakpoint(id); err != nil {
		return err
	}

	d.Printf("Breakpoint %d enabled\n", id)
	return nil
}

func (d *Debugger) cmdDisable(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: disable <breakpoint-id>")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint ID: %s", args[0])
	}

	if err := d.Breakpoints.DisableBreakpoint(id); err != nil {
		return err
	}

	d.Printf("Breakpoint %d disabled\n", id)
	return nil
}

// cmdWatch sets a watchpoint. Unqualified "watch" always watches for value
// changes -- MIX has no instruction-level read/write distinction exposed to
// the debugger, so every watch type triggers identically (see WatchType).
func (d *Debugger) cmdWatch(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: watch <register|[address]|label>")
	}

	expression := strings.Join(args, " ")

	isRegister, register, address, err := d.parseWatchExpression(expression)
	if err != nil {
		return err
	}

	wp := d.Watchpoints.AddWatchpoint(WatchWrite, expression, address, isRegister, register)

	if err := d.Watchpoints.InitializeWatchpoint(wp.ID, d.Machine); err != nil {
		_ = d.Watchpoints.DeleteWatchpoint(wp.ID)
		return err
	}

	d.Printf("Watchpoint %d: %s\n", wp.ID, expression)
	return nil
}

// parseWatchExpression parses a watch expression naming a register, a
// bracketed memory cell, or a bare label/address.
func (d *Debugger) parseWatchExpression(expr string) (isRegister bool, register string, address int, err error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	if isRegisterName(expr) {
		return true, expr, 0, nil
	}

	if strings.HasPrefix(expr, "[") && strings.HasSuffix(expr, "]") {
		addrStr := strings.TrimSuffix(strings.TrimPrefix(expr, "["), "]")
		addr, rerr := d.ResolveAddress(addrStr)
		if rerr != nil {
			return false, "", 0, rerr
		}
		return false, "", addr, nil
	}

	addr, rerr := d.ResolveAddress(expr)
	if rerr != nil {
		return false, "", 0, fmt.Errorf("invalid watch expression: %s", expr)
	}
	return false, "", addr, nil
}

// cmdPrint evaluates and prints an expression using the debugger's runtime
// grammar (registers, memory reads, +, -, *, /).
func (d *Debugger) cmdPrint(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: print <expression>")
	}

	expression := strings.Join(args, " ")
	tokens := NewExprLexer(expression).TokenizeAll()
	result, err := NewExprParser(tokens, d.Machine, d.Symbols).Parse()
	if err != nil {
		return err
	}

	d.Printf("%d\n", result)
	return nil
}

// cmdExamine examines one or more memory cells starting at an address.
// Usage: x[/n] <address>
func (d *Debugger) cmdExamine(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: x[/n] <address>")
	}

	count := 1
	addrArg := args[0]

	if strings.HasPrefix(args[0], "/") {
		if len(args) < 2 {
			return fmt.Errorf("missing address")
		}
		n, err := strconv.Atoi(args[0][1:])
		if err != nil {
			return fmt.Errorf("invalid count: %s", args[0][1:])
		}
		count = n
		addrArg = args[1]
	}

	address, err := d.ResolveAddress(addrArg)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		cell := address + i
		w, err := d.Machine.Memory.Load(cell)
		if err != nil {
			return err
		}
		d.Printf("%04d: %d  %s\n", cell, w.Int(), opcode.Disassemble(w))
	}

	return nil
}

func (d *Debugger) cmdInfo(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: info <registers|breakpoints|watchpoints>")
	}

	switch strings.ToLower(args[0]) {
	case "registers", "reg", "r":
		return d.showRegisters()
	case "breakpoints", "break", "b":
		return d.showBreakpoints()
	case "watchpoints", "watch", "w":
		return d.showWatchpoints()
	default:
		return fmt.Errorf("unknown info command: %s", args[0])
	}
}

func (d *Debugger) showRegisters() error {
	d.Println("Registers:")
	d.Printf("  rA  = %+06d\n", d.Machine.A.Int())
	d.Printf("  rX  = %+06d\n", d.Machine.X.Int())
	for i := 0; i < 6; i++ {
		d.Printf("  rI%d = %+06d\n", i+1, d.Machine.I[i].Int())
	}
	d.Printf("  rJ  = %04d\n", d.Machine.J.Int())
	d.Printf("  PC  = %04d\n", d.Machine.PC)
	d.Printf("  Overflow = %v\n", d.Machine.Overflow)
	d.Printf("  Comparison = %s\n", d.Machine.Comparison)

	return nil
}

func (d *Debugger) showBreakpoints() error {
	breakpoints := d.Breakpoints.GetAllBreakpoints()
	if len(breakpoints) == 0 {
		d.Println("No breakpoints")
		return nil
	}

	d.Println("Breakpoints:")
	for _, bp := range breakpoints {
		status := "enabled"
		if !bp.Enabled {
			status = "disabled"
		}

		temp := ""
		if bp.Temporary {
			temp = " (temporary)"
		}

		condition := ""
		if bp.Condition != "" {
			condition = fmt.Sprintf(" if %s", bp.Condition)
		}

		d.Printf("  %d: %04d %s%s%s (hit %d times)\n",
			bp.ID, bp.Address, status, temp, condition, bp.HitCount)
	}

	return nil
}

func (d *Debugger) showWatchpoints() error {
	watchpoints := d.Watchpoints.GetAllWatchpoints()
	if len(watchpoints) == 0 {
		d.Println("No watchpoints")
		return nil
	}

	d.Println("Watchpoints:")
	for _, wp := range watchpoints {
		status := "enabled"
		if !wp.Enabled {
			status = "disabled"
		}

		d.Printf("  %d: %s %s (hit %d times, last value: %d)\n",
			wp.ID, wp.Expression, status, wp.HitCount, wp.LastValue)
	}

	return nil
}

// cmdList disassembles the cells around the current PC.
func (d *Debugger) cmdList(args []string) error {
	pc := d.Machine.PC

	for cell := pc - CodeContextLinesBeforeCompact; cell <= pc+CodeContextLinesAfterCompact; cell++ {
		if cell < 0 || cell >= vm.NumCells {
			continue
		}
		w, err := d.Machine.Memory.Load(cell)
		if err != nil {
			continue
		}
		marker := "  "
		if cell == pc {
			marker = "=>"
		}
		d.Printf("%s %04d: %s\n", marker, cell, opcode.Disassemble(w))
	}

	return nil
}

// cmdSet modifies a register or memory cell.
// Usage: set <register|[address]> = <value-expression>
func (d *Debugger) cmdSet(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: set <register|[address]> = <value>")
	}
	if args[1] != "=" {
		return fmt.Errorf("usage: set <register|[address]> = <value>")
	}

	target := strings.ToLower(args[0])
	valueExpr := strings.Join(args[2:], " ")

	tokens := NewExprLexer(valueExpr).TokenizeAll()
	value, err := NewExprParser(tokens, d.Machine, d.Symbols).Parse()
	if err != nil {
		return err
	}

	if strings.HasPrefix(target, "[") && strings.HasSuffix(target, "]") {
		addrStr := target[1 : len(target)-1]
		address, err := d.ResolveAddress(addrStr)
		if err != nil {
			return err
		}
		sign, bytes := mix.IntToBytes(value, 5)
		var w mix.Word
		w.Sign = sign
		for i, b := range bytes {
			if i >= len(w.B) {
				break
			}
			w.B[len(w.B)-1-i] = b
		}
		if err := d.Machine.Memory.Store(address, w); err != nil {
			return err
		}
		d.Printf("Memory %04d set to %d\n", address, value)
		return nil
	}

	if !setRegister(d.Machine, target, value) {
		return fmt.Errorf("invalid target: %s", target)
	}
	d.Printf("Register %s set to %d\n", target, value)
	return nil
}

func (d *Debugger) cmdReset(args []string) error {
	d.Machine.Reset(d.Program.StartAddress)
	d.Println("Machine reset")
	return nil
}

func (d *Debugger) cmdHelp(args []string) error {
	if len(args) > 0 {
		return d.showCommandHelp(args[0])
	}

	d.Println("mix debugger commands:")
	d.Println()
	d.Println("Execution Control:")
	d.Println("  run (r)           - Reset and start program execution")
	d.Println("  continue (c)      - Continue execution")
	d.Println("  step (s, si)      - Execute single instruction")
	d.Println("  next (n)          - Step over a JMP subroutine call")
	d.Println()
	d.Println("Breakpoints:")
	d.Println("  break (b) <addr>  - Set breakpoint")
	d.Println("  tbreak (tb) <addr>- Set temporary breakpoint")
	d.Println("  delete (d) [id]   - Delete breakpoint(s)")
	d.Println("  enable <id>       - Enable breakpoint")
	d.Println("  disable <id>      - Disable breakpoint")
	d.Println()
	d.Println("Watchpoints:")
	d.Println("  watch (w) <expr>  - Watch a register or [address] for changes")
	d.Println()
	d.Println("Inspection:")
	d.Println("  print (p) <expr>  - Evaluate expression")
	d.Println("  x[/n] <addr>      - Examine and disassemble memory cells")
	d.Println("  info (i) <what>   - Show registers/breakpoints/watchpoints")
	d.Println("  list (l)          - Disassemble cells around PC")
	d.Println()
	d.Println("Modification:")
	d.Println("  set <reg|[addr]> = <val> - Modify register/memory")
	d.Println()
	d.Println("Control:")
	d.Println("  reset             - Reset machine")
	d.Println("  help (h, ?)       - Show this help")
	d.Println()
	d.Println("Type 'help <command>' for detailed help on a specific command.")

	return nil
}

func (d *Debugger) showCommandHelp(cmd string) error {
	helpText := map[string]string{
		"break": "break <address|label> [if <condition>]\n  Set a breakpoint at the given cell or label.\n  Optional condition is evaluated each time it is hit.",
		"step":  "step\n  Execute a single instruction.",
		"next":  "next\n  Step over the instruction at PC; if it's a JMP that leaves, stop on return.",
		"print": "print <expression>\n  Evaluate and print an expression.\n  Expressions may reference registers, [memory], and + - * /.",
		"x":     "x[/n] <address>\n  Examine and disassemble n memory cells starting at address.",
		"info":  "info <registers|breakpoints|watchpoints>\n  Display information about machine state.",
	}

	if help, exists := helpText[cmd]; exists {
		d.Println(help)
		return nil
	}

	return fmt.Errorf("no help available for command: %s", cmd)
}

// setRegister writes value into the register named reg; reports whether
// reg was recognized.
func setRegister(m *vm.Machine, reg string, value int64) bool {
	switch strings.ToLower(reg) {
	case "ra":
		sign, b := mix.IntToBytes(value, 5)
		m.A.Update(sign, b...)
	case "rx":
		sign, b := mix.IntToBytes(value, 5)
		m.X.Update(sign, b...)
	case "rj":
		_, b := mix.IntToBytes(value, 2)
		m.J.Update(b...)
	case "ri1":
		sign, b := mix.IntToBytes(value, 2)
		m.I[0].Update(sign, b...)
	case "ri2":
		sign, b := mix.IntToBytes(value, 2)
		m.I[1].Update(sign, b...)
	case "ri3":
		sign, b := mix.IntToBytes(value, 2)
		m.I[2].Update(sign, b...)
	case "ri4":
		sign, b := mix.IntToBytes(value, 2)
		m.I[3].Update(sign, b...)
	case "ri5":
		sign, b := mix.IntToBytes(value, 2)
		m.I[4].Update(sign, b...)
	case "ri6":
		sign, b := mix.IntToBytes(value, 2)
		m.I[5].Update(sign, b...)
	case "pc":
		m.PC = int(value)
	case "ov":
		m.Overflow = value != 0
	default:
		return false
	}
	return true
}
