package debugger

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/knuth-mix/mixvm/opcode"
	"github.com/knuth-mix/mixvm/vm"
)

// TUI is the full-screen text interface for the debugger.
type TUI struct {
	Debugger *Debugger
	App      *tview.Application
	Pages    *tview.Pages

	MainLayout *tview.Flex
	LeftPanel  *tview.Flex
	RightPanel *tview.Flex

	DisassemblyView *tview.TextView
	RegisterView    *tview.TextView
	MemoryView      *tview.TextView
	BreakpointsView *tview.TextView
	OutputView      *tview.TextView
	CommandInput    *tview.InputField

	MemoryAddress int
	Running       bool
}

// NewTUI creates a TUI wired to debugger.
func NewTUI(debugger *Debugger) *TUI {
	t := &TUI{
		Debugger:      debugger,
		App:           tview.NewApplication(),
		MemoryAddress: 0,
		Running:       false,
	}

	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()

	return t
}

func (t *TUI) initializeViews() {
	t.DisassemblyView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.DisassemblyView.SetBorder(true).SetTitle(" Disassembly ")

	t.RegisterView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	t.RegisterView.SetBorder(true).SetTitle(" Registers ")

	t.MemoryView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.MemoryView.SetBorder(true).SetTitle(" Memory ")

	t.BreakpointsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.BreakpointsView.SetBorder(true).SetTitle(" Breakpoints/Watchpoints ")

	t.OutputView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.CommandInput = tview.NewInputField().
		SetLabel("> ").
		SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Command ")
	t.CommandInput.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	t.LeftPanel = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.DisassemblyView, 0, 1, false)

	rightTop := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.RegisterView, RegisterViewRows, 0, false).
		AddItem(t.MemoryView, 0, 1, false)

	t.RightPanel = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(rightTop, 0, 3, false).
		AddItem(t.BreakpointsView, 8, 0, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(t.LeftPanel, 0, 2, false).
		AddItem(t.RightPanel, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 4, false).
		AddItem(t.OutputView, 8, 0, false).
		AddItem(t.CommandInput, 3, 0, true)

	t.Pages = tview.NewPages().
		AddPage("main", t.MainLayout, true, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF1:
			t.executeCommand("help")
			return nil
		case tcell.KeyF5:
			t.executeCommand("continue")
			return nil
		case tcell.KeyF9:
			t.executeCommand("break")
			return nil
		case tcell.KeyF10:
			t.executeCommand("next")
			return nil
		case tcell.KeyF11:
			t.executeCommand("step")
			return nil
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			t.RefreshAll()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key == tcell.KeyEnter {
		cmd := t.CommandInput.GetText()
		if cmd != "" {
			t.executeCommand(cmd)
			t.CommandInput.SetText("")
		}
	}
}

func (t *TUI) executeCommand(cmd string) {
	t.Debugger.Output.Reset()

	err := t.Debugger.ExecuteCommand(cmd)
	output := t.Debugger.GetOutput()

	if err != nil {
		t.WriteOutput(fmt.Sprintf("[red]Error:[white] %v\n", err))
	}
	if output != "" {
		t.WriteOutput(output)
	}

	t.RefreshAll()
}

func (t *TUI) WriteOutput(text string) {
	_, _ = t.OutputView.Write([]byte(text))
	t.OutputView.ScrollToEnd()
}

// RefreshAll redraws every panel.
func (t *TUI) RefreshAll() {
	t.UpdateDisassemblyView()
	t.UpdateRegisterView()
	t.UpdateMemoryView()
	t.UpdateBreakpointsView()
	t.App.Draw()
}

func (t *TUI) UpdateRegisterView() {
	t.RegisterView.Clear()

	m := t.Debugger.Machine
	var lines []string

	lines = append(lines, fmt.Sprintf("rA: %+06d   rX: %+06d   rJ: %04d", m.A.Int(), m.X.Int(), m.J.Int()))
	for i := 0; i < 6; i += RegisterGroupSize {
		var cols []string
		for j := i; j < i+RegisterGroupSize && j < 6; j++ {
			cols = append(cols, fmt.Sprintf("rI%d: %+05d", j+1, m.I[j].Int()))
		}
		lines = append(lines, strings.Join(cols, "   "))
	}

	lines = append(lines, "")
	overflow := "n"
	if m.Overflow {
		overflow = "[red]Y[white]"
	}
	lines = append(lines, fmt.Sprintf("PC: %04d   Overflow: %s   Compare: %s", m.PC, overflow, m.Comparison))
	lines = append(lines, fmt.Sprintf("Cycles: %d", m.Cycles))

	t.RegisterView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) UpdateMemoryView() {
	t.MemoryView.Clear()

	addr := t.MemoryAddress
	if addr == 0 {
		addr = t.Debugger.Machine.PC
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("[yellow]Cell: %04d[white]", addr))

	for row := 0; row < MemoryDisplayRows; row++ {
		rowAddr := addr + row*MemoryDisplayCellsPerRow
		if rowAddr >= vm.NumCells {
			break
		}

		line := fmt.Sprintf("%04d: ", rowAddr)
		var cells []string
		for col := 0; col < MemoryDisplayCellsPerRow; col++ {
			cell := rowAddr + col
			if cell >= vm.NumCells {
				break
			}
			w, err := t.Debugger.Machine.Memory.Load(cell)
			if err != nil {
				cells = append(cells, "?????")
				continue
			}
			cells = append(cells, fmt.Sprintf("%+06d", w.Int()))
		}
		line += strings.Join(cells, " ")
		lines = append(lines, line)
	}

	t.MemoryView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) UpdateDisassemblyView() {
	t.DisassemblyView.Clear()

	pc := t.Debugger.Machine.PC

	var lines []string
	start := pc - CodeContextLinesBefore
	if start < 0 {
		start = 0
	}

	for addr := start; addr < pc+CodeContextLinesAfter && addr < vm.NumCells; addr++ {
		w, err := t.Debugger.Machine.Memory.Load(addr)
		if err != nil {
			continue
		}

		marker := "  "
		color := "white"
		if addr == pc {
			marker = "->"
			color = "yellow"
		}
		if t.Debugger.Breakpoints.GetBreakpoint(addr) != nil {
			marker = "* "
		}

		line := fmt.Sprintf("[%s]%s %04d: %s[white]", color, marker, addr, opcode.Disassemble(w))

		if sym := t.findSymbolForAddress(addr); sym != "" {
			line = fmt.Sprintf("[%s]%s %04d: %s  <%s>[white]", color, marker, addr, opcode.Disassemble(w), sym)
		}

		lines = append(lines, line)
	}

	t.DisassemblyView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) UpdateBreakpointsView() {
	t.BreakpointsView.Clear()

	var lines []string

	bps := t.Debugger.Breakpoints.GetAllBreakpoints()
	if len(bps) > 0 {
		lines = append(lines, "[yellow]Breakpoints:[white]")
		for _, bp := range bps {
			status := "enabled"
			color := "green"
			if !bp.Enabled {
				status = "disabled"
				color = "red"
			}

			line := fmt.Sprintf("  %d: [%s]%s[white] %04d", bp.ID, color, status, bp.Address)

			if sym := t.findSymbolForAddress(bp.Address); sym != "" {
				line += fmt.Sprintf(" <%s>", sym)
			}
			if bp.Condition != "" {
				line += fmt.Sprintf(" if %s", bp.Condition)
			}
			line += fmt.Sprintf(" (hits: %d)", bp.HitCount)

			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "[yellow]No breakpoints set[white]")
	}

	lines = append(lines, "")

	wps := t.Debugger.Watchpoints.GetAllWatchpoints()
	if len(wps) > 0 {
		lines = append(lines, "[yellow]Watchpoints:[white]")
		for _, wp := range wps {
			line := fmt.Sprintf("  %d: watch %s = %d", wp.ID, wp.Expression, wp.LastValue)
			lines = append(lines, line)
		}
	}

	t.BreakpointsView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) findSymbolForAddress(addr int) string {
	for sym, symAddr := range t.Debugger.Symbols {
		if symAddr == addr {
			return sym
		}
	}
	return ""
}

// Run starts the TUI application.
func (t *TUI) Run() error {
	t.RefreshAll()

	t.WriteOutput("[green]mix debugger TUI[white]\n")
	t.WriteOutput("Press F1 for help, F5 to continue, F10 to step over, F11 to step\n")
	t.WriteOutput("Type 'help' for command list\n\n")

	return t.App.SetRoot(t.Pages, true).SetFocus(t.CommandInput).Run()
}

// Stop stops the TUI application.
func (t *TUI) Stop() {
	t.App.Stop()
}
