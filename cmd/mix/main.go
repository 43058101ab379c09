// Command mix assembles and runs MIXAL source files against a MIX
// machine emulation.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/knuth-mix/mixvm/config"
	"github.com/knuth-mix/mixvm/debugger"
	"github.com/knuth-mix/mixvm/loader"
	"github.com/knuth-mix/mixvm/mix"
	"github.com/knuth-mix/mixvm/opcode"
	"github.com/knuth-mix/mixvm/parser"
	"github.com/knuth-mix/mixvm/tools"
	"github.com/knuth-mix/mixvm/vm"
)

// Version information, overridable at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		debugMode   = flag.Bool("debug", false, "Start in debugger mode")
		tuiMode     = flag.Bool("tui", false, "Use TUI (Text User Interface) debugger")
		maxCycles   = flag.Uint64("max-cycles", vm.DefaultMaxCycles, "Maximum cycles before halt")
		start       = flag.String("entry", "", "Override the program's END-declared start address")
		verboseMode = flag.Bool("verbose", false, "Verbose output")

		enableTrace = flag.Bool("trace", false, "Enable execution trace")
		traceFile   = flag.String("trace-file", "", "Trace output file (default: trace.log in log dir)")
		enableStats = flag.Bool("stats", false, "Enable performance statistics")
		statsFile   = flag.String("stats-file", "", "Statistics output file (default: stats.<format> in log dir)")
		statsFormat = flag.String("stats-format", "json", "Statistics format (json, csv, html; csv and html write the plain-text report)")

		enableCoverage      = flag.Bool("coverage", false, "Enable code coverage tracking")
		coverageFile        = flag.String("coverage-file", "", "Coverage output file (default: coverage.txt or coverage.json in log dir)")
		coverageFormat      = flag.String("coverage-format", "text", "Coverage format (text, json)")
		enableRegisterTrace = flag.Bool("register-trace", false, "Enable register access tracing")
		registerTraceFile   = flag.String("register-trace-file", "", "Register trace output file (default: register_trace.txt in log dir)")

		dumpSymbols = flag.Bool("dump-symbols", false, "Dump symbol table and exit")
		symbolsFile = flag.String("symbols-file", "", "Symbol dump output file (default: stdout)")

		disassemble = flag.Bool("mixdis", false, "Disassemble every program word instead of running it")

		formatMode  = flag.Bool("format", false, "Reformat source into fixed MIXAL columns and exit")
		formatStyle = flag.String("format-style", "default", "Format column style (default, compact, expanded)")
		lintMode    = flag.Bool("lint", false, "Check source for errors and style issues and exit")
		xrefMode    = flag.Bool("xref", false, "Print a symbol cross-reference report and exit")
		listingMode = flag.Bool("listing", false, "Print the assembled program's address/word/label listing and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("mix %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp || flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	asmFile := flag.Arg(0)
	if _, err := os.Stat(asmFile); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: File not found: %s\n", asmFile)
		os.Exit(1)
	}

	if *formatMode {
		runFormat(asmFile, *formatStyle)
		return
	}

	if *lintMode {
		runLint(asmFile)
		return
	}

	if *verboseMode {
		fmt.Printf("Assembling %s\n", asmFile)
	}

	program, _, err := parser.ParseFile(asmFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Assembly error:\n%v\n", err)
		os.Exit(1)
	}

	if *start != "" {
		if v, err := strconv.Atoi(*start); err == nil {
			program.StartAddress = v
		}
	}

	machine := vm.NewMachine()
	if err := loader.Load(machine, program); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		os.Exit(1)
	}

	if *disassemble {
		runDisassemble(machine)
		return
	}

	if *xrefMode {
		fmt.Print(tools.CrossReference(program).String())
		return
	}

	if *listingMode {
		fmt.Print(program.Listing())
		return
	}

	if *dumpSymbols {
		if err := dumpSymbolTable(program.Symbols, *symbolsFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error dumping symbols: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *enableTrace {
		tracePath := *traceFile
		if tracePath == "" {
			tracePath = filepath.Join(config.GetLogPath(), "trace.log")
		}
		f, err := os.Create(tracePath) // #nosec G304 -- user-specified trace output path
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating trace file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		machine.ExecutionTrace = vm.NewExecutionTrace(f)
		machine.ExecutionTrace.Start()
		if *verboseMode {
			fmt.Printf("Execution trace enabled: %s\n", tracePath)
		}
	}

	if *enableStats {
		machine.Statistics = vm.NewPerformanceStatistics()
		machine.Statistics.Start()
	}

	if *enableCoverage {
		covPath := *coverageFile
		if covPath == "" {
			ext := "txt"
			if *coverageFormat == "json" {
				ext = "json"
			}
			covPath = filepath.Join(config.GetLogPath(), "coverage."+ext)
		}
		f, err := os.Create(covPath) // #nosec G304 -- user-specified coverage output path
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating coverage file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		machine.CodeCoverage = vm.NewCodeCoverage(f)
	}

	if *enableRegisterTrace {
		rtPath := *registerTraceFile
		if rtPath == "" {
			rtPath = filepath.Join(config.GetLogPath(), "register_trace.txt")
		}
		f, err := os.Create(rtPath) // #nosec G304 -- user-specified register trace output path
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating register trace file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		machine.RegisterTrace = vm.NewRegisterTrace(f)
	}

	if *debugMode || *tuiMode {
		dbg := debugger.New(machine, program)
		if *tuiMode {
			if err := debugger.RunTUI(dbg); err != nil {
				fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Println("mix debugger - type 'help' for commands")
			if err := debugger.RunCLI(dbg); err != nil {
				fmt.Fprintf(os.Stderr, "Debugger error: %v\n", err)
				os.Exit(1)
			}
		}
		return
	}

	if *verboseMode {
		fmt.Println("Starting execution...")
	}

	runErr := machine.Run(*maxCycles)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Runtime error at PC=%04d: %v\n", machine.PC, runErr)
		flushDiagnostics(machine, *statsFile, *statsFormat, *coverageFormat)
		os.Exit(1)
	}

	if *verboseMode {
		fmt.Printf("Execution complete: %d cycles\n", machine.Cycles)
	}

	flushDiagnostics(machine, *statsFile, *statsFormat, *coverageFormat)
	os.Exit(0)
}

func flushDiagnostics(machine *vm.Machine, statsFile, statsFormat, coverageFormat string) {
	if machine.ExecutionTrace != nil {
		_ = machine.ExecutionTrace.Flush()
	}
	if machine.RegisterTrace != nil {
		_ = machine.RegisterTrace.Flush()
	}
	if machine.Statistics != nil {
		machine.Statistics.Stop()
		path := statsFile
		if path == "" {
			ext := "json"
			if statsFormat == "csv" || statsFormat == "html" {
				ext = statsFormat
			}
			path = filepath.Join(config.GetLogPath(), "stats."+ext)
		}
		if f, err := os.Create(path); err == nil { // #nosec G304 -- user-specified stats output path
			defer f.Close()
			if statsFormat == "json" {
				_ = machine.Statistics.WriteJSON(f)
			} else {
				_ = machine.Statistics.WriteReport(f)
			}
		}
	}
	if machine.CodeCoverage != nil {
		if coverageFormat == "json" {
			_ = machine.CodeCoverage.WriteJSON(machine.CodeCoverage.Writer)
		} else {
			_ = machine.CodeCoverage.WriteReport(machine.CodeCoverage.Writer)
		}
	}
}

func runFormat(asmFile, style string) {
	src, err := os.ReadFile(asmFile) // #nosec G304 -- user-specified source path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	var formatStyle tools.FormatStyle
	switch style {
	case "compact":
		formatStyle = tools.FormatCompact
	case "expanded":
		formatStyle = tools.FormatExpanded
	default:
		formatStyle = tools.FormatDefault
	}

	out, err := tools.FormatStringWithStyle(string(src), asmFile, formatStyle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting file: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

func runLint(asmFile string) {
	src, err := os.ReadFile(asmFile) // #nosec G304 -- user-specified source path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	issues := tools.NewLinter(nil).Lint(string(src), asmFile)
	hasErrors := false
	for _, issue := range issues {
		fmt.Printf("%s:%s\n", asmFile, issue)
		if issue.Level == tools.LintError {
			hasErrors = true
		}
	}
	if len(issues) == 0 {
		fmt.Printf("%s: no issues found\n", asmFile)
	}
	if hasErrors {
		os.Exit(1)
	}
}

func runDisassemble(machine *vm.Machine) {
	var zero mix.Word
	for cell := 0; cell < vm.NumCells; cell++ {
		w, err := machine.Memory.Load(cell)
		if err != nil || w == zero {
			continue
		}
		fmt.Printf("%04d  %s\n", cell, opcode.Disassemble(w))
	}
}

func dumpSymbolTable(st *parser.SymbolTable, filename string) error {
	var writer *os.File
	var err error

	if filename == "" {
		writer = os.Stdout
	} else {
		writer, err = os.Create(filename) // #nosec G304 -- user-specified symbol output path
		if err != nil {
			return fmt.Errorf("failed to create symbol file: %w", err)
		}
		defer writer.Close()
	}

	all := st.All()
	if len(all) == 0 {
		_, _ = fmt.Fprintln(writer, "No symbols defined")
		return nil
	}

	_, _ = fmt.Fprintln(writer, "Symbol Table")
	_, _ = fmt.Fprintln(writer, "============")
	_, _ = fmt.Fprintf(writer, "%-10s %-10s %-10s %s\n", "Name", "Type", "Value", "Status")

	type entry struct {
		name string
		sym  *parser.Symbol
	}
	entries := make([]entry, 0, len(all))
	for name, sym := range all {
		entries = append(entries, entry{name, sym})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].sym.Value < entries[j].sym.Value })

	for _, e := range entries {
		symType := "Label"
		if e.sym.Type == parser.SymbolConstant {
			symType = "Constant"
		}
		status := "Defined"
		if !e.sym.Defined {
			status = "Undefined"
		}
		_, _ = fmt.Fprintf(writer, "%-10s %-10s %-10d %s\n", e.name, symType, e.sym.Value, status)
	}
	_, _ = fmt.Fprintf(writer, "\nTotal symbols: %d\n", len(all))
	return nil
}

func printHelp() {
	fmt.Printf(`mix %s -- a MIX computer emulator and MIXAL assembler

Usage: mix [options] <source.mixal>

Options:
  -help                  Show this help message
  -version               Show version information
  -debug                 Start in debugger mode (CLI)
  -tui                   Start in TUI debugger mode
  -max-cycles N          Set maximum cycles (default: %d)
  -entry ADDR            Override the program's END-declared start address
  -verbose               Enable verbose output
  -mixdis                Disassemble the assembled program and exit
  -format                Reformat source into fixed MIXAL columns and exit
  -format-style STYLE    Format style: default, compact, expanded (default: default)
  -lint                  Check source for errors and style issues and exit
  -xref                  Print a symbol cross-reference report and exit
  -listing               Print the assembled address/word/label listing and exit

Symbol Options:
  -dump-symbols          Dump symbol table and exit
  -symbols-file FILE     Symbol dump output file (default: stdout)

Tracing & Performance:
  -trace                 Enable execution trace
  -trace-file FILE       Trace output file (default: trace.log in log dir)
  -stats                 Enable performance statistics
  -stats-file FILE       Statistics output file (default: stats.<format> in log dir)
  -stats-format FMT      Statistics format: json, csv, html (default: json;
                         csv and html write the plain-text report)
  -coverage              Enable code coverage tracking
  -coverage-file FILE    Coverage output file (default: coverage.txt or .json in log dir)
  -coverage-format FMT   Coverage format: text, json (default: text)
  -register-trace        Enable register access tracing
  -register-trace-file F Register trace output file (default: register_trace.txt in log dir)

Examples:
  mix examples/maximum.mixal
  mix -debug examples/maximum.mixal
  mix -tui examples/maximum.mixal
  mix -trace -stats examples/maximum.mixal
  mix -mixdis examples/maximum.mixal
`, Version, vm.DefaultMaxCycles)
}
