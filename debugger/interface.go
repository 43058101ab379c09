package debugger

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/knuth-mix/mixvm/vm"
)

// RunCLI runs the line-oriented command-line debugger interface.
func RunCLI(dbg *Debugger) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("(mix-dbg) ")

		if !scanner.Scan() {
			break
		}

		cmdLine := strings.TrimSpace(scanner.Text())

		if cmdLine == "quit" || cmdLine == "q" || cmdLine == "exit" {
			fmt.Println("Exiting debugger...")
			break
		}

		if err := dbg.ExecuteCommand(cmdLine); err != nil {
			fmt.Printf("Error: %v\n", err)
		}

		if output := dbg.GetOutput(); output != "" {
			fmt.Print(output)
		}

		if dbg.Running {
			for dbg.Running {
				if shouldBreak, reason := dbg.ShouldBreak(); shouldBreak {
					dbg.Running = false
					fmt.Printf("Stopped: %s at PC=%04d\n", reason, dbg.Machine.PC)
					break
				}

				if err := dbg.Machine.Step(); err != nil {
					if _, halted := err.(*vm.HaltError); halted {
						dbg.Running = false
						fmt.Printf("Program halted at PC=%04d (%d cycles)\n", dbg.Machine.PC, dbg.Machine.Cycles)
						break
					}
					fmt.Printf("Runtime error: %v\n", err)
					dbg.Running = false
					break
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("input error: %w", err)
	}

	return nil
}

// RunTUI runs the full-screen TUI debugger.
func RunTUI(dbg *Debugger) error {
	tui := NewTUI(dbg)
	return tui.Run()
}
