package debugger

// TUI Display Update Constants
const (
	// DisplayUpdateFrequency controls how often the TUI display updates during
	// continuous execution (every N cycles, to keep the display responsive
	// without overwhelming the terminal).
	DisplayUpdateFrequency = 100
)

// Code View Context Constants
const (
	// CodeContextLinesBefore is the default number of cells to show before PC
	// in the full disassembly view.
	CodeContextLinesBefore = 20

	// CodeContextLinesAfter is the default number of cells to show after PC
	// in the full disassembly view.
	CodeContextLinesAfter = 80

	// CodeContextLinesBeforeCompact is the number of cells to show before PC
	// in compact views.
	CodeContextLinesBeforeCompact = 5

	// CodeContextLinesAfterCompact is the number of cells to show after PC
	// in compact views.
	CodeContextLinesAfterCompact = 10
)

// Memory Display Constants
const (
	// MemoryDisplayRows is the number of rows shown in the memory dump view.
	MemoryDisplayRows = 16

	// MemoryDisplayCellsPerRow is the number of memory cells per row in the
	// memory dump view.
	MemoryDisplayCellsPerRow = 5
)

// Register Display Constants
const (
	// RegisterViewRows is the fixed height of the register view panel: A, X,
	// I1-I6, J, plus a status line (overflow and comparison indicator).
	RegisterViewRows = 10

	// RegisterGroupSize is the number of registers displayed per row.
	RegisterGroupSize = 3
)
