package vm

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// TraceEntry is a single execution trace record.
type TraceEntry struct {
	Sequence        uint64
	PC              int
	Mnemonic        string
	RegisterChanges []string
	Overflow        bool
	Comparison      Comparison
	Duration        time.Duration
}

// ExecutionTrace records each executed instruction's PC, mnemonic, overflow
// toggle and comparison indicator, grounded on the teacher's own
// execution-trace shape. It does not fill TraceEntry.RegisterChanges;
// register changes are recorded by RegisterTrace.
type ExecutionTrace struct {
	Enabled       bool
	Writer        io.Writer
	IncludeTiming bool
	MaxEntries    int

	entries   []TraceEntry
	startTime time.Time
}

// NewExecutionTrace returns a trace that writes to w.
func NewExecutionTrace(w io.Writer) *ExecutionTrace {
	return &ExecutionTrace{
		Enabled:    true,
		Writer:     w,
		MaxEntries: 100000,
		entries:    make([]TraceEntry, 0, 1000),
	}
}

// Start resets the trace and begins timing.
func (t *ExecutionTrace) Start() {
	t.startTime = time.Now()
	t.entries = t.entries[:0]
}

// Record appends one instruction's trace entry. It takes no register
// snapshot and leaves RegisterChanges empty.
func (t *ExecutionTrace) Record(m *Machine, in Instruction) {
	if !t.Enabled || (t.MaxEntries > 0 && len(t.entries) >= t.MaxEntries) {
		return
	}
	entry := TraceEntry{
		Sequence:   m.Cycles,
		PC:         m.PC - 1,
		Mnemonic:   in.Mnemonic(),
		Overflow:   m.Overflow,
		Comparison: m.Comparison,
	}
	if t.IncludeTiming {
		entry.Duration = time.Since(t.startTime)
	}
	t.entries = append(t.entries, entry)
}

// Flush writes every buffered entry to Writer.
func (t *ExecutionTrace) Flush() error {
	if t.Writer == nil {
		return nil
	}
	for _, e := range t.entries {
		if err := t.writeEntry(e); err != nil {
			return err
		}
	}
	return nil
}

func (t *ExecutionTrace) writeEntry(e TraceEntry) error {
	line := fmt.Sprintf("[%06d] %04d: %-8s CMP=%-7s OV=%v", e.Sequence, e.PC, e.Mnemonic, e.Comparison, e.Overflow)
	if len(e.RegisterChanges) > 0 {
		line += " | " + strings.Join(e.RegisterChanges, " ")
	}
	if t.IncludeTiming {
		line += fmt.Sprintf(" | %v", e.Duration)
	}
	_, err := fmt.Fprintln(t.Writer, line)
	return err
}

// Entries returns every buffered trace entry.
func (t *ExecutionTrace) Entries() []TraceEntry { return t.entries }

// Clear empties the trace buffer.
func (t *ExecutionTrace) Clear() { t.entries = t.entries[:0] }
