package vm

import (
	"fmt"
	"io"
	"sort"
)

// RegisterAccessType distinguishes a register write from a read.
type RegisterAccessType string

const (
	RegisterRead  RegisterAccessType = "READ"
	RegisterWrite RegisterAccessType = "WRITE"
)

// RegisterAccessEntry is a single recorded register write.
type RegisterAccessEntry struct {
	Sequence uint64
	PC       int
	Register string
	OldValue int64
	NewValue int64
}

// RegisterStats tracks write activity for one register.
type RegisterStats struct {
	Name       string
	WriteCount uint64
	LastValue  int64
}

// RegisterTrace records which registers each instruction changed, the basis
// for the debugger's "what did that instruction touch" view.
type RegisterTrace struct {
	Enabled bool
	Writer  io.Writer

	entries []RegisterAccessEntry
	stats   map[string]*RegisterStats
}

// NewRegisterTrace returns a trace that writes to w.
func NewRegisterTrace(w io.Writer) *RegisterTrace {
	return &RegisterTrace{
		Enabled: true,
		Writer:  w,
		stats:   make(map[string]*RegisterStats),
	}
}

// Record compares before against the machine's post-execution state and logs
// every register that changed.
func (t *RegisterTrace) Record(m *Machine, in Instruction, before *RegisterSnapshot) {
	if !t.Enabled {
		return
	}
	var after RegisterSnapshot
	after.Capture(m)
	for _, name := range after.Changed(before) {
		t.entries = append(t.entries, RegisterAccessEntry{
			Sequence: m.Cycles,
			PC:       m.PC - 1,
			Register: name,
		})
		s, ok := t.stats[name]
		if !ok {
			s = &RegisterStats{Name: name}
			t.stats[name] = s
		}
		s.WriteCount++
	}
}

// Entries returns every recorded register-change event.
func (t *RegisterTrace) Entries() []RegisterAccessEntry { return t.entries }

// Summary returns per-register write counts sorted by register name.
func (t *RegisterTrace) Summary() []*RegisterStats {
	out := make([]*RegisterStats, 0, len(t.stats))
	for _, s := range t.stats {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Flush writes a one-line-per-access log to Writer.
func (t *RegisterTrace) Flush() error {
	if t.Writer == nil {
		return nil
	}
	for _, e := range t.entries {
		if _, err := fmt.Fprintf(t.Writer, "[%06d] %04d: %s written\n", e.Sequence, e.PC, e.Register); err != nil {
			return err
		}
	}
	return nil
}
