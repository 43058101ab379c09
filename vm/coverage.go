package vm

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// CoverageEntry tracks how often one memory cell was executed as an
// instruction.
type CoverageEntry struct {
	Address        int    `json:"address"`
	ExecutionCount uint64 `json:"count"`
}

// CodeCoverage tracks which memory cells have been executed, for "did my
// assembled program's every instruction run at least once" checks.
type CodeCoverage struct {
	Enabled bool
	Writer  io.Writer

	executed map[int]uint64
}

// NewCodeCoverage returns a coverage tracker writing reports to w.
func NewCodeCoverage(w io.Writer) *CodeCoverage {
	return &CodeCoverage{Enabled: true, Writer: w, executed: make(map[int]uint64)}
}

// RecordAt tallies execution of the instruction fetched from pc.
func (c *CodeCoverage) RecordAt(pc int) {
	if !c.Enabled {
		return
	}
	c.executed[pc]++
}

// Covered reports whether cell was ever executed.
func (c *CodeCoverage) Covered(cell int) bool {
	_, ok := c.executed[cell]
	return ok
}

// Uncovered returns, of the given candidate cells, those never executed --
// used to report dead code in an assembled program.
func (c *CodeCoverage) Uncovered(candidates []int) []int {
	var out []int
	for _, addr := range candidates {
		if !c.Covered(addr) {
			out = append(out, addr)
		}
	}
	sort.Ints(out)
	return out
}

// WriteJSON writes the per-cell execution counts as JSON to w.
func (c *CodeCoverage) WriteJSON(w io.Writer) error {
	entries := make([]CoverageEntry, 0, len(c.executed))
	for addr, count := range c.executed {
		entries = append(entries, CoverageEntry{Address: addr, ExecutionCount: count})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Address < entries[j].Address })
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// WriteReport writes a human-readable summary to w.
func (c *CodeCoverage) WriteReport(w io.Writer) error {
	_, err := fmt.Fprintf(w, "cells executed: %d\n", len(c.executed))
	return err
}
