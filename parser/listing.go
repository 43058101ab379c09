package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/knuth-mix/mixvm/opcode"
)

// Listing renders a Knuth-style assembly listing: one line per occupied
// memory cell, in address order, showing the cell's address, its encoded
// instruction (or CON/ALF word rendered the same way opcode.Disassemble
// renders an instruction), and any label bound to that address.
func (p *Program) Listing() string {
	addrs := make([]int, 0, len(p.Words))
	for addr := range p.Words {
		addrs = append(addrs, addr)
	}
	sort.Ints(addrs)

	labelAt := make(map[int]string)
	if p.Symbols != nil {
		for name, sym := range p.Symbols.All() {
			if sym.Defined && sym.Type == SymbolLabel {
				labelAt[sym.Value] = name
			}
		}
	}

	var sb strings.Builder
	for _, addr := range addrs {
		w := p.Words[addr]
		label := labelAt[addr]
		if label == "" {
			sb.WriteString(fmt.Sprintf("%04d  %s\n", addr, opcode.Disassemble(w)))
		} else {
			sb.WriteString(fmt.Sprintf("%04d  %-24s <%s>\n", addr, opcode.Disassemble(w), label))
		}
	}
	return sb.String()
}
