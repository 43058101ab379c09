package parser

import (
	"os"
	"path/filepath"
)

// ParseFile reads and assembles a MIXAL source file. Returns the assembled
// program or an error; check parser.Errors() for any accumulated warnings.
func ParseFile(filePath string) (*Program, *Parser, error) {
	content, err := os.ReadFile(filePath) // #nosec G304 -- user-provided assembly file path
	if err != nil {
		return nil, nil, err
	}

	p := NewParser(string(content), filepath.Base(filePath))
	program, err := p.Parse()
	if err != nil {
		return nil, p, err
	}
	return program, p, nil
}
