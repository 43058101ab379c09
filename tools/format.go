package tools

import (
	"strings"

	"github.com/knuth-mix/mixvm/parser"
)

// FormatStyle selects a column layout for Format.
type FormatStyle int

const (
	FormatDefault  FormatStyle = iota // Standard column widths
	FormatCompact                     // Single space between fields
	FormatExpanded                    // Wider columns for readability
)

// FormatOptions controls formatter column widths.
type FormatOptions struct {
	Style         FormatStyle
	LabelColumn   int // column the LOC field starts at (always 0)
	OpColumn      int // column the operation field starts at
	OperandColumn int // column the address field starts at
}

// DefaultFormatOptions returns the standard MIXAL column layout: LOC at 0,
// OP at 10, ADDRESS at 16, matching the fixed-width listing columns Knuth's
// assembler expects (§4.8 of the grammar).
func DefaultFormatOptions() *FormatOptions {
	return &FormatOptions{Style: FormatDefault, OpColumn: 10, OperandColumn: 16}
}

// CompactFormatOptions packs every field onto single-space boundaries.
func CompactFormatOptions() *FormatOptions {
	return &FormatOptions{Style: FormatCompact}
}

// ExpandedFormatOptions widens the operation and address columns.
func ExpandedFormatOptions() *FormatOptions {
	return &FormatOptions{Style: FormatExpanded, OpColumn: 12, OperandColumn: 24}
}

// Formatter reformats MIXAL source into fixed column positions. Unlike the
// assembler, it never evaluates expressions or resolves symbols -- it only
// retokenizes each line with parser.TokenizeLine and re-renders the LOC/OP/
// ADDRESS fields it finds, so it works on source with undefined forward
// references or outright semantic errors.
type Formatter struct {
	options *FormatOptions
}

// NewFormatter creates a Formatter. A nil options uses DefaultFormatOptions.
func NewFormatter(options *FormatOptions) *Formatter {
	if options == nil {
		options = DefaultFormatOptions()
	}
	return &Formatter{options: options}
}

// Format reformats input's lines into filename-attributed column positions.
// Blank and full-line-comment ('*') lines pass through unchanged.
func (f *Formatter) Format(input, filename string) (string, error) {
	var out strings.Builder
	for i, raw := range strings.Split(input, "\n") {
		pos := parser.Position{Filename: filename, Line: i + 1, Column: 1}
		line := parser.TokenizeLine(raw, pos)

		switch {
		case line.Blank:
			out.WriteString("\n")
		case line.Comment:
			out.WriteString(strings.TrimRight(raw, "\r"))
			out.WriteString("\n")
		default:
			out.WriteString(f.formatLine(line))
			out.WriteString("\n")
		}
	}
	return out.String(), nil
}

func (f *Formatter) formatLine(l *parser.Line) string {
	var sb strings.Builder

	if f.options.Style == FormatCompact {
		if l.Label != "" {
			sb.WriteString(l.Label)
			sb.WriteByte(' ')
		}
		sb.WriteString(l.Op)
		if l.Operand != "" {
			sb.WriteByte(' ')
			sb.WriteString(l.Operand)
		}
		return sb.String()
	}

	sb.WriteString(l.Label)
	padToColumn(&sb, f.options.OpColumn)
	sb.WriteString(l.Op)
	if l.Operand != "" {
		padToColumn(&sb, f.options.OperandColumn)
		sb.WriteString(l.Operand)
	}
	return sb.String()
}

// padToColumn pads sb with spaces until it reaches column, or a single
// space if sb has already passed it.
func padToColumn(sb *strings.Builder, column int) {
	if sb.Len() < column {
		sb.WriteString(strings.Repeat(" ", column-sb.Len()))
	} else {
		sb.WriteByte(' ')
	}
}

// FormatString formats input with the default column layout.
func FormatString(input, filename string) (string, error) {
	return NewFormatter(DefaultFormatOptions()).Format(input, filename)
}

// FormatStringWithStyle formats input with style's column layout.
func FormatStringWithStyle(input, filename string, style FormatStyle) (string, error) {
	var options *FormatOptions
	switch style {
	case FormatCompact:
		options = CompactFormatOptions()
	case FormatExpanded:
		options = ExpandedFormatOptions()
	default:
		options = DefaultFormatOptions()
	}
	return NewFormatter(options).Format(input, filename)
}
