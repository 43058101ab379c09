package tools

import (
	"strings"
	"testing"
)

func TestFormatString_Default(t *testing.T) {
	src := "LOOP ENTA 0,1\n DEC1 1\n J1NZ LOOP\n"
	out, err := FormatString(src, "test.mixal")
	if err != nil {
		t.Fatalf("FormatString failed: %v", err)
	}

	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "LOOP") {
		t.Errorf("expected first line to keep label LOOP, got %q", lines[0])
	}
	if !strings.Contains(lines[0], "ENTA") {
		t.Errorf("expected ENTA in formatted line, got %q", lines[0])
	}
	if !strings.Contains(lines[0], "0,1") {
		t.Errorf("expected operand 0,1 preserved, got %q", lines[0])
	}
}

func TestFormatString_NoLabel(t *testing.T) {
	src := " LDA 1000\n"
	out, err := FormatString(src, "test.mixal")
	if err != nil {
		t.Fatalf("FormatString failed: %v", err)
	}
	if !strings.HasPrefix(out, " ") {
		t.Errorf("expected label-less line indented to the op column, got %q", out)
	}
	if !strings.Contains(out, "LDA") {
		t.Errorf("expected LDA preserved, got %q", out)
	}
}

func TestFormatString_BlankAndComment(t *testing.T) {
	src := "\n* a full-line comment\n LDA 1000\n"
	out, err := FormatString(src, "test.mixal")
	if err != nil {
		t.Fatalf("FormatString failed: %v", err)
	}
	lines := strings.Split(out, "\n")
	if lines[0] != "" {
		t.Errorf("expected blank line preserved, got %q", lines[0])
	}
	if !strings.HasPrefix(strings.TrimLeft(lines[1], " "), "*") {
		t.Errorf("expected comment line preserved, got %q", lines[1])
	}
}

func TestFormatStringWithStyle_Compact(t *testing.T) {
	src := "LOOP ENTA 0,1\n"
	out, err := FormatStringWithStyle(src, "test.mixal", FormatCompact)
	if err != nil {
		t.Fatalf("FormatStringWithStyle failed: %v", err)
	}
	if !strings.Contains(out, "LOOP ENTA 0,1") {
		t.Errorf("expected single-spaced fields, got %q", out)
	}
}

func TestFormatStringWithStyle_Expanded(t *testing.T) {
	src := "LOOP ENTA 0,1\n"
	out, err := FormatStringWithStyle(src, "test.mixal", FormatExpanded)
	if err != nil {
		t.Fatalf("FormatStringWithStyle failed: %v", err)
	}
	idx := strings.Index(out, "ENTA")
	if idx < ExpandedFormatOptions().OpColumn {
		t.Errorf("expected ENTA at or after column %d, got column %d", ExpandedFormatOptions().OpColumn, idx)
	}
}

func TestNewFormatter_NilOptions(t *testing.T) {
	f := NewFormatter(nil)
	if f.options.Style != FormatDefault {
		t.Errorf("expected DefaultFormatOptions for nil options, got style %d", f.options.Style)
	}
}
