package headerparser

import (
	"errors"
	"testing"
)

func TestCompileRequiresContent(t *testing.T) {
	_, err := Compile("<Date> <Time> <Level>")
	if !errors.Is(err, ErrBadFormatSpec) {
		t.Fatalf("expected ErrBadFormatSpec, got %v", err)
	}
}

func TestParseSplitsFields(t *testing.T) {
	p, err := Compile("<Date> <Time> <Level>: <Content>")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	header, content, ok := p.Parse("081109 203615 INFO: Received block blk_123 of size 67108864")
	if !ok {
		t.Fatalf("expected line to match")
	}
	if header["Date"] != "081109" || header["Time"] != "203615" || header["Level"] != "INFO" {
		t.Fatalf("unexpected header: %+v", header)
	}
	want := "Received block blk_123 of size 67108864"
	if content != want {
		t.Fatalf("content = %q, want %q", content, want)
	}
}

func TestParseCollapsesIrregularWhitespace(t *testing.T) {
	p, err := Compile("<Date>  <Time>: <Content>")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	// Extra padding between fields should still match thanks to \s+.
	_, _, ok := p.Parse("081109     203615:  hello world")
	if !ok {
		t.Fatalf("expected irregular whitespace to still match")
	}
}

func TestParseRejectsNonMatchingLine(t *testing.T) {
	p, err := Compile("<Date> <Time>: <Content>")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	_, _, ok := p.Parse("this does not look like the format at all")
	if ok {
		t.Fatalf("expected non-matching line to be rejected")
	}
}
