// Package clioutput renders parse results (templates and structured
// rows) to the CLI in text, JSON, or table form, and colorizes
// warnings/progress lines when writing to a terminal.
package clioutput

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/logtt/logtt/internal/materializer"
)

// Format is an output rendering mode.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat converts a string to a Format, defaulting to text.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// Writer renders parse results in a configured format.
type Writer struct {
	w      io.Writer
	format Format
}

// New creates a Writer.
func New(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format}
}

// WriteJSON outputs any value as indented JSON.
func (wr *Writer) WriteJSON(v any) error {
	enc := json.NewEncoder(wr.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteTemplates outputs the templates relation.
func (wr *Writer) WriteTemplates(rows []materializer.TemplateRow) error {
	switch wr.format {
	case FormatJSON:
		return wr.WriteJSON(rows)
	case FormatTable:
		return wr.writeTemplatesTable(rows)
	default:
		return wr.writeTemplatesText(rows)
	}
}

func (wr *Writer) writeTemplatesText(rows []materializer.TemplateRow) error {
	for _, r := range rows {
		fmt.Fprintf(wr.w, "%6d  %s\n", r.Occurrences, r.EventTemplate)
	}
	return nil
}

func (wr *Writer) writeTemplatesTable(rows []materializer.TemplateRow) error {
	tw := tabwriter.NewWriter(wr.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OCCURRENCES\tTEMPLATE")
	fmt.Fprintln(tw, "-----------\t--------")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\n", r.Occurrences, r.EventTemplate)
	}
	return tw.Flush()
}

// WriteStructured outputs the structured relation.
func (wr *Writer) WriteStructured(rows []materializer.StructuredRow) error {
	switch wr.format {
	case FormatJSON:
		return wr.WriteJSON(rows)
	case FormatTable:
		return wr.writeStructuredTable(rows)
	default:
		return wr.writeStructuredText(rows)
	}
}

func (wr *Writer) writeStructuredText(rows []materializer.StructuredRow) error {
	for _, r := range rows {
		fmt.Fprintf(wr.w, "%d\t%s\n", r.LineID, r.EventTemplate)
	}
	return nil
}

func (wr *Writer) writeStructuredTable(rows []materializer.StructuredRow) error {
	tw := tabwriter.NewWriter(wr.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tTEMPLATE\tCONTENT")
	fmt.Fprintln(tw, "----\t--------\t-------")
	for _, r := range rows {
		content := r.Content
		if len(content) > 80 {
			content = content[:77] + "..."
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.LineID, r.EventTemplate, content)
	}
	return tw.Flush()
}
