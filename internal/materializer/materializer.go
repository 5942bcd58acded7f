// Package materializer turns a miner's per-line cluster assignments
// into the two relations a parse job publishes: a structured relation
// (one row per line, annotated with its template and, optionally, its
// extracted parameter values) and a templates relation (each distinct
// template with its occurrence count, most frequent first).
package materializer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/logtt/logtt/internal/logline"
	"github.com/logtt/logtt/internal/miner"
)

// StructuredRow is one row of the structured relation.
type StructuredRow struct {
	LineID        int
	Header        map[string]string
	Content       string
	EventTemplate string
	ParameterList []string
}

// TemplateRow is one row of the templates relation.
type TemplateRow struct {
	EventTemplate string
	Occurrences   int
}

// Materialize builds both relations from a completed mining pass.
// keepParams controls whether ParameterList is populated; when false it
// is left nil so callers that don't need it skip the regex work.
func Materialize(lines []logline.LogLine, assignments []miner.Assignment, clusters []miner.Cluster, keepParams bool) ([]StructuredRow, []TemplateRow) {
	clusterByID := make(map[int]miner.Cluster, len(clusters))
	for _, c := range clusters {
		clusterByID[c.ID] = c
	}
	assignmentByLine := make(map[int]int, len(assignments))
	for _, a := range assignments {
		assignmentByLine[a.LineID] = a.ClusterID
	}

	extractors := make(map[int]*regexp.Regexp, len(clusters))

	structured := make([]StructuredRow, 0, len(lines))
	for _, line := range lines {
		clusterID := assignmentByLine[line.LineID]
		c := clusterByID[clusterID]
		tmplStr := c.TemplateString()

		row := StructuredRow{
			LineID:        line.LineID,
			Header:        line.Header,
			Content:       line.RawContent,
			EventTemplate: tmplStr,
		}
		if keepParams {
			re, ok := extractors[clusterID]
			if !ok {
				re = buildExtractionRegex(tmplStr)
				extractors[clusterID] = re
			}
			if re != nil {
				if m := re.FindStringSubmatch(line.RawContent); m != nil {
					row.ParameterList = append([]string(nil), m[1:]...)
				}
			}
		}
		structured = append(structured, row)
	}

	counts := make(map[string]int)
	for _, c := range clusters {
		counts[c.TemplateString()] += c.Count
	}
	templates := make([]TemplateRow, 0, len(counts))
	for tmpl, n := range counts {
		templates = append(templates, TemplateRow{EventTemplate: tmpl, Occurrences: n})
	}
	sort.SliceStable(templates, func(i, j int) bool { return templates[i].Occurrences > templates[j].Occurrences })

	return structured, templates
}

var placeholderRegexp = regexp.MustCompile(`<[^<>]+>`)

// buildExtractionRegex turns a template string into a regex that, run
// against a line's raw (unmasked) content, recovers the parameter
// values the template generalized away. Placeholder spans whose inner
// text is short (<=5 characters, matching "<*>" and the masker's
// shortest sentinel names) are unified into a single capture-group
// marker before the rest of the template is escaped literally; longer
// placeholder spans are left as literal text, which is an intentional,
// lossy simplification inherited from the original reconstruction
// rule rather than a guarantee every sentinel round-trips.
func buildExtractionRegex(template string) *regexp.Regexp {
	collapsed := placeholderRegexp.ReplaceAllStringFunc(template, func(match string) string {
		inner := match[1 : len(match)-1]
		if utf8.RuneCountInString(inner) <= 5 {
			return "<*>"
		}
		return match
	})

	escaped := regexp.QuoteMeta(collapsed)
	placeholder := regexp.QuoteMeta("<*>")
	replaced := strings.ReplaceAll(escaped, placeholder, "(.*?)")

	re, err := regexp.Compile("^" + replaced + "$")
	if err != nil {
		return nil
	}
	return re
}
