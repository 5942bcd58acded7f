// Package masker replaces parameter-shaped substrings of a log line's
// payload with sentinel placeholders, preserving delimiting punctuation
// via named-group back-references. It ports the nine ordered built-in
// rules from the original Python masking module, plus any per-format
// rules a LogParserConfig prepends.
package masker

import "regexp"

// Rule is a single ordered masking step: match pattern, sentinel
// replacement (using Go's $name back-reference syntax).
type Rule struct {
	Name        string
	pattern     *regexp.Regexp
	replacement string
}

// NewRule compiles a masking rule from a raw regex and replacement
// template. The replacement may use "$S"/"$E" (or any other named
// group defined in pattern) exactly as regexp.ReplaceAll does.
func NewRule(name, pattern, replacement string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, err
	}
	return Rule{Name: name, pattern: re, replacement: replacement}, nil
}

// MustRule is NewRule but panics on a bad pattern; used for the fixed
// built-in rule table in builtin.go, which is a compile-time constant.
func MustRule(name, pattern, replacement string) Rule {
	r, err := NewRule(name, pattern, replacement)
	if err != nil {
		panic(err)
	}
	return r
}

// Apply replaces every non-overlapping match of the rule's pattern in
// content with its replacement.
func (r Rule) Apply(content string) string {
	return r.pattern.ReplaceAllString(content, r.replacement)
}

// Masker applies an ordered list of rules to a line's payload.
type Masker struct {
	rules []Rule
}

// New builds a Masker. formatRules are applied first (most specific,
// e.g. a preset's "blk_-?\d+" -> "<§BLK§>"), followed by builtinRules
// if useBuiltin is true.
func New(formatRules []Rule, useBuiltin bool) *Masker {
	rules := make([]Rule, 0, len(formatRules)+len(BuiltinRules))
	rules = append(rules, formatRules...)
	if useBuiltin {
		rules = append(rules, BuiltinRules...)
	}
	return &Masker{rules: rules}
}

// Mask returns content with every rule applied in order.
func (m *Masker) Mask(content string) string {
	for _, r := range m.rules {
		content = r.Apply(content)
	}
	return content
}
