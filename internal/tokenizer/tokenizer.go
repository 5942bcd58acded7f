// Package tokenizer splits a masked log payload into tokens, splitting
// every configured delimiter literal out as a token of its own.
package tokenizer

import (
	"strings"

	"github.com/logtt/logtt/internal/logline"
)

// Tokenizer splits masked content into tokens using a fixed list of
// extra delimiter literals.
type Tokenizer struct {
	delimiters []string
}

// New builds a Tokenizer over the given delimiter literals.
func New(delimiters []string) *Tokenizer {
	cp := make([]string, len(delimiters))
	copy(cp, delimiters)
	return &Tokenizer{delimiters: cp}
}

// Tokenize rewrites every configured delimiter "d" in content to " d "
// before splitting on whitespace, so a delimiter glued to its
// neighboring tokens becomes a separate token ("key=value" becomes
// "key", "=", "value"). Empty fields created by the split are
// discarded.
func (t *Tokenizer) Tokenize(content string) logline.Content {
	for _, d := range t.delimiters {
		if d == "" {
			continue
		}
		content = strings.ReplaceAll(content, d, " "+d+" ")
	}
	fields := strings.Fields(content)
	tokens := make(logline.Content, len(fields))
	copy(tokens, fields)
	return tokens
}
