package drain

import "strings"

// isVariableToken reports whether a token already looks like a
// parameter after masking — either one of the masker's own sentinel
// placeholders, or a wildcard already produced by a previous merge.
// Tokens like this route straight into a wildcard tree edge instead of
// growing the tree with a distinct child per observed value.
func isVariableToken(tok string) bool {
	if tok == wildcardKey {
		return true
	}
	return strings.HasPrefix(tok, "<§") && strings.HasSuffix(tok, "§>")
}
