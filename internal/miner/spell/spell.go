// Package spell implements the Spell template-mining algorithm: online
// longest-common-subsequence matching against a growing set of
// templates, accelerated by a coarse index so most lines never need a
// full LCS scan against every known template.
package spell

import (
	"github.com/logtt/logtt/internal/logline"
	"github.com/logtt/logtt/internal/miner"
)

func init() {
	miner.Register("spell", func(exArgs map[string]any) (miner.Miner, error) {
		return newMiner(decodeOptions(exArgs)), nil
	})
}

const wildcard = "<*>"

type options struct {
	simThr float64
}

func decodeOptions(exArgs map[string]any) options {
	o := options{simThr: 0.5}
	if v, ok := exArgs["sim_thr"]; ok {
		switch n := v.(type) {
		case float64:
			o.simThr = n
		case int:
			o.simThr = float64(n)
		}
	}
	return o
}

// template is a mined Spell cluster: its LCS "skeleton" (the
// subsequence shared by every line that matched it so far) and the
// fully generalized token template shown to callers.
type template struct {
	id       int
	lcs      []string
	rendered []string
	count    int
}

type spellMiner struct {
	opts options

	templates []*template
	nextID    int

	// index narrows candidates by (token count, first literal token),
	// the "tree" acceleration step of the match order described by
	// the algorithm: most repeat lines share both with their cluster.
	index map[indexKey][]*template
}

type indexKey struct {
	length int
	first  string
}

func newMiner(opts options) *spellMiner {
	return &spellMiner{opts: opts, index: make(map[indexKey][]*template)}
}

func (m *spellMiner) Name() string { return "spell" }

func (m *spellMiner) Mine(lines []logline.LogLine, shouldStop miner.ShouldStopFunc, progress miner.ProgressFunc) ([]miner.Assignment, []miner.Cluster, error) {
	assignments := make([]miner.Assignment, 0, len(lines))

	for i, line := range lines {
		if shouldStop != nil && shouldStop() {
			return nil, nil, miner.ErrCancelled
		}
		if progress != nil && i > 0 && i%10000 == 0 {
			progress(i)
		}

		id := m.mineLine([]string(line.Tokens))
		assignments = append(assignments, miner.Assignment{LineID: line.LineID, ClusterID: id})
	}
	if progress != nil {
		progress(len(lines))
	}

	out := make([]miner.Cluster, 0, len(m.templates))
	for _, t := range m.templates {
		out = append(out, miner.Cluster{ID: t.id, Template: logline.Content(t.rendered), Count: t.count})
	}
	return assignments, out, nil
}

func (m *spellMiner) mineLine(tokens []string) int {
	best, bestLCS := m.findBestMatch(tokens)

	minLCS := int(m.opts.simThr * float64(len(tokens)))
	if best != nil && len(bestLCS) >= minLCS {
		m.detach(best)
		best.lcs = bestLCS
		best.rendered = mergeRendered(best.rendered, renderTemplate(tokens, bestLCS))
		best.count++
		m.attach(best)
		return best.id
	}

	m.nextID++
	t := &template{id: m.nextID, lcs: append([]string(nil), tokens...), rendered: append([]string(nil), tokens...), count: 1}
	m.templates = append(m.templates, t)
	m.attach(t)
	return t.id
}

// findBestMatch runs the tree-accelerated candidate lookup first, then
// falls back to scanning every known template (the "subseq match"
// stage), computing a full LCS (the final stage) against each
// candidate and keeping the longest, tie-broken towards the shorter
// existing template.
func (m *spellMiner) findBestMatch(tokens []string) (*template, []string) {
	candidates := m.candidatesFor(tokens)
	if len(candidates) == 0 {
		candidates = m.templates
	}

	var best *template
	var bestLCS []string
	for _, t := range candidates {
		lcs := longestCommonSubsequence(t.lcs, tokens)
		if best == nil || len(lcs) > len(bestLCS) ||
			(len(lcs) == len(bestLCS) && len(t.lcs) < len(best.lcs)) {
			best = t
			bestLCS = lcs
		}
	}
	return best, bestLCS
}

func (m *spellMiner) candidatesFor(tokens []string) []*template {
	key := indexKeyFor(tokens)
	return m.index[key]
}

func (m *spellMiner) attach(t *template) {
	key := indexKeyFor(t.lcs)
	m.index[key] = append(m.index[key], t)
}

func (m *spellMiner) detach(t *template) {
	key := indexKeyFor(t.lcs)
	list := m.index[key]
	for i, c := range list {
		if c == t {
			m.index[key] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func indexKeyFor(tokens []string) indexKey {
	first := ""
	for _, t := range tokens {
		if t != wildcard {
			first = t
			break
		}
	}
	return indexKey{length: len(tokens), first: first}
}

// mergeRendered keeps a cluster's template from losing a wildcard
// position a previous, longer line established. A cluster's template
// never gets shorter: a render at least as long as the current
// template replaces it, and when the current line's own render comes
// up shorter (because it runs out of tokens right where the LCS ends),
// the positions it doesn't reach keep whatever the cluster already
// held there instead of being dropped.
func mergeRendered(old, newRendered []string) []string {
	if len(newRendered) >= len(old) {
		return newRendered
	}
	out := append([]string(nil), newRendered...)
	out = append(out, old[len(newRendered):]...)
	return out
}

// longestCommonSubsequence runs the classic O(n*m) dynamic program and
// reconstructs one longest subsequence.
func longestCommonSubsequence(a, b []string) []string {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	result := make([]string, dp[n][m])
	i, j := n, m
	for k := len(result) - 1; k >= 0; {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			result[k] = a[i-1]
			i--
			j--
			k--
		case i > 0 && (j == 0 || dp[i-1][j] >= dp[i][j-1]):
			i--
		default:
			j--
		}
	}
	return result
}

// renderTemplate walks line tokens in order, emitting a literal
// wherever it matches the next unconsumed LCS element and collapsing
// every run of non-matching tokens — including a trailing run once the
// LCS is exhausted — into a single wildcard.
func renderTemplate(tokens, lcs []string) []string {
	out := make([]string, 0, len(tokens))
	li := 0
	for _, t := range tokens {
		if li < len(lcs) && t == lcs[li] {
			out = append(out, t)
			li++
			continue
		}
		if len(out) == 0 || out[len(out)-1] != wildcard {
			out = append(out, wildcard)
		}
	}
	return out
}
