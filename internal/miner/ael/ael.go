// Package ael implements the AEL (Abstracting Execution Logs) template
// mining algorithm: lines are binned by (token count, parameter
// count), grouped by exact token-sequence equality within each bin,
// and then — for bins that produced too many distinct clusters — one
// left-fold merge pass collapses near-duplicate clusters using
// Hamming distance over their templates.
package ael

import (
	"strings"

	"github.com/logtt/logtt/internal/logline"
	"github.com/logtt/logtt/internal/miner"
)

func init() {
	miner.Register("ael", func(exArgs map[string]any) (miner.Miner, error) {
		return &aelMiner{opts: decodeOptions(exArgs)}, nil
	})
}

const wildcard = "<*>"

type options struct {
	logClusterThr int
	mergeThr      float64
}

func decodeOptions(exArgs map[string]any) options {
	o := options{logClusterThr: 2, mergeThr: 0.5}
	if v, ok := exArgs["log_cluster_thr"]; ok {
		switch n := v.(type) {
		case int:
			o.logClusterThr = n
		case float64:
			o.logClusterThr = int(n)
		}
	}
	if v, ok := exArgs["merge_thr"]; ok {
		switch n := v.(type) {
		case float64:
			o.mergeThr = n
		case int:
			o.mergeThr = float64(n)
		}
	}
	return o
}

type aelMiner struct {
	opts options
}

func (m *aelMiner) Name() string { return "ael" }

type binKey struct {
	tokenCount     int
	parameterCount int
}

type initialCluster struct {
	template []string
	lineIDs  []int
	count    int
}

func (m *aelMiner) Mine(lines []logline.LogLine, shouldStop miner.ShouldStopFunc, progress miner.ProgressFunc) ([]miner.Assignment, []miner.Cluster, error) {
	bins := make(map[binKey]map[string]*initialCluster)
	discovered := make(map[binKey][]*initialCluster)

	for i, line := range lines {
		if shouldStop != nil && i%10000 == 0 && shouldStop() {
			return nil, nil, miner.ErrCancelled
		}
		if progress != nil && i > 0 && i%10000 == 0 {
			progress(i)
		}
		tokens := []string(line.Tokens)
		key := binKey{tokenCount: len(tokens), parameterCount: countParams(tokens)}
		group, ok := bins[key]
		if !ok {
			group = make(map[string]*initialCluster)
			bins[key] = group
		}
		sig := strings.Join(tokens, "\x1f")
		ic, ok := group[sig]
		if !ok {
			ic = &initialCluster{template: append([]string(nil), tokens...)}
			group[sig] = ic
			discovered[key] = append(discovered[key], ic)
		}
		ic.lineIDs = append(ic.lineIDs, line.LineID)
		ic.count++
	}

	if shouldStop != nil && shouldStop() {
		return nil, nil, miner.ErrCancelled
	}

	nextID := 0
	lineToCluster := make(map[int]int, len(lines))
	var clusters []miner.Cluster

	for key := range bins {
		initial := discovered[key]

		final := initial
		if len(initial) > m.opts.logClusterThr {
			final = m.mergePass(initial)
		}

		for _, ic := range final {
			nextID++
			clusters = append(clusters, miner.Cluster{ID: nextID, Template: logline.Content(ic.template), Count: ic.count})
			for _, lid := range ic.lineIDs {
				lineToCluster[lid] = nextID
			}
		}
	}

	if progress != nil {
		progress(len(lines))
	}

	assignments := make([]miner.Assignment, 0, len(lines))
	for _, line := range lines {
		assignments = append(assignments, miner.Assignment{LineID: line.LineID, ClusterID: lineToCluster[line.LineID]})
	}

	return assignments, clusters, nil
}

// mergePass folds each cluster, in discovery order, into the first
// already-accepted cluster within merge_thr Hamming distance, or
// starts a new accepted cluster if none qualifies.
func (m *aelMiner) mergePass(initial []*initialCluster) []*initialCluster {
	accepted := make([]*initialCluster, 0, len(initial))

	for _, ic := range initial {
		merged := false
		for _, acc := range accepted {
			if len(acc.template) != len(ic.template) {
				continue
			}
			dist := hammingDistance(acc.template, ic.template)
			length := len(acc.template)
			if length == 0 || float64(dist)/float64(length) <= m.opts.mergeThr {
				acc.template = foldTemplates(acc.template, ic.template)
				acc.lineIDs = append(acc.lineIDs, ic.lineIDs...)
				acc.count += ic.count
				merged = true
				break
			}
		}
		if !merged {
			accepted = append(accepted, ic)
		}
	}
	return accepted
}

func hammingDistance(a, b []string) int {
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

func foldTemplates(a, b []string) []string {
	out := make([]string, len(a))
	for i := range a {
		if a[i] == b[i] {
			out[i] = a[i]
		} else {
			out[i] = wildcard
		}
	}
	return out
}

func countParams(tokens []string) int {
	n := 0
	for _, t := range tokens {
		if isParamShaped(t) {
			n++
		}
	}
	return n
}

// isParamShaped reports whether t is one of the masker's own sentinel
// placeholders. BinKey's parameter_count only ever counts sentinel
// tokens — an unmasked literal that happens to contain a digit is not
// a parameter per the data model, and must not shift which bin a line
// lands in.
func isParamShaped(t string) bool {
	return strings.HasPrefix(t, "<§") && strings.HasSuffix(t, "§>")
}
