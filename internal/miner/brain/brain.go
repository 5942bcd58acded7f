// Package brain implements the Brain template-mining algorithm: lines
// are grouped by length, a per-column token-frequency table picks a
// "root" column (the most constant position in the line), and every
// other column is classified relative to the root's frequency and
// either generalized to a wildcard or kept literal.
package brain

import (
	"sort"
	"strings"

	"github.com/logtt/logtt/internal/logline"
	"github.com/logtt/logtt/internal/miner"
)

func init() {
	miner.Register("brain", func(exArgs map[string]any) (miner.Miner, error) {
		return &brainMiner{opts: decodeOptions(exArgs)}, nil
	})
}

const (
	wildcard = "<*>"
	alpha    = 0.5
)

type options struct {
	varThr int
}

func decodeOptions(exArgs map[string]any) options {
	o := options{varThr: 2}
	if v, ok := exArgs["var_thr"]; ok {
		switch n := v.(type) {
		case int:
			o.varThr = n
		case float64:
			o.varThr = int(n)
		}
	}
	return o
}

type brainMiner struct {
	opts options
}

func (m *brainMiner) Name() string { return "brain" }

func (m *brainMiner) Mine(lines []logline.LogLine, shouldStop miner.ShouldStopFunc, progress miner.ProgressFunc) ([]miner.Assignment, []miner.Cluster, error) {
	groups := make(map[int][]logline.LogLine)
	for i, line := range lines {
		if progress != nil && i > 0 && i%10000 == 0 {
			progress(i)
		}
		groups[len(line.Tokens)] = append(groups[len(line.Tokens)], line)
	}

	if shouldStop != nil && shouldStop() {
		return nil, nil, miner.ErrCancelled
	}

	type finalCluster struct {
		template []string
		lineIDs  []int
	}
	bySig := make(map[string]*finalCluster)
	var order []string

	for length, group := range groups {
		if shouldStop != nil && shouldStop() {
			return nil, nil, miner.ErrCancelled
		}
		wildcardCols := m.classifyColumns(group, length)

		for _, line := range group {
			tokens := []string(line.Tokens)
			tpl := make([]string, length)
			for c := 0; c < length; c++ {
				if wildcardCols[c] {
					tpl[c] = wildcard
				} else {
					tpl[c] = tokens[c]
				}
			}
			sig := strings.Join(tpl, "\x1f")
			fc, ok := bySig[sig]
			if !ok {
				fc = &finalCluster{template: tpl}
				bySig[sig] = fc
				order = append(order, sig)
			}
			fc.lineIDs = append(fc.lineIDs, line.LineID)
		}
	}

	if progress != nil {
		progress(len(lines))
	}

	lineToCluster := make(map[int]int, len(lines))
	clusters := make([]miner.Cluster, 0, len(order))
	for i, sig := range order {
		id := i + 1
		fc := bySig[sig]
		clusters = append(clusters, miner.Cluster{ID: id, Template: logline.Content(fc.template), Count: len(fc.lineIDs)})
		for _, lid := range fc.lineIDs {
			lineToCluster[lid] = id
		}
	}

	assignments := make([]miner.Assignment, 0, len(lines))
	for _, line := range lines {
		assignments = append(assignments, miner.Assignment{LineID: line.LineID, ClusterID: lineToCluster[line.LineID]})
	}

	return assignments, clusters, nil
}

// classifyColumns decides, for a fixed-length group of lines, which
// column indices should be generalized to a wildcard.
func (m *brainMiner) classifyColumns(group []logline.LogLine, length int) map[int]bool {
	columnCounts := make([]map[string]int, length)
	for c := range columnCounts {
		columnCounts[c] = make(map[string]int)
	}
	for _, line := range group {
		for c, tok := range line.Tokens {
			columnCounts[c][tok]++
		}
	}

	type colFreq struct {
		col  int
		freq int
	}
	freqs := make([]colFreq, length)
	for c := 0; c < length; c++ {
		maxFreq := 0
		for _, n := range columnCounts[c] {
			if n > maxFreq {
				maxFreq = n
			}
		}
		freqs[c] = colFreq{col: c, freq: maxFreq}
	}

	sorted := append([]colFreq(nil), freqs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].freq > sorted[j].freq })

	globalMax := 0
	if len(sorted) > 0 {
		globalMax = sorted[0].freq
	}
	threshold := alpha * float64(globalMax)

	rootCol := -1
	rootFreq := 0
	for _, cf := range sorted {
		if float64(cf.freq) >= threshold {
			rootCol = cf.col
			rootFreq = cf.freq
			break
		}
	}

	wildcardCols := make(map[int]bool, length)
	if rootCol == -1 {
		return wildcardCols
	}

	var childCols []colFreq
	for c := 0; c < length; c++ {
		if c == rootCol {
			continue
		}
		cf := freqs[c]
		distinct := len(columnCounts[c])
		if cf.freq > rootFreq {
			// parent column: more constant than the root itself.
			if distinct > 1 {
				wildcardCols[c] = true
			}
			continue
		}
		childCols = append(childCols, colFreq{col: c, freq: distinct})
	}

	sort.SliceStable(childCols, func(i, j int) bool { return childCols[i].freq < childCols[j].freq })
	for _, cf := range childCols {
		if cf.freq >= m.opts.varThr {
			wildcardCols[cf.col] = true
		}
	}

	return wildcardCols
}
