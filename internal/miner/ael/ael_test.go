package ael

import (
	"strings"
	"testing"

	"github.com/logtt/logtt/internal/logline"
	"github.com/logtt/logtt/internal/miner"
)

func mkLines(contents ...string) []logline.LogLine {
	lines := make([]logline.LogLine, len(contents))
	for i, c := range contents {
		lines[i] = logline.LogLine{LineID: i + 1, Tokens: logline.Content(strings.Fields(c))}
	}
	return lines
}

func TestAELBinsByTokenAndParamCount(t *testing.T) {
	m := &aelMiner{opts: options{logClusterThr: 10, mergeThr: 0.5}}
	lines := mkLines(
		"start job <§NUM§> ok",
		"start job <§NUM§> ok",
		"stop worker now please",
	)

	assignments, clusters, err := m.Mine(lines, nil, nil)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters (different bins), got %d: %+v", len(clusters), clusters)
	}
	if assignments[0].ClusterID != assignments[1].ClusterID {
		t.Fatalf("expected the two identical lines in the same cluster")
	}
	if assignments[2].ClusterID == assignments[0].ClusterID {
		t.Fatalf("expected the differently-shaped line in a separate cluster")
	}
}

func TestParamCountOnlyCountsSentinels(t *testing.T) {
	tokens := []string{"start", "job", "v2", "ok"}
	if n := countParams(tokens); n != 0 {
		t.Fatalf("expected 0 params for a digit-bearing literal token that isn't a masker sentinel, got %d", n)
	}

	sentinels := []string{"start", "job", "<§NUM§>", "ok"}
	if n := countParams(sentinels); n != 1 {
		t.Fatalf("expected 1 param for a single masker sentinel token, got %d", n)
	}
}

func TestAELMergesWhenOverThreshold(t *testing.T) {
	m := &aelMiner{opts: options{logClusterThr: 1, mergeThr: 1.0}}
	lines := mkLines(
		"job alpha finished",
		"job beta finished",
		"job gamma finished",
	)

	_, clusters, err := m.Mine(lines, nil, nil)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}
	if len(clusters) != 1 {
		t.Fatalf("expected the bin's distinct clusters to merge into 1 with mergeThr=1.0, got %d: %+v", len(clusters), clusters)
	}
	if clusters[0].Count != 3 {
		t.Fatalf("expected merged count 3, got %d", clusters[0].Count)
	}
}

func TestAELDeterministicAcrossRuns(t *testing.T) {
	lines := mkLines(
		"alpha one",
		"alpha two",
		"beta three",
	)
	m1 := &aelMiner{opts: options{logClusterThr: 10, mergeThr: 0.5}}
	a1, c1, _ := m1.Mine(lines, nil, nil)

	m2 := &aelMiner{opts: options{logClusterThr: 10, mergeThr: 0.5}}
	a2, c2, _ := m2.Mine(lines, nil, nil)

	if len(c1) != len(c2) {
		t.Fatalf("non-deterministic cluster count: %d vs %d", len(c1), len(c2))
	}
	for i := range a1 {
		if (a1[i].ClusterID == a1[0].ClusterID) != (a2[i].ClusterID == a2[0].ClusterID) {
			t.Fatalf("non-deterministic assignment grouping between runs")
		}
	}
}

func TestAELRegistered(t *testing.T) {
	found := false
	for _, n := range miner.Names() {
		if n == "ael" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ael registered in the miner registry")
	}
}
