package brain

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

func TestBrainSplitsOnVariableColumn(t *testing.T) {
	m := &brainMiner{opts: options{varThr: 3}}
	lines := mkLines(
		"open file one ok",
		"open file one ok",
		"open file one ok",
		"close file one ok",
	)

	assignments, clusters, err := m.Mine(lines, nil, nil)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters (open vs close), got %d: %+v", len(clusters), clusters)
	}

	var openCount, closeCount int
	for _, c := range clusters {
		if c.Template[0] == "open" {
			openCount = c.Count
		}
		if c.Template[0] == "close" {
			closeCount = c.Count
		}
	}
	if openCount != 3 || closeCount != 1 {
		t.Fatalf("expected counts open=3 close=1, got open=%d close=%d", openCount, closeCount)
	}
	_ = assignments
}

func TestBrainGroupsOnlySameLengthLines(t *testing.T) {
	m := &brainMiner{opts: options{varThr: 2}}
	lines := mkLines(
		"short line",
		"a much longer line here",
	)

	_, clusters, err := m.Mine(lines, nil, nil)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}
	if len(clusters) != 2 {
		t.Fatalf("expected lines of different length to never share a cluster, got %d", len(clusters))
	}
}

func TestBrainRegistered(t *testing.T) {
	found := false
	for _, n := range miner.Names() {
		if n == "brain" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected brain registered in the miner registry")
	}
}
