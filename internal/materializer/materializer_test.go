package materializer

import (
	"testing"

	"github.com/logtt/logtt/internal/logline"
	"github.com/logtt/logtt/internal/miner"
)

func TestMaterializeBuildsBothRelations(t *testing.T) {
	lines := []logline.LogLine{
		{LineID: 1, RawContent: "Received block blk_1 of size 100"},
		{LineID: 2, RawContent: "Received block blk_2 of size 200"},
		{LineID: 3, RawContent: "Deleted block blk_3"},
	}
	assignments := []miner.Assignment{
		{LineID: 1, ClusterID: 1},
		{LineID: 2, ClusterID: 1},
		{LineID: 3, ClusterID: 2},
	}
	clusters := []miner.Cluster{
		{ID: 1, Template: logline.Content{"Received", "block", "<*>", "of", "size", "<*>"}, Count: 2},
		{ID: 2, Template: logline.Content{"Deleted", "block", "<*>"}, Count: 1},
	}

	structured, templates := Materialize(lines, assignments, clusters, false)
	if len(structured) != 3 {
		t.Fatalf("expected 3 structured rows, got %d", len(structured))
	}
	if structured[0].EventTemplate != "Received block <*> of size <*>" {
		t.Fatalf("unexpected template on row 0: %q", structured[0].EventTemplate)
	}
	if structured[0].ParameterList != nil {
		t.Fatalf("expected no parameter list when keepParams is false")
	}

	if len(templates) != 2 {
		t.Fatalf("expected 2 template rows, got %d", len(templates))
	}
	if templates[0].Occurrences < templates[1].Occurrences {
		t.Fatalf("expected templates sorted by descending occurrence count")
	}
	totalOccurrences := templates[0].Occurrences + templates[1].Occurrences
	if totalOccurrences != len(lines) {
		t.Fatalf("occurrence law violated: total occurrences %d != line count %d", totalOccurrences, len(lines))
	}
}

func TestMaterializeExtractsParameters(t *testing.T) {
	lines := []logline.LogLine{
		{LineID: 1, RawContent: "Received block blk_998877 of size 134217728"},
	}
	assignments := []miner.Assignment{{LineID: 1, ClusterID: 1}}
	clusters := []miner.Cluster{
		{ID: 1, Template: logline.Content{"Received", "block", "<*>", "of", "size", "<*>"}, Count: 1},
	}

	structured, _ := Materialize(lines, assignments, clusters, true)
	if len(structured[0].ParameterList) != 2 {
		t.Fatalf("expected 2 extracted parameters, got %v", structured[0].ParameterList)
	}
	if structured[0].ParameterList[0] != "blk_998877" || structured[0].ParameterList[1] != "134217728" {
		t.Fatalf("unexpected parameters: %v", structured[0].ParameterList)
	}
}

func TestMaterializeLongSentinelsDoNotExtract(t *testing.T) {
	lines := []logline.LogLine{
		{LineID: 1, RawContent: "disk usage at 50GB now"},
	}
	assignments := []miner.Assignment{{LineID: 1, ClusterID: 1}}
	clusters := []miner.Cluster{
		{ID: 1, Template: logline.Content{"disk", "usage", "at", "<§SIZE§>", "now"}, Count: 1},
	}

	structured, _ := Materialize(lines, assignments, clusters, true)
	if structured[0].ParameterList != nil {
		t.Fatalf("expected no parameter extraction for a long sentinel span, got %v", structured[0].ParameterList)
	}
}
