package pool

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/logtt/logtt/internal/logconfig"
	"github.com/logtt/logtt/internal/storage/memory"

	_ "github.com/logtt/logtt/internal/miner/drain"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestPoolRunsJobEndToEnd(t *testing.T) {
	path := writeLog(t, "081109 203615 INFO: Received block blk_1 of size 100\n081109 203616 INFO: Received block blk_2 of size 200\n")
	store := memory.New()
	p := New(2, store)

	job := Job{
		FilePath:        path,
		Algorithm:       "drain",
		Config:          logconfig.LogParserConfig{LogFormat: "<Date> <Time> <Level>: <Content>", UseBuiltinMasking: true},
		StructuredTable: "t.structured",
		TemplatesTable:  "t.templates",
	}
	id, err := p.Submit(job)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	go p.Wait()

	var gotID string
	found := false
	for ev := range p.Events() {
		gotID = ev.JobID
		if ev.Kind == EventError {
			t.Fatalf("job failed: %v", ev.Err)
		}
		if ev.LineCount != 2 {
			t.Fatalf("expected 2 lines, got %d", ev.LineCount)
		}
		found = true
	}
	if !found {
		t.Fatalf("expected at least one event")
	}
	if gotID != id {
		t.Fatalf("event job id mismatch: %s vs %s", gotID, id)
	}

	templates, ok := store.Templates("t.templates")
	if !ok {
		t.Fatalf("expected templates table to be published")
	}
	if len(templates) != 1 {
		t.Fatalf("expected the two similar lines to mine into 1 template, got %d", len(templates))
	}
	if templates[0].Occurrences != 2 {
		t.Fatalf("expected occurrence count 2, got %d", templates[0].Occurrences)
	}
}

func TestPoolLineIDsAreContiguousOverAcceptedLines(t *testing.T) {
	path := writeLog(t, strings.Join([]string{
		"081109 203615 INFO: Received block blk_1 of size 100",
		"this line does not match the format and is dropped",
		"081109 203617 INFO: Received block blk_2 of size 200",
	}, "\n") + "\n")
	store := memory.New()
	p := New(1, store)

	job := Job{
		FilePath:        path,
		Algorithm:       "drain",
		Config:          logconfig.LogParserConfig{LogFormat: "<Date> <Time> <Level>: <Content>", UseBuiltinMasking: true},
		StructuredTable: "gap.structured",
		TemplatesTable:  "gap.templates",
	}
	if _, err := p.Submit(job); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	go p.Wait()

	for ev := range p.Events() {
		if ev.Kind == EventError {
			t.Fatalf("job failed: %v", ev.Err)
		}
		if ev.LineCount != 2 {
			t.Fatalf("expected 2 accepted lines, got %d", ev.LineCount)
		}
	}

	rows, ok := store.Structured("gap.structured")
	if !ok {
		t.Fatalf("expected structured table to be published")
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 structured rows, got %d", len(rows))
	}
	for i, row := range rows {
		want := i + 1
		if row.LineID != want {
			t.Fatalf("expected contiguous LineId over accepted lines only, row %d has LineId %d, want %d", i, row.LineID, want)
		}
	}
}

func TestPoolKillRefusesNewSubmits(t *testing.T) {
	store := memory.New()
	p := New(1, store)
	p.Kill()

	_, err := p.Submit(Job{})
	if err == nil {
		t.Fatalf("expected Submit to fail after Kill")
	}
}

func TestPoolBadFormatSpecPropagatesAsError(t *testing.T) {
	path := writeLog(t, "hello\n")
	store := memory.New()
	p := New(1, store)

	job := Job{
		FilePath:        path,
		Algorithm:       "drain",
		Config:          logconfig.LogParserConfig{LogFormat: "<Date> <Time>", UseBuiltinMasking: true},
		StructuredTable: "bad.structured",
		TemplatesTable:  "bad.templates",
	}
	if _, err := p.Submit(job); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	go p.Wait()

	ev := <-p.Events()
	if ev.Kind != EventError {
		t.Fatalf("expected an error event for a format with no <Content> field")
	}
}
