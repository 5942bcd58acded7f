package miner

import (
	"errors"
	"testing"
)

func TestRegisterAndNew(t *testing.T) {
	Register("test-echo", func(exArgs map[string]any) (Miner, error) {
		return nil, nil
	})
	m, err := New("test-echo", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m != nil {
		t.Fatalf("expected nil miner from the stub factory")
	}
}

func TestNewUnknownAlgorithm(t *testing.T) {
	_, err := New("does-not-exist", nil)
	if !errors.Is(err, ErrBadFormatSpec) {
		t.Fatalf("expected ErrBadFormatSpec, got %v", err)
	}
}

func TestClusterTemplateString(t *testing.T) {
	c := Cluster{Template: []string{"a", "<*>", "b"}}
	if got := c.TemplateString(); got != "a <*> b" {
		t.Fatalf("TemplateString() = %q", got)
	}
}
