package reader

import (
	"errors"
	"strings"
	"testing"
)

func TestStreamCallsFnPerLine(t *testing.T) {
	var lines []string
	var nums []int
	err := Stream(strings.NewReader("one\ntwo\nthree\n"), func(lineNum int, raw string) error {
		nums = append(nums, lineNum)
		lines = append(lines, raw)
		return nil
	})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	if len(lines) != 3 || lines[0] != "one" || lines[1] != "two" || lines[2] != "three" {
		t.Fatalf("unexpected lines: %v", lines)
	}
	if nums[0] != 1 || nums[1] != 2 || nums[2] != 3 {
		t.Fatalf("unexpected line numbers: %v", nums)
	}
}

func TestStreamPropagatesCallbackError(t *testing.T) {
	stopErr := errors.New("stop")
	seen := 0
	err := Stream(strings.NewReader("a\nb\nc\n"), func(lineNum int, raw string) error {
		seen++
		if lineNum == 2 {
			return stopErr
		}
		return nil
	})
	if !errors.Is(err, stopErr) {
		t.Fatalf("expected stopErr, got %v", err)
	}
	if seen != 2 {
		t.Fatalf("expected streaming to stop after line 2, saw %d lines", seen)
	}
}

func TestStreamFileMissing(t *testing.T) {
	err := StreamFile("/nonexistent/path/does-not-exist.log", func(int, string) error { return nil })
	if err == nil {
		t.Fatalf("expected an error opening a missing file")
	}
}
