package tokenizer

import (
	"reflect"
	"testing"

	"github.com/logtt/logtt/internal/logline"
)

func TestTokenizeSplitsOnWhitespace(t *testing.T) {
	tok := New(nil)
	got := tok.Tokenize("Received block blk_123 of size 67108864")
	want := logline.Content{"Received", "block", "blk_123", "of", "size", "67108864"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeSplitsOnDelimiters(t *testing.T) {
	tok := New([]string{",", "="})
	got := tok.Tokenize("key=value,other=thing")
	want := logline.Content{"key", "=", "value", ",", "other", "=", "thing"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeIgnoresEmptyDelimiter(t *testing.T) {
	tok := New([]string{""})
	got := tok.Tokenize("a b")
	want := logline.Content{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
}
