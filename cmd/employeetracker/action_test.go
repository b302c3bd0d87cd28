package main

import (
	"testing"
)

func TestParseAnswerPairs(t *testing.T) {
	answers, err := parseAnswerPairs([]string{"name = Engineering", "", "note=a=b"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if answers["name"] != "Engineering" {
		t.Fatalf("expected trimmed name, got %q", answers["name"])
	}
	if answers["note"] != "a=b" {
		t.Fatalf("expected value to keep later '=', got %q", answers["note"])
	}

	if _, err := parseAnswerPairs([]string{"missing-separator"}); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := parseAnswerPairs([]string{"=value"}); err == nil {
		t.Fatalf("expected error")
	}
}
