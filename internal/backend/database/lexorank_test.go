package database

import (
	"sort"
	"testing"
)

func TestNext(t *testing.T) {
	if got := Next(""); got != "U" {
		t.Fatalf("Next(\"\") = %q, want %q", got, "U")
	}
	if got := Next("U"); got != "UU" {
		t.Fatalf("Next(\"U\") = %q, want %q", got, "UU")
	}
}

func TestNext_ChainSortsInInsertionOrder(t *testing.T) {
	ranks := make([]string, 0, 10)
	prev := ""
	for i := 0; i < 10; i++ {
		prev = Next(prev)
		ranks = append(ranks, prev)
	}
	if !sort.StringsAreSorted(ranks) {
		t.Fatalf("ranks produced by Next are not sorted: %v", ranks)
	}
}
