package textproc

import (
	"reflect"
	"strings"
	"testing"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	n, err := NewNormalizer()
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	return n
}

func TestTokens_FiltersNoise(t *testing.T) {
	n := newTestNormalizer(t)
	in := "Visit https://example.com for details @alice #trending 2023 !!! The quick brown foxes jumped"
	got := n.Tokens(in)
	want := []string{"visit", "detail", "quick", "brown", "fox", "jump"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokens_OrderAndDuplicatesRetained(t *testing.T) {
	n := newTestNormalizer(t)
	got := n.Tokens("cars trucks cars")
	want := []string{"car", "truck", "car"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokens_RetokenizingJoinedOutputIsStable(t *testing.T) {
	n := newTestNormalizer(t)
	first := n.Tokens("Electric cars are becoming increasingly popular worldwide.")
	second := n.Tokens(strings.Join(first, " "))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("retokenized output differs: %v vs %v", first, second)
	}
}

func TestTokens_EmptyInput(t *testing.T) {
	n := newTestNormalizer(t)
	if got := n.Tokens(""); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
}

func TestTokens_NumericAndNumberWords(t *testing.T) {
	n := newTestNormalizer(t)
	got := n.Tokens("ten engineers shipped 1,234.5 features")
	want := []string{"engineer", "ship", "feature"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFilterToken_PriorityOrder(t *testing.T) {
	cases := []struct {
		in   string
		keep bool
	}{
		{"https://example.com/page", false},
		{"@mention", false},
		{"#hashtag", false},
		{"...", false},
		{"42", false},
		{"3.14", false},
		{"the", false},
		{"Word.", true},
	}
	for _, tc := range cases {
		word, keep := filterToken(tc.in)
		if keep != tc.keep {
			t.Fatalf("filterToken(%q): keep=%v, want %v", tc.in, keep, tc.keep)
		}
		if keep && word != "word" {
			t.Fatalf("filterToken(%q): got %q, want lowercased trimmed form", tc.in, word)
		}
	}
}
