package sentiment

import "testing"

func TestLexicon_PositiveText(t *testing.T) {
	s := Lexicon{}.Analyze("This is a wonderful, excellent article. I love it.")
	if s.Polarity <= 0 {
		t.Fatalf("expected positive polarity, got %v", s.Polarity)
	}
	if s.Subjectivity <= 0 || s.Subjectivity > 1 {
		t.Fatalf("expected subjectivity in (0, 1], got %v", s.Subjectivity)
	}
}

func TestLexicon_NegativeText(t *testing.T) {
	s := Lexicon{}.Analyze("This is a horrible, terrible failure. I hate it.")
	if s.Polarity >= 0 {
		t.Fatalf("expected negative polarity, got %v", s.Polarity)
	}
}

func TestLexicon_NeutralTextLowSubjectivity(t *testing.T) {
	s := Lexicon{}.Analyze("The train departs at noon from platform two.")
	if s.Subjectivity > 0.5 {
		t.Fatalf("expected low subjectivity for factual text, got %v", s.Subjectivity)
	}
}
