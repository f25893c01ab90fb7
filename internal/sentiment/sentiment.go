package sentiment

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Score is a polarity/subjectivity pair. Polarity is in [-1, 1], negative to
// positive; subjectivity is in [0, 1], factual to opinionated.
type Score struct {
	Polarity     float64
	Subjectivity float64
}

// Analyzer estimates the sentiment of a text. It runs over the raw extracted
// content, not the cleaned token stream.
type Analyzer interface {
	Analyze(text string) Score
}

// Lexicon scores text with the VADER sentiment lexicon. Polarity is the
// compound score; subjectivity is the proportion of sentiment-bearing mass,
// i.e. everything the scorer did not judge neutral.
type Lexicon struct{}

func (Lexicon) Analyze(text string) Score {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	polarity := sentitext.PolarityScore(parsed)
	return Score{
		Polarity:     polarity.Compound,
		Subjectivity: polarity.Positive + polarity.Negative,
	}
}
