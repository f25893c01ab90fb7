package textproc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/mingrammer/commonregex"
	"golang.org/x/text/unicode/norm"
)

// Normalizer tokenizes cleaned article text into lowercase lemmas. Construct
// once and reuse; loading the lemma dictionary is the expensive part and the
// resulting value is read-only afterwards.
type Normalizer struct {
	lemmatizer *golem.Lemmatizer
}

func NewNormalizer() (*Normalizer, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load lemma dictionary: %w", err)
	}
	return &Normalizer{lemmatizer: lem}, nil
}

// Tokens splits text on whitespace and runs each token through the filter
// chain, then lemmatizes the survivors. Order matches the input and
// duplicates are retained. Tokens with no dictionary root keep their
// lowercased surface form.
func (n *Normalizer) Tokens(text string) []string {
	var out []string
	for _, tok := range strings.Fields(norm.NFC.String(text)) {
		word, keep := filterToken(tok)
		if !keep {
			continue
		}
		out = append(out, n.lemmatizer.Lemma(word))
	}
	return out
}

// filterToken applies the exclusion predicates in fixed priority order:
// URL-like, @-mention, #-hashtag, punctuation, numeric-like, stopword.
// The first matching predicate discards the token. Survivors are lowercased
// with surrounding punctuation stripped.
func filterToken(tok string) (string, bool) {
	if looksLikeURL(tok) {
		return "", false
	}
	if strings.HasPrefix(tok, "@") {
		return "", false
	}
	if strings.HasPrefix(tok, "#") {
		return "", false
	}
	trimmed := strings.TrimFunc(tok, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	if trimmed == "" {
		// pure punctuation
		return "", false
	}
	if isNumeric(trimmed) {
		return "", false
	}
	lower := strings.ToLower(trimmed)
	if stopwords[lower] {
		return "", false
	}
	return lower, true
}

func looksLikeURL(tok string) bool {
	return commonregex.LinkRegex.MatchString(tok)
}

// numberWords mirrors the "looks like a number" notion of common NLP
// tokenizers, which treat spelled-out small numbers as numeric too.
var numberWords = map[string]bool{
	"zero": true, "one": true, "two": true, "three": true, "four": true,
	"five": true, "six": true, "seven": true, "eight": true, "nine": true,
	"ten": true, "eleven": true, "twelve": true, "hundred": true,
	"thousand": true, "million": true, "billion": true, "trillion": true,
}

func isNumeric(tok string) bool {
	if _, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64); err == nil {
		return true
	}
	return numberWords[strings.ToLower(tok)]
}
