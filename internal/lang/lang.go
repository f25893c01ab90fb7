package lang

import "github.com/pemistahl/lingua-go"

// Detector guesses the language of extracted content so the pipeline can
// warn when a page is outside its English-only token resources. A limited
// candidate set keeps model loading cheap.
type Detector struct {
	inner lingua.LanguageDetector
}

func NewDetector() *Detector {
	candidates := []lingua.Language{
		lingua.English, lingua.French, lingua.German, lingua.Spanish,
		lingua.Italian, lingua.Portuguese, lingua.Dutch, lingua.Russian,
		lingua.Chinese, lingua.Japanese,
	}
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().FromLanguages(candidates...).Build(),
	}
}

// Detect returns the language name (e.g. "English") and whether detection
// was confident enough to report anything.
func (d *Detector) Detect(text string) (string, bool) {
	language, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return language.String(), true
}

func (d *Detector) IsEnglish(text string) bool {
	language, ok := d.inner.DetectLanguageOf(text)
	return ok && language == lingua.English
}
