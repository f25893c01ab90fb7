package textproc

import "strings"

// DefaultMinLineWords is the cleaner's word-count threshold. Lines with this
// many words or fewer are discarded as noise.
const DefaultMinLineWords = 4

// CompactLines splits text on newlines, drops every segment whose
// whitespace-delimited word count is at or below minWords, and concatenates
// the survivors. No separator is inserted between surviving segments, so the
// end of one line can merge directly into the start of the next. That is the
// historical contract of this filter and callers depend on it verbatim.
func CompactLines(text string, minWords int) string {
	var b strings.Builder
	for _, segment := range strings.Split(text, "\n") {
		if len(strings.Fields(segment)) <= minWords {
			continue
		}
		b.WriteString(segment)
	}
	return b.String()
}
