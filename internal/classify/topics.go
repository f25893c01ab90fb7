package classify

// DefaultTopics is the stock topic list used when the caller supplies none.
// Each entry is a single word; the embedding backend decides what multi-word
// entries mean if a caller passes them anyway.
var DefaultTopics = []string{
	"automotive", "travel", "science", "technology",
	"nature", "sports", "business", "beauty", "fashion", "music", "art",
	"movie", "entertainment", "media", "children", "health", "gambling",
	"religion", "education", "politics", "history", "war", "news",
	"food", "literature", "crime", "analysis", "technical", "incident",
	"postmortem",
}
