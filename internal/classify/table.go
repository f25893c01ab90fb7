package classify

import "sort"

// Score is one row of the ranked result table.
type Score struct {
	Rank       int
	Topic      string
	Similarity float64
}

// rankScores orders rows by similarity descending and renumbers ranks from
// zero. The sort is stable: topics with equal similarity keep the relative
// order they were supplied in.
func rankScores(rows []Score) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Similarity > rows[j].Similarity
	})
	for i := range rows {
		rows[i].Rank = i
	}
}
