package domain

import "math"

const SameOpinionThreshold = 50

// AffinityScore is the percentage of questions on which both ballots hold
// the same answer, rounded to the nearest integer. A missing answer on either
// side never matches.
func AffinityScore(viewer, author Ballot, questions []Question) int {
	if len(questions) == 0 {
		return 0
	}
	matched := 0
	for _, q := range questions {
		mine := viewer[q.ID]
		if mine != "" && author[q.ID] == mine {
			matched++
		}
	}
	return int(math.Round(100 * float64(matched) / float64(len(questions))))
}

func AffinityLabel(score int) string {
	switch {
	case score >= 100:
		return "perfect match"
	case score >= 75:
		return "close match"
	case score >= 50:
		return "half match"
	case score >= 25:
		return "slightly different"
	default:
		return "opposite match"
	}
}
