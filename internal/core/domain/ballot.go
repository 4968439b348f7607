package domain

import "maps"

type BallotState string

const (
	BallotNotVoted BallotState = "NOT_VOTED"
	BallotVoting   BallotState = "VOTING"
	BallotVoted    BallotState = "VOTED"
)

// Ballot maps a question id to the chosen option.
type Ballot map[string]string

func (b Ballot) Clone() Ballot {
	if b == nil {
		return Ballot{}
	}
	return maps.Clone(b)
}

// Answered counts the questions that have an answer in b. Answers to
// questions outside the list are ignored.
func (b Ballot) Answered(questions []Question) int {
	n := 0
	for _, q := range questions {
		if b[q.ID] != "" {
			n++
		}
	}
	return n
}

func (b Ballot) CompleteFor(questions []Question) bool {
	return b.Answered(questions) == len(questions)
}
