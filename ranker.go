package main

import (
	"sort"
	"time"
)

const (
	// minMatchScore is the hard floor: candidates scoring below it are
	// dropped from the result. Exactly 0.3 is kept.
	minMatchScore = 0.3
	// maxMatches caps the result after sorting.
	maxMatches = 20
)

// rankMatches filters, sorts and truncates the scored candidates into a
// MatchResult. TotalCandidates reports the pool size before the score floor,
// so clients can tell "few matches" apart from "few candidates". The sort is
// stable: ties keep their pool order within one computation.
func rankMatches(requesterID int, poolSize int, scores []MatchScore, now time.Time) *MatchResult {
	matches := make([]MatchScore, 0, len(scores))
	for _, s := range scores {
		if s.Score >= minMatchScore {
			matches = append(matches, s)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}

	return &MatchResult{
		UserID:          requesterID,
		Matches:         matches,
		SnapshotAt:      now,
		TotalCandidates: poolSize,
	}
}
