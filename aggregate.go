package main

import (
	"math"
	"time"
)

// FactorWeights holds the fixed weight of each compatibility factor. The six
// weights sum to 1.0, which keeps the aggregate score inside [0,1].
type FactorWeights struct {
	Interest  float64
	Age       float64
	MBTI      float64
	Location  float64
	Activity  float64
	Lifestyle float64
}

// defaultWeights is the production weighting. Passed into the aggregator as
// one value rather than scattered literals so the weighted-sum contract stays
// testable in isolation.
var defaultWeights = FactorWeights{
	Interest:  0.30,
	Age:       0.20,
	MBTI:      0.15,
	Location:  0.15,
	Activity:  0.10,
	Lifestyle: 0.10,
}

const maxDisplayInterests = 3

// scoreCandidate computes all six factor scores for the pair, combines them
// with the given weights and builds the candidate's display projection.
func scoreCandidate(requester, candidate *UserProfile, weights FactorWeights, now time.Time) MatchScore {
	sum := interestScore(requester.Interests, candidate.Interests)*weights.Interest +
		ageScore(requester.Age, candidate.Age)*weights.Age +
		mbtiScore(requester.MBTI, candidate.MBTI)*weights.MBTI +
		locationScore(requester.Location, candidate.Location)*weights.Location +
		activityScore(candidate.LastActiveAt, now)*weights.Activity +
		lifestyleScore(requester, candidate)*weights.Lifestyle

	interests := candidate.Interests
	if len(interests) > maxDisplayInterests {
		interests = interests[:maxDisplayInterests]
	}
	mbti := ""
	if candidate.MBTI != nil {
		mbti = *candidate.MBTI
	}

	return MatchScore{
		CandidateID:     candidate.ID,
		Nickname:        candidate.Nickname,
		Age:             candidate.Age,
		MBTI:            mbti,
		Interests:       interests,
		ProfileImageURL: candidate.ProfileImageURL,
		Score:           roundScore(sum),
	}
}

// roundScore rounds to 3 decimal places, half away from zero.
func roundScore(s float64) float64 {
	return math.Round(s*1000) / 1000
}
