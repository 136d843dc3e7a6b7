package main

import (
	"math"
	"strings"
	"time"
)

// Each factor scorer is a pure function mapping a (requester, candidate) pair
// to a score in [0,1]. Missing optional data never raises; every scorer has an
// explicit neutral fallback.

// mbtiComplements maps a requester's type to its ideal complementary types.
// The table is directional and intentionally covers only 8 of the 16 types;
// do not symmetrize it.
var mbtiComplements = map[string][]string{
	"ENFP": {"INTJ", "INFJ"},
	"INFP": {"ENFJ", "ENTJ"},
	"ENFJ": {"INFP", "ISFP"},
	"INFJ": {"ENFP", "ENTP"},
	"ENTP": {"INFJ", "INTJ"},
	"INTP": {"ENTJ", "ESTJ"},
	"ENTJ": {"INTP", "INFP"},
	"INTJ": {"ENFP", "ENTP"},
}

// interestScore is the Jaccard index over the two interest sets.
// Both sets empty means "no information", scored neutral at 0.5.
func interestScore(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.5
	}

	seen := make(map[string]struct{}, len(a))
	for _, interest := range a {
		seen[interest] = struct{}{}
	}

	intersection := 0
	union := len(seen)
	for _, interest := range b {
		if _, ok := seen[interest]; ok {
			intersection++
		} else {
			union++
			seen[interest] = struct{}{}
		}
	}

	// Unreachable when either side is non-empty, guarded anyway.
	if union == 0 {
		return 0.5
	}
	return float64(intersection) / float64(union)
}

// ageScore decays linearly from 1.0 at equal ages to 0.0 at a 10-year gap.
func ageScore(a, b int) float64 {
	gap := math.Abs(float64(a - b))
	return math.Max(0, 1-gap/10)
}

// mbtiScore ranks candidate types in precedence order: complement table hit
// (1.0), identical type (0.8), then 0.15 per positionally matching letter.
// The identical branch shadows the 4-letter case, so the positional branch
// tops out at 0.6 in practice.
func mbtiScore(a, b *string) float64 {
	if a == nil || b == nil {
		return 0.5
	}
	for _, complement := range mbtiComplements[*a] {
		if complement == *b {
			return 1.0
		}
	}
	if *a == *b {
		return 0.8
	}

	matching := 0
	for i := 0; i < len(*a) && i < len(*b); i++ {
		if (*a)[i] == (*b)[i] {
			matching++
		}
	}
	return float64(matching) * 0.15
}

// locationScore compares the full location string first, then the leading
// space-delimited token as a region.
func locationScore(a, b *string) float64 {
	if a == nil || b == nil {
		return 0.5
	}
	if *a == *b {
		return 1.0
	}
	if regionOf(*a) == regionOf(*b) {
		return 0.7
	}
	return 0.3
}

func regionOf(location string) string {
	if i := strings.Index(location, " "); i >= 0 {
		return location[:i]
	}
	return location
}

// activityScore decays linearly from 1.0 at "active just now" to 0.0 at 24
// hours or more. Unknown last-active scores 0, not neutral: an account that
// never showed up should not be promoted.
func activityScore(lastActive *time.Time, now time.Time) float64 {
	if lastActive == nil {
		return 0.0
	}
	hours := now.Sub(*lastActive).Hours()
	return math.Max(0, 1-hours/24)
}

// lifestyleScore sums two independent half-weighted sub-scores, drinking and
// smoking. A missing value on either side contributes the neutral half of its
// 0.5 weight (0.25 flat).
func lifestyleScore(a, b *UserProfile) float64 {
	score := 0.0

	if a.Drinking == nil || b.Drinking == nil {
		score += 0.25
	} else {
		diff := math.Abs(float64(a.Drinking.Rank() - b.Drinking.Rank()))
		score += math.Max(0, 1-diff*0.25) * 0.5
	}

	if a.Smoking == nil || b.Smoking == nil {
		score += 0.25
	} else if *a.Smoking == *b.Smoking {
		score += 0.5
	}

	return score
}
