package main

import "time"

// DrinkingTier is an explicitly ranked enum so the lifestyle scorer can use
// ordinal distance without depending on declaration order.
type DrinkingTier int

const (
	DrinkingFrequently   DrinkingTier = 0
	DrinkingOccasionally DrinkingTier = 1
	DrinkingNever        DrinkingTier = 2
)

// Rank returns the tier's ordinal position (FREQUENTLY=0, OCCASIONALLY=1, NEVER=2).
func (d DrinkingTier) Rank() int { return int(d) }

func (d DrinkingTier) String() string {
	switch d {
	case DrinkingFrequently:
		return "FREQUENTLY"
	case DrinkingOccasionally:
		return "OCCASIONALLY"
	case DrinkingNever:
		return "NEVER"
	}
	return "UNKNOWN"
}

// parseDrinkingTier maps the stored column value to a tier.
// Returns nil for empty/unknown values so scorers fall back to neutral.
func parseDrinkingTier(s string) *DrinkingTier {
	var d DrinkingTier
	switch s {
	case "FREQUENTLY":
		d = DrinkingFrequently
	case "OCCASIONALLY":
		d = DrinkingOccasionally
	case "NEVER":
		d = DrinkingNever
	default:
		return nil
	}
	return &d
}

// UserProfile is the matching engine's view of a user: identity, the profile
// attributes the factor scorers consume, and the lifecycle flags the candidate
// selector filters on. Optional attributes are pointers; scorers handle nil
// with neutral fallbacks.
type UserProfile struct {
	ID              int
	Nickname        string
	Age             int
	MBTI            *string
	Location        *string
	Interests       []string
	Drinking        *DrinkingTier
	Smoking         *bool
	LastActiveAt    *time.Time
	ProfileImageURL string
	Deleted         bool
	Blocked         bool
	HasProfile      bool
}

// MatchScore is one ranked candidate plus the display projection the client
// renders in the match list.
type MatchScore struct {
	CandidateID     int      `json:"candidate_id"`
	Nickname        string   `json:"nickname"`
	Age             int      `json:"age"`
	MBTI            string   `json:"mbti,omitempty"`
	Interests       []string `json:"interests"`
	ProfileImageURL string   `json:"profile_image_url,omitempty"`
	Score           float64  `json:"match_score"`
}

// MatchResult is the full outcome of one match computation. Each computation
// produces a fresh result; the cache stores it whole, last write wins.
type MatchResult struct {
	UserID          int          `json:"user_id"`
	Matches         []MatchScore `json:"matches"`
	SnapshotAt      time.Time    `json:"snapshot_at"`
	TotalCandidates int          `json:"total_candidates"`
}

// MatchRequest is the queue message for an asynchronous match computation.
type MatchRequest struct {
	RequestID   string    `json:"request_id"`
	UserID      int       `json:"user_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}
