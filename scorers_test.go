package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scoreDelta = 1e-9

func TestInterestScore(t *testing.T) {
	t.Run("identical sets", func(t *testing.T) {
		assert.InDelta(t, 1.0, interestScore([]string{"music", "movies"}, []string{"movies", "music"}), scoreDelta)
	})

	t.Run("partial overlap is jaccard", func(t *testing.T) {
		// |{b,c}| / |{a,b,c,d}| = 0.5
		got := interestScore([]string{"a", "b", "c"}, []string{"b", "c", "d"})
		assert.InDelta(t, 0.5, got, scoreDelta)
	})

	t.Run("disjoint sets", func(t *testing.T) {
		assert.InDelta(t, 0.0, interestScore([]string{"hiking"}, []string{"gaming"}), scoreDelta)
	})

	t.Run("both empty is neutral", func(t *testing.T) {
		assert.InDelta(t, 0.5, interestScore(nil, nil), scoreDelta)
	})

	t.Run("one empty", func(t *testing.T) {
		assert.InDelta(t, 0.0, interestScore([]string{"hiking"}, nil), scoreDelta)
	})

	t.Run("duplicates do not inflate the union", func(t *testing.T) {
		got := interestScore([]string{"a", "a", "b"}, []string{"a", "b"})
		assert.InDelta(t, 1.0, got, scoreDelta)
	})
}

func TestAgeScore(t *testing.T) {
	t.Run("equal ages", func(t *testing.T) {
		assert.InDelta(t, 1.0, ageScore(25, 25), scoreDelta)
	})

	t.Run("ten year gap hits zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, ageScore(25, 35), scoreDelta)
	})

	t.Run("five year gap", func(t *testing.T) {
		assert.InDelta(t, 0.5, ageScore(25, 30), scoreDelta)
	})

	t.Run("beyond ten years stays zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, ageScore(20, 60), scoreDelta)
	})

	t.Run("symmetric", func(t *testing.T) {
		for _, pair := range [][2]int{{25, 32}, {18, 40}, {30, 30}} {
			assert.InDelta(t, ageScore(pair[0], pair[1]), ageScore(pair[1], pair[0]), scoreDelta)
		}
	})
}

func TestMBTIScore(t *testing.T) {
	t.Run("nil is neutral", func(t *testing.T) {
		assert.InDelta(t, 0.5, mbtiScore(nil, strPtr("ENFP")), scoreDelta)
		assert.InDelta(t, 0.5, mbtiScore(strPtr("ENFP"), nil), scoreDelta)
	})

	t.Run("complement table hit", func(t *testing.T) {
		assert.InDelta(t, 1.0, mbtiScore(strPtr("ENFP"), strPtr("INTJ")), scoreDelta)
		assert.InDelta(t, 1.0, mbtiScore(strPtr("ENFP"), strPtr("INFJ")), scoreDelta)
		assert.InDelta(t, 1.0, mbtiScore(strPtr("INTP"), strPtr("ESTJ")), scoreDelta)
	})

	t.Run("identical type", func(t *testing.T) {
		assert.InDelta(t, 0.8, mbtiScore(strPtr("ENFP"), strPtr("ENFP")), scoreDelta)
		assert.InDelta(t, 0.8, mbtiScore(strPtr("ISTJ"), strPtr("ISTJ")), scoreDelta)
	})

	t.Run("positional letter match", func(t *testing.T) {
		// E_F_ aligned: 2 letters -> 0.3
		assert.InDelta(t, 0.3, mbtiScore(strPtr("ENFP"), strPtr("ESFJ")), scoreDelta)
		// no letters aligned
		assert.InDelta(t, 0.0, mbtiScore(strPtr("ENFP"), strPtr("ISTJ")), scoreDelta)
		// 3 letters aligned
		assert.InDelta(t, 0.45, mbtiScore(strPtr("ENFP"), strPtr("ENFJ")), scoreDelta)
	})

	t.Run("table is directional", func(t *testing.T) {
		// ENFJ lists ISFP as a complement, but ISFP has no entry of its own:
		// the reverse direction falls through to the positional branch.
		require.InDelta(t, 1.0, mbtiScore(strPtr("ENFJ"), strPtr("ISFP")), scoreDelta)
		require.InDelta(t, 0.15, mbtiScore(strPtr("ISFP"), strPtr("ENFJ")), scoreDelta)
	})
}

func TestLocationScore(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		assert.InDelta(t, 1.0, locationScore(strPtr("서울"), strPtr("서울")), scoreDelta)
	})

	t.Run("same region", func(t *testing.T) {
		assert.InDelta(t, 0.7, locationScore(strPtr("서울 강남구"), strPtr("서울 종로구")), scoreDelta)
	})

	t.Run("different region", func(t *testing.T) {
		assert.InDelta(t, 0.3, locationScore(strPtr("서울"), strPtr("부산")), scoreDelta)
	})

	t.Run("nil is neutral", func(t *testing.T) {
		assert.InDelta(t, 0.5, locationScore(nil, strPtr("서울")), scoreDelta)
		assert.InDelta(t, 0.5, locationScore(strPtr("서울"), nil), scoreDelta)
	})

	t.Run("single token vs detailed", func(t *testing.T) {
		assert.InDelta(t, 0.7, locationScore(strPtr("서울"), strPtr("서울 강남구")), scoreDelta)
	})
}

func TestActivityScore(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("unknown last-active scores zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, activityScore(nil, now), scoreDelta)
	})

	t.Run("active just now", func(t *testing.T) {
		assert.InDelta(t, 1.0, activityScore(timePtr(now), now), scoreDelta)
	})

	t.Run("twelve hours ago", func(t *testing.T) {
		assert.InDelta(t, 0.5, activityScore(timePtr(now.Add(-12*time.Hour)), now), scoreDelta)
	})

	t.Run("day or older scores zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, activityScore(timePtr(now.Add(-24*time.Hour)), now), scoreDelta)
		assert.InDelta(t, 0.0, activityScore(timePtr(now.Add(-72*time.Hour)), now), scoreDelta)
	})
}

func TestLifestyleScore(t *testing.T) {
	profile := func(d *DrinkingTier, s *bool) *UserProfile {
		return &UserProfile{Drinking: d, Smoking: s}
	}

	t.Run("everything missing is neutral", func(t *testing.T) {
		got := lifestyleScore(profile(nil, nil), profile(nil, nil))
		assert.InDelta(t, 0.5, got, scoreDelta)
	})

	t.Run("full agreement", func(t *testing.T) {
		got := lifestyleScore(
			profile(tierPtr(DrinkingOccasionally), boolPtr(false)),
			profile(tierPtr(DrinkingOccasionally), boolPtr(false)),
		)
		assert.InDelta(t, 1.0, got, scoreDelta)
	})

	t.Run("tier distance decays drinking half", func(t *testing.T) {
		// diff 2 -> (1 - 0.5) * 0.5 = 0.25, plus matching smoking 0.5
		got := lifestyleScore(
			profile(tierPtr(DrinkingFrequently), boolPtr(true)),
			profile(tierPtr(DrinkingNever), boolPtr(true)),
		)
		assert.InDelta(t, 0.75, got, scoreDelta)

		// diff 1 -> (1 - 0.25) * 0.5 = 0.375
		got = lifestyleScore(
			profile(tierPtr(DrinkingFrequently), boolPtr(true)),
			profile(tierPtr(DrinkingOccasionally), boolPtr(true)),
		)
		assert.InDelta(t, 0.875, got, scoreDelta)
	})

	t.Run("smoking mismatch zeroes smoking half", func(t *testing.T) {
		got := lifestyleScore(
			profile(tierPtr(DrinkingNever), boolPtr(true)),
			profile(tierPtr(DrinkingNever), boolPtr(false)),
		)
		assert.InDelta(t, 0.5, got, scoreDelta)
	})

	t.Run("missing side contributes flat neutral", func(t *testing.T) {
		got := lifestyleScore(
			profile(nil, boolPtr(true)),
			profile(tierPtr(DrinkingNever), boolPtr(true)),
		)
		assert.InDelta(t, 0.75, got, scoreDelta)
	})
}

func TestDrinkingTier(t *testing.T) {
	assert.Equal(t, 0, DrinkingFrequently.Rank())
	assert.Equal(t, 1, DrinkingOccasionally.Rank())
	assert.Equal(t, 2, DrinkingNever.Rank())

	require.NotNil(t, parseDrinkingTier("OCCASIONALLY"))
	assert.Equal(t, DrinkingOccasionally, *parseDrinkingTier("OCCASIONALLY"))
	assert.Nil(t, parseDrinkingTier(""))
	assert.Nil(t, parseDrinkingTier("sometimes"))
	assert.Equal(t, "NEVER", DrinkingNever.String())
}
