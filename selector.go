package main

import "context"

const (
	maxCandidatePool = 100
	selectorPageSize = 200
)

// selectCandidates builds the bounded candidate pool for a requester. It pages
// through the store in ascending user-id order (a stable traversal) and keeps
// the first eligible candidates it finds, stopping at maxCandidatePool. The
// eligibility filters short-circuit in order: not the requester, not deleted,
// not blocked, has a profile.
//
// An empty pool is a valid outcome, not an error.
func selectCandidates(ctx context.Context, store ProfileStore, requesterID int) ([]*UserProfile, error) {
	pool := make([]*UserProfile, 0, maxCandidatePool)
	afterID := 0

	for {
		page, err := store.ListProfiles(ctx, afterID, selectorPageSize)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			return pool, nil
		}

		for _, candidate := range page {
			afterID = candidate.ID
			if candidate.ID == requesterID {
				continue
			}
			if candidate.Deleted {
				continue
			}
			if candidate.Blocked {
				continue
			}
			if !candidate.HasProfile {
				continue
			}
			pool = append(pool, candidate)
			if len(pool) == maxCandidatePool {
				return pool, nil
			}
		}

		if len(page) < selectorPageSize {
			return pool, nil
		}
	}
}
