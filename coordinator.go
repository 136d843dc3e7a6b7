package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

// MatchService orchestrates the matching pipeline: candidate selection,
// factor scoring, ranking, and the queued/cached asynchronous flow.
type MatchService struct {
	store   ProfileStore
	cache   ResultCache
	queue   MatchQueue
	weights FactorWeights
	now     func() time.Time
}

func NewMatchService(store ProfileStore, cache ResultCache, queue MatchQueue) *MatchService {
	return &MatchService{
		store:   store,
		cache:   cache,
		queue:   queue,
		weights: defaultWeights,
		now:     time.Now,
	}
}

// Compute runs the full pipeline synchronously and returns a fresh
// MatchResult. The requester must have a profile; an empty candidate pool is
// a valid result, not an error. A failure while scoring one candidate skips
// that candidate and keeps the rest of the batch intact.
func (s *MatchService) Compute(ctx context.Context, userID int) (*MatchResult, error) {
	requester, err := s.store.FindProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	pool, err := selectCandidates(ctx, s.store, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	scores := make([]MatchScore, 0, len(pool))
	for _, candidate := range pool {
		score, ok := s.scoreSafely(requester, candidate, now)
		if !ok {
			continue
		}
		scores = append(scores, score)
	}

	return rankMatches(userID, len(pool), scores, now), nil
}

// scoreSafely guards the batch against a single bad candidate.
func (s *MatchService) scoreSafely(requester, candidate *UserProfile, now time.Time) (score MatchScore, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("skipping candidate %d for user %d: %v", candidate.ID, requester.ID, p)
			ok = false
		}
	}()
	return scoreCandidate(requester, candidate, s.weights, now), true
}

// Submit publishes an asynchronous match request. Concurrent submissions for
// the same user are not deduplicated; the cache ends up holding whichever
// computation finishes last.
func (s *MatchService) Submit(ctx context.Context, userID int) (*MatchRequest, error) {
	req := MatchRequest{
		RequestID:   uuid.NewString(),
		UserID:      userID,
		SubmittedAt: s.now(),
	}
	if err := s.queue.Publish(ctx, req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Result returns the latest cached MatchResult for the user, or
// ErrResultNotReady when no computation has completed (or the entry expired).
func (s *MatchService) Result(ctx context.Context, userID int) (*MatchResult, error) {
	return s.cache.Get(ctx, userID)
}

// RunWorkers starts n queue consumers that compute and cache match results
// until ctx is cancelled. Requests for different users are independent, so
// the workers share nothing beyond the queue and the cache.
func (s *MatchService) RunWorkers(ctx context.Context, n int) {
	for i := 0; i < n; i++ {
		go s.workerLoop(ctx)
	}
}

func (s *MatchService) workerLoop(ctx context.Context) {
	for {
		req, err := s.queue.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Println("match queue receive failed:", err)
			continue
		}
		if err := s.process(ctx, req); err != nil {
			log.Printf("match request %s for user %d failed: %v", req.RequestID, req.UserID, err)
		}
	}
}

func (s *MatchService) process(ctx context.Context, req *MatchRequest) error {
	result, err := s.Compute(ctx, req.UserID)
	if err != nil {
		return err
	}
	return s.cache.Put(ctx, result)
}
