package main

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"
)

// Initialize JWT secret for handler tests
func init() {
	jwtSecret = []byte("test-secret-key-for-testing")
	// The authenticate middleware bumps last_active on every call; point the
	// global handle at an unreachable server so the bump fails softly in tests.
	db, _ = sql.Open("postgres", "host=127.0.0.1 port=1 user=test dbname=test sslmode=disable")
}

// fakeProfileStore serves profiles from memory in ascending-id order, the
// same stable traversal the Postgres store provides.
type fakeProfileStore struct {
	profiles map[int]*UserProfile
}

func newFakeProfileStore(profiles ...*UserProfile) *fakeProfileStore {
	s := &fakeProfileStore{profiles: make(map[int]*UserProfile)}
	for _, p := range profiles {
		s.profiles[p.ID] = p
	}
	return s
}

func (s *fakeProfileStore) FindProfile(ctx context.Context, userID int) (*UserProfile, error) {
	p, ok := s.profiles[userID]
	if !ok || !p.HasProfile {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (s *fakeProfileStore) ListProfiles(ctx context.Context, afterID, limit int) ([]*UserProfile, error) {
	ids := make([]int, 0, len(s.profiles))
	for id := range s.profiles {
		if id > afterID {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	page := make([]*UserProfile, 0, len(ids))
	for _, id := range ids {
		page = append(page, s.profiles[id])
	}
	return page, nil
}

// memoryResultCache is a map-backed ResultCache (no TTL; expiry is covered by
// the not-ready path).
type memoryResultCache struct {
	mu      sync.Mutex
	results map[int]*MatchResult
}

func newMemoryResultCache() *memoryResultCache {
	return &memoryResultCache{results: make(map[int]*MatchResult)}
}

func (c *memoryResultCache) Put(ctx context.Context, result *MatchResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[result.UserID] = result
	return nil
}

func (c *memoryResultCache) Get(ctx context.Context, userID int) (*MatchResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result, ok := c.results[userID]
	if !ok {
		return nil, ErrResultNotReady
	}
	return result, nil
}

// memoryMatchQueue is a channel-backed MatchQueue.
type memoryMatchQueue struct {
	ch chan MatchRequest
}

func newMemoryMatchQueue() *memoryMatchQueue {
	return &memoryMatchQueue{ch: make(chan MatchRequest, 16)}
}

func (q *memoryMatchQueue) Publish(ctx context.Context, req MatchRequest) error {
	q.ch <- req
	return nil
}

func (q *memoryMatchQueue) Receive(ctx context.Context) (*MatchRequest, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case req := <-q.ch:
		return &req, nil
	}
}

// --- profile builders ---

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func timePtr(t time.Time) *time.Time { return &t }

func tierPtr(d DrinkingTier) *DrinkingTier { return &d }

// testProfile returns a fully populated eligible profile.
func testProfile(id int, lastActive time.Time) *UserProfile {
	return &UserProfile{
		ID:              id,
		Nickname:        "user",
		Age:             25,
		MBTI:            strPtr("ENFP"),
		Location:        strPtr("서울 강남구"),
		Interests:       []string{"music", "movies"},
		Drinking:        tierPtr(DrinkingOccasionally),
		Smoking:         boolPtr(false),
		LastActiveAt:    timePtr(lastActive),
		ProfileImageURL: "https://cdn.example.com/u.jpg",
		HasProfile:      true,
	}
}

func testMatchService(store ProfileStore, now time.Time) (*MatchService, *memoryResultCache, *memoryMatchQueue) {
	cache := newMemoryResultCache()
	queue := newMemoryMatchQueue()
	svc := NewMatchService(store, cache, queue)
	svc.now = func() time.Time { return now }
	return svc, cache, queue
}
