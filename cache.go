package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ErrResultNotReady is returned on a cache miss: no computation has completed
// for the user yet, or the entry expired. Callers must not conflate this with
// a result that has zero matches.
var ErrResultNotReady = errors.New("match result not ready")

// resultTTL bounds staleness: a cached result older than this disappears and
// the client sees "not ready" again.
const resultTTL = 30 * time.Minute

// ResultCache stores the latest MatchResult per requester. Writes replace the
// whole value at the key; the last completed computation wins.
type ResultCache interface {
	Put(ctx context.Context, result *MatchResult) error
	Get(ctx context.Context, userID int) (*MatchResult, error)
}

type redisResultCache struct {
	rdb *goredis.Client
}

func newRedisResultCache(rdb *goredis.Client) *redisResultCache {
	return &redisResultCache{rdb: rdb}
}

func resultKey(userID int) string {
	return fmt.Sprintf("matching:%d", userID)
}

func (c *redisResultCache) Put(ctx context.Context, result *MatchResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, resultKey(result.UserID), raw, resultTTL).Err()
}

func (c *redisResultCache) Get(ctx context.Context, userID int) (*MatchResult, error) {
	raw, err := c.rdb.Get(ctx, resultKey(userID)).Bytes()
	if err == goredis.Nil {
		return nil, ErrResultNotReady
	} else if err != nil {
		return nil, err
	}
	var result MatchResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
