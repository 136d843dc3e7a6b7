package main

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// matchRequestList is the Redis list the coordinator publishes match requests
// to and the workers consume from.
const matchRequestList = "matching:requests"

// MatchQueue carries asynchronous match requests from the submit endpoint to
// the workers. Delivery order is the only guarantee; duplicate submissions
// for the same user are not deduplicated, each triggers a recomputation.
type MatchQueue interface {
	Publish(ctx context.Context, req MatchRequest) error
	// Receive blocks until a request arrives or ctx is done.
	Receive(ctx context.Context) (*MatchRequest, error)
}

type redisMatchQueue struct {
	rdb *goredis.Client
}

func newRedisMatchQueue(rdb *goredis.Client) *redisMatchQueue {
	return &redisMatchQueue{rdb: rdb}
}

func (q *redisMatchQueue) Publish(ctx context.Context, req MatchRequest) error {
	raw, err := json.Marshal(req)
	if err != nil {
		return err
	}
	return q.rdb.LPush(ctx, matchRequestList, raw).Err()
}

func (q *redisMatchQueue) Receive(ctx context.Context) (*MatchRequest, error) {
	for {
		// Bounded block so worker shutdown is not stuck behind an idle queue.
		res, err := q.rdb.BRPop(ctx, 5*time.Second, matchRequestList).Result()
		if err == goredis.Nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		} else if err != nil {
			return nil, err
		}
		// BRPop returns [key, value].
		var req MatchRequest
		if err := json.Unmarshal([]byte(res[1]), &req); err != nil {
			return nil, err
		}
		return &req, nil
	}
}
