package main

import (
	"context"
	"log"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var rdb *goredis.Client

// initRedis connects the result cache / match queue backend. Fails fast: the
// asynchronous match flow cannot run without it.
func initRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
		log.Default().Println("Warning: REDIS_ADDR not set, using localhost:6379")
	}

	rdb = goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Cannot reach redis:", err)
	}
	log.Default().Println("Redis connection established successfully")
}
