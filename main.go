package main

import (
	"context"
	"log"
	"net/http"
	"os"
)

// JWT secret from environment variable or fallback
func getJWTSecret() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("your_secret_key_please_change_in_production")
}

var jwtSecret = getJWTSecret()

const matchWorkerCount = 4

func main() {
	initDB()
	initRedis()

	matchService := NewMatchService(
		newPgProfileStore(db),
		newRedisResultCache(rdb),
		newRedisMatchQueue(rdb),
	)

	// Background workers for the queued match flow
	matchService.RunWorkers(context.Background(), matchWorkerCount)

	mux := http.NewServeMux()

	// Core auth endpoints
	mux.Handle("/register", registerHandler(db))
	mux.Handle("/login", loginHandler(db))

	// Matching: synchronous compute, async enqueue, cache poll
	mux.Handle("/matches", matchesHandler(matchService))
	mux.Handle("/matches/request", matchRequestHandler(matchService))
	mux.Handle("/matches/result", matchResultHandler(matchService))

	// Health check endpoint for Docker
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Default().Println("Starting Sogaeting Backend on port " + port + "...")
	http.ListenAndServe(":"+port, withCORS(mux))
}
