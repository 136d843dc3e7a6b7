package main

import (
	"errors"
	"log"
	"net/http"
)

// GET /matches - compute matches for the authenticated user inline and return
// them directly. The fresh result also lands in the cache so a subsequent
// poll sees the same snapshot.
func matchesHandler(svc *MatchService) http.HandlerFunc {
	return authenticate(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "invalid_method")
			return
		}
		userID := r.Context().Value(userIDKey).(int)

		result, err := svc.Compute(r.Context(), userID)
		if errors.Is(err, ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "profile_not_found")
			return
		} else if err != nil {
			log.Println("match computation failed:", err)
			writeError(w, http.StatusInternalServerError, "matching_error")
			return
		}

		if err := svc.cache.Put(r.Context(), result); err != nil {
			// The caller already has the result; a failed cache write only
			// delays the poll path.
			log.Println("failed to cache match result:", err)
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// POST /matches/request - enqueue an asynchronous match computation. The
// client polls /matches/result until the worker has written the result.
func matchRequestHandler(svc *MatchService) http.HandlerFunc {
	return authenticate(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "invalid_method")
			return
		}
		userID := r.Context().Value(userIDKey).(int)

		req, err := svc.Submit(r.Context(), userID)
		if err != nil {
			log.Println("match request submission failed:", err)
			writeError(w, http.StatusInternalServerError, "submit_error")
			return
		}

		writeJSON(w, http.StatusAccepted, req)
	})
}

// GET /matches/result - read the cached result. A miss (no computation done
// yet, or TTL expiry) is a distinct "not ready" outcome, never conflated with
// a result that has zero matches.
func matchResultHandler(svc *MatchService) http.HandlerFunc {
	return authenticate(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "invalid_method")
			return
		}
		userID := r.Context().Value(userIDKey).(int)

		result, err := svc.Result(r.Context(), userID)
		if errors.Is(err, ErrResultNotReady) {
			writeError(w, http.StatusNotFound, "result_not_ready")
			return
		} else if err != nil {
			log.Println("match result read failed:", err)
			writeError(w, http.StatusInternalServerError, "cache_error")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}
