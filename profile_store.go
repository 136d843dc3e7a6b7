package main

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// ErrProfileNotFound is returned when a user has no resolvable profile. The
// matching pipeline must not run without a requester profile.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileStore is the read-only collaborator the matching engine pulls user
// data from. ListProfiles returns an id-ordered page including lifecycle
// flags; eligibility filtering is the selector's job.
type ProfileStore interface {
	FindProfile(ctx context.Context, userID int) (*UserProfile, error)
	ListProfiles(ctx context.Context, afterID, limit int) ([]*UserProfile, error)
}

type pgProfileStore struct {
	db *sql.DB
}

func newPgProfileStore(db *sql.DB) *pgProfileStore {
	return &pgProfileStore{db: db}
}

func (s *pgProfileStore) FindProfile(ctx context.Context, userID int) (*UserProfile, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT u.id, p.nickname, p.age, p.mbti, p.location, p.drinking, p.smoking,
               COALESCE(p.profile_image_url, ''), u.last_active, u.deleted, u.blocked,
               TRUE AS has_profile
        FROM users u
        JOIN profiles p ON p.user_id = u.id
        WHERE u.id = $1
    `, userID)

	profile, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	} else if err != nil {
		return nil, err
	}

	interests, err := s.listInterests(ctx, []int{userID})
	if err != nil {
		return nil, err
	}
	profile.Interests = interests[userID]
	return profile, nil
}

func (s *pgProfileStore) ListProfiles(ctx context.Context, afterID, limit int) ([]*UserProfile, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT u.id, COALESCE(p.nickname, ''), COALESCE(p.age, 0), p.mbti, p.location,
               p.drinking, p.smoking, COALESCE(p.profile_image_url, ''),
               u.last_active, u.deleted, u.blocked,
               p.user_id IS NOT NULL AS has_profile
        FROM users u
        LEFT JOIN profiles p ON p.user_id = u.id
        WHERE u.id > $1
        ORDER BY u.id
        LIMIT $2
    `, afterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var page []*UserProfile
	var ids []int
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		page = append(page, profile)
		if profile.HasProfile {
			ids = append(ids, profile.ID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		interests, err := s.listInterests(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, profile := range page {
			profile.Interests = interests[profile.ID]
		}
	}
	return page, nil
}

// listInterests batch-loads interests for a set of users in one query.
func (s *pgProfileStore) listInterests(ctx context.Context, userIDs []int) (map[int][]string, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT user_id, interest
        FROM user_interests
        WHERE user_id = ANY($1)
        ORDER BY user_id, id
    `, pq.Array(userIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interests := make(map[int][]string, len(userIDs))
	for rows.Next() {
		var userID int
		var interest string
		if err := rows.Scan(&userID, &interest); err != nil {
			return nil, err
		}
		interests[userID] = append(interests[userID], interest)
	}
	return interests, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*UserProfile, error) {
	var p UserProfile
	var mbti, location, drinking sql.NullString
	var smoking sql.NullBool
	var lastActive sql.NullTime

	err := row.Scan(&p.ID, &p.Nickname, &p.Age, &mbti, &location, &drinking,
		&smoking, &p.ProfileImageURL, &lastActive, &p.Deleted, &p.Blocked, &p.HasProfile)
	if err != nil {
		return nil, err
	}

	if mbti.Valid {
		v := mbti.String
		p.MBTI = &v
	}
	if location.Valid {
		v := location.String
		p.Location = &v
	}
	if drinking.Valid {
		p.Drinking = parseDrinkingTier(drinking.String)
	}
	if smoking.Valid {
		v := smoking.Bool
		p.Smoking = &v
	}
	if lastActive.Valid {
		v := lastActive.Time
		p.LastActiveAt = &v
	}
	return &p, nil
}
