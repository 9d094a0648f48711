package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/djsar/stagepage/internal/modules/profile/domain"
)

const keyPrefix = "profile:"

// Key returns the storage key for a subdomain.
func Key(subdomain string) string {
	return keyPrefix + subdomain
}

// ProfileRepository persists profiles as JSON values in Redis, one key per
// subdomain.
type ProfileRepository struct {
	rdb *redis.Client
}

func NewProfileRepository(rdb *redis.Client) *ProfileRepository {
	return &ProfileRepository{rdb: rdb}
}

func (r *ProfileRepository) Exists(ctx context.Context, subdomain string) (bool, error) {
	n, err := r.rdb.Exists(ctx, Key(subdomain)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists failed: %w", err)
	}
	return n > 0, nil
}

func (r *ProfileRepository) Get(ctx context.Context, subdomain string) (*domain.Profile, error) {
	data, err := r.rdb.Get(ctx, Key(subdomain)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var profile domain.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("corrupt profile record for %q: %w", subdomain, err)
	}
	return &profile, nil
}

// Put writes the profile only if the key is still free. SetNX makes the
// uniqueness check atomic at the store, so two concurrent signups for the
// same subdomain cannot both win even after both passed Exists.
func (r *ProfileRepository) Put(ctx context.Context, profile *domain.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile failed: %w", err)
	}

	ok, err := r.rdb.SetNX(ctx, Key(profile.Subdomain), data, 0).Result()
	if err != nil {
		return fmt.Errorf("redis setnx failed: %w", err)
	}
	if !ok {
		return domain.ErrSubdomainTaken
	}
	return nil
}
