package redis

import (
	"context"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/djsar/stagepage/internal/modules/profile/domain"
)

func unreachableRepo() *ProfileRepository {
	// Port 1 is never a Redis; every command fails fast with a dial error.
	return NewProfileRepository(goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"}))
}

func TestKey_Scheme(t *testing.T) {
	assert.Equal(t, "profile:nova", Key("nova"))
	assert.Equal(t, "profile:dj-45", Key("dj-45"))
}

func TestProfileRepository_StoreErrorsSurface(t *testing.T) {
	repo := unreachableRepo()
	ctx := context.Background()

	_, err := repo.Exists(ctx, "nova")
	assert.Error(t, err)

	_, err = repo.Get(ctx, "nova")
	assert.Error(t, err)

	err = repo.Put(ctx, domain.NewProfile("nova"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSubdomainTaken)
}
