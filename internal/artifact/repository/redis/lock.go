package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"vendor-report-srv/internal/artifact/repository"
)

// releaseScript deletes the lock only while it still holds our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// AcquireReclaimLock - SET NX with a TTL so a crashed holder cannot block the sweep forever.
func (r *implRepository) AcquireReclaimLock(ctx context.Context, token string, ttl time.Duration) (bool, error) {
	ok, err := r.redis.SetNX(ctx, reclaimLockKey, token, ttl)
	if err != nil {
		r.l.Errorf(ctx, "artifact.repository.redis.AcquireReclaimLock: Failed to set lock: %v", err)
		return false, repository.ErrLockFailed
	}
	return ok, nil
}

// ReleaseReclaimLock - Release the lock if token still owns it.
func (r *implRepository) ReleaseReclaimLock(ctx context.Context, token string) error {
	if err := releaseScript.Run(ctx, r.redis.GetClient(), []string{reclaimLockKey}, token).Err(); err != nil {
		r.l.Errorf(ctx, "artifact.repository.redis.ReleaseReclaimLock: Failed to release lock: %v", err)
		return repository.ErrLockFailed
	}
	return nil
}
