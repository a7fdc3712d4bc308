package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendor-report-srv/internal/aggregation/repository"
	"vendor-report-srv/internal/model"
	"vendor-report-srv/pkg/log"
	pkgRedis "vendor-report-srv/pkg/redis"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, repository.ViewsRepository) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := pkgRedis.NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr, New(client, log.NewNop())
}

func TestGetViews_ReadsSlotsInsideRange(t *testing.T) {
	mr, repo := setupTestRedis(t)
	mr.HSet("analytics:views:v1:2024-01-04", "16:45", "7", "17:00", "40")
	mr.HSet("analytics:views:v1:2024-01-05", "00:00", "3", "16:45", "9", "17:00", "100")
	mr.HSet("analytics:views:v2:2024-01-05", "01:00", "99")

	// Jan 5 in UTC+7 is [Jan 4 17:00 UTC, Jan 5 17:00 UTC).
	views, err := repo.GetViews(context.Background(), repository.GetViewsOptions{
		VendorID: "v1",
		From:     time.Date(2024, 1, 4, 17, 0, 0, 0, time.UTC),
		To:       time.Date(2024, 1, 5, 17, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, []model.ViewSlot{
		{At: time.Date(2024, 1, 4, 17, 0, 0, 0, time.UTC), Count: 40},
		{At: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Count: 3},
		{At: time.Date(2024, 1, 5, 16, 45, 0, 0, time.UTC), Count: 9},
	}, views)
}

func TestGetViews_SkipsMalformed(t *testing.T) {
	mr, repo := setupTestRedis(t)
	mr.HSet("analytics:views:v1:2024-01-05", "noon", "3", "12:00", "many", "12:15", "2")

	views, err := repo.GetViews(context.Background(), repository.GetViewsOptions{
		VendorID: "v1",
		From:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, []model.ViewSlot{{At: time.Date(2024, 1, 5, 12, 15, 0, 0, time.UTC), Count: 2}}, views)
}

func TestIncrementViews(t *testing.T) {
	mr, repo := setupTestRedis(t)
	ctx := context.Background()
	ict := time.FixedZone("ICT", 7*3600)

	// 03:20 on Jan 5 in UTC+7 is 20:20 UTC on Jan 4.
	opts := repository.IncrementViewsOptions{VendorID: "v1", At: time.Date(2024, 1, 5, 3, 20, 0, 0, ict), Count: 1, TTL: 24 * time.Hour}
	_, err := repo.IncrementViews(ctx, opts)
	require.NoError(t, err)
	n, err := repo.IncrementViews(ctx, opts)
	require.NoError(t, err)

	assert.Equal(t, int64(2), n)
	assert.Equal(t, "2", mr.HGet("analytics:views:v1:2024-01-04", "20:15"))
	assert.Equal(t, 24*time.Hour, mr.TTL("analytics:views:v1:2024-01-04"))
}

func TestGetViews_Unavailable(t *testing.T) {
	mr, repo := setupTestRedis(t)
	mr.Close()

	_, err := repo.GetViews(context.Background(), repository.GetViewsOptions{
		VendorID: "v1",
		From:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, repository.ErrViewsReadFailed)
}
