package redis

import (
	"vendor-report-srv/internal/aggregation/repository"
	"vendor-report-srv/pkg/log"
	pkgRedis "vendor-report-srv/pkg/redis"
)

const viewsKeyPrefix = "analytics:views"

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.ViewsRepository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
