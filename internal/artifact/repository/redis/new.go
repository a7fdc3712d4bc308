package redis

import (
	"vendor-report-srv/internal/artifact/repository"
	"vendor-report-srv/pkg/log"
	pkgRedis "vendor-report-srv/pkg/redis"
)

const reclaimLockKey = "artifact:reclaim:lock"

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.LockRepository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
