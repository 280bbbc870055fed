package redis

import (
	"time"

	"aquamon-api/internal/threshold/repository"
	pkgLog "aquamon-api/pkg/log"

	goredis "github.com/redis/go-redis/v9"
)

type implCache struct {
	l      pkgLog.Logger
	client *goredis.Client
	ttl    time.Duration
}

var _ repository.Cache = &implCache{}

func New(l pkgLog.Logger, client *goredis.Client, ttl time.Duration) *implCache {
	return &implCache{
		l:      l,
		client: client,
		ttl:    ttl,
	}
}
