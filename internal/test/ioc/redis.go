package testioc

import (
	"sync"

	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

var (
	cache         ecache.Cache
	cacheInitOnce sync.Once
)

func InitCache() ecache.Cache {
	cacheInitOnce.Do(func() {
		if err := loadConfig(); err != nil {
			panic(err)
		}
		addr := econf.GetString("redis.addr")
		if addr == "" {
			addr = "localhost:6379"
		}
		cmd := redis.NewClient(&redis.Options{
			Addr: addr,
		})
		cache = &ecache.NamespaceCache{
			C:         eredis.NewCache(cmd),
			Namespace: "jobsentry:",
		}
	})
	return cache
}
