package redis

import (
	"strconv"

	"hexachats_server/internal/config"

	"github.com/redis/go-redis/v9"
)

// Cache is the global cache instance wired into services at startup.
var Cache *RedisCache

// Init connects to Redis and builds the global cache.
// 15 workers / 3000 buffer matches the pool sizing: MinIdleConns covers
// the worker count.
func Init() {
	conf := config.GetConfig()
	addr := conf.RedisConfig.Host + ":" + strconv.Itoa(conf.RedisConfig.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.RedisConfig.Password,
		DB:       conf.RedisConfig.Db,

		PoolSize:     50,
		MinIdleConns: 15,
	})

	Cache = NewRedisCache(client, 15, 3000)
}
