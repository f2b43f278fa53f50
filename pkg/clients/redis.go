package clients

import (
	"context"

	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
	"github.com/treinamento/produtos-service/internal/cfg"
	"github.com/treinamento/produtos-service/pkg/e"
)

// RedisClient оборачивает клиент go-redis для кэша продуктов.
type RedisClient struct {
	Client *r.Client
}

func NewRedisClient(cfg *cfg.RedisCfg) *RedisClient {
	return NewRedisClientFromOptions(&r.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})
}

// NewRedisClientFromOptions нужен тестам, которые поднимают miniredis на случайном адресе.
func NewRedisClientFromOptions(opts *r.Options) *RedisClient {
	return &RedisClient{
		Client: r.NewClient(opts),
	}
}

func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *RedisClient) Close() error {
	return c.Client.Close()
}
