package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// La ventana se fija en el primer hit con PEXPIRE para admitir ventanas menores a un segundo.
const redisRateLimitScript = `
local hits = redis.call("INCR", KEYS[1])
if hits == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return hits
`

const (
	redisRateLimitPrefix  = "api:rl:"
	redisRateLimitTimeout = 200 * time.Millisecond
)

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// redisRateLimiter comparte el cupo por IP entre instancias de la API.
// Si Redis falla la solicitud se deja pasar y se registra un warning.
type redisRateLimiter struct {
	logger   *zap.Logger
	client   redisEvaler
	windowMS int64
	max      int64
}

func NewRedisRateLimiter(logger *zap.Logger, client *redis.Client, window time.Duration, max int) RateLimiter {
	if client == nil {
		return nil
	}
	return newRedisRateLimiter(logger, client, window, max)
}

func newRedisRateLimiter(logger *zap.Logger, client redisEvaler, window time.Duration, max int) *redisRateLimiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisRateLimiter{
		logger:   logger,
		client:   client,
		windowMS: window.Milliseconds(),
		max:      int64(max),
	}
}

func (l *redisRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	hits, err := l.hit(limitKey(key))
	if err != nil {
		l.logger.Warn("rate limiter unavailable, allowing request", zap.Error(err))
		return true
	}
	return hits <= l.max
}

func (l *redisRateLimiter) hit(key string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisRateLimitTimeout)
	defer cancel()
	return l.client.Eval(ctx, redisRateLimitScript, []string{redisRateLimitPrefix + key}, l.windowMS).Int64()
}
