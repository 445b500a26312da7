package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

func NewLimiterWithRedis(rdb *redis.Client) fiber.Handler {
	return newLimiter(rdb, 20, 30*time.Second)
}

// NewAuthLimiter throttles credential endpoints harder than the rest of
// the API. Login and password reset share one budget per client IP.
func NewAuthLimiter(rdb *redis.Client) fiber.Handler {
	return newLimiter(rdb, 5, time.Minute)
}

func newLimiter(rdb *redis.Client, max int, window time.Duration) fiber.Handler {
	storage := fiberredis.NewFromConnection(rdb)
	return limiter.New(limiter.Config{
		Storage: storage,

		// sliding window
		Max:               max,
		Expiration:        window,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
