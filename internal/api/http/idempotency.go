package http

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyHeader = "Idempotency-Key"

type idempotentResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

// IdempotencyMiddleware replays the cached response for a repeated
// Idempotency-Key so a retried deposit or withdrawal is not applied
// twice. Responses with 5xx status are not cached; the client is
// expected to retry those.
func IdempotencyMiddleware(client *redis.Client, ttl time.Duration, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(idempotencyHeader)
		if key == "" || client == nil {
			return c.Next()
		}

		cacheKey := "idem:" + c.Method() + ":" + c.Path() + ":" + key
		cached, err := client.Get(c.UserContext(), cacheKey).Bytes()
		if err == nil {
			var stored idempotentResponse
			if jsonErr := json.Unmarshal(cached, &stored); jsonErr == nil {
				c.Set("X-Idempotency-Hit", "true")
				c.Set("Content-Type", "application/json")
				return c.Status(stored.Status).Send(stored.Body)
			}
		} else if err != redis.Nil {
			logger.Warn("idempotency cache unavailable", zap.Error(err))
		}

		if err := c.Next(); err != nil {
			return err
		}

		status := c.Response().StatusCode()
		if status >= 500 {
			return nil
		}

		entry, err := json.Marshal(idempotentResponse{
			Status: status,
			Body:   append([]byte(nil), c.Response().Body()...),
		})
		if err != nil {
			return nil
		}
		if err := client.Set(c.UserContext(), cacheKey, entry, ttl).Err(); err != nil {
			logger.Warn("failed to store idempotency entry", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
}
