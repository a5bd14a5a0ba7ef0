package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/osa911/giraffecloud-portal/internal/api/dto/common"
	"github.com/osa911/giraffecloud-portal/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	defaultMaxClients = 10000
	defaultClientTTL  = 10 * time.Minute
)

// RateLimitConfig defines configuration for the rate limiter
type RateLimitConfig struct {
	// Requests per second, per client
	RPS float64
	// Burst size (number of requests that can be made in a single burst)
	Burst int
	// MaxClients bounds the number of tracked clients; the least recently seen is evicted
	MaxClients int
	// ClientTTL is how long a client's budget is remembered
	ClientTTL time.Duration
}

// RateLimitMiddleware limits each client IP to RPS with the given burst
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.MaxClients <= 0 {
		config.MaxClients = defaultMaxClients
	}
	if config.ClientTTL <= 0 {
		config.ClientTTL = defaultClientTTL
	}

	var mu sync.Mutex
	limiters := expirable.NewLRU[string, *rate.Limiter](config.MaxClients, nil, config.ClientTTL)

	limiterFor := func(client string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if l, ok := limiters.Get(client); ok {
			return l
		}
		l := rate.NewLimiter(rate.Limit(config.RPS), config.Burst)
		limiters.Add(client, l)
		return l
	}

	return func(c *gin.Context) {
		limiter := limiterFor(utils.ClientIP(c))

		if !limiter.Allow() {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(1/config.RPS))))
			utils.HandleError(c, http.StatusTooManyRequests, common.ErrCodeTooManyRequests,
				"Rate limit exceeded. Please try again later.", nil)
			return
		}

		currentTokens := limiter.Tokens()
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(math.Max(0, currentTokens))))

		// Time until the next token is available
		var wait time.Duration
		if currentTokens < 1 {
			wait = time.Duration((1 - currentTokens) / config.RPS * float64(time.Second))
		}
		c.Header("X-RateLimit-Reset", time.Now().Add(wait).UTC().Format(time.RFC1123))

		c.Next()
	}
}
