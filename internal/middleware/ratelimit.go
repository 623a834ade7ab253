package middleware

import (
    "fmt"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/progear-storefront/internal/config"
)

// takeToken refills the bucket for the whole intervals elapsed since the last
// refill, then takes one token if any is left. It returns
// {allowed, remaining, retry_after_ms}.
var takeToken = redis.NewScript(`
local bucket = KEYS[1]
local now, capacity, refill, every, ttl =
    tonumber(ARGV[1]), tonumber(ARGV[2]), tonumber(ARGV[3]), tonumber(ARGV[4]), tonumber(ARGV[5])

local tokens = tonumber(redis.call('HGET', bucket, 'tokens'))
local stamp = tonumber(redis.call('HGET', bucket, 'stamp'))
if not tokens or not stamp then
    tokens, stamp = capacity, now
end

local steps = math.floor(math.max(0, now - stamp) / every)
if steps > 0 then
    tokens = math.min(capacity, tokens + steps * refill)
    stamp = stamp + steps * every
end

local allowed, wait = 0, 0
if tokens >= 1 then
    allowed, tokens = 1, tokens - 1
else
    wait = math.max(0, every - (now - stamp))
end

redis.call('HSET', bucket, 'tokens', tokens, 'stamp', stamp)
redis.call('EXPIRE', bucket, ttl)
return {allowed, tokens, wait}
`)

type bucketState struct {
    allowed   bool
    remaining int64
    wait      time.Duration
}

func parseBucket(v any) (bucketState, error) {
    arr, ok := v.([]any)
    if !ok || len(arr) != 3 {
        return bucketState{}, fmt.Errorf("unexpected script result %#v", v)
    }
    nums := make([]int64, len(arr))
    for i, x := range arr {
        n, ok := x.(int64)
        if !ok {
            return bucketState{}, fmt.Errorf("unexpected script result %#v", v)
        }
        nums[i] = n
    }
    return bucketState{allowed: nums[0] == 1, remaining: nums[1], wait: time.Duration(nums[2]) * time.Millisecond}, nil
}

// NewTokenBucket limits requests with a Redis token bucket keyed by
// cfg.KeyStrategy. Redis failures let the request through.
func NewTokenBucket(cfg config.RateLimitConfig, rdb *redis.Client, log logrus.FieldLogger) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    if log == nil {
        log = logrus.StandardLogger()
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            key := bucketKey(cfg, c)
            res, err := takeToken.Run(c.Request().Context(), rdb, []string{key},
                time.Now().UnixMilli(), cfg.Capacity, cfg.RefillTokens,
                cfg.RefillInterval.Milliseconds(), int64(cfg.TTL/time.Second)).Result()
            if err != nil {
                log.WithError(err).WithField("key", key).Warn("ratelimit: script failed")
                return next(c)
            }
            st, err := parseBucket(res)
            if err != nil {
                log.WithError(err).WithField("key", key).Warn("ratelimit: bad bucket state")
                return next(c)
            }

            h := c.Response().Header()
            h.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
            h.Set("X-RateLimit-Remaining", strconv.FormatInt(st.remaining, 10))
            if cfg.Debug {
                h.Set("X-RateLimit-Key", key)
            }
            if st.allowed {
                return next(c)
            }

            secs := int((st.wait + time.Second - 1) / time.Second)
            h.Set("Retry-After", strconv.Itoa(secs))
            log.WithFields(logrus.Fields{"key": key, "retry_after": secs}).Info("ratelimit: blocked")
            return c.JSON(http.StatusTooManyRequests, echo.Map{
                "error":       "Too many attempts, try again later",
                "retry_after": secs,
            })
        }
    }
}

// bucketKey joins the parts named by strategy under prefix. Unknown
// strategies key on ip, user and route together.
func bucketKey(cfg config.RateLimitConfig, c echo.Context) string {
    ip := c.RealIP()
    if ip == "" {
        ip = "unknown"
    }
    parts := map[string]string{
        "ip":    ip,
        "user":  userID(c),
        "route": c.Request().Method + " " + c.Path(),
    }
    var order []string
    switch s := strings.ToLower(cfg.KeyStrategy); s {
    case "ip", "user", "route":
        order = []string{s}
    case "ip_user", "ip_route", "user_route":
        order = strings.Split(s, "_")
    default:
        order = []string{"ip", "user", "route"}
    }
    key := []string{cfg.Prefix}
    for _, name := range order {
        key = append(key, name, parts[name])
    }
    return strings.Join(key, ":")
}
