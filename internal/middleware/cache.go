package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "encoding/hex"
    "encoding/json"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/progear-storefront/internal/config"
)

// cachedResponse is what the cache stores per key.
type cachedResponse struct {
    Status int         `json:"status"`
    Header http.Header `json:"header"`
    Body   []byte      `json:"body"`
}

func (r cachedResponse) replay(c echo.Context) error {
    h := c.Response().Header()
    for k, vals := range r.Header {
        if strings.EqualFold(k, echo.HeaderContentLength) {
            continue
        }
        h[k] = append([]string(nil), vals...)
    }
    h.Set("X-Cache", "HIT")
    c.Response().WriteHeader(r.Status)
    _, err := c.Response().Write(r.Body)
    return err
}

// teeWriter copies up to limit bytes of the body aside while it streams to
// the client. overflow is set once the body grows past limit.
type teeWriter struct {
    http.ResponseWriter
    status   int
    body     bytes.Buffer
    limit    int
    overflow bool
}

func (w *teeWriter) WriteHeader(code int) {
    w.status = code
    w.ResponseWriter.WriteHeader(code)
}

func (w *teeWriter) Write(b []byte) (int, error) {
    if !w.overflow {
        if w.limit > 0 && w.body.Len()+len(b) > w.limit {
            w.overflow = true
            w.body.Reset()
        } else {
            w.body.Write(b)
        }
    }
    return w.ResponseWriter.Write(b)
}

// cacheKeyFrom hashes the request parts picked by cfg.KeyStrategy. Route
// patterns alone would collide for /v1/products/1 and /v1/products/2, so
// every strategy except "route" and "method_route" includes the real path.
func cacheKeyFrom(cfg config.CacheConfig, c echo.Context) string {
    r := c.Request()
    var parts []string
    switch strings.ToLower(cfg.KeyStrategy) {
    case "route":
        parts = []string{c.Path()}
    case "method_route":
        parts = []string{r.Method, c.Path()}
    case "method_route_query":
        parts = []string{r.Method, c.Path(), r.URL.Path, r.URL.RawQuery}
    default:
        parts = []string{c.Path(), r.URL.Path, r.URL.RawQuery}
    }
    sum := sha1.Sum([]byte(strings.Join(parts, "\n")))
    return cfg.Prefix + ":" + hex.EncodeToString(sum[:])
}

// NewRedisCache serves repeated public catalog reads from Redis. Entries are
// shared between callers, so only session-independent routes may use it. A
// disabled config or a nil client makes it a pass-through.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client, log logrus.FieldLogger) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    if log == nil {
        log = logrus.StandardLogger()
    }
    ttl := cfg.TTL
    if ttl <= 0 {
        ttl = 30 * time.Second
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
                return next(c)
            }
            ctx := c.Request().Context()
            key := cacheKeyFrom(cfg, c)
            l := log.WithField("key", key)

            raw, err := rdb.Get(ctx, key).Bytes()
            switch {
            case err == nil:
                var hit cachedResponse
                if jerr := json.Unmarshal(raw, &hit); jerr == nil {
                    return hit.replay(c)
                }
                l.Warn("cache: dropping unreadable entry")
            case !errors.Is(err, redis.Nil):
                l.WithError(err).Warn("cache: read failed")
            }

            tw := &teeWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
            c.Response().Writer = tw
            c.Response().Header().Set("X-Cache", "MISS")
            if err := next(c); err != nil {
                return err
            }
            if tw.status != http.StatusOK || tw.overflow ||
                strings.Contains(c.Response().Header().Get(echo.HeaderCacheControl), "no-store") {
                return nil
            }

            entry := cachedResponse{Status: tw.status, Header: c.Response().Header().Clone(), Body: tw.body.Bytes()}
            entry.Header.Del("X-Cache")
            raw, err = json.Marshal(entry)
            if err == nil {
                err = rdb.Set(context.WithoutCancel(ctx), key, raw, ttl).Err()
            }
            if err != nil {
                l.WithError(err).Warn("cache: write failed")
            }
            return nil
        }
    }
}

// PurgeCache drops every entry under cfg.Prefix. Catalog writes call it so
// shoppers never see a deleted product for a whole TTL.
func PurgeCache(ctx context.Context, cfg config.CacheConfig, rdb *redis.Client) error {
    if !cfg.Enabled || rdb == nil {
        return nil
    }
    iter := rdb.Scan(ctx, 0, cfg.Prefix+":*", 100).Iterator()
    var keys []string
    for iter.Next(ctx) {
        keys = append(keys, iter.Val())
    }
    if err := iter.Err(); err != nil {
        return err
    }
    if len(keys) == 0 {
        return nil
    }
    return rdb.Del(ctx, keys...).Err()
}
