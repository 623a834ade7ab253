package config

import "time"

// RateLimitConfig tunes the token bucket in front of login and register. A
// bucket starts with Capacity tokens and regains RefillTokens every
// RefillInterval; an idle bucket is dropped after TTL.
type RateLimitConfig struct {
    Enabled        bool
    Capacity       int
    RefillTokens   int
    RefillInterval time.Duration
    TTL            time.Duration
    KeyStrategy    string // ip, user, route, ip_user, ip_route, user_route or all three
    Prefix         string
    Debug          bool // exposes the bucket key in X-RateLimit-Key
}

// LoadRateLimitConfig reads the RATE_LIMIT_* variables.
func LoadRateLimitConfig() RateLimitConfig {
    cfg := RateLimitConfig{
        Enabled:        envBool("RATE_LIMIT_ENABLED", true),
        Capacity:       envInt("RATE_LIMIT_CAPACITY", 10),
        RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 1),
        RefillInterval: envDur("RATE_LIMIT_REFILL_INTERVAL", 6*time.Second),
        TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
        KeyStrategy:    getenv("RATE_LIMIT_KEY_STRATEGY", "ip_route"),
        Prefix:         getenv("RATE_LIMIT_PREFIX", "progear:rl"),
        Debug:          envBool("RATE_LIMIT_DEBUG", false),
    }
    cfg.clamp()
    return cfg
}

// clamp keeps the bucket usable whatever the environment says. A bucket must
// outlive a few refill intervals or it would reset before it ever refills.
func (c *RateLimitConfig) clamp() {
    c.Capacity = max(c.Capacity, 1)
    c.RefillTokens = max(c.RefillTokens, 1)
    if c.RefillInterval <= 0 {
        c.RefillInterval = time.Second
    }
    c.TTL = max(c.TTL, 5*c.RefillInterval)
}
