package config

import (
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/sirupsen/logrus"
)

// getenv returns the variable or def when it is unset or empty.
func getenv(key, def string) string {
    if v := strings.TrimSpace(os.Getenv(key)); v != "" {
        return v
    }
    return def
}

func envBool(key string, def bool) bool {
    v := getenv(key, "")
    if v == "" {
        return def
    }
    switch strings.ToLower(v) {
    case "1", "true", "yes", "on":
        return true
    case "0", "false", "no", "off":
        return false
    }
    logrus.Warnf("config: %s=%q is not a boolean, using %v", key, v, def)
    return def
}

func envInt(key string, def int) int {
    v := getenv(key, "")
    if v == "" {
        return def
    }
    n, err := strconv.Atoi(v)
    if err != nil {
        logrus.Warnf("config: %s=%q is not an integer, using %d", key, v, def)
        return def
    }
    return n
}

func envDur(key string, def time.Duration) time.Duration {
    v := getenv(key, "")
    if v == "" {
        return def
    }
    d, err := time.ParseDuration(v)
    if err != nil {
        logrus.Warnf("config: %s=%q is not a duration, using %s", key, v, def)
        return def
    }
    return d
}

// envList splits a comma separated variable into upper-cased entries.
func envList(key, def string) map[string]bool {
    out := map[string]bool{}
    for _, p := range strings.Split(getenv(key, def), ",") {
        if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
            out[p] = true
        }
    }
    return out
}
