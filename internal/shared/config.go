package shared

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv       string
	MetricsAddr  string // empty = ops endpoint disabled
	EmitInterval time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:       env("APP_ENV", "prod"),
		MetricsAddr:  env("METRICS_ADDR", ""),
		EmitInterval: time.Duration(atoi("EMIT_INTERVAL_SECONDS", 5)) * time.Second,
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
