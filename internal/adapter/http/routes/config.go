package routes

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort           = "8080"
	defaultPollSeconds    = 30
	defaultBackendSeconds = 5
	defaultIdleSeconds    = 1800
	shutdownTimeout       = 10 * time.Second
)

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvSeconds(key string, def int) time.Duration {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		n = def
	}
	return time.Duration(n) * time.Second
}

// allowedOrigins parses CORS_ALLOWED_ORIGINS as a comma separated list.
// Empty means any origin.
func allowedOrigins() []string {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if strings.TrimSpace(raw) == "" {
		return []string{"*"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
