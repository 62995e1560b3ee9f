package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"disc-rental/config"
	"disc-rental/pkg/log"
	"disc-rental/pkg/scope"
)

// claimsCacheSize bounds the verified-token cache; entries expire so a
// token is re-verified, and its expiry re-checked, at least once per
// claimsCacheTTL.
const (
	claimsCacheSize = 1024
	claimsCacheTTL  = 5 * time.Minute
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	authConfig config.AuthConfig
	claims     *expirable.LRU[string, scope.Claims]
}

func New(l log.Logger, jwtManager scope.Manager, authConfig config.AuthConfig) Middleware {
	ttl := claimsCacheTTL
	if authConfig.TokenTTL > 0 && authConfig.TokenTTL < ttl {
		ttl = authConfig.TokenTTL
	}
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		authConfig: authConfig,
		claims:     expirable.NewLRU[string, scope.Claims](claimsCacheSize, nil, ttl),
	}
}
