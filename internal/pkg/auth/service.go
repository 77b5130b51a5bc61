package auth

import (
	"sync"
	"time"

	"github.com/connectedautocare/quoteapi/internal/pkg/env"
)

var (
	defaultService *TokenService
	defaultOnce    sync.Once
)

// DefaultTokenService returns the process-wide token service configured
// from the environment. Tokens live 24 hours, matching the session idle
// window.
func DefaultTokenService() *TokenService {
	defaultOnce.Do(func() {
		secret := env.GetEnv("SECRET_KEY", "dev-secret-change-me")
		defaultService = NewTokenService(secret, 24*time.Hour)
	})
	return defaultService
}
