package config

import (
	"strconv"
	"time"
)

type TokenConfig interface {
	GetAccessTokenKey() string
	GetRefreshTokenKey() string
	GetAccessTokenAge() time.Duration
	GetRefreshTokenAge() time.Duration
}

type Tokens struct{}

var _ TokenConfig = Tokens{}

func (Tokens) GetAccessTokenKey() string {
	return GetEnv("ACCESS_TOKEN_KEY", "dev-access-secret")
}

func (Tokens) GetRefreshTokenKey() string {
	return GetEnv("REFRESH_TOKEN_KEY", "dev-refresh-secret")
}

// GetAccessTokenAge reads ACCESS_TOKEN_AGE as seconds.
func (Tokens) GetAccessTokenAge() time.Duration {
	return secondsEnv("ACCESS_TOKEN_AGE", 30*time.Minute)
}

// GetRefreshTokenAge reads REFRESH_TOKEN_AGE as seconds. Refresh token expiry
// is enforced against the stored issue time, not the token signature.
func (Tokens) GetRefreshTokenAge() time.Duration {
	return secondsEnv("REFRESH_TOKEN_AGE", 30*24*time.Hour)
}

func secondsEnv(envVar string, defaultValue time.Duration) time.Duration {
	raw := GetEnv(envVar, "")
	if raw == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
