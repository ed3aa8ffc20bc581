package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Auth
	DirectoryPassword string // 認証ディレクトリスタブの共通パスワード

	// Session
	SessionMaxAge    int    // セッション有効期間（秒）
	SessionStorePath string // セッションストアのファイルパス

	// Scoring
	ScorerExperienceYears int     // 経験年数の高評価しきい値
	ScorerRating          float64 // 評価の高評価しきい値

	// Rate Limit
	RateLimitGeneral int // API全般のレート（req/min/user）
	RateLimitLogin   int // ログイン試行のレート（req/min/IP）

	// Worker
	SessionPurgeInterval    time.Duration // 期限切れセッション削除の実行間隔
	MaintenanceScanInterval time.Duration // 整備期限スキャンの実行間隔

	// Server
	ServerPort string
	BaseURL    string

	// Cookie
	CookieSecure bool
	CookieDomain string

	// CORS
	CORSAllowedOrigin string
}

// Load は環境変数からConfigを読み込む。
// 必須環境変数が未設定の場合はエラーを返す。
func Load() (*Config, error) {
	cfg := &Config{}

	// Required fields
	var missing []string

	cfg.DirectoryPassword = os.Getenv("DIRECTORY_PASSWORD")
	if cfg.DirectoryPassword == "" {
		missing = append(missing, "DIRECTORY_PASSWORD")
	}

	cfg.BaseURL = os.Getenv("BASE_URL")
	if cfg.BaseURL == "" {
		missing = append(missing, "BASE_URL")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	// Optional fields with defaults
	cfg.SessionMaxAge = getEnvInt("SESSION_MAX_AGE", 86400)
	cfg.SessionStorePath = getEnvString("SESSION_STORE_PATH", "data/sessions.json")
	cfg.ScorerExperienceYears = getEnvInt("SCORER_EXPERIENCE_YEARS", 5)
	cfg.ScorerRating = getEnvFloat("SCORER_RATING", 4.5)
	cfg.RateLimitGeneral = getEnvInt("RATE_LIMIT_GENERAL", 120)
	cfg.RateLimitLogin = getEnvInt("RATE_LIMIT_LOGIN", 10)
	cfg.SessionPurgeInterval = getEnvDuration("SESSION_PURGE_INTERVAL", 1*time.Hour)
	cfg.MaintenanceScanInterval = getEnvDuration("MAINTENANCE_SCAN_INTERVAL", 6*time.Hour)
	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.CookieSecure = strings.HasPrefix(cfg.BaseURL, "https://")
	cfg.CookieDomain = getEnvString("COOKIE_DOMAIN", "")
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvFloat(key string, defaultVal float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
