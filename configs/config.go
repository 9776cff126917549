package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Menu     MenuConfig
	QR       QRConfig
	Assets   AssetsConfig
	Admin    AdminConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TLSCertFile  string
	TLSKeyFile   string
}

type MenuConfig struct {
	// Source selects where the menu document lives: http, file or postgres.
	Source string
	URL    string
	Path   string
	// SkeletonCount is how many placeholder cards are shown while loading.
	SkeletonCount int
	ReloadQuiet   time.Duration
	ReloadTimeout time.Duration
	// Currency display settings for price formatting.
	CurrencySymbol   string
	CurrencyPosition string // prefix or suffix
}

type QRConfig struct {
	PublicURL    string
	Size         int
	DownloadName string
}

type AssetsConfig struct {
	Dir string
	// Version names the shell cache namespace; bump it when shipping a new
	// shell so clients re-install.
	Version  string
	Manifest []string
}

type AdminConfig struct {
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	DSN      string
	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	// Host empty means the in-process cache is used instead of Redis.
	Host     string
	Port     string
	Password string
	DB       int
	// Pool and timeout settings
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration
}

type LogConfig struct {
	Level  string
	Format string // json or text
}

// defaultManifest is the shell asset list cached for offline viewing.
var defaultManifest = []string{
	"/",
	"/index.html",
	"/styles.css",
	"/menu.js",
	"/data/menu.json",
	"/images/logo.svg",
	"/qr.html",
	"/qr.js",
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			TLSCertFile:  getEnv("TLS_CERT_FILE", ""),
			TLSKeyFile:   getEnv("TLS_KEY_FILE", ""),
		},
		Menu: MenuConfig{
			Source:           getEnv("MENU_SOURCE", "file"),
			URL:              getEnv("MENU_URL", ""),
			Path:             getEnv("MENU_PATH", "./web/data/menu.json"),
			SkeletonCount:    getIntEnv("MENU_SKELETONS", 6),
			ReloadQuiet:      getDurationEnv("MENU_RELOAD_QUIET", 180*time.Millisecond),
			ReloadTimeout:    getDurationEnv("MENU_RELOAD_TIMEOUT", 10*time.Second),
			CurrencySymbol:   getEnv("CURRENCY_SYMBOL", "€"),
			CurrencyPosition: getEnv("CURRENCY_POSITION", "prefix"),
		},
		QR: QRConfig{
			PublicURL:    getEnv("QR_PUBLIC_URL", "https://antonistheo07.github.io/qr-menu/"),
			Size:         getIntEnv("QR_SIZE", 220),
			DownloadName: getEnv("QR_DOWNLOAD_NAME", "qr-menu.png"),
		},
		Assets: AssetsConfig{
			Dir:      getEnv("ASSETS_DIR", "./web"),
			Version:  getEnv("ASSETS_VERSION", "qr-menu-v1"),
			Manifest: getSliceEnv("ASSETS_MANIFEST", defaultManifest),
		},
		Admin: AdminConfig{
			PasswordHash: getEnvRequired("ADMIN_PASSWORD_HASH"),
			JWTSecret:    getEnvRequired("ADMIN_JWT_SECRET"),
			TokenTTL:     getDurationEnv("ADMIN_TOKEN_TTL", time.Hour),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "qrmenu_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns:    getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnMaxIdleTime: getDurationEnv("DB_CONN_MAX_IDLE_TIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", ""),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getIntEnv("REDIS_DB", 0),
			PoolSize:     getIntEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: getIntEnv("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolTimeout:  getDurationEnv("REDIS_POOL_TIMEOUT", 4*time.Second),
			IdleTimeout:  getDurationEnv("REDIS_IDLE_TIMEOUT", 5*time.Minute),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Build database DSN
	cfg.Database.DSN = fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
