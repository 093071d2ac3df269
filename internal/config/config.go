package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage drivers accepted by StorageDriver.
const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	StorageDriver    string
	DataDir          string
	DatabaseURI      string
	StaticDir        string
	LogLevel         slog.Level
	ShutdownTimeout  time.Duration
	NotifyWebhookURL string
	NotifyWorkers    int
	NotifyQueueSize  int
}

const (
	defaultRunAddress      = ":8080"
	defaultStorageDriver   = StorageFile
	defaultDataDir         = "."
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
	defaultNotifyWorkers   = 2
	defaultNotifyQueueSize = 64
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	runAddress := getString(lookup, "RUN_ADDRESS", "")
	if runAddress == "" {
		if port := getString(lookup, "PORT", ""); port != "" {
			runAddress = ":" + port
		} else {
			runAddress = defaultRunAddress
		}
	}

	cfg := &Config{
		RunAddress:       runAddress,
		StorageDriver:    getString(lookup, "STORAGE_DRIVER", defaultStorageDriver),
		DataDir:          getString(lookup, "DATA_DIR", defaultDataDir),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		StaticDir:        getString(lookup, "STATIC_DIR", ""),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		NotifyWebhookURL: getString(lookup, "NOTIFY_WEBHOOK_URL", ""),
		NotifyWorkers:    getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
		NotifyQueueSize:  getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
	}

	fs := flag.NewFlagSet("projectdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		logLevelStr        = getString(lookup, "LOG_LEVEL", defaultLogLevel)
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.StorageDriver, "storage", cfg.StorageDriver, "Storage driver: file, memory or postgres")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory holding orders.json and reviews.json")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for the postgres driver")
	fs.StringVar(&cfg.StaticDir, "static", cfg.StaticDir, "Directory with site assets to serve")
	fs.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level: debug, info, warn or error")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.NotifyWebhookURL, "notify-webhook", cfg.NotifyWebhookURL, "URL receiving intake notifications")
	fs.IntVar(&cfg.NotifyWorkers, "notify-workers", cfg.NotifyWorkers, "Number of notification workers")
	fs.IntVar(&cfg.NotifyQueueSize, "notify-queue", cfg.NotifyQueueSize, "Notification queue capacity")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = defaultNotifyWorkers
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	switch cfg.StorageDriver {
	case StorageFile, StorageMemory:
	case StoragePostgres:
		if cfg.DatabaseURI == "" {
			return nil, fmt.Errorf("database URI must be provided for the postgres storage driver")
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if cfg.NotifyWebhookURL != "" {
		parsed, err := url.Parse(cfg.NotifyWebhookURL)
		if err != nil || !parsed.IsAbs() {
			return nil, fmt.Errorf("notify webhook url must be absolute: %q", cfg.NotifyWebhookURL)
		}
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
