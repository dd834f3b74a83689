package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config holds application level configuration loaded from flags, environment and an optional dotenv file.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	TotalRacks         int
	ResyncInterval     time.Duration
	StatsSchedule      string
	ShutdownTimeout    time.Duration
	LogLevel           slog.Level
	CORSAllowedOrigins []string
	Currency           string
	Locale             string
	NotifyQueueSize    int

	S3 S3Config
	PhotoURLTTL time.Duration

	Twilio TwilioConfig
}

// S3Config configures line-item photo storage. An empty bucket disables photos.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// Enabled reports whether photo storage is configured.
func (c S3Config) Enabled() bool { return c.Bucket != "" }

// TwilioConfig configures SMS delivery. Missing credentials disable SMS.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// Enabled reports whether SMS delivery is configured.
func (c TwilioConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

const (
	defaultRunAddress      = ":8080"
	defaultTotalRacks      = 50
	maxTotalRacks          = 10000
	defaultResyncInterval  = 30 * time.Second
	defaultStatsSchedule   = "55 23 * * *"
	defaultShutdownTimeout = 10 * time.Second
	defaultCurrency        = "USD"
	defaultLocale          = "en"
	defaultNotifyQueueSize = 64
	defaultPhotoURLTTL     = 15 * time.Minute
	defaultEnvFile         = ".env"
)

// Load parses configuration from flags, environment variables and the dotenv
// file named by ENV_FILE. Real environment variables win over the file.
func Load() (*Config, error) {
	path := defaultEnvFile
	if v, ok := os.LookupEnv("ENV_FILE"); ok && v != "" {
		path = v
	}
	fileVals, err := readEnvFile(path)
	if err != nil {
		return nil, err
	}
	return load(os.Args[1:], layered(os.LookupEnv, fileVals))
}

type envLookup func(string) (string, bool)

func readEnvFile(path string) (map[string]string, error) {
	vals, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return vals, nil
}

func layered(primary envLookup, fallback map[string]string) envLookup {
	return func(key string) (string, bool) {
		if v, ok := primary(key); ok {
			return v, true
		}
		v, ok := fallback[key]
		return v, ok
	}
}

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		TotalRacks:      getInt(lookup, "TOTAL_RACKS", defaultTotalRacks),
		ResyncInterval:  getDuration(lookup, "RESYNC_INTERVAL", defaultResyncInterval),
		StatsSchedule:   getString(lookup, "STATS_SCHEDULE", defaultStatsSchedule),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		Currency:        strings.ToUpper(getString(lookup, "CURRENCY", defaultCurrency)),
		Locale:          getString(lookup, "LOCALE", defaultLocale),
		NotifyQueueSize: getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
		PhotoURLTTL:     getDuration(lookup, "PHOTO_URL_TTL", defaultPhotoURLTTL),
		S3: S3Config{
			Bucket:          getString(lookup, "S3_BUCKET", ""),
			Region:          getString(lookup, "S3_REGION", ""),
			Endpoint:        getString(lookup, "S3_ENDPOINT", ""),
			AccessKeyID:     getString(lookup, "AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getString(lookup, "AWS_SECRET_ACCESS_KEY", ""),
		},
		Twilio: TwilioConfig{
			AccountSID: getString(lookup, "TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getString(lookup, "TWILIO_AUTH_TOKEN", ""),
			FromNumber: getString(lookup, "TWILIO_FROM_NUMBER", ""),
		},
	}

	flags := flag.NewFlagSet("pimpcleaner", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		resyncStr   = cfg.ResyncInterval.String()
		shutdownStr = cfg.ShutdownTimeout.String()
		levelStr    = getString(lookup, "LOG_LEVEL", "info")
		originsStr  = getString(lookup, "CORS_ALLOWED_ORIGINS", "*")
	)

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	flags.IntVar(&cfg.TotalRacks, "racks", cfg.TotalRacks, "Number of racks in the shop")
	flags.StringVar(&resyncStr, "resync-interval", resyncStr, "Interval between full ledger reloads")
	flags.StringVar(&cfg.StatsSchedule, "stats-schedule", cfg.StatsSchedule, "Cron schedule of daily metric snapshots")
	flags.StringVar(&shutdownStr, "shutdown-timeout", shutdownStr, "Graceful shutdown timeout")
	flags.StringVar(&levelStr, "log-level", levelStr, "Log level (debug, info, warn, error)")
	flags.StringVar(&originsStr, "cors-origins", originsStr, "Comma separated list of allowed origins")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ResyncInterval, err = time.ParseDuration(resyncStr); err != nil {
		return nil, fmt.Errorf("invalid resync interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if _, err := cron.ParseStandard(cfg.StatsSchedule); err != nil {
		return nil, fmt.Errorf("invalid stats schedule: %w", err)
	}

	cfg.CORSAllowedOrigins = splitList(originsStr)

	if cfg.TotalRacks <= 0 {
		cfg.TotalRacks = defaultTotalRacks
	}
	if cfg.TotalRacks > maxTotalRacks {
		return nil, fmt.Errorf("total racks must not exceed %d, got %d", maxTotalRacks, cfg.TotalRacks)
	}

	if cfg.ResyncInterval <= 0 {
		cfg.ResyncInterval = defaultResyncInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.PhotoURLTTL <= 0 {
		cfg.PhotoURLTTL = defaultPhotoURLTTL
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if u, err := url.Parse(cfg.DatabaseURI); err != nil || u.Scheme == "" {
		return nil, fmt.Errorf("database URI must be a URL")
	}

	if cfg.S3.Enabled() && cfg.S3.Region == "" {
		return nil, fmt.Errorf("S3 region must be provided with a bucket")
	}

	return cfg, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
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
