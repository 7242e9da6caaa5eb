// Package config provides functionality for managing configuration options
// for the application using command-line flags, a config file and
// environment variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store drivers understood by OpenStore.
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Export archive drivers.
const (
	ExportNone = ""
	ExportFS   = "fs"
	ExportS3   = "s3"
)

// Duration is a time.Duration read from "1h30m" style strings in config
// files.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	return d.parse(s)
}

func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	return d.parse(n.Value)
}

func (d *Duration) parse(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Options holds the configuration values for the application.
type Options struct {
	// Address defines the server's listening address (ip:port).
	Address string `json:"address" yaml:"address"`

	// StoreDriver selects the collection store backend.
	StoreDriver string `json:"store_driver" yaml:"store_driver"`
	// StoreDSN is the directory, file, connection string or redis URL of
	// the store, depending on StoreDriver.
	StoreDSN string `json:"store_dsn" yaml:"store_dsn"`
	// RedisPrefix namespaces the keys in a shared redis.
	RedisPrefix string `json:"redis_prefix" yaml:"redis_prefix"`

	JWTSecret string   `json:"jwt_secret" yaml:"jwt_secret"`
	TokenTTL  Duration `json:"token_ttl" yaml:"token_ttl"`

	LogLevel string `json:"log_level" yaml:"log_level"`

	TLSCert string `json:"tls_cert" yaml:"tls_cert"`
	TLSKey  string `json:"tls_key" yaml:"tls_key"`

	ExportDriver   string `json:"export_driver" yaml:"export_driver"`
	ExportDir      string `json:"export_dir" yaml:"export_dir"`
	S3Bucket       string `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region       string `json:"s3_region" yaml:"s3_region"`
	S3Endpoint     string `json:"s3_endpoint" yaml:"s3_endpoint"`
	S3UsePathStyle bool   `json:"s3_path_style" yaml:"s3_path_style"`

	// CleanupInterval is how often read notifications are purged.
	CleanupInterval Duration `json:"cleanup_interval" yaml:"cleanup_interval"`
	// NotificationRetention is how long read notifications are kept.
	NotificationRetention Duration `json:"notification_retention" yaml:"notification_retention"`

	// Config is the path to the config file.
	Config string `json:"-" yaml:"-"`
	// EnvFile is the dotenv file consulted after the process environment.
	EnvFile string `json:"-" yaml:"-"`
}

// Parse parses the process arguments and environment. It exits on invalid
// configuration.
func Parse() *Options {
	opts, err := Load(os.Args[0], os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	return opts
}

// Load resolves the options from args, then the config file, then the
// environment. Each stage overrides the previous one. getenv is consulted
// before the dotenv file.
func Load(name string, args []string, getenv func(string) string) (*Options, error) {
	o := &Options{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&o.Address, "a", "localhost:8080", "run on ip:port server")
	fs.StringVar(&o.StoreDriver, "store", StoreFile, "store driver: memory, file, sqlite, postgres or redis")
	fs.StringVar(&o.StoreDSN, "d", "data", "store location: directory, sqlite file, postgres dsn or redis url")
	fs.StringVar(&o.RedisPrefix, "redis-prefix", "fleetkeeper:", "redis key prefix")
	fs.StringVar(&o.JWTSecret, "jwt-secret", "", "session token signing secret")
	fs.DurationVar(&o.TokenTTL.Duration, "token-ttl", 24*time.Hour, "session token lifetime")
	fs.StringVar(&o.LogLevel, "l", "info", "log level")
	fs.StringVar(&o.TLSCert, "tls-cert", "", "server TLS certificate")
	fs.StringVar(&o.TLSKey, "tls-key", "", "server TLS key")
	fs.StringVar(&o.ExportDriver, "export", ExportNone, "export archive: fs or s3")
	fs.StringVar(&o.ExportDir, "export-dir", "archive", "fs archive directory")
	fs.StringVar(&o.S3Bucket, "s3-bucket", "", "s3 archive bucket")
	fs.StringVar(&o.S3Region, "s3-region", "", "s3 archive region")
	fs.StringVar(&o.S3Endpoint, "s3-endpoint", "", "custom s3 endpoint")
	fs.BoolVar(&o.S3UsePathStyle, "s3-path-style", false, "use path-style s3 addressing")
	fs.DurationVar(&o.CleanupInterval.Duration, "cleanup-interval", time.Hour, "read notification purge interval")
	fs.DurationVar(&o.NotificationRetention.Duration, "retention", 30*24*time.Hour, "read notification retention")
	fs.StringVar(&o.Config, "config", "config.json", "path to config file")
	fs.StringVar(&o.Config, "c", "config.json", "path to config file (shorthand)")
	fs.StringVar(&o.EnvFile, "env-file", ".env", "dotenv file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	env, err := loadEnv(o.EnvFile, getenv)
	if err != nil {
		return nil, err
	}

	if configPath := env("CONFIG"); configPath != "" {
		o.Config = configPath
	}
	if err := o.readFile(); err != nil {
		return nil, err
	}
	if err := o.applyEnv(env); err != nil {
		return nil, err
	}
	return o, o.validate()
}

// loadEnv merges the process environment over the dotenv file. A missing
// dotenv file is not an error.
func loadEnv(path string, getenv func(string) string) (func(string) string, error) {
	dotenv := map[string]string{}
	if path != "" {
		m, err := godotenv.Read(path)
		switch {
		case err == nil:
			dotenv = m
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("read env file: %w", err)
		}
	}
	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}, nil
}

func (o *Options) readFile() error {
	if o.Config == "" {
		return nil
	}
	data, err := os.ReadFile(o.Config)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error while reading config file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(o.Config)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, o)
	default:
		err = json.Unmarshal(data, o)
	}
	if err != nil {
		return fmt.Errorf("error while parsing config file: %w", err)
	}
	return nil
}

func (o *Options) applyEnv(env func(string) string) error {
	strs := map[string]*string{
		"SERVER_ADDRESS":     &o.Address,
		"STORE_DRIVER":       &o.StoreDriver,
		"STORE_DSN":          &o.StoreDSN,
		"REDIS_PREFIX":       &o.RedisPrefix,
		"JWT_SECRET":         &o.JWTSecret,
		"LOG_LEVEL":          &o.LogLevel,
		"TLS_CERT":           &o.TLSCert,
		"TLS_KEY":            &o.TLSKey,
		"EXPORT_DRIVER":      &o.ExportDriver,
		"EXPORT_DIR":         &o.ExportDir,
		"EXPORT_S3_BUCKET":   &o.S3Bucket,
		"AWS_REGION":         &o.S3Region,
		"EXPORT_S3_ENDPOINT": &o.S3Endpoint,
	}
	for key, dst := range strs {
		if v := env(key); v != "" {
			*dst = v
		}
	}

	durations := map[string]*Duration{
		"TOKEN_TTL":              &o.TokenTTL,
		"CLEANUP_INTERVAL":       &o.CleanupInterval,
		"NOTIFICATION_RETENTION": &o.NotificationRetention,
	}
	for key, dst := range durations {
		if v := env(key); v != "" {
			if err := dst.parse(v); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
	}

	if v := env("EXPORT_S3_PATH_STYLE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("EXPORT_S3_PATH_STYLE: %w", err)
		}
		o.S3UsePathStyle = b
	}
	return nil
}

func (o *Options) validate() error {
	switch o.StoreDriver {
	case StoreMemory, StoreFile, StoreSQLite, StorePostgres, StoreRedis:
	default:
		return fmt.Errorf("unknown store driver %q", o.StoreDriver)
	}
	switch o.ExportDriver {
	case ExportNone, ExportFS:
	case ExportS3:
		if o.S3Bucket == "" {
			return errors.New("s3 export requires a bucket")
		}
	default:
		return fmt.Errorf("unknown export driver %q", o.ExportDriver)
	}
	if o.CleanupInterval.Duration <= 0 {
		return errors.New("cleanup interval must be positive")
	}
	return nil
}
