package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jobportal/portalManager/database"
	"github.com/jobportal/portalManager/upload"
	"github.com/spf13/viper"
)

const (
	DatabaseModePostgres = "postgres"
	DatabaseModeMemory   = "memory"
	// DefaultAdminPassword is only meant for local demo setups.
	DefaultAdminPassword = "admin"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Storage  StorageConfig  `mapstructure:"storage"`
}

type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	SecureCookies  bool          `mapstructure:"secure_cookies"`
	TrustedOrigins []string      `mapstructure:"trusted_origins"`
	SessionKey     string        `mapstructure:"session_key"`
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
}

// DatabaseConfig selects the row store. Mode memory keeps everything in
// process and seeds demo data.
type DatabaseConfig struct {
	Mode          string `mapstructure:"mode"`
	Host          string `mapstructure:"host"`
	Port          string `mapstructure:"port"`
	Name          string `mapstructure:"name"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	SSLMode       string `mapstructure:"sslmode"`
	Schema        string `mapstructure:"schema"`
	WithTableDrop bool   `mapstructure:"with_table_drop"`
	Seed          bool   `mapstructure:"seed"`
}

// AdminConfig is the single administrator account. PasswordHash takes
// precedence over Password.
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	Email        string `mapstructure:"email"`
	Password     string `mapstructure:"password"`
	PasswordHash string `mapstructure:"password_hash"`
	Role         string `mapstructure:"role"`
}

type StorageConfig struct {
	Mode string   `mapstructure:"mode"`
	Path string   `mapstructure:"path"`
	S3   S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// PORTAL_MANAGER_, e.g. PORTAL_MANAGER_DATABASE_MODE=memory.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "3000")
	v.SetDefault("server.secure_cookies", false)
	v.SetDefault("server.trusted_origins", []string{})
	v.SetDefault("server.session_key", "")
	v.SetDefault("server.session_ttl", "12h")

	v.SetDefault("database.mode", DatabaseModePostgres)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "portal")
	v.SetDefault("database.user", "portal")
	v.SetDefault("database.password", "")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.schema", "public")
	v.SetDefault("database.with_table_drop", false)
	v.SetDefault("database.seed", false)

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.email", "admin@jobportal.local")
	v.SetDefault("admin.password", DefaultAdminPassword)
	v.SetDefault("admin.password_hash", "")
	v.SetDefault("admin.role", "Administrator")

	v.SetDefault("storage.mode", upload.STORAGE_MODE_LOCAL)
	v.SetDefault("storage.path", "./uploads")
	v.SetDefault("storage.s3.endpoint", "")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("storage.s3.bucket", "")
	v.SetDefault("storage.s3.access_key_id", "")
	v.SetDefault("storage.s3.secret_access_key", "")
	v.SetDefault("storage.s3.use_ssl", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PORTAL_MANAGER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "portalManager"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PORTAL_MANAGER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.Database.Mode {
	case DatabaseModePostgres, DatabaseModeMemory:
	default:
		return fmt.Errorf("invalid database.mode %q (supported: postgres, memory)", c.Database.Mode)
	}
	switch strings.ToLower(c.Storage.Mode) {
	case upload.STORAGE_MODE_LOCAL, upload.STORAGE_MODE_S3, upload.STORAGE_MODE_MEMORY:
	default:
		return fmt.Errorf("invalid storage.mode %q (supported: local, s3, memory)", c.Storage.Mode)
	}
	if c.Admin.Email == "" {
		return errors.New("admin.email must not be empty")
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return errors.New("one of admin.password and admin.password_hash must be set")
	}
	if c.Server.SessionTTL <= 0 {
		return fmt.Errorf("invalid server.session_ttl %s", c.Server.SessionTTL)
	}
	return nil
}

// Connection returns the Postgres connection settings.
func (c DatabaseConfig) Connection() database.Configuration {
	return database.Configuration{
		Host:     c.Host,
		Port:     c.Port,
		Database: c.Name,
		Username: c.User,
		Password: c.Password,
		Schema:   c.Schema,
		SSLMode:  c.SSLMode,
	}
}

// Upload returns the filesystem settings for logo storage.
func (c StorageConfig) Upload() upload.Config {
	return upload.Config{
		Mode: c.Mode,
		Path: c.Path,
		S3: upload.S3Config{
			Endpoint:        c.S3.Endpoint,
			Region:          c.S3.Region,
			BucketName:      c.S3.Bucket,
			AccessKeyID:     c.S3.AccessKeyID,
			SecretAccessKey: c.S3.SecretAccessKey,
			UseSSL:          c.S3.UseSSL,
		},
	}
}
