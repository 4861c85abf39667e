package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/eihojp/corpsite/internal/mailer"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	SQLite  SQLiteConfig      `yaml:"sqlite"`
	Storage StorageConfig     `yaml:"storage"`
	Auth    AuthConfig        `yaml:"auth"`
	SMTP    SMTPConfig        `yaml:"smtp"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.SQLite.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	return c.SMTP.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// SQLiteConfig holds SQLite database configuration.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// StorageConfig holds upload storage configuration. GitHub is optional; when
// Token and Repo are set, uploads go to the repository and are served through
// the CDN. Managed marks platforms without a writable local disk, where a
// broken remote store must fail the upload instead of falling back.
type StorageConfig struct {
	UploadsDir string       `yaml:"uploads_dir"`
	Managed    bool         `yaml:"managed"`
	GitHub     GitHubConfig `yaml:"github"`
}

// Validate validates the storage configuration.
func (c *StorageConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.UploadsDir, validation.Required),
	); err != nil {
		return err
	}
	if c.Managed && !c.GitHub.Enabled() {
		return fmt.Errorf("storage: managed mode requires github token and repo")
	}
	return nil
}

// GitHubConfig holds the remote asset store settings.
type GitHubConfig struct {
	Token         string `yaml:"token"`
	Repo          string `yaml:"repo"`
	Branch        string `yaml:"branch"`
	Prefix        string `yaml:"prefix"`
	PublicBaseURL string `yaml:"public_base_url"`
}

// Enabled returns true when the remote store is configured.
func (c *GitHubConfig) Enabled() bool {
	return c.Token != "" && c.Repo != ""
}

// AuthConfig holds the admin account settings. PasswordHash accepts either a
// pbkdf2_sha256 hash or, for local development, a plain password.
type AuthConfig struct {
	User          string `yaml:"user"`
	PasswordHash  string `yaml:"password_hash"`
	SecretKey     string `yaml:"secret_key"`
	SecureCookies bool   `yaml:"secure_cookies"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.User, validation.Required),
		validation.Field(&c.PasswordHash, validation.Required),
		validation.Field(&c.SecretKey, validation.Required, validation.Length(16, 0)),
	)
}

// SMTPConfig holds the outbound mail settings for the contact form. The whole
// section is optional; with an empty host the contact endpoint reports mail
// as unconfigured.
type SMTPConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	UseTLS     bool   `yaml:"use_tls"`
	AdminEmail string `yaml:"admin_email"`
	From       string `yaml:"from"`
}

// Validate validates the SMTP configuration.
func (c *SMTPConfig) Validate() error {
	if c.Host == "" {
		return nil
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.AdminEmail, validation.Required),
	)
}

// Mailer converts the section into the mailer package's config.
func (c *SMTPConfig) Mailer() mailer.Config {
	return mailer.Config{
		Host:       c.Host,
		Port:       c.Port,
		Username:   c.Username,
		Password:   c.Password,
		UseTLS:     c.UseTLS,
		AdminEmail: c.AdminEmail,
		From:       c.From,
	}
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		SQLite: SQLiteConfig{
			Path: "./corpsite.db",
		},
		Storage: StorageConfig{
			UploadsDir: "./uploads",
			GitHub: GitHubConfig{
				Branch: "main",
				Prefix: "uploads",
			},
		},
		Auth: AuthConfig{
			User: "admin",
		},
		SMTP: SMTPConfig{
			Port:   587,
			UseTLS: true,
		},
	}
}
