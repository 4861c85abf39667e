package internal

import (
	"strings"
	"testing"
)

func validAuth() AuthConfig {
	return AuthConfig{
		User:         "admin",
		PasswordHash: "pbkdf2_sha256$260000$abc$def",
		SecretKey:    "0123456789abcdef",
	}
}

func TestAuthConfig_Valid(t *testing.T) {
	cfg := validAuth()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid auth should pass: %v", err)
	}
}

func TestAuthConfig_ShortSecret(t *testing.T) {
	cfg := validAuth()
	cfg.SecretKey = "short"
	if cfg.Validate() == nil {
		t.Fatal("short secret key should fail validation")
	}
}

func TestAuthConfig_MissingPassword(t *testing.T) {
	cfg := validAuth()
	cfg.PasswordHash = ""
	if cfg.Validate() == nil {
		t.Fatal("empty password hash should fail validation")
	}
}

func TestStorageConfig_ManagedRequiresGitHub(t *testing.T) {
	cfg := StorageConfig{UploadsDir: "./uploads", Managed: true}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("managed mode without github should fail")
	}
	if !strings.Contains(err.Error(), "managed mode") {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.GitHub = GitHubConfig{Token: "t", Repo: "owner/assets"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("managed mode with github should pass: %v", err)
	}
}

func TestSMTPConfig_OptionalSection(t *testing.T) {
	cfg := SMTPConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty smtp section should pass: %v", err)
	}
	if cfg.Mailer().Enabled() {
		t.Error("empty smtp section should not enable mail")
	}

	cfg = SMTPConfig{Host: "smtp.example.com"}
	if cfg.Validate() == nil {
		t.Fatal("smtp with host but no admin email should fail")
	}
}

func TestFullConfig_SectionsValidated(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Auth = validAuth()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config with auth should pass: %v", err)
	}

	cfg.SQLite.Path = ""
	if cfg.Validate() == nil {
		t.Fatal("missing sqlite path should fail validation")
	}
}
