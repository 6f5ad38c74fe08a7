package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Documents.PurgeAfter <= 0 {
		return fmt.Errorf("documents.purge_after must be > 0 (got %v)", c.Documents.PurgeAfter)
	}
	if c.Documents.PurgeBatchSize <= 0 {
		return fmt.Errorf("documents.purge_batch_size must be > 0 (got %d)", c.Documents.PurgeBatchSize)
	}
	if c.Documents.MaxPlansListed <= 0 {
		return fmt.Errorf("documents.max_plans_listed must be > 0 (got %d)", c.Documents.MaxPlansListed)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	s.Backend = strings.ToLower(strings.TrimSpace(s.Backend))

	switch s.Backend {
	case StorageBackendLocal:
		if s.LocalDir == "" {
			return fmt.Errorf("local_dir is required for the local backend")
		}
	case StorageBackendGCS:
		if s.GCSBucket == "" {
			return fmt.Errorf("gcs_bucket is required for the gcs backend")
		}
	default:
		return fmt.Errorf("unknown backend %q", s.Backend)
	}

	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", s.MaxUploadBytes)
	}
	return nil
}

// RedisEnabled reports whether an event publisher should connect to Redis.
func (c *Config) RedisEnabled() bool {
	return strings.TrimSpace(c.Redis.Addr) != ""
}
