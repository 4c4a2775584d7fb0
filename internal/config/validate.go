package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Feedback.validate(); err != nil {
		return fmt.Errorf("feedback: %w", err)
	}
	if err := c.Censor.validate(); err != nil {
		return fmt.Errorf("censor: %w", err)
	}

	if c.Admin.Enabled() && len(c.Admin.APIKey) < 16 {
		return fmt.Errorf("admin.api_key must be at least 16 characters (got %d)", len(c.Admin.APIKey))
	}

	if c.Notify.ResendAPIKey != "" && (c.Notify.From == "" || len(c.Notify.Recipients()) == 0) {
		return fmt.Errorf("notify: from and to are required when resend_api_key is set")
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	switch d.Driver {
	case DriverPostgres:
		if d.DSN == "" {
			return fmt.Errorf("dsn is required for driver %q", d.Driver)
		}
		if d.MaxConns <= 0 {
			return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
		}
		if d.MinConns < 0 || d.MinConns > d.MaxConns {
			return fmt.Errorf("min_conns must be between 0 and max_conns (got %d)", d.MinConns)
		}
	case DriverSQLite:
		if d.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required for driver %q", d.Driver)
		}
	default:
		return fmt.Errorf("unknown driver %q (want %q or %q)", d.Driver, DriverPostgres, DriverSQLite)
	}
	return nil
}

func (f *FeedbackConfig) validate() error {
	if f.MaxTextLength <= 0 {
		return fmt.Errorf("max_text_length must be > 0 (got %d)", f.MaxTextLength)
	}
	if f.MaxUserIDLength <= 0 {
		return fmt.Errorf("max_user_id_length must be > 0 (got %d)", f.MaxUserIDLength)
	}
	if f.StoreTimeout <= 0 {
		return fmt.Errorf("store_timeout must be > 0 (got %v)", f.StoreTimeout)
	}
	if f.PublicListLimit <= 0 {
		return fmt.Errorf("public_list_limit must be > 0 (got %d)", f.PublicListLimit)
	}
	return nil
}

func (c *CensorConfig) validate() error {
	if c.SyncInterval < 0 {
		return fmt.Errorf("sync_interval must be >= 0 (got %v)", c.SyncInterval)
	}
	if c.WordlistURL != "" {
		u, err := url.Parse(c.WordlistURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("wordlist_url must be an absolute http(s) URL (got %q)", c.WordlistURL)
		}
	}
	return nil
}
