package config

import (
	"errors"
	"strings"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}
	if cfg.Fetch.RenderDelayMS < 0 {
		errs = append(errs, "fetch.render_delay_ms must be >= 0")
	}
	if cfg.Fetch.RenderDelayMS > 5000 {
		errs = append(errs, "fetch.render_delay_ms must be <= 5000")
	}
	if cfg.Fetch.ReqPerSec < 0 {
		errs = append(errs, "fetch.req_per_sec must be >= 0")
	}
	if cfg.Fetch.TimeoutS < 0 {
		errs = append(errs, "fetch.timeout_s must be >= 0")
	}

	if cfg.Email.Enabled {
		if strings.TrimSpace(cfg.Email.IMAPHost) == "" {
			errs = append(errs, "email.imap_host is required when email.enabled=true")
		}
		if cfg.Email.IMAPPort == 0 {
			errs = append(errs, "email.imap_port is required when email.enabled=true")
		}
		if strings.TrimSpace(cfg.Email.Username) == "" {
			errs = append(errs, "email.username is required when email.enabled=true")
		}
		if cfg.Email.PollSeconds <= 0 {
			errs = append(errs, "email.poll_seconds must be > 0 when email.enabled=true")
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

// Normalized fills defaults for optional fields.
func Normalized(cfg Config) Config {
	out := cfg
	if out.Fetch.TimeoutS == 0 {
		out.Fetch.TimeoutS = 20
	}
	if out.Fetch.ReqPerSec == 0 {
		out.Fetch.ReqPerSec = 2
	}
	if out.Fetch.Burst == 0 {
		out.Fetch.Burst = 4
	}
	if out.Email.Mailbox == "" {
		out.Email.Mailbox = "INBOX"
	}
	if out.Email.MaxBatch == 0 {
		out.Email.MaxBatch = 50
	}
	return out
}
