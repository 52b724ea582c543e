package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if err := c.Practice.validate(); err != nil {
		return fmt.Errorf("practice: %w", err)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.MaxClients <= 0 {
		return fmt.Errorf("rate_limit.max_clients must be > 0 (got %d)", c.RateLimit.MaxClients)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.FailedRetryDelay <= 0 {
		return fmt.Errorf("failed_retry_delay must be > 0 (got %v)", s.FailedRetryDelay)
	}

	first, err := ParseStepDays(s.FirstStepRaw)
	if err != nil {
		return fmt.Errorf("first_step_days: %w", err)
	}
	second, err := ParseStepDays(s.SecondStepRaw)
	if err != nil {
		return fmt.Errorf("second_step_days: %w", err)
	}

	s.FirstStep = first
	s.SecondStep = second
	return nil
}

func (p *PracticeConfig) validate() error {
	if p.MaxSessions <= 0 {
		return fmt.Errorf("max_sessions must be > 0 (got %d)", p.MaxSessions)
	}
	if p.SessionIdleTTL <= 0 {
		return fmt.Errorf("session_idle_ttl must be > 0 (got %v)", p.SessionIdleTTL)
	}
	if p.MaxWordsPerList <= 0 {
		return fmt.Errorf("max_words_per_list must be > 0 (got %d)", p.MaxWordsPerList)
	}
	return nil
}

// ParseStepDays parses three comma-separated day fractions (for OK, GOOD and
// PERFECT, e.g. "0.25,0.5,1.0"). Values must be positive and non-decreasing.
func ParseStepDays(raw string) ([3]float64, error) {
	var out [3]float64

	parts := strings.Split(strings.TrimSpace(raw), ",")
	if len(parts) != len(out) {
		return out, fmt.Errorf("want %d values, got %d", len(out), len(parts))
	}

	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, fmt.Errorf("invalid number %q: %w", p, err)
		}
		if v <= 0 {
			return out, fmt.Errorf("value %v must be > 0", v)
		}
		if i > 0 && v < out[i-1] {
			return out, fmt.Errorf("value %v is below the previous value %v", v, out[i-1])
		}
		out[i] = v
	}

	return out, nil
}
