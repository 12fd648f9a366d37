// Package config provides YAML-based configuration loading for Mission Control.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level Mission Control configuration, loaded from
// missionctl.yaml. It is passed explicitly into every component that needs
// it; nothing reads process-wide state after startup.
type Config struct {
	Database DatabaseConfig  `yaml:"database"`
	Server   ServerConfig    `yaml:"server"`
	Auth     AuthConfig      `yaml:"auth"`
	Routines []RoutineConfig `yaml:"routines"`
}

// DatabaseConfig holds connection settings for the data store. The sqlite
// driver uses Path; the mysql driver uses Host/Port/Database.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Path     string `yaml:"path"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
}

// ServerConfig holds dashboard server settings. APIKey guards the task
// write API; when it is empty the write path refuses requests.
type ServerConfig struct {
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"`
}

// AuthConfig holds the single-account access gate settings. The gate is
// disabled when AllowedEmail or SessionSecret is empty.
type AuthConfig struct {
	AllowedEmail  string `yaml:"allowed_email"`
	SessionSecret string `yaml:"session_secret"`
	SignInURL     string `yaml:"sign_in_url"`
}

// Enabled reports whether the access gate should run.
func (a AuthConfig) Enabled() bool {
	return a.AllowedEmail != "" && a.SessionSecret != ""
}

// RoutineConfig defines one scheduled routine to seed into the store.
type RoutineConfig struct {
	Name         string   `yaml:"name"`
	ScheduleType string   `yaml:"schedule_type"`
	Cron         string   `yaml:"cron"`
	CronHuman    string   `yaml:"cron_human"`
	DaysOfWeek   []string `yaml:"days_of_week"`
	TimeOfDay    string   `yaml:"time_of_day"`
	Color        string   `yaml:"color"`
}

// Load reads a YAML config file from path and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in derived and default values.
func (c *Config) applyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Path == "" {
		c.Database.Path = "missionctl.db"
	}
	if c.Database.Host == "" {
		c.Database.Host = "127.0.0.1"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 3306
	}
	if c.Database.Database == "" {
		c.Database.Database = "missionctl"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Auth.SignInURL == "" {
		c.Auth.SignInURL = "/unauthorized"
	}
	for i := range c.Routines {
		if c.Routines[i].ScheduleType == "" {
			c.Routines[i].ScheduleType = "cron"
		}
	}
}

// validate checks that all required fields are present and consistent.
func (c *Config) validate() error {
	var errs []string
	switch c.Database.Driver {
	case "sqlite", "mysql":
	default:
		errs = append(errs, fmt.Sprintf("database.driver must be sqlite or mysql, got %q", c.Database.Driver))
	}
	for i, r := range c.Routines {
		if r.Name == "" {
			errs = append(errs, fmt.Sprintf("routines[%d].name is required", i))
		}
		switch r.ScheduleType {
		case "cron":
			if r.Cron == "" {
				errs = append(errs, fmt.Sprintf("routines[%d].cron is required for cron routines", i))
			}
		case "always":
		default:
			errs = append(errs, fmt.Sprintf("routines[%d].schedule_type must be cron or always, got %q", i, r.ScheduleType))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
