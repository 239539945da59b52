// Package config provides Viper-based configuration loading for the dicee advisor.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/dicee/internal/game/category"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// SolverConfig holds turn solver settings.
type SolverConfig struct {
	// CacheCapacity presizes the memo cache.
	CacheCapacity int `mapstructure:"cache_capacity"`
	// WarmOnStart solves WarmCategories for every position before serving.
	WarmOnStart bool `mapstructure:"warm_on_start"`
	// WarmWorkers bounds the concurrency of the warm-up.
	WarmWorkers int `mapstructure:"warm_workers"`
	// WarmCategories lists category identifiers to warm; "all", "upper" and
	// "lower" select groups.
	WarmCategories []string `mapstructure:"warm_categories"`
}

// WarmSet parses WarmCategories.
//
// Postcondition: Returns an error naming the first unknown identifier.
func (s SolverConfig) WarmSet() (category.Set, error) {
	return category.ParseSet(strings.Join(s.WarmCategories, ","))
}

// AdvisorConfig holds the gRPC advisor service settings.
type AdvisorConfig struct {
	// GRPCHost is the bind/connect address for the advisor gRPC service.
	GRPCHost string `mapstructure:"grpc_host"`
	// GRPCPort is the TCP port for the advisor gRPC service.
	GRPCPort int `mapstructure:"grpc_port"`
	// ShutdownTimeout bounds graceful shutdown before in-flight calls are cut.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the "host:port" gRPC address.
//
// Postcondition: Returns a non-empty string in "host:port" format.
func (a AdvisorConfig) Addr() string {
	return fmt.Sprintf("%s:%d", a.GRPCHost, a.GRPCPort)
}

// TracingConfig holds OpenTelemetry export settings.
type TracingConfig struct {
	// Enabled turns on span export. Tracing stays a no-op without an Endpoint.
	Enabled bool `mapstructure:"enabled"`
	// Endpoint is the OTLP/HTTP collector URL, e.g. "http://localhost:4318".
	Endpoint string `mapstructure:"endpoint"`
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `mapstructure:"service_name"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Solver  SolverConfig  `mapstructure:"solver"`
	Advisor AdvisorConfig `mapstructure:"advisor"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSolver(c.Solver); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateAdvisor(c.Advisor); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateTracing(c.Tracing); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateSolver(s SolverConfig) error {
	var errs []string
	if s.CacheCapacity < 0 {
		errs = append(errs, fmt.Sprintf("solver.cache_capacity must be >= 0, got %d", s.CacheCapacity))
	}
	if s.WarmWorkers < 1 {
		errs = append(errs, fmt.Sprintf("solver.warm_workers must be >= 1, got %d", s.WarmWorkers))
	}
	if _, err := s.WarmSet(); err != nil {
		errs = append(errs, fmt.Sprintf("solver.warm_categories: %v", err))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateAdvisor(a AdvisorConfig) error {
	var errs []string
	if a.GRPCHost == "" {
		errs = append(errs, "advisor.grpc_host must not be empty")
	}
	if a.GRPCPort < 1 || a.GRPCPort > 65535 {
		errs = append(errs, fmt.Sprintf("advisor.grpc_port must be 1-65535, got %d", a.GRPCPort))
	}
	if a.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("advisor.shutdown_timeout must be > 0, got %s", a.ShutdownTimeout))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateTracing(t TracingConfig) error {
	if t.Enabled && t.ServiceName == "" {
		return errors.New("tracing.service_name must not be empty when tracing is enabled")
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with DICEE_ prefix
	v.SetEnvPrefix("DICEE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("solver.cache_capacity", 8192)
	v.SetDefault("solver.warm_on_start", false)
	v.SetDefault("solver.warm_workers", 4)
	v.SetDefault("solver.warm_categories", []string{"all"})

	v.SetDefault("advisor.grpc_host", "127.0.0.1")
	v.SetDefault("advisor.grpc_port", 50061)
	v.SetDefault("advisor.shutdown_timeout", "10s")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.service_name", "dicee-advisor")
}
