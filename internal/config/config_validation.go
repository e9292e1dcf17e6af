// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Defaults applied by validate when a setting was left empty by every source.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultDSN             = "leaves.db"
	DefaultTokenIssuer     = "go-leave-tracker"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultRequestTimeout  = 15 * time.Second
	DefaultSecretMessage   = "You are signed in. Welcome to the leave tracker!"
	DefaultAnnualLeaveDays = 14
	DefaultVersion         = "dev"
	DefaultLogLevel        = "debug"
	DefaultServerURL       = "http://localhost:8080"
	DefaultRefreshInterval = 30 * time.Second
)

// validate fills defaults and checks that the merged [StructuredConfig] can
// start the server.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with a description otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.SecretMessage == "" {
		cfg.App.SecretMessage = DefaultSecretMessage
	}
	if cfg.App.AnnualLeaveDays == 0 {
		cfg.App.AnnualLeaveDays = DefaultAnnualLeaveDays
	}
	if cfg.App.AnnualLeaveDays < 0 {
		return fmt.Errorf("%w: annual leave days must be positive", ErrInvalidAppConfigs)
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return fmt.Errorf("%w: in-memory databases are not supported", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultServerURL
	}
	if !strings.HasPrefix(cfg.Adapter.HTTPAddress, "http://") && !strings.HasPrefix(cfg.Adapter.HTTPAddress, "https://") {
		return fmt.Errorf("%w: server url must start with http:// or https://", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
