// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] is internally
// consistent. Binary-specific requirements live on the views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.SyncInterval < 0 || cfg.Workers.ConnectivityPollInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

// validate checks the client view. A missing adapter section is valid: the
// sync engine then runs unconfigured.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}
	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.ProbeTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.ConnectivityPollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.App.TokenSignKey == "" || cfg.App.APIKey == "" {
		return ErrInvalidAppConfigs
	}
	return nil
}
