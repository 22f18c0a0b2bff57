// Package config provides configuration management for the greeting manager.
//
// It utilizes Viper for loading configuration from environment variables and
// a local .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Webex: API hosts, access token, and request timeout
//   - Log: Logging level and format
//
// Environment variables map onto nested keys with underscores, e.g.
// WEBEX_TOKEN -> webex.token and LOG_LEVEL -> log.level.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := webex.NewClient(cfg.Webex)
package config
