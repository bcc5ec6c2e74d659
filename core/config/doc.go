// Package config provides configuration management for the object gateway.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section,
// and the `validate` tags are checked with go-playground/validator after loading.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, body limit)
//   - Storage: provider (minio, s3), endpoint, credentials, bucket waiter settings
//   - Log: Logging level and format
//   - Database: optional operation journal (MySQL)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
