// Package config provides configuration management for the Menu Manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, default location)
//   - Database: MySQL connection details
//   - Storage: S3/MinIO credentials and bucket settings for media
//   - Backend: ledger backend channel endpoint and credentials
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
