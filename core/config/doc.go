// Package config provides configuration management for the media scraper.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file loaded with godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Log: level, format and the optional rotating log file
//   - Provider: API endpoints, page size, pacing, retries and timeouts
//   - Storage: S3/MinIO credentials used when the destination is an s3:// URL
//
// Every field declares its environment key through the mapstructure tag and
// its default through the default tag, e.g. LOG_LEVEL=debug or
// PROVIDER_REQUESTS_PER_MINUTE=60.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Provider.PerPage)
package config
