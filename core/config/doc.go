// Package config provides configuration management for the preview server.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Every key has a default, so running without any
// configuration reproduces the stock setup: port 8000, the executable's
// directory as the site root and the analysis tool's required files.
//
// # Configuration Structure
//
//   - Server: port, bind host, browser auto-open
//   - Site: root directory, banner title, required files
//   - Log: logging level and format
//   - Storage: S3/MinIO credentials and bucket settings
//   - Publish: key prefix for uploaded files
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
