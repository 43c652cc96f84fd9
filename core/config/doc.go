// Package config provides configuration management for Fib Service.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from struct tags, so the server
// runs with no configuration at all (0.0.0.0:8080).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (host, port)
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
