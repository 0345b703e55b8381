// Package config provides configuration management for the post receptor.
//
// Values come from environment variables, optionally overlaid by a .env file,
// and are bound onto typed structs through Viper. Defaults live in `default`
// struct tags next to each field.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, body limit, shutdown timeout
//   - Database: content store driver (mysql, postgres, sqlite) and credentials
//   - Storage: S3/MinIO credentials, bucket and public URL for media
//   - Log: logging level and format
//   - Redis: optional lock backend shared between instances
//   - Settings: bootstrap values for the options table (token, API key, language)
//   - Translation: model and retry parameters for the translation provider
//   - Receptor: base path, request timeout, image limits, service user
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
