// Package config provides configuration management for the price service.
//
// Configuration is loaded from environment variables using the env package.
// Defaults reproduce the service's historical behaviour: the API listens on
// 127.0.0.1:3000 and no variable needs to be set.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
