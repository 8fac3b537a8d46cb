// Package config provides configuration management for the discovery backend.
//
// Configuration is loaded from environment variables using the env package,
// then overridden by command-line flags. All configuration values have
// sensible defaults for development use.
//
// Example usage:
//
//	cfg, err := config.Load(os.Args[1:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("backend will listen on %s\n", cfg.Addr())
package config
