// Package config manages application configuration for the Mergington
// Activities API.
//
// The config package loads and validates configuration from environment
// variables, with an optional .env file for local development. All
// configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Environment Variables
//
//	SERVER_PORT           - HTTP server port (default: 8080)
//	SERVER_ENV            - development, production, or test
//	SERVER_READ_TIMEOUT   - HTTP read timeout (default: 15s)
//	SERVER_WRITE_TIMEOUT  - HTTP write timeout (default: 15s)
//	CORS_ALLOWED_ORIGINS  - Comma-separated origin allowlist
//	STATIC_DIR            - Front-end asset directory (default: ./static)
//	METRICS_ENABLED       - Expose /metrics (default: true)
//
// # Default Values
//
// Sensible defaults are provided for development:
//
//	func getEnv(key, defaultValue string) string {
//	    if value := os.Getenv(key); value != "" {
//	        return value
//	    }
//	    return defaultValue
//	}
package config
