package config

import "os"

// parseEnv overlays configuration from environment variables. Deployment
// environments for this service are typically env-driven, so every secret
// can be supplied without flags or files.
//
// Recognized variables:
//
//	ADDRESS          HTTP bind address
//	DATABASE_DSN     PostgreSQL DSN
//	SECRET_KEY       JWT HMAC secret
//	OPENAI_BASE_URL  inference API base URL
//	OPENAI_API_KEY   inference API key
//	OPENAI_MODEL     inference model name
//	STATIC_DIR       static front-end directory
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("OPENAI_BASE_URL"); ok {
		config.InferenceBaseURL = v
	}
	if v, ok := os.LookupEnv("OPENAI_API_KEY"); ok {
		config.InferenceAPIKey = v
	}
	if v, ok := os.LookupEnv("OPENAI_MODEL"); ok {
		config.InferenceModel = v
	}
	if v, ok := os.LookupEnv("STATIC_DIR"); ok {
		config.StaticDir = v
	}
}
