package config

import "time"

// Defaults applied before any other source. Secrets have no default.
const (
	defaultTokenIssuer          = "go-smart-cards"
	defaultTokenDuration        = 30 * 24 * time.Hour
	defaultPasswordHashCost     = 10
	defaultVersion              = "dev"
	defaultLogLevel             = "debug"
	defaultAllowedOrigin        = "http://localhost:5173"
	defaultGenerationDailyLimit = 100
	defaultGenerationWindow     = 24 * time.Hour
	defaultGuestTTL             = 24 * time.Hour
	defaultGuestRateLimit       = 10
	defaultGuestRateWindow      = time.Hour

	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second

	defaultGeminiBaseURL        = "https://generativelanguage.googleapis.com"
	defaultGeminiModel          = "gemini-2.5-flash-lite"
	defaultGeminiLanguage       = "Korean"
	defaultGeminiRequestTimeout = 20 * time.Second

	defaultReapInterval  = time.Minute
	defaultReapBatchSize = 100

	defaultServiceName = "smart-cards-server"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          defaultTokenIssuer,
			TokenDuration:        defaultTokenDuration,
			PasswordHashCost:     defaultPasswordHashCost,
			Version:              defaultVersion,
			LogLevel:             defaultLogLevel,
			AllowedOrigins:       []string{defaultAllowedOrigin},
			GenerationDailyLimit: defaultGenerationDailyLimit,
			GenerationWindow:     defaultGenerationWindow,
			GuestTTL:             defaultGuestTTL,
			GuestRateLimit:       defaultGuestRateLimit,
			GuestRateWindow:      defaultGuestRateWindow,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			Gemini: Gemini{
				BaseURL:        defaultGeminiBaseURL,
				Model:          defaultGeminiModel,
				Language:       defaultGeminiLanguage,
				RequestTimeout: defaultGeminiRequestTimeout,
			},
		},
		Workers: Workers{
			ReapInterval:  defaultReapInterval,
			ReapBatchSize: defaultReapBatchSize,
		},
		Telemetry: Telemetry{
			ServiceName: defaultServiceName,
		},
	}
}
