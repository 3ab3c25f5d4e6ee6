package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are accepted both as strings ("30s") and as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		TokenDuration        Duration `json:"token_duration"`
		PasswordHashCost     int      `json:"password_hash_cost"`
		Version              string   `json:"version"`
		LogLevel             string   `json:"log_level"`
		AllowedOrigins       []string `json:"allowed_origins"`
		CookieSecure         bool     `json:"cookie_secure"`
		GenerationDailyLimit int      `json:"generation_daily_limit"`
		GenerationWindow     Duration `json:"generation_window"`
		GuestTTL             Duration `json:"guest_ttl"`
		GuestRateLimit       int      `json:"guest_rate_limit"`
		GuestRateWindow      Duration `json:"guest_rate_window"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Gemini struct {
			APIKey         string   `json:"api_key"`
			BaseURL        string   `json:"base_url"`
			Model          string   `json:"model"`
			Language       string   `json:"language"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"gemini,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ReapInterval  Duration `json:"reap_interval"`
		ReapBatchSize int      `json:"reap_batch_size"`
	} `json:"workers,omitempty"`

	Telemetry struct {
		OTelEndpoint string `json:"otel_endpoint"`
		ServiceName  string `json:"service_name"`
	} `json:"telemetry,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	app := jsonCfg.App
	gemini := jsonCfg.Adapter.Gemini

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:         app.TokenSignKey,
			TokenIssuer:          app.TokenIssuer,
			TokenDuration:        time.Duration(app.TokenDuration),
			PasswordHashCost:     app.PasswordHashCost,
			Version:              app.Version,
			LogLevel:             app.LogLevel,
			AllowedOrigins:       app.AllowedOrigins,
			CookieSecure:         app.CookieSecure,
			GenerationDailyLimit: app.GenerationDailyLimit,
			GenerationWindow:     time.Duration(app.GenerationWindow),
			GuestTTL:             time.Duration(app.GuestTTL),
			GuestRateLimit:       app.GuestRateLimit,
			GuestRateWindow:      time.Duration(app.GuestRateWindow),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Gemini: Gemini{
				APIKey:         gemini.APIKey,
				BaseURL:        gemini.BaseURL,
				Model:          gemini.Model,
				Language:       gemini.Language,
				RequestTimeout: time.Duration(gemini.RequestTimeout),
			},
		},
		Workers: Workers{
			ReapInterval:  time.Duration(jsonCfg.Workers.ReapInterval),
			ReapBatchSize: jsonCfg.Workers.ReapBatchSize,
		},
		Telemetry: Telemetry{
			OTelEndpoint: jsonCfg.Telemetry.OTelEndpoint,
			ServiceName:  jsonCfg.Telemetry.ServiceName,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
