package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

type AppConfig struct {
	Port          string
	DBPath        string
	RemoteURL     string
	RemoteAPIKey  string
	RemoteToken   string
	ProbeInterval time.Duration
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	probeSec, err := strconv.Atoi(get("PROBE_INTERVAL_SEC", "30"))
	if err != nil || probeSec <= 0 {
		probeSec = 30
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		DBPath:        get("DB_PATH", "agro.db"),
		RemoteURL:     get("REMOTE_URL", ""),
		RemoteAPIKey:  get("REMOTE_API_KEY", ""),
		RemoteToken:   get("REMOTE_TOKEN", ""),
		ProbeInterval: time.Duration(probeSec) * time.Second,
	}
	log.Printf("[cfg] port=%s db=%s remote=%s probe=%s", cfg.Port, cfg.DBPath, cfg.RemoteURL, cfg.ProbeInterval)
	return cfg
}
