package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceURL  string
	ServiceKey  string
	AppScheme   string
	LinkAddr    string
	SessionFile string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("error load env %s", err)
	}

	cfg := &Config{
		ServiceURL:  os.Getenv("SERVICE_URL"),
		ServiceKey:  os.Getenv("SERVICE_KEY"),
		AppScheme:   os.Getenv("APP_SCHEME"),
		LinkAddr:    os.Getenv("LINK_ADDR"),
		SessionFile: os.Getenv("SESSION_FILE"),
	}
	if cfg.ServiceURL == "" {
		return nil, errors.New("SERVICE_URL is required")
	}
	if cfg.ServiceKey == "" {
		return nil, errors.New("SERVICE_KEY is required")
	}
	if cfg.AppScheme == "" {
		cfg.AppScheme = "rtc"
	}
	if cfg.LinkAddr == "" {
		cfg.LinkAddr = "127.0.0.1:8081"
	}
	return cfg, nil
}
