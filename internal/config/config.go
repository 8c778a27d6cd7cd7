package config

import (
	"encoding/base64"
	"fmt"
	"os"
)

// Deployment profiles recognized by the ENV variable.
const (
	EnvLocal  = "local"
	EnvDocker = "docker"
	EnvK8s    = "k8s"
	EnvEKS    = "eks"
)

// Config carries everything a service needs at startup. It is built once in
// main and passed down explicitly; no package reads the environment after
// Load returns.
type Config struct {
	Env        string
	ListenAddr string

	UserServiceURL    string
	ProductServiceURL string

	DatabaseURL string
}

// Load reads the environment and resolves the deployment profile.
// Unknown ENV values fall back to the localhost profile.
func Load() (Config, error) {
	cfg := Config{
		Env:        getEnv("ENV", EnvEKS),
		ListenAddr: ":" + getEnv("PORT", "8080"),
	}

	switch cfg.Env {
	case EnvDocker:
		cfg.UserServiceURL = "http://user-service:8000/user"
		cfg.ProductServiceURL = "http://product-service:8000/product"
	case EnvK8s, EnvEKS:
		cfg.UserServiceURL = "http://user-service/user"
		cfg.ProductServiceURL = "http://product-service/product"
	default:
		cfg.UserServiceURL = "http://localhost:8000/user"
		cfg.ProductServiceURL = "http://localhost:8001/product"
	}

	url, err := databaseURL()
	if err != nil {
		return Config{}, err
	}
	cfg.DatabaseURL = url

	return cfg, nil
}

// databaseURL prefers DATABASE_URL; otherwise it assembles a connection
// string from the DB_* variables. Those may arrive base64-encoded (EKS
// secrets) when DB_CREDENTIALS_B64 is set to "true".
func databaseURL() (string, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url, nil
	}

	username := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	endpoint := os.Getenv("DB_ENDPOINT")
	name := os.Getenv("DB_NAME")

	if os.Getenv("DB_CREDENTIALS_B64") == "true" {
		var err error
		if username, err = decode(username); err != nil {
			return "", fmt.Errorf("decode DB_USERNAME: %w", err)
		}
		if password, err = decode(password); err != nil {
			return "", fmt.Errorf("decode DB_PASSWORD: %w", err)
		}
		if endpoint, err = decode(endpoint); err != nil {
			return "", fmt.Errorf("decode DB_ENDPOINT: %w", err)
		}
		if name, err = decode(name); err != nil {
			return "", fmt.Errorf("decode DB_NAME: %w", err)
		}
	}

	if endpoint == "" {
		endpoint = "localhost:5432"
	}
	if name == "" {
		name = "app_db"
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s", username, password, endpoint, name), nil
}

func decode(v string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
