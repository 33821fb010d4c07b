package config

type Config struct {
	GoogleAPIKey string
	DatabaseURL  string
	Environment  string
	Port         string
}
