package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	Env              string
	DatabaseURL      string
	GeminiAPIKey     string
	AllowMemoryStore bool
	Transcript       TranscriptConfig
}

type TranscriptConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:             *port,
		Env:              env,
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		GeminiAPIKey:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		AllowMemoryStore: parseBool(os.Getenv("ARCHIE_ALLOW_MEMORY_STORE"), false),
		Transcript:       loadTranscriptConfig(env),
	}, nil
}

func loadTranscriptConfig(env string) TranscriptConfig {
	endpoint := resolveTranscriptEndpoint(env)
	return TranscriptConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("TRANSCRIPT_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("TRANSCRIPT_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("TRANSCRIPT_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("TRANSCRIPT_S3_BUCKET")), "archie-transcripts"),
		UseSSL:    resolveTranscriptUseSSL(env),
	}
}

func resolveTranscriptEndpoint(env string) string {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return strings.TrimSpace(os.Getenv("TRANSCRIPT_MINIO_ENDPOINT"))
	}
	return strings.TrimSpace(os.Getenv("TRANSCRIPT_S3_ENDPOINT"))
}

func resolveTranscriptUseSSL(env string) bool {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return false
	}
	return parseBool(os.Getenv("TRANSCRIPT_S3_USE_SSL"), true)
}

func parseBool(raw string, def bool) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
