package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string

	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string

	DataDir            string
	ModelsDir          string
	ScoreDatasetPath   string
	RankingDatasetPath string
	AuditLogPath       string

	SentimentServiceURL string
	SocialStatsURL      string

	DatabaseURL string
	Env         string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	dataDir := getEnv("DATA_DIR", "./data")

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),

		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", filepath.Join(dataDir, "uploads")),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:     getEnv("SSE_KMS_KEY_ID", ""),

		DataDir:            dataDir,
		ModelsDir:          getEnv("MODELS_DIR", "./models"),
		ScoreDatasetPath:   getEnv("SCORE_DATASET_PATH", filepath.Join(dataDir, "df_score.csv")),
		RankingDatasetPath: getEnv("RANKING_DATASET_PATH", filepath.Join(dataDir, "bi_ranking.csv")),
		AuditLogPath:       getEnv("AUDIT_LOG_PATH", filepath.Join(dataDir, "certificados_guardados.txt")),

		SentimentServiceURL: getEnv("SENTIMENT_SERVICE_URL", ""),
		SocialStatsURL:      getEnv("SOCIAL_STATS_URL", ""),

		DatabaseURL: dbURL,
		Env:         env,
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
