package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                 string
	MongoURI             string
	MongoDatabase        string
	UserCollection       string
	RestaurantCollection string
	CategoryCollection   string
	CommentCollection    string
	FavoriteCollection   string
	LikeCollection       string
	FollowCollection     string
	Timeout              time.Duration
	Timezone             string
	ServerLog            *log.Logger
	JWTSecret            []byte
	JWTIssuer            string
	JWTAudience          string
	TokenTTL             time.Duration
	AllowedOrigins       []string
	UploadDir            string
	MediaBaseURL         string
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	jwtSecret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))
	if jwtSecret == "" {
		log.Fatal("AUTH_JWT_SECRET must be configured")
	}

	tokenTTL := 30 * 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("AUTH_TOKEN_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			tokenTTL = parsed
		}
	}

	allowedOrigins := parseList("API_ALLOWED_ORIGINS", []string{"*"})

	cfg := Config{
		Addr:                 envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:             envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:        envOrDefault("MONGO_DB", "gurume-club"),
		UserCollection:       envOrDefault("USER_COLLECTION", "users"),
		RestaurantCollection: envOrDefault("RESTAURANT_COLLECTION", "restaurants"),
		CategoryCollection:   envOrDefault("CATEGORY_COLLECTION", "categories"),
		CommentCollection:    envOrDefault("COMMENT_COLLECTION", "comments"),
		FavoriteCollection:   envOrDefault("FAVORITE_COLLECTION", "favorites"),
		LikeCollection:       envOrDefault("LIKE_COLLECTION", "likes"),
		FollowCollection:     envOrDefault("FOLLOW_COLLECTION", "follows"),
		Timeout:              timeout,
		Timezone:             envOrDefault("TIMEZONE", "Asia/Tokyo"),
		ServerLog:            log.New(os.Stdout, "[gurume-club-api] ", log.LstdFlags|log.Lshortfile),
		JWTSecret:            []byte(jwtSecret),
		JWTIssuer:            envOrDefault("AUTH_JWT_ISSUER", "gurume-club-api"),
		JWTAudience:          strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE")),
		TokenTTL:             tokenTTL,
		AllowedOrigins:       allowedOrigins,
		UploadDir:            envOrDefault("UPLOAD_DIR", "upload"),
		MediaBaseURL:         strings.TrimSpace(os.Getenv("MEDIA_BASE_URL")),
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
