package config

import (
	"os"
	"strings"
)

type Config struct {
	Port            string
	AllowedOrigins  []string
	MongoURI        string
	MongoDatabase   string
	JWTSecret       string
	StripeSecretKey string
}

func Load() Config {
	port := getenv("PORT", "3000")
	origins := getenv("ALLOWED_ORIGINS", "http://localhost:3000")

	mongoURI := getenv("MONGODB_URI", "mongodb://localhost:27017")
	mongoDatabase := getenv("MONGODB_DATABASE", "bridal-film")

	jwtSecret := getenv("JWT_SECRET", "")
	stripeSecretKey := getenv("STRIPE_SECRET_KEY", "")

	allowed := []string{}
	for _, o := range strings.Split(origins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			allowed = append(allowed, o)
		}
	}

	return Config{
		Port:            port,
		AllowedOrigins:  allowed,
		MongoURI:        mongoURI,
		MongoDatabase:   mongoDatabase,
		JWTSecret:       jwtSecret,
		StripeSecretKey: stripeSecretKey,
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
