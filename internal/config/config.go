package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	ServerPort  string
	JWTSecret   string
	AdminEmails []string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "teamboard_user"),
		DBPassword:  getEnv("DB_PASSWORD", "teamboard_pass"),
		DBName:      getEnv("DB_NAME", "teamboard_db"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", "supersecretkey"),
		AdminEmails: splitList(getEnv("ADMIN_EMAILS", "")),
	}
}

// IsAdmin reports whether the email is on the admin allowlist.
func (c *Config) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, admin := range c.AdminEmails {
		if admin == email {
			return true
		}
	}
	return false
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
