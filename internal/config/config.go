package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	Issuer     string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string

	SmtpHost     string
	SmtpPort     int
	SmtpUsername string
	SmtpPassword string
	SmtpFrom     string

	// ResetCodeTTL is the validity window of a password reset code, in minutes.
	ResetCodeTTL int

	// ImmunizationFormID designates the single form whose submissions are
	// merged per patient instead of appended.
	ImmunizationFormID uint
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "dynahcare")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "dynahcare")
	ServerPort = getEnv("SERVER_PORT", "8080")

	SmtpHost = getEnv("SMTP_HOST", "localhost")
	SmtpPort = getEnvInt("SMTP_PORT", 587)
	SmtpUsername = getEnv("SMTP_USERNAME", "")
	SmtpPassword = getEnv("SMTP_PASSWORD", "")
	SmtpFrom = getEnv("SMTP_FROM", "noreply@dynahcare.local")

	ResetCodeTTL = getEnvInt("RESET_CODE_TTL_MINUTES", 10)
	ImmunizationFormID = uint(getEnvInt("IMMUNIZATION_FORM_ID", 16))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
