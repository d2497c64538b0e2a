package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MongoURI           string
	DatabaseName       string
	Port               string
	JWTSecret          string
	GeminiAPIKey       string
	AWSRegion          string
	AWSBucketName      string
	RembgURL           string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	SendGridAPIKey     string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017/"
	}

	DatabaseName = os.Getenv("MONGO_DATABASE")
	if DatabaseName == "" {
		DatabaseName = "stylgpt"
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	JWTSecret = os.Getenv("JWT_SECRET")
	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	AWSRegion = os.Getenv("AWS_REGION")
	if AWSRegion == "" {
		AWSRegion = "ap-south-1"
	}
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")

	RembgURL = os.Getenv("REMBG_URL")
	if RembgURL == "" {
		RembgURL = "https://rembg.stylgpt.com/remove-bg"
	}

	GoogleClientID = os.Getenv("GOOGLE_CLIENT_ID")
	GoogleClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	GoogleRedirectURL = os.Getenv("GOOGLE_REDIRECT_URL")
	if GoogleRedirectURL == "" {
		GoogleRedirectURL = "http://localhost:8080/auth/google/callback"
	}

	SendGridAPIKey = os.Getenv("SENDGRID_API_KEY")
}
