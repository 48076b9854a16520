package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	MongoURI string
	DBName   string
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "BestReaders"
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}

	return Config{
		Port:     port,
		MongoURI: mongoURI,
		DBName:   dbName,
	}
}
