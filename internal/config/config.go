package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI        string
	DBName          string
	Currency        string
	DeliveryCharge  float64
	GSTRate         float64
	PaymentDelay    time.Duration
	OrderAPIURL     string
	OrderAPITimeout time.Duration
	WhatsAppNumber  string
	CartStoreDir    string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:        getEnvOrDefault("MONGO_URI", ""),
		DBName:          getEnvOrDefault("DB_NAME", "chhajedfoods"),
		Currency:        getEnvOrDefault("CURRENCY", "INR"),
		DeliveryCharge:  getFloatEnv("DELIVERY_CHARGE", 50),
		GSTRate:         getFloatEnv("GST_RATE", 0),
		PaymentDelay:    getDurationEnv("PAYMENT_DELAY_MS", 2000, time.Millisecond),
		OrderAPIURL:     getEnvOrDefault("ORDER_API_URL", "http://localhost:8080"),
		OrderAPITimeout: getDurationEnv("ORDER_API_TIMEOUT", 10, time.Second),
		WhatsAppNumber:  getEnvOrDefault("WHATSAPP_NUMBER", "919876543210"),
		CartStoreDir:    getEnvOrDefault("CART_STORE_DIR", "."),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
