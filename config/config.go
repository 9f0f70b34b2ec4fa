package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go-resto-manager/models"
)

// PaymentProvider holds one mobile-money integration's credentials. The
// actual provider calls live in the payment integration service; the
// engine only consults Enabled.
type PaymentProvider struct {
	Enabled    bool
	MerchantID string
	APIKey     string
	APISecret  string
	BaseURL    string
}

type PaymentConfig struct {
	OrangeMoney PaymentProvider
	MTNMoMo     PaymentProvider
	MoovMoney   PaymentProvider
	Wave        PaymentProvider
	Currency    string
}

// MethodEnabled reports whether orders may be submitted with the given
// payment method. Cash is always accepted.
func (p PaymentConfig) MethodEnabled(method models.PaymentMethod) bool {
	switch method {
	case models.PaymentCash:
		return true
	case models.PaymentOrangeMoney:
		return p.OrangeMoney.Enabled
	case models.PaymentMTNMoMo:
		return p.MTNMoMo.Enabled
	case models.PaymentMoovMoney:
		return p.MoovMoney.Enabled
	case models.PaymentWave:
		return p.Wave.Enabled
	}
	return false
}

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	CORSOrigin    string
	QRBaseURL     string
	Timezone      *time.Location
	TaxRate       float64
	ServiceCharge float64
	Payment       PaymentConfig
}

// Load reads the configuration from the environment. godotenv is loaded
// by main before this runs.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Africa/Abidjan"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8000"),
		DatabaseURL:   dbURL,
		JWTSecret:     getEnv("JWT_SECRET", "restaurant-secret-key-change-in-production"),
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://localhost:9000"),
		QRBaseURL:     getEnv("QR_BASE_URL", "http://localhost:8000"),
		Timezone:      loc,
		TaxRate:       getEnvFloat("TAX_RATE", 18),
		ServiceCharge: getEnvFloat("SERVICE_CHARGE", 10),
		Payment: PaymentConfig{
			OrangeMoney: loadProvider("ORANGE_MONEY"),
			MTNMoMo:     loadProvider("MTN_MOMO"),
			MoovMoney:   loadProvider("MOOV_MONEY"),
			Wave:        loadProvider("WAVE"),
			Currency:    getEnv("CURRENCY", "XOF"),
		},
	}
	return cfg, nil
}

func loadProvider(prefix string) PaymentProvider {
	return PaymentProvider{
		Enabled:    getEnvBool(prefix+"_ENABLED", true),
		MerchantID: os.Getenv(prefix + "_MERCHANT_ID"),
		APIKey:     os.Getenv(prefix + "_API_KEY"),
		APISecret:  os.Getenv(prefix + "_API_SECRET"),
		BaseURL:    os.Getenv(prefix + "_BASE_URL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
