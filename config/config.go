package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	TelegramToken    string
	ChannelID        int64
	CryptoPayToken   string
	CryptoPayBaseURL string
	AdminPassword    string
	AdminAPIAddr     string
	AdminAPIToken    string
	ContentPath      string
	PremiumAmount    float64
	PollInterval     time.Duration
	DraftIdleWindow  time.Duration
	TicketRetention  time.Duration
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		TelegramToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		CryptoPayToken:   os.Getenv("CRYPTO_PAY_TOKEN"),
		CryptoPayBaseURL: "https://pay.crypt.bot/api",
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		AdminAPIAddr:     ":8081",
		AdminAPIToken:    os.Getenv("ADMIN_API_TOKEN"),
		ContentPath:      os.Getenv("CONTENT_PATH"),
		PremiumAmount:    3,
		PollInterval:     30 * time.Second,
		DraftIdleWindow:  6 * time.Hour,
		TicketRetention:  30 * 24 * time.Hour,
	}

	if baseURL := os.Getenv("CRYPTO_PAY_BASE_URL"); baseURL != "" {
		config.CryptoPayBaseURL = baseURL
	}

	if addr := os.Getenv("ADMIN_API_ADDR"); addr != "" {
		config.AdminAPIAddr = addr
	}

	if rawChannelID := os.Getenv("CHANNEL_ID"); rawChannelID != "" {
		if parsed, err := strconv.ParseInt(rawChannelID, 10, 64); err == nil {
			config.ChannelID = parsed
		} else {
			return nil, fmt.Errorf("CHANNEL_ID noto'g'ri formatda: %v", err)
		}
	}

	if rawAmount := os.Getenv("PREMIUM_AMOUNT"); rawAmount != "" {
		if parsed, err := strconv.ParseFloat(rawAmount, 64); err == nil {
			config.PremiumAmount = parsed
		} else {
			return nil, fmt.Errorf("PREMIUM_AMOUNT noto'g'ri formatda: %v", err)
		}
	}

	if rawPoll := os.Getenv("POLL_INTERVAL_SEC"); rawPoll != "" {
		if parsed, err := strconv.Atoi(rawPoll); err == nil && parsed > 0 {
			config.PollInterval = time.Duration(parsed) * time.Second
		} else {
			return nil, fmt.Errorf("POLL_INTERVAL_SEC noto'g'ri formatda: %q", rawPoll)
		}
	}

	if rawIdle := os.Getenv("DRAFT_IDLE_HOURS"); rawIdle != "" {
		if parsed, err := strconv.Atoi(rawIdle); err == nil && parsed > 0 {
			config.DraftIdleWindow = time.Duration(parsed) * time.Hour
		} else {
			return nil, fmt.Errorf("DRAFT_IDLE_HOURS noto'g'ri formatda: %q", rawIdle)
		}
	}

	// Validatsiya
	if config.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable bo'sh")
	}
	if config.ChannelID == 0 {
		return nil, fmt.Errorf("CHANNEL_ID environment variable bo'sh")
	}
	if config.CryptoPayToken == "" {
		return nil, fmt.Errorf("CRYPTO_PAY_TOKEN environment variable bo'sh")
	}
	if config.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD environment variable bo'sh")
	}

	return config, nil
}
