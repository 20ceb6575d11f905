package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        string
	Env         string

	// LLM
	LLMProvider string
	LLMModel    string
	OpenAIKey   string
	GroqKey     string
	DeepSeekKey string
	ClaudeKey   string
	LLMTimeout  int // seconds

	// Checkout
	PaymentMode        string // "manual" or "hosted"
	CheckoutAPIURL     string
	CheckoutAPIKey     string
	CheckoutSuccessURL string

	// Session cleanup (optional; empty cron spec disables the sweep)
	SessionSweepCron   string
	SessionIdleMinutes int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        os.Getenv("PORT"),
		Env:         os.Getenv("ENV"),

		LLMProvider: os.Getenv("LLM_PROVIDER"),
		LLMModel:    os.Getenv("LLM_MODEL"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		GroqKey:     os.Getenv("GROQ_API_KEY"),
		DeepSeekKey: os.Getenv("DEEPSEEK_API_KEY"),
		ClaudeKey:   os.Getenv("CLAUDE_API_KEY"),

		PaymentMode:        os.Getenv("PAYMENT_MODE"),
		CheckoutAPIURL:     os.Getenv("CHECKOUT_API_URL"),
		CheckoutAPIKey:     os.Getenv("CHECKOUT_API_KEY"),
		CheckoutSuccessURL: os.Getenv("CHECKOUT_SUCCESS_URL"),

		SessionSweepCron: os.Getenv("SESSION_SWEEP_CRON"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.LLMProvider == "" {
		cfg.LLMProvider = "openai"
	}
	if cfg.PaymentMode == "" {
		cfg.PaymentMode = "manual"
	}

	cfg.LLMTimeout = envInt("LLM_TIMEOUT_SECONDS", 30)
	cfg.SessionIdleMinutes = envInt("SESSION_IDLE_MINUTES", 60)

	return cfg
}

func envInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("⚠️ Invalid %s=%q, using default %d", key, raw, def)
		return def
	}
	return n
}
