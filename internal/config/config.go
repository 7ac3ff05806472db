package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port                   string   `mapstructure:"PORT"`
	Env                    string   `mapstructure:"ENV"`
	CORSOrigins            []string `mapstructure:"CORS_ORIGINS"`
	JWTSecret              string   `mapstructure:"JWT_SECRET"`
	TokenTTLMinutes        int      `mapstructure:"TOKEN_TTL_MINUTES"`
	BookingHorizonDays     int      `mapstructure:"BOOKING_HORIZON_DAYS"`
	WorkdayStart           string   `mapstructure:"WORKDAY_START"`
	WorkdayEnd             string   `mapstructure:"WORKDAY_END"`
	SlotMinutes            int      `mapstructure:"SLOT_MINUTES"`
	DefaultConsultationFee int      `mapstructure:"DEFAULT_CONSULTATION_FEE"`
	DefaultHospitalShare   int      `mapstructure:"DEFAULT_HOSPITAL_SHARE"`
	LoginDelayMS           int      `mapstructure:"LOGIN_DELAY_MS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("TOKEN_TTL_MINUTES", 60)
	v.SetDefault("BOOKING_HORIZON_DAYS", 14)
	v.SetDefault("WORKDAY_START", "09:00")
	v.SetDefault("WORKDAY_END", "17:00")
	v.SetDefault("SLOT_MINUTES", 30)
	v.SetDefault("DEFAULT_CONSULTATION_FEE", 200)
	v.SetDefault("DEFAULT_HOSPITAL_SHARE", 30)
	v.SetDefault("LOGIN_DELAY_MS", 0)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("TOKEN_TTL_MINUTES")
	v.BindEnv("BOOKING_HORIZON_DAYS")
	v.BindEnv("WORKDAY_START")
	v.BindEnv("WORKDAY_END")
	v.BindEnv("SLOT_MINUTES")
	v.BindEnv("DEFAULT_CONSULTATION_FEE")
	v.BindEnv("DEFAULT_HOSPITAL_SHARE")
	v.BindEnv("LOGIN_DELAY_MS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.SlotMinutes <= 0 {
		return nil, fmt.Errorf("SLOT_MINUTES must be positive, got %d", cfg.SlotMinutes)
	}
	if cfg.BookingHorizonDays <= 0 {
		return nil, fmt.Errorf("BOOKING_HORIZON_DAYS must be positive, got %d", cfg.BookingHorizonDays)
	}
	if cfg.DefaultHospitalShare < 0 || cfg.DefaultHospitalShare > 100 {
		return nil, fmt.Errorf("DEFAULT_HOSPITAL_SHARE must be a percentage, got %d", cfg.DefaultHospitalShare)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "medboard-dev-secret"
	}

	if cfg.IsDev() {
		log.Println("WARNING: Server is running in DEVELOPMENT mode (ENV=development).")
		log.Println("WARNING: Login accepts any credentials and issues dev-signed tokens.")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
