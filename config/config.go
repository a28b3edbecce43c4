package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Wallet    WalletConfig    `mapstructure:"wallet"`
	Affiliate AffiliateConfig `mapstructure:"affiliate"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	Env          string        `mapstructure:"env"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type JWTConfig struct {
	AccessSecret  string        `mapstructure:"access_secret"`
	RefreshSecret string        `mapstructure:"refresh_secret"`
	AccessExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer        string        `mapstructure:"issuer"`
}

// AdminConfig is the single administrator credential. The password is stored
// as a bcrypt hash and verified statelessly at login.
type AdminConfig struct {
	ID           string `mapstructure:"id"`
	PasswordHash string `mapstructure:"password_hash"`
}

type WalletConfig struct {
	Currency string `mapstructure:"currency"`
}

// AffiliateConfig holds the URLs baked into outbound tracking links.
type AffiliateConfig struct {
	PublicBaseURL string `mapstructure:"public_base_url"` // base for generated tracking links
	LandingURL    string `mapstructure:"landing_url"`     // redirect target when no shop is attached
	ShopAppSlug   string `mapstructure:"shop_app_slug"`   // path appended to the shop domain on redirect
}

type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)

	v.SetDefault("database.dsn", "vantage:vantage@tcp(localhost:3306)/vantage?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("jwt.access_secret", "change-me-in-production")
	v.SetDefault("jwt.refresh_secret", "change-me-refresh")
	v.SetDefault("jwt.access_expiry", 15*time.Minute)
	v.SetDefault("jwt.refresh_expiry", 168*time.Hour)
	v.SetDefault("jwt.issuer", "vantage")

	v.SetDefault("admin.id", "superadmin")
	// bcrypt of "changeme"; override via config file or VANTAGE_ADMIN_PASSWORD_HASH.
	v.SetDefault("admin.password_hash", "$2a$10$wH8l6fUDmhHQ8UysdNcsoeG8oiOAjzPFyP8eaRTRCKAWhtAIQ9WSG")

	v.SetDefault("wallet.currency", "USD")

	v.SetDefault("affiliate.public_base_url", "https://crm.vantage.example.com")
	v.SetDefault("affiliate.landing_url", "https://vantage.example.com/integrations/landing")
	v.SetDefault("affiliate.shop_app_slug", "apps/vantage")

	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", time.Minute)
}

// Load reads config.yaml (working dir or ./config) with VANTAGE_* environment
// overrides. A missing file is fine; defaults cover everything.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("VANTAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
