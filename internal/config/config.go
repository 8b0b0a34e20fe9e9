package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"billbook/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	S3      S3Config
	Log     LogConfig
	CORS    CORSConfig
	Email   EmailConfig
	Billing BillingConfig
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// BillingConfig holds document numbering and calculation defaults.
type BillingConfig struct {
	DefaultRoundOff bool
	Prefixes        map[domain.DocumentType]string
}

// Prefix returns the numbering prefix for a document type.
func (b *BillingConfig) Prefix(t domain.DocumentType) string {
	if p, ok := b.Prefixes[t]; ok {
		return p
	}
	return strings.ToUpper(string(t))
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const defaultJWTSecret = "change-me-in-production"

var prefixKeys = map[domain.DocumentType]string{
	domain.DocumentTypeSalesInvoice:    "billing.prefix.sales_invoice",
	domain.DocumentTypePurchaseInvoice: "billing.prefix.purchase_invoice",
	domain.DocumentTypeCreditNote:      "billing.prefix.credit_note",
	domain.DocumentTypeDebitNote:       "billing.prefix.debit_note",
	domain.DocumentTypeSalesReturn:     "billing.prefix.sales_return",
	domain.DocumentTypePurchaseReturn:  "billing.prefix.purchase_return",
}

// Load reads configuration from environment variables with the BILLBOOK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BILLBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "billbook")
	v.SetDefault("db.password", "billbook_secret")
	v.SetDefault("db.name", "billbook_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", defaultJWTSecret)
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "billbook")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "billbook-attachments")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "billing@billbook.in")
	v.SetDefault("email.from_name", "BillBook")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Billing defaults
	v.SetDefault("billing.default_round_off", true)
	v.SetDefault("billing.prefix.sales_invoice", "INV")
	v.SetDefault("billing.prefix.purchase_invoice", "PUR")
	v.SetDefault("billing.prefix.credit_note", "CN")
	v.SetDefault("billing.prefix.debit_note", "DN")
	v.SetDefault("billing.prefix.sales_return", "SR")
	v.SetDefault("billing.prefix.purchase_return", "PR")

	envBindings := map[string]string{
		"server.port":                     "BILLBOOK_SERVER_PORT",
		"server.read_timeout":             "BILLBOOK_SERVER_READ_TIMEOUT",
		"server.write_timeout":            "BILLBOOK_SERVER_WRITE_TIMEOUT",
		"server.environment":              "BILLBOOK_SERVER_ENVIRONMENT",
		"db.host":                         "BILLBOOK_DB_HOST",
		"db.port":                         "BILLBOOK_DB_PORT",
		"db.user":                         "BILLBOOK_DB_USER",
		"db.password":                     "BILLBOOK_DB_PASSWORD",
		"db.name":                         "BILLBOOK_DB_NAME",
		"db.sslmode":                      "BILLBOOK_DB_SSLMODE",
		"db.max_open":                     "BILLBOOK_DB_MAX_OPEN",
		"db.max_idle":                     "BILLBOOK_DB_MAX_IDLE",
		"jwt.secret":                      "BILLBOOK_JWT_SECRET",
		"jwt.access_expiry":               "BILLBOOK_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":              "BILLBOOK_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                      "BILLBOOK_JWT_ISSUER",
		"s3.region":                       "BILLBOOK_S3_REGION",
		"s3.bucket":                       "BILLBOOK_S3_BUCKET",
		"s3.endpoint":                     "BILLBOOK_S3_ENDPOINT",
		"s3.access_key":                   "BILLBOOK_S3_ACCESS_KEY",
		"s3.secret_key":                   "BILLBOOK_S3_SECRET_KEY",
		"s3.max_file_size_mb":             "BILLBOOK_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":               "BILLBOOK_S3_PRESIGN_EXPIRY",
		"log.level":                       "BILLBOOK_LOG_LEVEL",
		"log.format":                      "BILLBOOK_LOG_FORMAT",
		"cors.allowed_origins":            "BILLBOOK_CORS_ALLOWED_ORIGINS",
		"email.provider":                  "BILLBOOK_EMAIL_PROVIDER",
		"email.region":                    "BILLBOOK_EMAIL_REGION",
		"email.from_address":              "BILLBOOK_EMAIL_FROM_ADDRESS",
		"email.from_name":                 "BILLBOOK_EMAIL_FROM_NAME",
		"email.frontend_url":              "BILLBOOK_EMAIL_FRONTEND_URL",
		"billing.default_round_off":       "BILLBOOK_BILLING_DEFAULT_ROUND_OFF",
		"billing.prefix.sales_invoice":    "BILLBOOK_BILLING_PREFIX_SALES_INVOICE",
		"billing.prefix.purchase_invoice": "BILLBOOK_BILLING_PREFIX_PURCHASE_INVOICE",
		"billing.prefix.credit_note":      "BILLBOOK_BILLING_PREFIX_CREDIT_NOTE",
		"billing.prefix.debit_note":       "BILLBOOK_BILLING_PREFIX_DEBIT_NOTE",
		"billing.prefix.sales_return":     "BILLBOOK_BILLING_PREFIX_SALES_RETURN",
		"billing.prefix.purchase_return":  "BILLBOOK_BILLING_PREFIX_PURCHASE_RETURN",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it if BILLBOOK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BILLBOOK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}

	cfg.Billing = BillingConfig{
		DefaultRoundOff: v.GetBool("billing.default_round_off"),
		Prefixes:        make(map[domain.DocumentType]string, len(prefixKeys)),
	}
	for t, key := range prefixKeys {
		cfg.Billing.Prefixes[t] = v.GetString(key)
	}

	if cfg.Server.Environment == "production" && cfg.JWT.Secret == defaultJWTSecret {
		return nil, fmt.Errorf("BILLBOOK_JWT_SECRET must be set in production")
	}

	return cfg, nil
}
