package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billbook/internal/config"
	"billbook/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.True(t, cfg.Billing.DefaultRoundOff)
	assert.Equal(t, "INV", cfg.Billing.Prefix(domain.DocumentTypeSalesInvoice))
	assert.Equal(t, "CN", cfg.Billing.Prefix(domain.DocumentTypeCreditNote))
	assert.Len(t, cfg.CORS.AllowedOrigins, 2)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BILLBOOK_DB_HOST", "db.internal")
	t.Setenv("BILLBOOK_BILLING_PREFIX_SALES_INVOICE", "SI")
	t.Setenv("BILLBOOK_BILLING_DEFAULT_ROUND_OFF", "false")
	t.Setenv("BILLBOOK_CORS_ALLOWED_ORIGINS", "https://app.billbook.in, ")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "SI", cfg.Billing.Prefix(domain.DocumentTypeSalesInvoice))
	assert.False(t, cfg.Billing.DefaultRoundOff)
	assert.Equal(t, []string{"https://app.billbook.in"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PortFallback(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("BILLBOOK_SERVER_ENVIRONMENT", "production")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("BILLBOOK_JWT_SECRET", "s3cret")
	_, err = config.Load()
	assert.NoError(t, err)
}

func TestBillingConfig_PrefixFallback(t *testing.T) {
	b := config.BillingConfig{}
	assert.Equal(t, "QUOTATION", b.Prefix(domain.DocumentType("quotation")))
}

func TestDBConfig_DSN(t *testing.T) {
	d := config.DBConfig{User: "u", Password: "p", Host: "h", Port: 5432, Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", d.DSN())
}
