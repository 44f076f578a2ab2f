package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults when env is empty", func(t *testing.T) {
		t.Setenv("NFE_APP_ENV", "")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "nfe-backoffice", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "fiscal_documents", cfg.DynamoDB.DocumentsTable)
		assert.Equal(t, 5*time.Second, cfg.Fiscal.ProbeTimeout)
		assert.Equal(t, 30*time.Minute, cfg.Emission.JobRetention)
		assert.Equal(t, 10, cfg.Reconciliation.MaxAttempts)
		assert.Equal(t, "nfe:reconcile", cfg.Redis.QueueKey)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("NFE_APP_PORT", "9000")
		t.Setenv("NFE_FISCAL_BASE_URL", "http://fiscal:5000")
		t.Setenv("NFE_FISCAL_PROBE_TIMEOUT", "2s")
		t.Setenv("NFE_DYNAMODB_ENDPOINT", "http://dynamodb:8000")
		t.Setenv("NFE_STORAGE_USE_PATH_STYLE", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "http://fiscal:5000", cfg.Fiscal.BaseURL)
		assert.Equal(t, 2*time.Second, cfg.Fiscal.ProbeTimeout)
		assert.Equal(t, "local", cfg.DynamoDB.AccessKeyID)
		assert.True(t, cfg.Storage.UsePathStyle)
	})

	t.Run("production requires a jwt secret", func(t *testing.T) {
		t.Setenv("NFE_APP_ENV", "production")
		t.Setenv("NFE_JWT_SECRET", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("production with a long secret", func(t *testing.T) {
		t.Setenv("NFE_APP_ENV", "production")
		t.Setenv("NFE_JWT_SECRET", strings.Repeat("s", 32))

		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.IsDevelopment())
	})
}
