package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FileAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
database:
  driver: sqlite
  database: bendesk.db
mail:
  enabled: true
  tenant_id: tenant-1
  mailbox: helpdesk@example.com
`), 0o600))

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Database.IsSQLite())
	assert.Equal(t, "bendesk.db", cfg.Database.GetDSN())
	assert.Equal(t, "Inbox", cfg.Mail.Folder)
	assert.Equal(t, "https://login.microsoftonline.com/tenant-1/oauth2/v2.0/token", cfg.Mail.TokenURL())
	assert.Equal(t, "smtp.office365.com", cfg.Email.SMTPHost)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Equal(t, 4.0, cfg.SLA.OnTargetHours)
	assert.Equal(t, 8.0, cfg.SLA.AtRiskHours)
	assert.Equal(t, 5.0, cfg.Stock.LowThreshold)
	assert.Equal(t, 8.0, cfg.TicketThresholds().AtRiskHours)
	assert.Equal(t, 5.0, cfg.StockThresholds().Low)
	assert.Equal(t, 10, cfg.Auth.LoginRateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.Auth.LoginRateLimit.Window)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o600))
	t.Setenv("BENDESK_SERVER_PORT", "7000")

	cfg, err := Load("release", path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
