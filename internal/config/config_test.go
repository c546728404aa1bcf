package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "env: production\n"))
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Contains(t, cfg.ResolveDSN(), "dbname=storefront")
	assert.Contains(t, cfg.ResolveDSN(), "port=5432")
}

func TestLoadExplicitDSNWins(t *testing.T) {
	cfg, err := Load(writeConfig(t, "dsn: host=db user=u password=p dbname=x port=5433 sslmode=require\n"))
	require.NoError(t, err)
	assert.Equal(t, "host=db user=u password=p dbname=x port=5433 sslmode=require", cfg.ResolveDSN())
}

func TestLoadRejectsBadPort(t *testing.T) {
	_, err := Load(writeConfig(t, "port: 99999\n"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "prot: 3000\n"))
	assert.Error(t, err)
}

func TestLoadAdminEmails(t *testing.T) {
	cfg, err := Load(writeConfig(t, "admin_emails:\n  - owner@example.com\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"owner@example.com"}, cfg.AdminEmails)
}
