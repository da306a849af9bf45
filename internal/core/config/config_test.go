package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_FileAndDefaults(t *testing.T) {
	p := writeYAML(t, `
app:
  http:
    port: 5000
jwt:
  secret: from-file
  adminEmails: [root@example.com]
db:
  driver: mysql
  dsn: mysql://u:p@127.0.0.1:3306/app
`)
	c, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, 5000, c.App.HTTP.Port)
	assert.Equal(t, 4181, c.App.Admin.Port)
	assert.Equal(t, "from-file", c.JWT.Secret)
	assert.Equal(t, []string{"root@example.com"}, c.JWT.AdminEmails)
	assert.Equal(t, 2*time.Hour, c.JWT.TTL())
	assert.Equal(t, "mysql", c.DB.Driver)
	assert.Equal(t, 5, c.FreePosts.Limit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "from-env")
	t.Setenv("APP_APP_HTTP_PORT", "6000")

	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", c.JWT.Secret)
	assert.Equal(t, 6000, c.App.HTTP.Port)
	assert.Equal(t, "sqlite", c.DB.Driver)
}

func TestLoad_RequiresSecret(t *testing.T) {
	_, err := Load(writeYAML(t, "log:\n  level: debug\n"))
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	_, err := Load(writeYAML(t, "jwt:\n  secret: x\ndb:\n  driver: oracle\n"))
	assert.Error(t, err)
}
