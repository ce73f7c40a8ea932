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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const validConfig = `
api:
  environment: "test"
  port: "8080"
  jwt_signing_key: "test-key"
gin:
  mode: "test"
postgres:
  host: "localhost"
admin:
  id: "admin"
  password: "sql2025"
clock:
  timezone: "Asia/Kolkata"
`

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, validConfig))

	require.NoError(t, err)
	assert.Equal(t, "8080", conf.API.Port)
	assert.Equal(t, "admin", conf.Admin.ID)
	assert.Equal(t, "sql2025", conf.Admin.Password)
	assert.Equal(t, "Asia/Kolkata", conf.Clock.Timezone)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"missing port",
			`
api:
  jwt_signing_key: "k"
admin:
  id: "admin"
  password: "sql2025"
clock:
  timezone: "UTC"
`,
		},
		{
			"missing signing key",
			`
api:
  port: "8080"
admin:
  id: "admin"
  password: "sql2025"
clock:
  timezone: "UTC"
`,
		},
		{
			"missing admin credentials",
			`
api:
  port: "8080"
  jwt_signing_key: "k"
clock:
  timezone: "UTC"
`,
		},
		{
			"missing timezone",
			`
api:
  port: "8080"
  jwt_signing_key: "k"
admin:
  id: "admin"
  password: "sql2025"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))

			assert.Error(t, err)
		})
	}
}
