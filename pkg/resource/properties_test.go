package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitResolvesPlaceholders(t *testing.T) {
	t.Setenv("WEATHER_TEST_KEY", "secret")

	path := filepath.Join(t.TempDir(), "application.yml")
	content := `app:
  name: weather-app
  openweather:
    api-key: ${WEATHER_TEST_KEY}
    base-url: ${WEATHER_TEST_UNSET_URL:http://api.openweathermap.org}
    region: ${WEATHER_TEST_UNSET_REGION}
    read-timeout: 15s
  server:
    port: 8080
  redis:
    database: ${WEATHER_TEST_UNSET_DB:zero}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, Init(path))

	assert.Equal(t, "weather-app", GetString("app.name"))
	assert.Equal(t, "secret", GetString("app.openweather.api-key"))
	assert.Equal(t, "http://api.openweathermap.org", GetString("app.openweather.base-url"))
	assert.False(t, IsSet("app.openweather.region"))
	assert.Equal(t, 15*time.Second, GetDuration("app.openweather.read-timeout"))
	assert.Equal(t, 8080, GetInt("app.server.port"))
	assert.Equal(t, 42, GetIntOrDefault("app.server.missing", 42))
	assert.Equal(t, 8080, GetIntOrDefault("app.server.port", 1))
	assert.Equal(t, 3, GetIntOrDefault("app.redis.database", 3))
	assert.Equal(t, "fallback", GetStringOrDefault("app.nothing", "fallback"))
}

func TestSetOverridesProperty(t *testing.T) {
	Set("app.display.timezone", "Europe/London")
	assert.Equal(t, "Europe/London", GetString("app.display.timezone"))
}

func TestInitMissingFile(t *testing.T) {
	assert.Error(t, Init(filepath.Join(t.TempDir(), "missing.yml")))
}
