package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "5000")
	t.Setenv("TRUSTED_PROXIES", "")

	cfg := LoadConfig()
	require.Equal(t, "5000", cfg.AppPort)
	require.Nil(t, cfg.TrustedProxies)
}

func TestLoadConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("MYSQL_HOST", "127.0.0.1")
	t.Setenv("MYSQL_DATABASE", "todo_test")
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.1, ,10.0.0.2 ")

	cfg := LoadConfig()
	require.Equal(t, "127.0.0.1", cfg.DbHost)
	require.Equal(t, "todo_test", cfg.DbName)
	require.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
}

func TestLoadClientConfig_Durations(t *testing.T) {
	t.Setenv("TODO_API_URL", "http://api.local")
	t.Setenv("TODO_REQUEST_TIMEOUT", "250ms")
	t.Setenv("TODO_TOAST_DURATION", "not-a-duration")

	cfg := LoadClientConfig()
	require.Equal(t, "http://api.local", cfg.APIBaseURL)
	require.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
	require.Equal(t, 3*time.Second, cfg.ToastDuration)
}

func TestDefaultStatePath_UnderUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))

	dir, err := os.UserConfigDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "nginx-docker", "todo-state.db"), defaultStatePath())
}
