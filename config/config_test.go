package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// isolateHome keeps the developer's real ~/.chillmcp.yaml out of tests.
func isolateHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load(viper.New())
	assert.NoError(t, err)

	assert.Equal(t, DefaultBossAlertness, cfg.BossAlertness)
	assert.Equal(t, DefaultCooldownSecs, cfg.BossAlertnessCooldown)
	assert.False(t, cfg.Server)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 300*time.Second, cfg.Cooldown())
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("CHILLMCP_BOSS_ALERTNESS", "80")
	t.Setenv("CHILLMCP_BOSS_ALERTNESS_COOLDOWN", "30")
	t.Setenv("CHILLMCP_SERVER", "true")
	t.Setenv("CHILLMCP_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New())
	assert.NoError(t, err)

	assert.Equal(t, 80, cfg.BossAlertness)
	assert.Equal(t, 30, cfg.BossAlertnessCooldown)
	assert.True(t, cfg.Server)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Cooldown())
}

func TestLoad_ConfigFile(t *testing.T) {
	home := isolateHome(t)

	content := "boss_alertness: 10\nboss_alertness_cooldown: 60\n"
	assert.NoError(t, os.WriteFile(filepath.Join(home, ".chillmcp.yaml"), []byte(content), 0o600))

	cfg, err := Load(viper.New())
	assert.NoError(t, err)

	assert.Equal(t, 10, cfg.BossAlertness)
	assert.Equal(t, 60, cfg.BossAlertnessCooldown)
}

func TestLoad_EnvBeatsConfigFile(t *testing.T) {
	home := isolateHome(t)

	assert.NoError(t, os.WriteFile(filepath.Join(home, ".chillmcp.yaml"), []byte("boss_alertness: 10\n"), 0o600))
	t.Setenv("CHILLMCP_BOSS_ALERTNESS", "90")

	cfg, err := Load(viper.New())
	assert.NoError(t, err)
	assert.Equal(t, 90, cfg.BossAlertness)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	isolateHome(t)

	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"alertness above range", "CHILLMCP_BOSS_ALERTNESS", "101"},
		{"alertness below range", "CHILLMCP_BOSS_ALERTNESS", "-1"},
		{"zero cooldown", "CHILLMCP_BOSS_ALERTNESS_COOLDOWN", "0"},
		{"negative cooldown", "CHILLMCP_BOSS_ALERTNESS_COOLDOWN", "-5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load(viper.New())
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestValidate(t *testing.T) {
	ok := Config{BossAlertness: 50, BossAlertnessCooldown: 300}
	assert.NoError(t, ok.Validate())

	edge := Config{BossAlertness: 0, BossAlertnessCooldown: 1}
	assert.NoError(t, edge.Validate())

	edge = Config{BossAlertness: 100, BossAlertnessCooldown: 1}
	assert.NoError(t, edge.Validate())
}
