package sim

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.ini")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg, "default.ini and DefaultConfig agree")
}

func TestLoadConfigOverride(t *testing.T) {
	cfg, err := LoadConfig("testdata/override.ini")
	require.NoError(t, err)

	assert.Equal(t, 1200.0, cfg.Arena.Width)
	assert.Equal(t, 450.0, cfg.Arena.Height, "untouched keys keep defaults")
	assert.Equal(t, "striker", cfg.Match.Player1)
	assert.Equal(t, "tank", cfg.Match.Player2)
	assert.Equal(t, int64(42), cfg.Match.Seed)
	assert.Equal(t, "k", cfg.Player1Keys.Shoot)
	assert.Equal(t, "a", cfg.Player1Keys.Left)
	assert.Equal(t, ";", cfg.Player2Keys.Shoot)
	assert.Equal(t, 180*time.Millisecond, cfg.Melee.Cooldown)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "unknown preset", body: "[Match]\nPlayer2 = ninja\n", want: "ninja"},
		{name: "ground below arena", body: "[Arena]\nGround = 500\n", want: "ground"},
		{name: "zero frame duration", body: "[Match]\nFrameDuration = 0s\n", want: "frame duration"},
		{name: "negative trail", body: "[Projectile]\nTrailLength = -1\n", want: "trail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
}

func TestFramePacing(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 16*time.Millisecond, cfg.FrameStep())
	assert.Equal(t, 62, cfg.TicksPerSecond())

	cfg.Match.SlowMo = 0.5
	assert.Equal(t, 8*time.Millisecond, cfg.FrameStep())
	assert.Equal(t, 125, cfg.TicksPerSecond())
}
