package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rewind/parameter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rewind.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, parameter.DefaultStartingMinute, cfg.Clock.StartingMinute)
	assert.Equal(t, parameter.TicksPerSecond, cfg.Clock.TickRate)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[clock]
starting_minute = 2
time_limit_upper = 4

[game]
max_ghosts = 3

[audio]
enabled = false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Clock.StartingMinute)
	assert.Equal(t, 0, cfg.Clock.TimeLimitLower, "unset keys keep defaults")
	assert.Equal(t, 4, cfg.Clock.TimeLimitUpper)
	assert.Equal(t, 3, cfg.Game.MaxGhosts)
	assert.Equal(t, parameter.DefaultWorldWidth, cfg.Game.Width)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[clock]\nstarting_minute = 2\n")
	t.Setenv("REWIND_START", "7")
	t.Setenv("REWIND_VOLUME", "0.25")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Clock.StartingMinute)
	assert.InDelta(t, 0.25, cfg.Audio.Volume, 1e-9)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "[clock]\nstarting_minut = 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting_minut")

	_, err = Load(writeConfig(t, "[clock\n"))
	assert.ErrorContains(t, err, "decode toml")

	t.Setenv("REWIND_UPPER", "ten")
	_, err = Load("")
	assert.ErrorContains(t, err, "parse env:")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"zero tick rate", func(c *Config) { c.Clock.TickRate = 0 }, ErrInvalidTickRate},
		{"inverted limits", func(c *Config) { c.Clock.TimeLimitLower, c.Clock.TimeLimitUpper = 6, 4 }, ErrInvalidLimits},
		{"equal limits", func(c *Config) { c.Clock.TimeLimitLower, c.Clock.TimeLimitUpper = 5, 5 }, ErrInvalidLimits},
		{"negative lower", func(c *Config) { c.Clock.TimeLimitLower = -1 }, ErrInvalidLimits},
		{"upper beyond buffer", func(c *Config) { c.Clock.TimeLimitUpper = parameter.BufferMinutes + 1 }, ErrInvalidLimits},
		{"start below lower", func(c *Config) { c.Clock.TimeLimitLower, c.Clock.StartingMinute = 2, 1 }, ErrInvalidLimits},
		{"start above upper", func(c *Config) { c.Clock.StartingMinute = 11 }, ErrInvalidLimits},
		{"narrow world", func(c *Config) { c.Game.Width = 4 }, ErrInvalidWorld},
		{"negative ghost cap", func(c *Config) { c.Game.MaxGhosts = -1 }, ErrInvalidWorld},
		{"loud", func(c *Config) { c.Audio.Volume = 1.5 }, ErrInvalidVolume},
		{"start on limit", func(c *Config) { c.Clock.StartingMinute = c.Clock.TimeLimitUpper }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEncodeRoundTripsThroughDecode(t *testing.T) {
	cfg := Default()
	cfg.Clock.StartingMinute = 3
	cfg.Game.MaxGhosts = 2

	data, err := Encode(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "starting_minute = 3")

	got := Default()
	require.NoError(t, Decode(data, got))
	assert.Equal(t, cfg, got)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewind.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
clock:
  starting_minute: 1
  time_limit_upper: 3
audio:
  volume: 0.5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Clock.StartingMinute)
	assert.Equal(t, 3, cfg.Clock.TimeLimitUpper)
	assert.InDelta(t, 0.5, cfg.Audio.Volume, 1e-9)
	assert.Equal(t, parameter.DefaultMaxGhosts, cfg.Game.MaxGhosts)
}

func TestDecodeYAML(t *testing.T) {
	cfg := Default()
	require.NoError(t, DecodeYAML(nil, cfg), "empty document is a no-op")
	assert.Equal(t, Default(), cfg)

	err := DecodeYAML([]byte("game:\n  widht: 30\n"), cfg)
	assert.ErrorContains(t, err, "decode yaml")
}
