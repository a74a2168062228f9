package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rollball/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), DefaultConfig)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Target())

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, core.ModeNormal, mode)
}

func TestLoadOverridesDefaults(t *testing.T) {
	p := writeConfig(t, `
fixed_step: 10ms
speed: 300
debug_mode: vision
target_score: 2
pickups:
  - {x: 1, z: 0}
  - {x: 2, z: 0}
  - {x: 3, z: 3}
`)
	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, cfg.FixedStep)
	assert.Equal(t, 300.0, cfg.Speed)
	assert.Equal(t, DefaultDrag, cfg.Drag, "absent keys keep defaults")
	assert.Len(t, cfg.Pickups, 3)
	assert.Equal(t, 2, cfg.Target())

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, core.ModeVision, mode)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero step", "fixed_step: 0s", "fixed_step"},
		{"unknown mode", "debug_mode: xray", "debug_mode"},
		{"pickup outside", "pickups: [{x: 50, z: 0}]", "outside the arena"},
		{"target too high", "target_score: 9", "exceeds pickup count"},
		{"negative drag", "drag: -1", "drag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "speed: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
