package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/lixenwraith/rollball/config"
	"github.com/lixenwraith/rollball/input"
)

func TestReplayCommand(t *testing.T) {
	cfg := testConfig()
	cfg.DebugMode = "distance"
	cfg.Record = filepath.Join(t.TempDir(), "run"+config.RecordingExt)
	h, _, _ := newTestHost(t, cfg)
	h.advance(input.Snapshot{}, 3)
	h.close()

	var buf bytes.Buffer
	app := makeapp()
	app.Writer = &buf
	require.NoError(t, app.Run([]string{"rollball", "replay", cfg.Record}))

	out := buf.String()
	assert.Contains(t, out, "rollball recording "+cfg.Record)
	assert.Contains(t, out, "session "+h.sess.ID)
	assert.Contains(t, out, "4 frames, last tick 4")
	assert.Contains(t, out, "distance  100.0%")
	assert.Contains(t, out, "nearest min 0.90")
}

func TestReplayRequiresPath(t *testing.T) {
	app := makeapp()
	app.Writer = &bytes.Buffer{}
	assert.Error(t, app.Run([]string{"rollball", "replay"}))
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rollball.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug_mode: vision\nspeed: 42\n"), 0o644))

	var got config.Config
	app := makeapp()
	app.Action = func(c *cli.Context) error {
		var err error
		got, err = loadConfig(c)
		return err
	}
	require.NoError(t, app.Run([]string{"rollball", "--config", path, "--mode", "distance", "--no-audio", "--step", "10ms"}))

	assert.Equal(t, "distance", got.DebugMode)
	assert.Equal(t, 42.0, got.Speed)
	assert.False(t, got.Audio)
	assert.Equal(t, "10ms", got.FixedStep.String())
}

func TestLoadConfigRejectsBadMode(t *testing.T) {
	app := makeapp()
	app.Writer = &bytes.Buffer{}
	app.Action = func(c *cli.Context) error {
		_, err := loadConfig(c)
		return err
	}
	assert.Error(t, app.Run([]string{"rollball", "--mode", "xray"}))
}
