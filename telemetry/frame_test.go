package telemetry_test

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/telemetry"
	"github.com/lixenwraith/rollball/vmath"
)

type noopRenderable struct{}

func (noopRenderable) SetHighlight(core.Highlight) {}

func TestFrameMatchesSchema(t *testing.T) {
	schema, err := jsonschema.Compile(filepath.Join("..", "schemas", "frame.schema.json"))
	require.NoError(t, err)

	validate := func(f telemetry.Frame) {
		t.Helper()
		b, err := json.Marshal(f)
		require.NoError(t, err)
		var doc any
		require.NoError(t, json.Unmarshal(b, &doc))
		require.NoError(t, schema.Validate(doc), string(b))
	}

	cs := []*core.Collectible{
		{ID: 0, Position: vmath.Vec3F{X: 1}, Active: true, Renderable: noopRenderable{}},
		{ID: 1, Position: vmath.Vec3F{X: 2}, Active: true, Renderable: noopRenderable{}},
	}
	c := telemetry.NewController(telemetry.WithSession("abc"))

	for i := 0; i < 3; i++ {
		validate(c.Tick(telemetry.TickInput{DT: 20 * time.Millisecond, Toggle: i > 0, Collectibles: cs}))
	}

	// Empty set in distance mode carries a null distance
	c = telemetry.NewController(telemetry.WithInitialMode(core.ModeDistance))
	f := c.Tick(telemetry.TickInput{DT: 20 * time.Millisecond})
	validate(f)

	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"nearest_distance":null`)
}

func TestFrameRoundTripKeepsMode(t *testing.T) {
	c := telemetry.NewController(telemetry.WithInitialMode(core.ModeVision))
	f := c.Tick(telemetry.TickInput{DT: 20 * time.Millisecond})

	b, err := json.Marshal(f)
	require.NoError(t, err)

	var back telemetry.Frame
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, core.ModeVision, back.Mode)
	assert.Equal(t, "Heading: no target", back.Readout.Heading)
}
