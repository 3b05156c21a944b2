package logx

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arogyasagar/storefront/internal/core"
)

func TestProductionLogsJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	Init(LoggerOpts{Environment: core.Production, Output: &buf})
	t.Cleanup(Disable)

	Debug().Msg("hidden")
	Info().Str("order_id", "ORD-1").Msg("order placed")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "ORD-1", line["order_id"])
	assert.Equal(t, "order placed", line["message"])
}

func TestLevelOverride(t *testing.T) {
	var buf bytes.Buffer
	Init(LoggerOpts{Environment: core.Production, Level: "warn", Output: &buf})
	t.Cleanup(Disable)

	Info().Msg("skipped")
	assert.Zero(t, buf.Len())
	Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestDisable(t *testing.T) {
	var buf bytes.Buffer
	Init(LoggerOpts{Environment: core.Production, Output: &buf})
	Disable()

	Error().Msg("nothing")
	assert.Zero(t, buf.Len())
}
