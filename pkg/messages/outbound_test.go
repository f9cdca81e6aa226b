package messages

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootPayloadJSON(t *testing.T) {
	b, err := json.Marshal(NewRootPayload())
	require.NoError(t, err)

	assert.JSONEq(t, `{"ok":true,"message":"Backend is running"}`, string(b))
}

func TestHealthPayloadJSON(t *testing.T) {
	b, err := json.Marshal(NewHealthPayload(42, 1714564800123))
	require.NoError(t, err)

	assert.JSONEq(t, `{"status":"ok","uptimeSeconds":42,"timestamp":1714564800123}`, string(b))
}
