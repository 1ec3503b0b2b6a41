package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Summary string `json:"summary"`
}

func TestParseJSON(t *testing.T) {
	got, err := ParseJSON[payload]("```json\n{\"summary\": \"TP53 is the hub.\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "TP53 is the hub.", got.Summary)
}

func TestParseJSON_NoObject(t *testing.T) {
	_, err := ParseJSON[payload]("TP53 is the hub.")
	assert.ErrorIs(t, err, ErrNoJSONObject)
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON[payload](`{"summary": }`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal JSON")
}
