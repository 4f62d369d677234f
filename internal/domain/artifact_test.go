package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFramework(t *testing.T) {
	for fw := range ValidFrameworks {
		got, ok := ParseFramework(fw)
		assert.True(t, ok, fw)
		assert.Equal(t, Framework(fw), got)
	}

	_, ok := ParseFramework("Sprint")
	assert.False(t, ok, "frameworks are lowercase")
	_, ok = ParseFramework("")
	assert.False(t, ok)
}

func TestArtifact_Decode(t *testing.T) {
	a := Artifact{Output: json.RawMessage(`{"headline":"Get paid faster"}`)}

	var out struct {
		Headline string `json:"headline"`
	}
	require.NoError(t, a.Decode(&out))
	assert.Equal(t, "Get paid faster", out.Headline)

	a.Output = json.RawMessage(`not json`)
	assert.Error(t, a.Decode(&out))
}
