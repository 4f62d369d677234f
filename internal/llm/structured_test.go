package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Headline string  `json:"headline"`
	Score    float64 `json:"score"`
}

func TestExtractJSON_PlainObject(t *testing.T) {
	raw := `{"headline":"Ship faster","score":0.95}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ship faster", result.Headline)
	assert.Equal(t, 0.95, result.Score)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"headline\":\"Bake better\",\"score\":0.88}\n```"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bake better", result.Headline)
	assert.Equal(t, 0.88, result.Score)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Here is your headline:\n{\"headline\":\"Hire in a day\",\"score\":0.72}\nHope that helps!"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hire in a day", result.Headline)
}

func TestExtractJSON_TopLevelArray(t *testing.T) {
	raw := "Names:\n[\"Brightpath\", \"Kindling\"]"
	result, err := ExtractJSON[[]string](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Brightpath", "Kindling"}, result)
}

func TestExtractJSON_SkipsBracketedProse(t *testing.T) {
	raw := "I considered [3] options. {\"headline\":\"Pick one\",\"score\":1}"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Pick one", result.Headline)
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	type nested struct {
		Element string            `json:"element"`
		Fields  map[string]string `json:"fields"`
	}
	raw := `{"element":"guide","fields":{"empathy":"We get it"}}`
	result, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "guide", result.Element)
	assert.Equal(t, "We get it", result.Fields["empathy"])
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload]("I don't know what you mean.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload](`{"headline":"x", broken}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	raw := `{"headline":"x","score":1.5}`
	validator := func(p testPayload) error {
		if p.Score < 0 || p.Score > 1 {
			return fmt.Errorf("score must be in [0,1], got %f", p.Score)
		}
		return nil
	}
	_, err := ExtractJSON(raw, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExtractJSON_EscapedBracesInString(t *testing.T) {
	raw := `{"headline":"use {curly} and \"quotes\"","score":0.5}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `use {curly} and "quotes"`, result.Headline)
}

func TestExtractJSON_StripsComments(t *testing.T) {
	raw := "{\n  // best option\n  \"headline\": \"a // b\", /* keep going */\n  \"score\": 0.4\n}"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "a // b", result.Headline)
	assert.Equal(t, 0.4, result.Score)
}

func TestExtractJSON_LeadingDecimal(t *testing.T) {
	raw := `{"headline":"v.2 is .5 better","score":.8}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.8, result.Score)
	assert.Equal(t, "v.2 is .5 better", result.Headline)
}

func TestCleanJSON_NegativeLeadingDecimal(t *testing.T) {
	cleaned, err := CleanJSON(`{"delta": -.3}`)
	require.NoError(t, err)
	assert.Equal(t, `{"delta": -0.3}`, cleaned)
}
