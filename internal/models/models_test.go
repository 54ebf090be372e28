package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected NumericString
		wantErr  bool
	}{
		{
			name:     "string value",
			payload:  `"94101"`,
			expected: "94101",
		},
		{
			name:     "string with leading zero",
			payload:  `"02134"`,
			expected: "02134",
		},
		{
			name:     "legacy numeric value",
			payload:  `94101`,
			expected: "94101",
		},
		{
			name:     "null",
			payload:  `null`,
			expected: "",
		},
		{
			name:    "non-numeric JSON",
			payload: `[1]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var value NumericString
			err := json.Unmarshal([]byte(tt.payload), &value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range StatusOptions {
		assert.True(t, IsValidStatus(status), "status %q should be valid", status)
	}

	assert.False(t, IsValidStatus("Pending"))
	assert.False(t, IsValidStatus("received"), "status matching is case-sensitive")
	assert.False(t, IsValidStatus(""))
}

func TestIncomeLabelToKey(t *testing.T) {
	assert.Equal(t, IncomeBracketKeyOver50k, IncomeLabelToKey["$50,001 and over"])
	assert.Equal(t, IncomeBracketKey25kTo50k, IncomeLabelToKey["$25,001 - $50,000"])
	assert.Equal(t, IncomeBracketKey12kTo25k, IncomeLabelToKey["$12,501 - $25,000"])
	assert.Equal(t, IncomeBracketKeyUnder12k, IncomeLabelToKey["$12,500 and under"])
	assert.Len(t, IncomeLabelToKey, 4)
}

func TestVSRJSONRoundTrip(t *testing.T) {
	vsr := VSR{
		Name:       "Test Veteran",
		ZipCode:    "02134",
		MilitaryID: "0042",
		Ethnicity:  []string{"Prefer not to say"},
	}

	payload, err := json.Marshal(vsr)
	require.NoError(t, err)

	var decoded VSR
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, NumericString("02134"), decoded.ZipCode)
	assert.Equal(t, NumericString("0042"), decoded.MilitaryID)
}
