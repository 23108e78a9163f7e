package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionRecord_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want TransitionRecord
	}{
		{"String", `{"character":"a","max_transit":2}`, TransitionRecord{Character: "a", MaxTransit: 2}},
		{"Bare Digit", `{"character":0}`, TransitionRecord{Character: "0"}},
		{"Missing", `{}`, TransitionRecord{}},
		{"Null", `{"character":null,"current_transit":1}`, TransitionRecord{CurrentTransit: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TransitionRecord
			require.NoError(t, json.Unmarshal([]byte(tt.data), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	var bad TransitionRecord
	assert.Error(t, json.Unmarshal([]byte(`{"character":true}`), &bad))
}
