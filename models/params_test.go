package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Merge(t *testing.T) {
	tests := []struct {
		name      string
		base      Params
		overrides Params
		want      Params
	}{
		{"both nil", nil, nil, Params{}},
		{"only base", Params{"page": "1"}, nil, Params{"page": "1"}},
		{"only overrides", nil, Params{"sort": "unread"}, Params{"sort": "unread"}},
		{"override wins", Params{"showunread": "1", "action": "subscriptions"}, Params{"showunread": "0"},
			Params{"showunread": "0", "action": "subscriptions"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.base.Merge(tt.overrides))
		})
	}
}

func TestParams_MergeDoesNotMutateInputs(t *testing.T) {
	base := Params{"page": "1"}
	overrides := Params{"page": "2"}

	_ = base.Merge(overrides)

	assert.Equal(t, "1", base["page"])
	assert.Equal(t, "2", overrides["page"])
}

func TestResponse_Helpers(t *testing.T) {
	r := NewResponse(map[string]any{"status": "failure", "error": "bad id", "response": []any{}})
	assert.Equal(t, "failure", r.Status())
	assert.Equal(t, "bad id", r.Error())
	assert.Equal(t, []any{}, r.Payload())

	empty := Response{}
	assert.Empty(t, empty.Status())
	assert.Empty(t, empty.Error())
	assert.Nil(t, empty.Payload())
	assert.Nil(t, empty.Value())
}

func TestResponse_NonObjectValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want any
	}{
		{"array", `[{"id":1}]`, []any{map[string]any{"id": json.Number("1")}}},
		{"string", `"maintenance"`, "maintenance"},
		{"number", `9007199254740993`, json.Number("9007199254740993")},
		{"null", `null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Response
			require.NoError(t, json.Unmarshal([]byte(tt.body), &r))

			assert.Equal(t, tt.want, r.Value())
			_, isObject := r.Object()
			assert.False(t, isObject)
			assert.Empty(t, r.Status())
			assert.Nil(t, r.Payload())

			out, err := json.Marshal(r)
			require.NoError(t, err)
			assert.JSONEq(t, tt.body, string(out))
		})
	}
}
