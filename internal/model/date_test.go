package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalAcceptsBothWireFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "date only", input: `"2025-03-15"`, want: "2025-03-15"},
		{name: "rfc3339", input: `"2025-03-15T10:30:00Z"`, want: "2025-03-15"},
		{name: "null", input: `null`, want: "—"},
		{name: "empty string", input: `""`, want: "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15/03/2025"`), &d))
}

func TestDateMarshalRoundTrip(t *testing.T) {
	d := NewDate(2025, 3, 15)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-15"`, string(data))

	var zero Date
	data, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data), "unset dates go over the wire as null")
}

func TestVaccineIsOverdue(t *testing.T) {
	now := NewDate(2025, 6, 1).Time

	overdue := Vaccine{NextDueDate: NewDate(2025, 5, 1)}
	assert.True(t, overdue.IsOverdue(now))

	current := Vaccine{NextDueDate: NewDate(2025, 7, 1)}
	assert.False(t, current.IsOverdue(now))

	unset := Vaccine{}
	assert.False(t, unset.IsOverdue(now), "no due date means nothing is overdue")
}
