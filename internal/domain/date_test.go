package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "somente data", input: "2024-04-23", want: "2024-04-23"},
		{name: "com hora e fuso", input: "2024-04-23 00:00:00+00:00", want: "2024-04-23"},
		{name: "RFC3339", input: "2024-04-23T15:04:05Z", want: "2024-04-23"},
		{name: "curta demais", input: "2024-04", wantErr: true},
		{name: "mês inválido", input: "2024-13-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, time.April, 23, 18, 30, 0, 0, time.FixedZone("BRT", -3*3600))))
	assert.Equal(t, "2024-04-23", d.String())

	require.NoError(t, d.Scan("2024-02-05"))
	assert.Equal(t, "2024-02-05", d.String())

	require.NoError(t, d.Scan([]byte("2024-03-04")))
	assert.Equal(t, "2024-03-04", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDate_JSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		UpdateDate Date `json:"update_date"`
	}{UpdateDate: NewDate(2024, time.April, 23)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"update_date":"2024-04-23"}`, string(payload))

	var decoded struct {
		UpdateDate Date `json:"update_date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"update_date":"2024-02-05"}`), &decoded))
	assert.True(t, decoded.UpdateDate.Equal(NewDate(2024, time.February, 5)))
}

func TestDate_Value(t *testing.T) {
	value, err := NewDate(2024, time.March, 4).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", value)
}
