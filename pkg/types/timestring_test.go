package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid morning", "09:00", false},
		{"valid afternoon", "17:30", false},
		{"valid midnight", "00:00", false},
		{"valid last minute", "23:59", false},
		{"hour out of range", "24:00", true},
		{"minute out of range", "10:60", true},
		{"missing leading zero", "9:00", true},
		{"empty", "", true},
		{"garbage", "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 3, 7, 9, 5, 0, 0, time.UTC))
	assert.Equal(t, "09:05", ts.String())
}

func TestTimeString_Ordering(t *testing.T) {
	early := TimeString("08:30")
	late := TimeString("13:00")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:30")

	result, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "10:15", result.String())

	// Переход через полночь запрещен
	_, err = TimeString("23:30").AddMinutes(45)
	assert.Error(t, err)
}
