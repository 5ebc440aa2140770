package clock

import (
	"testing"
	"time"

	"github.com/penwyp/go-countdown/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, tz string) *util.TimeProvider {
	t.Helper()
	provider := &util.TimeProvider{}
	require.NoError(t, provider.SetTimezone(tz))
	return provider
}

func TestClock_At(t *testing.T) {
	instant := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	tests := []struct {
		name       string
		timezone   string
		timeFormat string
		expected   Display
	}{
		{
			name:       "24h UTC",
			timezone:   "UTC",
			timeFormat: "24h",
			expected:   Display{Date: "2024/03/09", Time: "14:05:07"},
		},
		{
			name:       "12h UTC",
			timezone:   "UTC",
			timeFormat: "12h",
			expected:   Display{Date: "2024/03/09", Time: "02:05:07 PM"},
		},
		{
			name:       "default format",
			timezone:   "UTC",
			timeFormat: "",
			expected:   Display{Date: "2024/03/09", Time: "14:05:07"},
		},
		{
			name:       "Asia/Shanghai offset",
			timezone:   "Asia/Shanghai",
			timeFormat: "24h",
			expected:   Display{Date: "2024/03/09", Time: "22:05:07"},
		},
		{
			name:       "America/New_York offset",
			timezone:   "America/New_York",
			timeFormat: "24h",
			expected:   Display{Date: "2024/03/09", Time: "09:05:07"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(newProvider(t, tt.timezone), tt.timeFormat)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.At(instant))
		})
	}
}

func TestClock_InvalidFormat(t *testing.T) {
	_, err := New(nil, "48h")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid time format")
}

func TestClock_NowTracksWallTime(t *testing.T) {
	c, err := New(newProvider(t, "UTC"), "24h")
	require.NoError(t, err)

	before := time.Now().UTC()
	d := c.Now()
	after := time.Now().UTC()

	assert.Contains(t, []string{before.Format("2006/01/02"), after.Format("2006/01/02")}, d.Date)
	assert.Contains(t, []string{before.Format("15:04:05"), after.Format("15:04:05")}, d.Time)
}

func TestDisplayString(t *testing.T) {
	assert.Equal(t, "2024/03/09 14:05:07", Display{Date: "2024/03/09", Time: "14:05:07"}.String())
}
