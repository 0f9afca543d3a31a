package logstream

import (
	"testing"
	"time"

	"careeros/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestDecodeEntry(t *testing.T) {
	received := time.Date(2025, 3, 1, 8, 0, 0, 0, time.FixedZone("CET", 3600))

	tests := []struct {
		name      string
		body      string
		wantErr   bool
		level     domain.LogLevel
		timestamp time.Time
	}{
		{
			name:      "iso without zone is utc",
			body:      `{"sessionId":"s1","level":"info","message":"hi","timestamp":"2025-01-15T10:30:45.123456"}`,
			level:     domain.LogLevelInfo,
			timestamp: time.Date(2025, 1, 15, 10, 30, 45, 123456000, time.UTC),
		},
		{
			name:      "rfc3339 with offset",
			body:      `{"sessionId":"s1","level":"SUCCESS","message":"hi","timestamp":"2025-01-15T12:30:45+02:00"}`,
			level:     domain.LogLevelSuccess,
			timestamp: time.Date(2025, 1, 15, 10, 30, 45, 0, time.UTC),
		},
		{
			name:      "epoch seconds",
			body:      `{"sessionId":"s1","message":"hi","timestamp":1736937045.5}`,
			level:     domain.LogLevelInfo,
			timestamp: time.Date(2025, 1, 15, 10, 30, 45, 500000000, time.UTC),
		},
		{
			name:      "epoch milliseconds",
			body:      `{"sessionId":"s1","message":"hi","timestamp":1736937045123}`,
			level:     domain.LogLevelInfo,
			timestamp: time.Date(2025, 1, 15, 10, 30, 45, 123000000, time.UTC),
		},
		{
			name:      "unreadable timestamp falls back to receive time",
			body:      `{"sessionId":"s1","level":"warning","message":"hi","timestamp":"yesterday"}`,
			level:     domain.LogLevelWarning,
			timestamp: received.UTC(),
		},
		{
			name:      "missing timestamp",
			body:      `{"sessionId":"s1","message":"hi"}`,
			level:     domain.LogLevelInfo,
			timestamp: received.UTC(),
		},
		{name: "not json", body: `not json`, wantErr: true},
		{name: "not an object", body: `["s1","hi"]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := decodeEntry([]byte(tt.body), received)
			if tt.wantErr {
				require.ErrorIs(t, err, errMalformedEntry)

				return
			}

			require.NoError(t, err)
			require.Equal(t, "s1", entry.SessionID)
			require.Equal(t, "hi", entry.Message)
			require.Equal(t, tt.level, entry.Level)
			require.True(t, tt.timestamp.Equal(entry.Timestamp), "got %s", entry.Timestamp)
			require.Equal(t, time.UTC, entry.Timestamp.Location())
		})
	}
}
