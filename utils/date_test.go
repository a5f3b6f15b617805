package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomDateJSON(t *testing.T) {
	t.Run("unmarshal date string", func(t *testing.T) {
		var d CustomDate
		err := json.Unmarshal([]byte(`"2026-09-15"`), &d)
		require.NoError(t, err)
		assert.Equal(t, 2026, d.Year())
		assert.Equal(t, time.September, d.Month())
		assert.Equal(t, 15, d.Day())
	})

	t.Run("unmarshal null yields zero date", func(t *testing.T) {
		var d CustomDate
		err := json.Unmarshal([]byte(`null`), &d)
		require.NoError(t, err)
		assert.True(t, d.IsZero())
	})

	t.Run("unmarshal rejects other formats", func(t *testing.T) {
		var d CustomDate
		err := json.Unmarshal([]byte(`"15/09/2026"`), &d)
		assert.Error(t, err)
	})

	t.Run("marshal emits date only", func(t *testing.T) {
		d := CustomDate{time.Date(2026, 9, 15, 13, 45, 0, 0, time.UTC)}
		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2026-09-15"`, string(out))
	})

	t.Run("marshal zero date emits null", func(t *testing.T) {
		out, err := json.Marshal(CustomDate{})
		require.NoError(t, err)
		assert.Equal(t, `null`, string(out))
	})
}

func TestCustomDateScan(t *testing.T) {
	t.Run("scan time.Time", func(t *testing.T) {
		var d CustomDate
		err := d.Scan(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", d.String())
	})

	t.Run("scan string", func(t *testing.T) {
		var d CustomDate
		err := d.Scan("2026-09-15")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", d.String())
	})

	t.Run("scan nil yields zero date", func(t *testing.T) {
		var d CustomDate
		err := d.Scan(nil)
		require.NoError(t, err)
		assert.True(t, d.IsZero())
	})

	t.Run("value round trip", func(t *testing.T) {
		d := CustomDate{time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)}
		v, err := d.Value()
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", v)
	})
}

func TestAfterToday(t *testing.T) {
	today := time.Now()

	t.Run("tomorrow passes", func(t *testing.T) {
		d := CustomDate{today.AddDate(0, 0, 1)}
		assert.True(t, d.AfterToday())
	})

	t.Run("today is rejected", func(t *testing.T) {
		y, m, day := today.Date()
		d := CustomDate{time.Date(y, m, day, 0, 0, 0, 0, today.Location())}
		assert.False(t, d.AfterToday())
	})

	t.Run("yesterday is rejected", func(t *testing.T) {
		d := CustomDate{today.AddDate(0, 0, -1)}
		assert.False(t, d.AfterToday())
	})
}
