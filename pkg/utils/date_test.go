package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		date, err := ParseDate("2026-08-27")
		assert.NoError(t, err)
		assert.NotNil(t, date)
		assert.True(t, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC).Equal(*date))
	})

	t.Run("empty string is absent, not an error", func(t *testing.T) {
		date, err := ParseDate("")
		assert.NoError(t, err)
		assert.Nil(t, date)
	})

	t.Run("malformed date", func(t *testing.T) {
		date, err := ParseDate("27/08/2026")
		assert.Error(t, err)
		assert.Nil(t, date)
	})
}
