package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHHMMPattern(t *testing.T) {
	valid := []string{"00:00", "09:30", "12:00", "23:59"}
	for _, v := range valid {
		assert.True(t, hhmmPattern.MatchString(v), v)
	}

	invalid := []string{"24:00", "9:30", "12:60", "12:5", "noon", "12:00:00", ""}
	for _, v := range invalid {
		assert.False(t, hhmmPattern.MatchString(v), v)
	}
}

func TestWeekdaySet(t *testing.T) {
	assert.True(t, weekdays["Monday"])
	assert.True(t, weekdays["Sunday"])
	assert.False(t, weekdays["monday"])
	assert.False(t, weekdays["Mon"])
}
