package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestCovers(t *testing.T) {
	h := Holiday{StartDate: day(2025, 4, 9), EndDate: day(2025, 4, 10)}

	assert.True(t, h.Covers(day(2025, 4, 9)))
	assert.True(t, h.Covers(day(2025, 4, 10)))
	assert.False(t, h.Covers(day(2025, 4, 8)))
	assert.False(t, h.Covers(day(2025, 4, 11)))

	// Time-of-day does not matter.
	assert.True(t, h.Covers(time.Date(2025, 4, 9, 23, 30, 0, 0, time.UTC)))
}

func TestFindForDate(t *testing.T) {
	holidays := []Holiday{
		{ID: "a", StartDate: day(2025, 4, 9), EndDate: day(2025, 4, 9)},
		{ID: "b", StartDate: day(2025, 4, 9), EndDate: day(2025, 4, 12)},
	}

	// First match wins when ranges overlap.
	found := FindForDate(holidays, day(2025, 4, 9))
	require.NotNil(t, found)
	assert.Equal(t, "a", found.ID)

	found = FindForDate(holidays, day(2025, 4, 11))
	require.NotNil(t, found)
	assert.Equal(t, "b", found.ID)

	assert.Nil(t, FindForDate(holidays, day(2025, 4, 20)))
}
