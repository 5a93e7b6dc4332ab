package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/contact"
	"github.com/tartampluch/go-addressbook/internal/engine"
)

func mustRecord(t *testing.T, name, phone, birthday string) *contact.Record {
	t.Helper()
	r, err := contact.ParseRecord(name, phone, birthday)
	require.NoError(t, err)
	return r
}

func TestUpcomingBirthdays(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	records := []*contact.Record{
		mustRecord(t, "Petro", "", "20/06/1990"),
		mustRecord(t, "Olena", "+380991234567", "15/06/2000"),
		mustRecord(t, "Taras", "", "01/01/1980"),
		mustRecord(t, "Ivan", "+380671112233", ""),
	}

	got := engine.UpcomingBirthdays(now, records, 7)

	require.Len(t, got, 2)
	assert.Equal(t, "Olena", got[0].Name)
	assert.Equal(t, 0, got[0].DaysLeft)
	assert.Equal(t, 25, got[0].AgeNext)

	assert.Equal(t, "Petro", got[1].Name)
	assert.Equal(t, 5, got[1].DaysLeft)
	assert.Equal(t, 35, got[1].AgeNext)
	assert.Equal(t, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), got[1].NextOccurrence)
	assert.Equal(t, records[0].ID, got[1].ID)
}

func TestUpcomingBirthdays_WrapsYear(t *testing.T) {
	now := time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC)
	records := []*contact.Record{mustRecord(t, "Petro", "", "02/01/1990")}

	got := engine.UpcomingBirthdays(now, records, 7)

	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].DaysLeft)
	assert.Equal(t, 36, got[0].AgeNext)
}

func TestUpcomingBirthdays_TiesSortedByName(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	records := []*contact.Record{
		mustRecord(t, "olena", "", "16/06/1995"),
		mustRecord(t, "Andriy", "", "16/06/1988"),
	}

	got := engine.UpcomingBirthdays(now, records, 1)

	require.Len(t, got, 2)
	assert.Equal(t, "Andriy", got[0].Name)
	assert.Equal(t, "olena", got[1].Name)
}

func TestUpcomingBirthdays_Empty(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, engine.UpcomingBirthdays(now, nil, 7))
}
