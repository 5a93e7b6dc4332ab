package contact_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/contact"
)

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"Valid", "+380991234567", false},
		{"Valid other operator", "+380671112233", false},
		{"Empty means unset", "", false},
		{"Too short", "+38099123456", true},
		{"Too long", "+3809912345678", true},
		{"Missing plus", "380991234567", true},
		{"Wrong country", "+480991234567", true},
		{"Letters", "+38099123456a", true},
		{"Inner spaces", "+38 099 123 45 67", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := contact.NewPhone(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, contact.ErrValidation)

				var fe *contact.FormatError
				require.True(t, errors.As(err, &fe))
				assert.Equal(t, config.FieldPhone, fe.Field)
				return
			}
			require.NoError(t, err)
			// Valid phones round-trip unchanged.
			assert.Equal(t, tt.raw, p.String())
		})
	}
}

func TestPhone_Equality(t *testing.T) {
	a, err := contact.NewPhone("+380991234567")
	require.NoError(t, err)
	b, err := contact.NewPhone(" +380991234567 ")
	require.NoError(t, err)

	assert.Equal(t, a, b, "Phones with the same normalized value must be equal")
	assert.True(t, a == b)
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantErr  bool
		wantDate time.Time
	}{
		{"Valid", "15/06/1990", false, time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"Leap day", "29/02/2000", false, time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"First day of year one", "01/01/0001", false, time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"Empty means unset", "", false, time.Time{}},
		{"ISO layout", "1990-06-15", true, time.Time{}},
		{"Single digits", "1/6/1990", true, time.Time{}},
		{"Impossible day", "31/02/1990", true, time.Time{}},
		{"Month 13", "01/13/1990", true, time.Time{}},
		{"Not leap year", "29/02/2001", true, time.Time{}},
		{"Garbage", "tomorrow", true, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := contact.NewBirthday(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, contact.ErrValidation)
				assert.Contains(t, err.Error(), config.FieldDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw != "", b.IsSet())
			assert.Equal(t, tt.wantDate, b.Date())
			// Re-formatting recovers the input.
			assert.Equal(t, tt.raw, b.String())
		})
	}
}

func TestNewName(t *testing.T) {
	n, err := contact.NewName("Petro")
	require.NoError(t, err)
	assert.Equal(t, "Petro", n.String())

	_, err = contact.NewName("   ")
	assert.ErrorIs(t, err, contact.ErrValidation)
}

func TestBirthdayOf_DropsClock(t *testing.T) {
	b := contact.BirthdayOf(time.Date(1990, 6, 15, 23, 59, 0, 0, time.FixedZone("EEST", 3*3600)))
	assert.True(t, b.IsSet())
	assert.Equal(t, "15/06/1990", b.String())

	zero := contact.BirthdayOf(time.Time{})
	assert.True(t, zero.IsSet(), "year one is a real date")
	assert.Equal(t, "01/01/0001", zero.String())

	assert.False(t, contact.Birthday{}.IsSet())
}

// TestNextOccurrence covers standard dates, year boundaries and leap years.
func TestNextOccurrence(t *testing.T) {
	// Reference "Now": June 15th, 2025 (Non-Leap Year)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate time.Time
		want      time.Time
		wantDays  int
	}{
		{
			name:      "Birthday in the past (this year)",
			birthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			want:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			wantDays:  200,
		},
		{
			name:      "Birthday in the future (this year)",
			birthDate: time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC),
			want:      time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			wantDays:  199,
		},
		{
			name:      "Birthday is today",
			birthDate: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
			want:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			wantDays:  0,
		},
		{
			name:      "Birthday was yesterday",
			birthDate: time.Date(1990, 6, 14, 0, 0, 0, 0, time.UTC),
			want:      time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC),
			wantDays:  364,
		},
		{
			name:      "Leapling in non-leap year",
			birthDate: time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC),
			want:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			wantDays:  259,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contact.NextOccurrence(now, tt.birthDate))
			assert.Equal(t, tt.wantDays, contact.DaysUntil(now, tt.birthDate))
		})
	}
}

// TestNextOccurrence_LeapYearContext checks that Feb 29 is kept in leap years.
func TestNextOccurrence_LeapYearContext(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	birthDate := time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), contact.NextOccurrence(now, birthDate))
}
