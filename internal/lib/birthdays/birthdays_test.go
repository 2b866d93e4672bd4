package birthdays_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"contacts/internal/lib/birthdays"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func ids(entries []birthdays.Entry) []int64 {
	out := make([]int64, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestUpcoming(t *testing.T) {
	cases := []struct {
		name   string
		today  time.Time
		window int
		entry  birthdays.Entry
		match  bool
	}{
		{
			name:   "Today",
			today:  day(2024, time.June, 10),
			window: 7,
			entry:  birthdays.Entry{ID: 1, Month: time.June, Day: 10},
			match:  true,
		},
		{
			name:   "Today with zero window",
			today:  day(2024, time.June, 10),
			window: 0,
			entry:  birthdays.Entry{ID: 1, Month: time.June, Day: 10},
			match:  true,
		},
		{
			name:   "Last day of window",
			today:  day(2024, time.June, 10),
			window: 7,
			entry:  birthdays.Entry{ID: 1, Month: time.June, Day: 17},
			match:  true,
		},
		{
			name:   "One day past window",
			today:  day(2024, time.June, 10),
			window: 7,
			entry:  birthdays.Entry{ID: 1, Month: time.June, Day: 18},
			match:  false,
		},
		{
			name:   "Yesterday",
			today:  day(2024, time.June, 10),
			window: 7,
			entry:  birthdays.Entry{ID: 1, Month: time.June, Day: 9},
			match:  false,
		},
		{
			name:   "Across new year",
			today:  day(2024, time.December, 30),
			window: 7,
			entry:  birthdays.Entry{ID: 1, Month: time.January, Day: 3},
			match:  true,
		},
		{
			name:   "Across new year last day",
			today:  day(2024, time.December, 28),
			window: 7,
			entry:  birthdays.Entry{ID: 1, Month: time.January, Day: 4},
			match:  true,
		},
		{
			name:   "Across new year past window",
			today:  day(2024, time.December, 28),
			window: 7,
			entry:  birthdays.Entry{ID: 1, Month: time.January, Day: 5},
			match:  false,
		},
		{
			name:   "Leap day in non-leap year falls on Feb 28",
			today:  day(2023, time.February, 28),
			window: 0,
			entry:  birthdays.Entry{ID: 1, Month: time.February, Day: 29},
			match:  true,
		},
		{
			name:   "Leap day in leap year",
			today:  day(2024, time.February, 29),
			window: 0,
			entry:  birthdays.Entry{ID: 1, Month: time.February, Day: 29},
			match:  true,
		},
		{
			name:   "Leap day after fallback passed",
			today:  day(2023, time.March, 1),
			window: 7,
			entry:  birthdays.Entry{ID: 1, Month: time.February, Day: 29},
			match:  false,
		},
		{
			name:   "Leap day rolls into next non-leap year",
			today:  day(2024, time.December, 30),
			window: 60,
			entry:  birthdays.Entry{ID: 1, Month: time.February, Day: 29},
			match:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := birthdays.Upcoming([]birthdays.Entry{tc.entry}, tc.today, tc.window)
			require.NoError(t, err)

			if tc.match {
				require.Equal(t, []int64{tc.entry.ID}, ids(got))
			} else {
				require.Empty(t, got)
			}
		})
	}
}

func TestUpcomingKeepsOrder(t *testing.T) {
	today := day(2024, time.December, 29)
	entries := []birthdays.Entry{
		{ID: 3, Month: time.January, Day: 2},
		{ID: 1, Month: time.March, Day: 1},
		{ID: 2, Month: time.December, Day: 31},
		{ID: 4, Month: time.December, Day: 29},
	}

	got, err := birthdays.Upcoming(entries, today, birthdays.DefaultWindow)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 2, 4}, ids(got))
}

func TestUpcomingIgnoresClock(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*60*60)
	today := time.Date(2024, time.June, 10, 23, 59, 59, 0, loc)

	got, err := birthdays.Upcoming([]birthdays.Entry{{ID: 1, Month: time.June, Day: 17}}, today, 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestUpcomingEmpty(t *testing.T) {
	got, err := birthdays.Upcoming(nil, day(2024, time.June, 10), 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestUpcomingNegativeWindow(t *testing.T) {
	_, err := birthdays.Upcoming(nil, day(2024, time.June, 10), -1)
	require.ErrorIs(t, err, birthdays.ErrInvalidWindow)
}

func TestOccurrence(t *testing.T) {
	require.Equal(t, day(2025, time.February, 28),
		birthdays.Occurrence(time.February, 29, day(2024, time.December, 30)))
	require.Equal(t, day(2028, time.February, 29),
		birthdays.Occurrence(time.February, 29, day(2028, time.January, 1)))
	require.Equal(t, day(2025, time.June, 9),
		birthdays.Occurrence(time.June, 9, day(2024, time.June, 10)))
}

func TestDaysUntil(t *testing.T) {
	require.Equal(t, 0, birthdays.DaysUntil(time.June, 10, day(2024, time.June, 10)))
	require.Equal(t, 4, birthdays.DaysUntil(time.January, 3, day(2024, time.December, 30)))
	require.Equal(t, 364, birthdays.DaysUntil(time.June, 9, day(2024, time.June, 10)))
}
