package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alechenninger/worldclock/internal/domain"
)

var menuZones = []string{
	"Europe/London",
	"America/Los_Angeles",
	"America/New_York",
	"Asia/Shanghai",
	"Asia/Dhaka",
	"Asia/Kolkata",
	"Asia/Tokyo",
	"Australia/Sydney",
}

func TestRenderDhakaExample(t *testing.T) {
	t.Parallel()
	r := New()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	d, err := r.Render(at, "Asia/Dhaka")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01 00:00:00", d.UTCTime)
	assert.Equal(t, "Monday", d.UTCWeekday)
	assert.Equal(t, "2024-01-01 06:00:00 AM", d.LocalTime)
	assert.Equal(t, "Monday", d.LocalWeekday)
	assert.Equal(t, "GMT+6", d.Offset)
	assert.Equal(t, "Asia/Dhaka", d.Zone)
}

func TestFormatUTCTruncatesSubSeconds(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 3, 5, 13, 4, 5, 999_000_000, time.UTC)
	assert.Equal(t, "2024-03-05 13:04:05", FormatUTC(at))

	inTokyo := at.In(time.FixedZone("JST", 9*3600))
	assert.Equal(t, "2024-03-05 13:04:05", FormatUTC(inTokyo))
}

func TestLocalRoundTripsToInstant(t *testing.T) {
	t.Parallel()
	r := New()
	instants := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 15, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 3, 31, 1, 30, 0, 0, time.UTC),
		time.Date(2024, 11, 3, 9, 15, 42, 0, time.UTC),
	}
	for _, zone := range menuZones {
		loc, err := r.Location(zone)
		require.NoError(t, err)
		for _, at := range instants {
			local := FormatLocal(at, loc)
			wall, err := time.Parse(localLayout, local)
			require.NoError(t, err, zone)
			_, offset := at.In(loc).Zone()
			back := wall.Add(-time.Duration(offset) * time.Second)
			assert.True(t, back.Equal(at), "%s at %s: got %s", zone, at, back)
		}
	}
}

func TestUTCFieldsIndependentOfZone(t *testing.T) {
	t.Parallel()
	r := New()
	at := time.Date(2025, 6, 30, 22, 10, 0, 0, time.UTC)
	base, err := r.Render(at, menuZones[0])
	require.NoError(t, err)
	for _, zone := range menuZones[1:] {
		d, err := r.Render(at, zone)
		require.NoError(t, err)
		assert.Equal(t, base.UTCTime, d.UTCTime, zone)
		assert.Equal(t, base.UTCWeekday, d.UTCWeekday, zone)
	}
}

func TestZeroOffsetWeekdayMatchesUTC(t *testing.T) {
	t.Parallel()
	r := New()
	// London is on GMT in January.
	at := time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC)
	d, err := r.Render(at, "Europe/London")
	require.NoError(t, err)
	assert.Equal(t, "GMT", d.Offset)
	assert.Equal(t, d.UTCWeekday, d.LocalWeekday)
	assert.Equal(t, "Sunday", d.LocalWeekday)
}

func TestOffsetLabel(t *testing.T) {
	t.Parallel()
	winter := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	summer := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		zone string
		at   time.Time
		want string
	}{
		{"Europe/London", winter, "GMT"},
		{"Europe/London", summer, "GMT+1"},
		{"America/Los_Angeles", winter, "GMT-8"},
		{"America/Los_Angeles", summer, "GMT-7"},
		{"America/New_York", winter, "GMT-5"},
		{"Asia/Shanghai", winter, "GMT+8"},
		{"Asia/Dhaka", summer, "GMT+6"},
		{"Asia/Kolkata", winter, "GMT+5:30"},
		{"Asia/Kathmandu", winter, "GMT+5:45"},
		{"America/St_Johns", winter, "GMT-3:30"},
		{"Asia/Tokyo", summer, "GMT+9"},
		{"Australia/Sydney", winter, "GMT+11"},
		{"Australia/Sydney", summer, "GMT+10"},
		{"UTC", summer, "GMT"},
	}
	r := New()
	for _, tt := range tests {
		t.Run(tt.zone+"/"+tt.at.Month().String(), func(t *testing.T) {
			got, err := r.Offset(tt.at, tt.zone)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatLocalUsesTwelveHourClock(t *testing.T) {
	t.Parallel()
	r := New()
	loc, err := r.Location("America/New_York")
	require.NoError(t, err)
	at := time.Date(2024, 1, 1, 17, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01 12:30:00 PM", FormatLocal(at, loc))
	assert.Equal(t, "Monday", Weekday(at, loc))

	at = time.Date(2024, 1, 1, 4, 0, 0, 0, time.UTC)
	assert.Equal(t, "2023-12-31 11:00:00 PM", FormatLocal(at, loc))
	assert.Equal(t, "Sunday", Weekday(at, loc))
}

func TestUnknownZone(t *testing.T) {
	t.Parallel()
	r := New()
	_, err := r.Render(time.Now(), "Mars/Olympus_Mons")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownZone)

	_, err = r.Offset(time.Now(), "")
	assert.ErrorIs(t, err, domain.ErrUnknownZone)
}

func TestOptionsLabelsEveryEntry(t *testing.T) {
	t.Parallel()
	r := New()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	opts, err := r.Options(at, []domain.ZoneMenuEntry{
		{ID: "Asia/Dhaka", Label: "Bangladesh Time (BDT)"},
		{ID: "Asia/Tokyo", Label: "Japan Standard Time (JST)"},
	})
	require.NoError(t, err)
	require.Len(t, opts, 2)
	assert.Equal(t, "Bangladesh Time (BDT) GMT+6", opts[0].Title())
	assert.Equal(t, "Japan Standard Time (JST) GMT+9", opts[1].Title())
}
