package tinvest

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

func TestDateToTimestamp(t *testing.T) {
	cases := []struct {
		date    time.Time
		seconds int64
	}{
		{time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC), 1703462400},
		{time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC), -86400},
		{time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), 1709164800},
	}
	for _, tc := range cases {
		ts := DateToTimestamp(tc.date)
		assert.Equal(t, tc.seconds, ts.Seconds, "date %s", tc.date)
		assert.Equal(t, int32(0), ts.Nanos, "date %s", tc.date)
	}
}

func TestDateToTimestamp_DropsTimeOfDay(t *testing.T) {
	noon := time.Date(2023, 6, 15, 12, 34, 56, 789, time.UTC)
	midnight := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, midnight.Unix(), DateToTimestamp(noon).Seconds)
}

func TestTimestampToDate(t *testing.T) {
	cases := []struct {
		seconds int64
		nanos   int32
		want    time.Time
	}{
		{0, 0, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
		{1703462400 + 3661, 500000000, time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC)},
		{-86400, 0, time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC)},
		{1709164800, 0, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := TimestampToDate(&timestamppb.Timestamp{Seconds: tc.seconds, Nanos: tc.nanos})
		require.NoError(t, err)
		assert.True(t, tc.want.Equal(got), "seconds=%d: got %s want %s", tc.seconds, got, tc.want)
	}
}

func TestTimestampToTime_Errors(t *testing.T) {
	_, err := TimestampToTime(nil)
	assert.Error(t, err)

	_, err = TimestampToTime(&timestamppb.Timestamp{Seconds: math.MaxInt64})
	assert.Error(t, err)

	_, err = TimestampToTime(&timestamppb.Timestamp{Nanos: 2000000000})
	assert.Error(t, err)

	_, err = TimestampToTime(&timestamppb.Timestamp{Nanos: -1})
	assert.Error(t, err)
}

func TestTimeTimestampRoundTrip(t *testing.T) {
	times := []time.Time{
		time.Unix(0, 0).UTC(),
		time.Unix(1672531200, 0).UTC(),
		time.Unix(1672531200, 123456789).UTC(),
		time.Unix(-86400, 0).UTC(),
		time.Unix(1703980800, 999999999).UTC(),
	}
	for _, in := range times {
		out, err := TimestampToTime(TimeToTimestamp(in))
		require.NoError(t, err)
		assert.True(t, in.Equal(out), "got %s want %s", out, in)
	}
}

func TestDateRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC),
		time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		back, err := TimestampToDate(DateToTimestamp(d))
		require.NoError(t, err)
		assert.True(t, d.Equal(back), "got %s want %s", back, d)
	}
}
