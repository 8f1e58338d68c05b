package tinvest

import (
	"time"

	"github.com/pkg/errors"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

// TimeToTimestamp converts a UTC time to a protobuf timestamp,
// preserving nanosecond precision.
func TimeToTimestamp(t time.Time) *timestamppb.Timestamp {
	return timestamppb.New(t)
}

// TimestampToTime converts a protobuf timestamp to a UTC time. It fails
// on nil timestamps, on nanos outside [0, 1e9) and on seconds outside
// the protobuf-representable range.
func TimestampToTime(ts *timestamppb.Timestamp) (time.Time, error) {
	if ts == nil {
		return time.Time{}, errors.New("nil timestamp")
	}
	if err := ts.CheckValid(); err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid timestamp: %d seconds, %d nanos", ts.Seconds, ts.Nanos)
	}
	return ts.AsTime(), nil
}

// DateToTimestamp converts a date to a timestamp at midnight UTC of
// that date. Hours, minutes and smaller components of t are dropped.
func DateToTimestamp(t time.Time) *timestamppb.Timestamp {
	y, m, d := t.UTC().Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &timestamppb.Timestamp{Seconds: midnight.Unix()}
}

// TimestampToDate extracts the UTC date from a timestamp, ignoring the
// time of day.
func TimestampToDate(ts *timestamppb.Timestamp) (time.Time, error) {
	t, err := TimestampToTime(ts)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
