// Package siltime converts between SilTime values and time.Time.
//
// A SilTime is a count of milliseconds since 1601-01-01T00:00:00. Values are
// anchored to the proleptic Gregorian calendar starting at year 1, so the
// conversion is a fixed additive offset.
package siltime

import (
	"time"

	"go.trai.ch/tsprops/internal/core/domain"
	"go.trai.ch/tsprops/internal/core/ports"
	"go.trai.ch/zerr"
)

// MsecBetween1601And0001 is the number of milliseconds between 0001-01-01 and
// 1601-01-01: four 400-year Gregorian cycles of 146097 days.
const MsecBetween1601And0001 int64 = 146097 * 86400000 * 1600 / 400

// msecBetween0001AndUnix is the number of milliseconds between 0001-01-01 and
// 1970-01-01.
const msecBetween0001AndUnix int64 = 62135596800000

// Representable SilTime values cover 0001-01-01T00:00:00.000 through
// 9999-12-31T23:59:59.999.
const (
	MinSilTime int64 = -MsecBetween1601And0001
	MaxSilTime int64 = 3652059*86400000 - 1 - MsecBetween1601And0001
)

var (
	// MinTime is returned by GetTimeProperty when a value cannot be read.
	MinTime = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	// MaxTime is the latest time a SilTime can hold.
	MaxTime = time.Date(9999, time.December, 31, 23, 59, 59, 999_000_000, time.UTC)
)

// FromSilTime converts a SilTime value to a UTC time. Values outside
// MinSilTime..MaxSilTime yield ErrTimeOutOfRange.
func FromSilTime(silTime int64) (time.Time, error) {
	if silTime < MinSilTime || silTime > MaxSilTime {
		return MinTime, zerr.With(zerr.Wrap(domain.ErrTimeOutOfRange, "invalid SilTime"), "value", silTime)
	}
	msSince0001 := silTime + MsecBetween1601And0001
	return time.UnixMilli(msSince0001 - msecBetween0001AndUnix).UTC(), nil
}

// ToSilTime converts t to a SilTime value. Precision below one millisecond is
// truncated. The result is only meaningful for t between MinTime and MaxTime.
func ToSilTime(t time.Time) int64 {
	msSince0001 := t.UnixMilli() + msecBetween0001AndUnix
	return msSince0001 - MsecBetween1601And0001
}

// GetTimeProperty reads a time field through da. Any read failure, including
// a stored value outside the representable range, yields MinTime.
func GetTimeProperty(da ports.DataAccess, obj domain.ObjectID, field domain.FieldID) time.Time {
	t, err := GetTimePropertyStrict(da, obj, field)
	if err != nil {
		return MinTime
	}
	return t
}

// GetTimePropertyStrict reads a time field through da and reports read
// failures and out-of-range values.
func GetTimePropertyStrict(da ports.DataAccess, obj domain.ObjectID, field domain.FieldID) (time.Time, error) {
	silTime, err := da.TimeProp(obj, field)
	if err != nil {
		err = zerr.Wrap(err, "failed to read time property")
		return MinTime, zerr.With(zerr.With(err, "object", obj), "field", field)
	}
	t, err := FromSilTime(silTime)
	if err != nil {
		return MinTime, zerr.With(zerr.With(err, "object", obj), "field", field)
	}
	return t, nil
}

// SetTimeProperty writes t to a time field through da. Times outside
// MinTime..MaxTime yield ErrTimeOutOfRange without writing.
func SetTimeProperty(da ports.DataAccess, obj domain.ObjectID, field domain.FieldID, t time.Time) error {
	if t.Before(MinTime) || t.After(MaxTime.Add(time.Millisecond-1)) {
		err := zerr.With(zerr.Wrap(domain.ErrTimeOutOfRange, "invalid time"), "time", t)
		return zerr.With(zerr.With(err, "object", obj), "field", field)
	}
	if err := da.SetTime(obj, field, ToSilTime(t)); err != nil {
		err = zerr.Wrap(err, "failed to write time property")
		return zerr.With(zerr.With(err, "object", obj), "field", field)
	}
	return nil
}
