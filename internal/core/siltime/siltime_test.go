package siltime_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsprops/internal/core/domain"
	"go.trai.ch/tsprops/internal/core/ports/mocks"
	"go.trai.ch/tsprops/internal/core/siltime"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestOffset(t *testing.T) {
	assert.Equal(t, int64(50_491_123_200_000), siltime.MsecBetween1601And0001)
}

func TestConversion(t *testing.T) {
	tests := []struct {
		name    string
		time    time.Time
		silTime int64
	}{
		{
			name:    "minimum",
			time:    siltime.MinTime,
			silTime: -siltime.MsecBetween1601And0001,
		},
		{
			name:    "epoch 1601",
			time:    time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC),
			silTime: 0,
		},
		{
			name:    "unix epoch",
			time:    time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
			silTime: 11_644_473_600_000,
		},
		{
			name:    "year 2000",
			time:    time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
			silTime: 12_591_158_400_000,
		},
		{
			name:    "maximum",
			time:    siltime.MaxTime,
			silTime: siltime.MaxSilTime,
		},
		{
			name:    "milliseconds",
			time:    time.Date(2024, time.February, 29, 13, 45, 30, 123_000_000, time.UTC),
			silTime: 13_353_687_930_123,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.silTime, siltime.ToSilTime(tt.time))

			got, err := siltime.FromSilTime(tt.silTime)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.time), "got %s, want %s", got, tt.time)

			back, err := siltime.FromSilTime(siltime.ToSilTime(tt.time))
			require.NoError(t, err)
			assert.True(t, back.Equal(tt.time))
		})
	}
}

func TestToSilTime_TruncatesSubMillisecond(t *testing.T) {
	in := time.Date(2000, time.January, 1, 0, 0, 0, 1_999_999, time.UTC)

	got, err := siltime.FromSilTime(siltime.ToSilTime(in))
	require.NoError(t, err)
	assert.True(t, got.Equal(in.Truncate(time.Millisecond)))
}

func TestToSilTime_Zones(t *testing.T) {
	utc := time.Date(2010, time.June, 1, 12, 0, 0, 0, time.UTC)
	shifted := utc.In(time.FixedZone("UTC+2", 2*60*60))

	assert.Equal(t, siltime.ToSilTime(utc), siltime.ToSilTime(shifted))
	got, err := siltime.FromSilTime(0)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
}

func TestFromSilTime_OutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		silTime int64
	}{
		{name: "max int64", silTime: math.MaxInt64},
		{name: "min int64", silTime: math.MinInt64},
		{name: "before year 1", silTime: -siltime.MsecBetween1601And0001 - 1},
		{name: "after year 9999", silTime: siltime.MaxSilTime + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := siltime.FromSilTime(tt.silTime)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrTimeOutOfRange))
			assert.True(t, got.Equal(siltime.MinTime))

			ctrl := gomock.NewController(t)
			da := mocks.NewMockDataAccess(ctrl)
			da.EXPECT().TimeProp(domain.ObjectID(3), domain.FieldID(4)).Return(tt.silTime, nil).Times(2)

			assert.True(t, siltime.GetTimeProperty(da, 3, 4).Equal(siltime.MinTime))

			strict, err := siltime.GetTimePropertyStrict(da, 3, 4)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrTimeOutOfRange))
			assert.True(t, strict.Equal(siltime.MinTime))
		})
	}
}

func TestSetTimeProperty_OutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	da := mocks.NewMockDataAccess(ctrl)

	for _, ts := range []time.Time{
		time.Date(0, time.December, 31, 23, 59, 59, 0, time.UTC),
		time.Date(10000, time.January, 1, 0, 0, 0, 0, time.UTC),
	} {
		err := siltime.SetTimeProperty(da, 1, 2, ts)
		require.Error(t, err, "time %s", ts)
		assert.True(t, errors.Is(err, domain.ErrTimeOutOfRange))
	}
}

func TestGetTimeProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	da := mocks.NewMockDataAccess(ctrl)

	da.EXPECT().TimeProp(domain.ObjectID(1), domain.FieldID(2)).Return(int64(12_591_158_400_000), nil)

	got := siltime.GetTimeProperty(da, 1, 2)
	assert.True(t, got.Equal(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestGetTimeProperty_FailureYieldsMinTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	da := mocks.NewMockDataAccess(ctrl)

	da.EXPECT().TimeProp(gomock.Any(), gomock.Any()).Return(int64(0), domain.ErrTimeNotFound)

	assert.True(t, siltime.GetTimeProperty(da, 1, 2).Equal(siltime.MinTime))
}

func TestGetTimePropertyStrict_ReportsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	da := mocks.NewMockDataAccess(ctrl)

	da.EXPECT().TimeProp(gomock.Any(), gomock.Any()).Return(int64(0), domain.ErrTimeNotFound)

	got, err := siltime.GetTimePropertyStrict(da, 5, 6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTimeNotFound))
	assert.True(t, got.Equal(siltime.MinTime))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, domain.FieldID(6), zErr.Metadata()["field"])
}

func TestSetTimeProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	da := mocks.NewMockDataAccess(ctrl)

	ts := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	da.EXPECT().SetTime(domain.ObjectID(1), domain.FieldID(2), int64(12_591_158_400_000)).Return(nil)

	require.NoError(t, siltime.SetTimeProperty(da, 1, 2, ts))
}

func TestSetTimeProperty_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	da := mocks.NewMockDataAccess(ctrl)

	failure := errors.New("read-only")
	da.EXPECT().SetTime(gomock.Any(), gomock.Any(), gomock.Any()).Return(failure)

	err := siltime.SetTimeProperty(da, 1, 2, time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, failure))
}
