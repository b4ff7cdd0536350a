//go:build unit

package availability_test

import (
	"encoding/json"
	"testing"

	"consult-booking/internal/domain/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	testCases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "10:00", want: 600},
		{in: "9:45", want: 585},
		{in: "21:15", want: 1275},
		{in: "00:00", want: 0},
		{in: "24:00", want: 1440},
		{in: " 14:30 ", want: 870},
		{in: "24:15", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "1230", wantErr: true},
		{in: "12:3", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
		{in: "-1:00", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := availability.ParseTimeOfDay(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, availability.ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, int(got))
		})
	}
}

func TestTimeOfDay_Text(t *testing.T) {
	tm := availability.MustTimeOfDay("9:05")
	assert.Equal(t, "09:05", tm.String())

	b, err := json.Marshal(struct {
		At availability.TimeOfDay `json:"at"`
	}{At: tm})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"09:05"}`, string(b))

	var decoded struct {
		At availability.TimeOfDay `json:"at"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"at":"17:45"}`), &decoded))
	assert.Equal(t, availability.MustTimeOfDay("17:45"), decoded.At)
}

func TestSchedule_OccupiedInterval(t *testing.T) {
	s := availability.DefaultSchedule()
	start := at(15, "14:00")

	iv := s.OccupiedInterval(start, 60)
	assert.Equal(t, at(15, "13:30"), iv.From)
	assert.Equal(t, at(15, "15:00"), iv.To)

	touching := s.OccupiedInterval(at(15, "15:30"), 45)
	assert.False(t, iv.Overlaps(touching))
	assert.False(t, touching.Overlaps(iv))

	overlapping := s.OccupiedInterval(at(15, "15:15"), 45)
	assert.True(t, iv.Overlaps(overlapping))
	assert.True(t, overlapping.Overlaps(iv))
}

func TestSchedule_ParseDate(t *testing.T) {
	s := availability.DefaultSchedule()

	d, err := s.ParseDate("2026-10-15")
	require.NoError(t, err)
	assert.Equal(t, at(15, "00:00"), d)

	for _, in := range []string{"", "15.10.2026", "2026-13-01", "2026-10-15T10:00"} {
		_, err := s.ParseDate(in)
		assert.ErrorIs(t, err, availability.ErrInvalidDate, in)
	}
}
