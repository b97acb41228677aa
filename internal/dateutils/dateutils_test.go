package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Formats(t *testing.T) {
	want := time.Date(2011, time.January, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
	}{
		{name: "compact yyyyMMdd", value: "20110102"},
		{name: "iso yyyy-MM-dd", value: "2011-01-02"},
		{name: "slashed two-digit year", value: "01/02/11"},
		{name: "slashed four-digit year", value: "01/02/2011"},
		{name: "month abbreviation", value: "02-JAN-11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value, false)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseDate_DayFirst(t *testing.T) {
	got, err := ParseDate("02/01/2011", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2011, time.January, 2, 0, 0, 0, 0, time.UTC), got)

	// The unambiguous formats ignore the flag.
	got, err = ParseDate("2011-01-02", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2011, time.January, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_CenturyPivot(t *testing.T) {
	tests := []struct {
		value string
		year  int
	}{
		{value: "04/02/97", year: 1997},
		{value: "04/02/11", year: 2011},
		{value: "04/02/68", year: 2068},
		{value: "04/02/69", year: 1969},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseDate(tt.value, false)
			require.NoError(t, err)
			assert.Equal(t, tt.year, got.Year())
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "empty", value: ""},
		{name: "unknown format", value: "2011/01/02"},
		{name: "month out of range", value: "20111302"},
		{name: "day out of range", value: "20110142"},
		{name: "not numeric", value: "2011010a"},
		{name: "nonexistent calendar day", value: "20240230"},
		{name: "nonexistent calendar day slashed", value: "04/31/2024"},
		{name: "february 29 in a common year", value: "2023-02-29"},
		{name: "signed digits", value: "-011-01-02"},
		{name: "unknown month abbreviation", value: "02-FOO-11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.value, false)
			assert.Error(t, err)
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "compact", value: "143045", want: TimeOfDay{Hour: 14, Minute: 30, Second: 45}},
		{name: "colons", value: "14:30:45", want: TimeOfDay{Hour: 14, Minute: 30, Second: 45}},
		{name: "midnight", value: "000000", want: TimeOfDay{}},
		{name: "hour out of range", value: "243045", wantErr: true},
		{name: "minute out of range", value: "146045", wantErr: true},
		{name: "second out of range", value: "143061", wantErr: true},
		{name: "wrong length", value: "1430", wantErr: true},
		{name: "not numeric", value: "14304x", wantErr: true},
		{name: "misplaced colons", value: "1:43:045", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "09:05:00", TimeOfDay{Hour: 9, Minute: 5}.String())
}

func TestParseDateTime_Separators(t *testing.T) {
	want := time.Date(2011, time.January, 2, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		name  string
		value string
	}{
		{name: "semicolon", value: "20110102;143045"},
		{name: "comma", value: "20110102,143045"},
		{name: "space", value: "20110102 143045"},
		{name: "comma space", value: "20110102, 143045"},
		{name: "iso date with colon time", value: "2011-01-02;14:30:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.value, false)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseDateTime_BareDate(t *testing.T) {
	got, err := ParseDateTime("20110102", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2011, time.January, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateTime_NoSeparator(t *testing.T) {
	got, err := ParseDateTime("20110102143045", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2011, time.January, 2, 14, 30, 45, 0, time.UTC), got)
}

func TestParseDateTime_TimezoneOffset(t *testing.T) {
	// Trailing offsets are dropped, not applied.
	got, err := ParseDateTime("20110102;134413-0500", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2011, time.January, 2, 13, 44, 13, 0, time.UTC), got)
}

func TestParseDateTime_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "repeated separator", value: "20110102;14;30"},
		{name: "multiple separators", value: "20110102;1430, 45"},
		{name: "no valid split", value: "2011010214"},
		{name: "garbage", value: "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDateTime(tt.value, false)
			assert.Error(t, err)
		})
	}
}

func TestExpandCentury(t *testing.T) {
	assert.Equal(t, 1997, ExpandCentury(97))
	assert.Equal(t, 2011, ExpandCentury(11))
	assert.Equal(t, 2068, ExpandCentury(68))
	assert.Equal(t, 1969, ExpandCentury(69))
}
