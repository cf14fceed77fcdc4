package pkg

import (
	"testing"
	"time"
)

func TestSmartDurationFormat(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0"},
		{450 * time.Nanosecond, "450ns"},
		{12 * time.Microsecond, "12μs"},
		{250 * time.Millisecond, "250ms"},
		{time.Second, "1s"},
		{90 * time.Second, "1m30s"},
		{time.Hour + 5*time.Minute + 2*time.Second, "1h5m"},
		{25 * time.Hour, "1d1h"},
	}
	for _, tc := range cases {
		if got := SmartDurationFormat(tc.in); got != tc.want {
			t.Errorf("SmartDurationFormat(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
