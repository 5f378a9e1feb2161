package utils

import "testing"

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		want    string
	}{
		{"zero", 0, "00:00:00"},
		{"one hour", 3600, "01:00:00"},
		{"mixed", 3725, "01:02:05"},
		{"long day", 10*3600 + 59*60 + 59, "10:59:59"},
		{"negative clamps", -5, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatHMS(tt.seconds); got != tt.want {
				t.Errorf("FormatHMS(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestWorkdayPercentage(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		want    float64
	}{
		{"zero", 0, 0},
		{"negative", -10, 0},
		{"one hour of eight", 3600, 12.5},
		{"full day", 480 * 60, 100},
		{"overtime caps", 12 * 3600, 100},
		{"rounds to two decimals", 1000, 3.47},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WorkdayPercentage(tt.seconds); got != tt.want {
				t.Errorf("WorkdayPercentage(%d) = %v, want %v", tt.seconds, got, tt.want)
			}
		})
	}
}
