package sed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRAToHMS(t *testing.T) {
	tests := []struct {
		deg  float64
		want string
	}{
		{deg: 0, want: "00h00m00.00s"},
		{deg: 15, want: "01h00m00.00s"},
		{deg: 161.25, want: "10h45m00.00s"},
		{deg: 180.5, want: "12h02m00.00s"},
		{deg: -15, want: "23h00m00.00s"},
		{deg: 375, want: "01h00m00.00s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RAToHMS(tt.deg).String(), "ra %v", tt.deg)
	}

	hms := RAToHMS(10.3)
	assert.Equal(t, 0, hms.Whole)
	assert.Equal(t, 41, hms.Minutes)
	assert.InDelta(t, 12.0, hms.Seconds, 1e-6)
}

func TestDecToDMS(t *testing.T) {
	tests := []struct {
		deg  float64
		want string
	}{
		{deg: 58.5, want: "+58d30m00.0s"},
		{deg: -0.5, want: "-00d30m00.0s"},
		{deg: 0, want: "+00d00m00.0s"},
		{deg: -45.25, want: "-45d15m00.0s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DecToDMS(tt.deg).String(), "dec %v", tt.deg)
	}

	dms := DecToDMS(-12.3456)
	assert.Equal(t, -1, dms.Sign)
	assert.Equal(t, 12, dms.Whole)
	assert.Equal(t, 20, dms.Minutes)
	assert.InDelta(t, 44.16, dms.Seconds, 1e-6)
}

func TestSexagesimal_RoundingCarries(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "ra seconds round into next minute", got: RAToHMS(15 - 1e-7).String(), want: "01h00m00.00s"},
		{name: "ra rounds past 24h", got: RAToHMS(360 - 1e-10).String(), want: "00h00m00.00s"},
		{name: "ra seconds into next hour", got: RAToHMS(0.24999999).String(), want: "00h01m00.00s"},
		{name: "dec seconds round into next degree", got: DecToDMS(1 - 1e-6).String(), want: "+01d00m00.0s"},
		{name: "negative dec", got: DecToDMS(-(0.5 - 1e-6)).String(), want: "-00d30m00.0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
